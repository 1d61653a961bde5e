package domain

// Difficulty labels target puzzle generation & grading.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
)

// StrategyTier limits hinting/logic complexity used.
type StrategyTier int

const (
	StrategySingles StrategyTier = iota // naked / hidden singles
	StrategyPairs                       // naked pairs (twins)
	StrategyAdvanced                    // triples, pointing, etc. (cap only)
)
