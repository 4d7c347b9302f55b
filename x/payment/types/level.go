package types

import (
	"fmt"
	"sort"
)

// DefaultMaxLevel is the number of thresholds in the default level table.
const DefaultMaxLevel = 20

// LevelTable holds strictly increasing experience thresholds. Reaching the
// n-th threshold grants level n.
type LevelTable []uint64

// DefaultLevelTable returns thresholds 50*n*(n+1) for n = 1..DefaultMaxLevel:
// 100, 300, 600, 1000, 1500, ...
func DefaultLevelTable() LevelTable {
	t := make(LevelTable, DefaultMaxLevel)
	for n := uint64(1); n <= DefaultMaxLevel; n++ {
		t[n-1] = 50 * n * (n + 1)
	}
	return t
}

// Validate rejects zero and non-increasing thresholds.
func (t LevelTable) Validate() error {
	for i, th := range t {
		if th == 0 {
			return fmt.Errorf("level %d: threshold must be positive", i+1)
		}
		if i > 0 && th <= t[i-1] {
			return fmt.Errorf("level %d: threshold %d not above %d", i+1, th, t[i-1])
		}
	}
	return nil
}

// Level returns the number of thresholds at or below totalXp.
func (t LevelTable) Level(totalXp uint64) uint64 {
	return uint64(sort.Search(len(t), func(i int) bool { return t[i] > totalXp }))
}

// Threshold returns the experience needed for level, or zero and false past
// the table.
func (t LevelTable) Threshold(level uint64) (uint64, bool) {
	if level == 0 {
		return 0, true
	}
	if level > uint64(len(t)) {
		return 0, false
	}
	return t[level-1], true
}
