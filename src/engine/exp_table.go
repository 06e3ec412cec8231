package engine

import (
	"fmt"

	"cota/src/helpers"
)

// ExperienceTable converts between experience values and 1-based levels
// using an ascending table of level thresholds. Tables are injected at
// construction so callers can supply their own.
type ExperienceTable struct {
	thresholds []int64
}

// NewExperienceTable validates that the thresholds are in ascending
// order and wraps them.
func NewExperienceTable(thresholds []int64) (*ExperienceTable, error) {
	if len(thresholds) == 0 {
		return nil, fmt.Errorf("experience table is empty")
	}
	for i := 1; i < len(thresholds); i++ {
		if thresholds[i] < thresholds[i-1] {
			return nil, fmt.Errorf("experience table is not ascending at index %d", i)
		}
	}
	return &ExperienceTable{thresholds: thresholds}, nil
}

// MaxLevel returns the highest level the table can represent.
func (t *ExperienceTable) MaxLevel() int {
	return len(t.thresholds)
}

// LevelFor returns the 1-based level for an experience value: one plus
// the greatest index whose threshold does not exceed exp. ok is false
// when exp is below the first threshold.
func (t *ExperienceTable) LevelFor(exp int64) (int, bool) {
	idx, ok := helpers.FindFloorIndex(t.thresholds, exp)
	if !ok {
		return 0, false
	}
	return idx + 1, true
}

// ExperienceFor returns the threshold experience for a 1-based level.
// Levels outside 1..MaxLevel are a caller bug and panic.
func (t *ExperienceTable) ExperienceFor(level int) int64 {
	if level < 1 || level > len(t.thresholds) {
		panic(fmt.Sprintf("level %d is outside the table range 1..%d", level, len(t.thresholds)))
	}
	return t.thresholds[level-1]
}
