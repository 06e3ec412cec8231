// Package catalog provides the static game data consumed by the save
// editor: the experience threshold tables and the per-skill catalogs
// (name, experience multiplier, id). The data ships embedded in the
// binary and is parsed on demand.
package catalog

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"

	"cota/src/engine"
)

//go:embed res/level_exp_values.txt
var levelExpValues string

//go:embed res/skill_exp_values.txt
var skillExpValues string

//go:embed res/adventurer_skills.csv
var adventurerSkills string

//go:embed res/producer_skills.csv
var producerSkills string

// SkillCategory selects between the adventurer and producer catalogs.
type SkillCategory int

const (
	Adventurer SkillCategory = iota
	Producer
)

// Skill describes one entry of the static skill catalog.
type Skill struct {
	Name string
	Mul  float64
	ID   uint64
}

// SkillGroup is a named group of related skills.
type SkillGroup struct {
	Name   string
	Skills []Skill
}

// LevelTable returns the adventurer/producer level thresholds.
func LevelTable() (*engine.ExperienceTable, error) {
	return parseTable(levelExpValues)
}

// SkillTable returns the skill level thresholds.
func SkillTable() (*engine.ExperienceTable, error) {
	return parseTable(skillExpValues)
}

func parseTable(text string) (*engine.ExperienceTable, error) {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	thresholds := make([]int64, 0, len(lines))
	for _, line := range lines {
		val, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("error parsing experience table: %w", err)
		}
		thresholds = append(thresholds, val)
	}
	return engine.NewExperienceTable(thresholds)
}

// SkillGroups parses the CSV catalog for a category. Each line holds
// the group name, the skill name, the experience multiplier and the
// skill id. Consecutive lines with the same group name form one group.
func SkillGroups(category SkillCategory) ([]SkillGroup, error) {
	text := adventurerSkills
	if category == Producer {
		text = producerSkills
	}

	var groups []SkillGroup
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		fields := strings.Split(line, ",")
		if len(fields) != 4 {
			return nil, fmt.Errorf("error parsing skill catalog line %q", line)
		}

		mul, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("error parsing skill multiplier in %q: %w", line, err)
		}
		id, err := strconv.ParseUint(fields[3], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("error parsing skill id in %q: %w", line, err)
		}

		if len(groups) == 0 || groups[len(groups)-1].Name != fields[0] {
			groups = append(groups, SkillGroup{Name: fields[0]})
		}
		group := &groups[len(groups)-1]
		group.Skills = append(group.Skills, Skill{Name: fields[1], Mul: mul, ID: id})
	}

	return groups, nil
}
