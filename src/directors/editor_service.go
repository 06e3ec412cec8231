package directors

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"cota/src/catalog"
	"cota/src/engine"
	"cota/src/settings"
)

// EditorService wires the static game catalogs and a loaded save
// document together for callers. The engine panics on contract
// violations; this layer validates arguments first and returns errors
// instead.
type EditorService struct {
	settings   *settings.Arguments
	logger     *zap.SugaredLogger
	levelTable *engine.ExperienceTable
	skillTable *engine.ExperienceTable
	adventurer []catalog.SkillGroup
	producer   []catalog.SkillGroup
	doc        *engine.SaveDocument
}

// NewEditorService loads the static catalogs and returns a service with
// no open document.
func NewEditorService(args *settings.Arguments, logger *zap.SugaredLogger) (*EditorService, error) {
	levelTable, err := catalog.LevelTable()
	if err != nil {
		return nil, fmt.Errorf("failed to load level table: %w", err)
	}
	skillTable, err := catalog.SkillTable()
	if err != nil {
		return nil, fmt.Errorf("failed to load skill table: %w", err)
	}
	adventurer, err := catalog.SkillGroups(catalog.Adventurer)
	if err != nil {
		return nil, fmt.Errorf("failed to load adventurer skills: %w", err)
	}
	producer, err := catalog.SkillGroups(catalog.Producer)
	if err != nil {
		return nil, fmt.Errorf("failed to load producer skills: %w", err)
	}

	// Tag this editing session in the logs.
	logger = logger.With("session", uuid.New().String())

	return &EditorService{
		settings:   args,
		logger:     logger,
		levelTable: levelTable,
		skillTable: skillTable,
		adventurer: adventurer,
		producer:   producer,
	}, nil
}

// Open loads a save file and makes it the service's current document.
func (s *EditorService) Open(path string) error {
	doc, err := engine.LoadSaveDocument(path, s.levelTable, s.skillTable, s.logger)
	if err != nil {
		return err
	}
	s.doc = doc
	return nil
}

// Document returns the currently open save document, or nil.
func (s *EditorService) Document() *engine.SaveDocument {
	return s.doc
}

// SkillGroups returns the catalog groups for a category.
func (s *EditorService) SkillGroups(category catalog.SkillCategory) []catalog.SkillGroup {
	if category == catalog.Producer {
		return s.producer
	}
	return s.adventurer
}

// FindSkill looks a skill up by name, case insensitively, in both
// catalogs.
func (s *EditorService) FindSkill(name string) (catalog.Skill, bool) {
	for _, groups := range [][]catalog.SkillGroup{s.adventurer, s.producer} {
		for _, group := range groups {
			for _, skill := range group.Skills {
				if strings.EqualFold(skill.Name, name) {
					return skill, true
				}
			}
		}
	}
	return catalog.Skill{}, false
}

// SkillLevel returns the current level for a catalog skill.
func (s *EditorService) SkillLevel(skill catalog.Skill) (int, bool) {
	if s.doc == nil {
		return 0, false
	}
	return s.doc.SkillLevel(skill.ID, skill.Mul)
}

// SetSkillLevel validates and applies a skill level using the catalog
// multiplier for the skill. Level 0 removes the skill.
func (s *EditorService) SetSkillLevel(skill catalog.Skill, level int) error {
	if s.doc == nil {
		return fmt.Errorf("no save file is open")
	}
	if level < 0 || level > s.skillTable.MaxLevel() {
		return fmt.Errorf("skill level %d is outside the range 0..%d", level, s.skillTable.MaxLevel())
	}
	s.doc.SetSkillLevel(skill.ID, level, skill.Mul)
	return nil
}

// SetAdventurerLevel validates and applies an adventurer level.
func (s *EditorService) SetAdventurerLevel(level int) error {
	if s.doc == nil {
		return fmt.Errorf("no save file is open")
	}
	if level < 1 || level > s.levelTable.MaxLevel() {
		return fmt.Errorf("level %d is outside the range 1..%d", level, s.levelTable.MaxLevel())
	}
	s.doc.SetAdventurerLevel(level)
	return nil
}

// SetProducerLevel validates and applies a producer level.
func (s *EditorService) SetProducerLevel(level int) error {
	if s.doc == nil {
		return fmt.Errorf("no save file is open")
	}
	if level < 1 || level > s.levelTable.MaxLevel() {
		return fmt.Errorf("level %d is outside the range 1..%d", level, s.levelTable.MaxLevel())
	}
	s.doc.SetProducerLevel(level)
	return nil
}

// Save commits the document to its current path, or to path when one is
// given.
func (s *EditorService) Save(path string) error {
	if s.doc == nil {
		return fmt.Errorf("no save file is open")
	}
	if path == "" {
		return s.doc.Store()
	}
	return s.doc.StoreAs(path)
}
