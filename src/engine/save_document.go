package engine

import (
	"fmt"
	"strconv"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"cota/src/helpers"
)

// SaveDocument owns the text of a loaded save file and the three parsed
// JSON sections the editor modifies: the character sheet, the inventory
// store and the user gold record. Edits happen in memory; Store
// re-encodes the sections and splices them back into the save text at
// their exact byte positions, leaving every other byte untouched.
//
// Only FilePath is safe for concurrent use. All other methods assume
// serialized access.
type SaveDocument struct {
	// Guards the save file path.
	mu   sync.RWMutex
	path string

	// Full file text from the last load. Never mutated.
	text string

	// Avatar and backpack record ids.
	avatar   string
	backpack string

	// Parsed JSON sections.
	character bson.D
	inventory bson.D
	gold      bson.D

	// Timestamp template for new skill entries.
	date interface{}

	levelTable *ExperienceTable
	skillTable *ExperienceTable

	logger *zap.SugaredLogger
}

// LoadSaveDocument reads and validates a save file. Construction is all
// or nothing: any structural anomaly returns an error and no document
// exists.
func LoadSaveDocument(path string, levelTable, skillTable *ExperienceTable, logger *zap.SugaredLogger) (*SaveDocument, error) {
	text, err := helpers.ReadSaveFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to load file: %w", err)
	}

	// Get the avatar ID from the fixed-id User record.
	avatar, ok := avatarID(text)
	if !ok {
		return nil, ErrNoAvatar
	}

	// Get the backpack ID from the avatar's Character record.
	backpack, ok := backpackID(text, avatar)
	if !ok {
		return nil, ErrNoBackpack
	}

	// Get the CharacterSheet JSON.
	payload, ok := RecordPayload(text, CharacterSheetCollection, avatar)
	if !ok {
		return nil, ErrNoCharacterSheet
	}
	character, err := DecodeRecordObject(payload)
	if err != nil {
		logger.Debugf("character sheet: %v", err)
		return nil, ErrBadCharacterSheet
	}

	// Get the ItemStore JSON.
	payload, ok = RecordPayload(text, ItemStoreCollection, backpack)
	if !ok {
		return nil, ErrNoInventory
	}
	inventory, err := DecodeRecordObject(payload)
	if err != nil {
		logger.Debugf("inventory: %v", err)
		return nil, ErrBadInventory
	}

	// Get the UserGold JSON.
	payload, ok = RecordPayload(text, UserGoldCollection, UserID)
	if !ok {
		return nil, ErrNoGold
	}
	gold, err := DecodeRecordObject(payload)
	if err != nil {
		logger.Debugf("user gold: %v", err)
		return nil, ErrBadGold
	}

	// Make sure adventurer experience is there.
	expVal, ok := docValue(character, advExpKey)
	if !ok {
		return nil, ErrBadExperience
	}
	if _, ok = toInt64(expVal); !ok {
		return nil, ErrBadExperience
	}

	// Get the skills value.
	skillsVal, ok := docValue(character, skillsKey)
	if !ok {
		return nil, ErrNoSkills
	}
	skills, ok := asDocument(skillsVal)
	if !ok {
		return nil, ErrBadSkills
	}

	// Find a date to use as the template for new skill entries.
	date, ok := findDate(skills)
	if !ok {
		return nil, ErrNoDate
	}

	logger.Infow("Loaded save file",
		"path", path,
		"avatar", avatar,
		"backpack", backpack)

	return &SaveDocument{
		path:       path,
		text:       text,
		avatar:     avatar,
		backpack:   backpack,
		character:  character,
		inventory:  inventory,
		gold:       gold,
		date:       date,
		levelTable: levelTable,
		skillTable: skillTable,
		logger:     logger,
	}, nil
}

// Store writes the document back to its current file path.
func (d *SaveDocument) Store() error {
	return d.StoreAs(d.FilePath())
}

// StoreAs re-encodes the three JSON sections, splices each into the
// save text in sequence and writes the result to path as a full-file
// overwrite. On success path becomes the document's remembered path, so
// a subsequent Store defaults there.
func (d *SaveDocument) StoreAs(path string) error {
	// Set the CharacterSheet record.
	text, err := spliceRecord(d.text, CharacterSheetCollection, d.avatar, d.character)
	if err != nil {
		return err
	}

	// Set the ItemStore record.
	text, err = spliceRecord(text, ItemStoreCollection, d.backpack, d.inventory)
	if err != nil {
		return err
	}

	// Set the UserGold record.
	text, err = spliceRecord(text, UserGoldCollection, UserID, d.gold)
	if err != nil {
		return err
	}

	if err := helpers.WriteSaveFile(path, text); err != nil {
		return fmt.Errorf("unable to store file: %w", err)
	}

	// Change the path.
	d.mu.Lock()
	d.path = path
	d.mu.Unlock()

	d.logger.Infow("Stored save file", "path", path)
	return nil
}

// spliceRecord re-locates a record in text and replaces its payload.
// Each splice shifts the byte offsets that follow it, so later records
// must be located against the already-patched text.
func spliceRecord(text, collection, id string, doc bson.D) (string, error) {
	payload, err := EncodeRecord(doc)
	if err != nil {
		return "", fmt.Errorf("unable to set %s: %w", collection, err)
	}

	result, ok := ReplaceRecordPayload(text, collection, id, payload)
	if !ok {
		return "", fmt.Errorf("unable to set %s", collection)
	}
	return result, nil
}

// FilePath returns a snapshot of the document's current file path. It
// is the only method safe to call concurrently with a store.
func (d *SaveDocument) FilePath() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.path
}

// Gold returns the avatar's gold, or false if the field is absent or
// not numeric.
func (d *SaveDocument) Gold() (int64, bool) {
	val, ok := docValue(d.gold, goldKey)
	if !ok {
		return 0, false
	}
	return toInt64(val)
}

// SetGold sets the avatar's gold.
func (d *SaveDocument) SetGold(gold int64) {
	d.gold = docSet(d.gold, goldKey, gold)
}

// SkillLevel returns the 1-based level for a skill id, un-scaling the
// stored experience by the skill's multiplier before the table lookup.
// ok is false when the skill is absent or its experience is below the
// first threshold.
func (d *SaveDocument) SkillLevel(id uint64, mul float64) (int, bool) {
	skillVal, ok := docValue(d.skills(), strconv.FormatUint(id, 10))
	if !ok {
		return 0, false
	}
	skill, ok := asDocument(skillVal)
	if !ok {
		return 0, false
	}
	expVal, ok := docValue(skill, expKey)
	if !ok {
		return 0, false
	}
	exp, ok := toInt64(expVal)
	if !ok {
		return 0, false
	}
	return d.skillTable.LevelFor(int64(float64(exp) / mul))
}

// SetSkillLevel writes the experience for level, scaled by the skill's
// multiplier. Level 0 removes the skill entry. A previously absent
// skill is created with mastery 0 and the document's timestamp
// template. Levels outside 0..MaxLevel are a caller bug and panic.
func (d *SaveDocument) SetSkillLevel(id uint64, level int, mul float64) {
	if level < 0 || level > d.skillTable.MaxLevel() {
		panic(fmt.Sprintf("skill level %d is outside the range 0..%d", level, d.skillTable.MaxLevel()))
	}

	if level == 0 {
		d.removeSkill(id)
		return
	}

	exp := int64(float64(d.skillTable.ExperienceFor(level)) * mul)
	d.setSkillExperience(id, exp)
}

// AdventurerLevel returns the avatar's adventurer level.
func (d *SaveDocument) AdventurerLevel() (int, bool) {
	exp, ok := d.experience(advExpKey)
	if !ok {
		return 0, false
	}
	return d.levelTable.LevelFor(exp)
}

// SetAdventurerLevel writes the exact table threshold for level as the
// new adventurer experience. Levels outside 1..MaxLevel panic.
func (d *SaveDocument) SetAdventurerLevel(level int) {
	d.setExperience(advExpKey, level)
}

// ProducerLevel returns the avatar's producer level.
func (d *SaveDocument) ProducerLevel() (int, bool) {
	exp, ok := d.experience(prdExpKey)
	if !ok {
		return 0, false
	}
	return d.levelTable.LevelFor(exp)
}

// SetProducerLevel writes the exact table threshold for level as the
// new producer experience. Levels outside 1..MaxLevel panic.
func (d *SaveDocument) SetProducerLevel(level int) {
	d.setExperience(prdExpKey, level)
}

// InventoryItems projects the raw item map into typed items. Entries
// missing a required field are skipped rather than failing the read.
func (d *SaveDocument) InventoryItems() []Item {
	val, ok := docValue(d.inventory, itemsKey)
	if !ok {
		return nil
	}
	entries, ok := asDocument(val)
	if !ok {
		return nil
	}

	items := make([]Item, 0, len(entries))
	for _, entry := range entries {
		item, ok := itemFromEntry(entry.Key, entry.Value)
		if !ok {
			d.logger.Debugf("skipping malformed inventory entry %s", entry.Key)
			continue
		}
		items = append(items, item)
	}
	return items
}

// SetInventoryItems writes each item's count and, when present, its
// durability back into the raw item map. Every item must reference an
// existing entry; an unknown id is a caller bug and panics.
func (d *SaveDocument) SetInventoryItems(items []Item) {
	entriesVal, ok := docValue(d.inventory, itemsKey)
	if !ok {
		panic("inventory has no item map")
	}
	entries, ok := asDocument(entriesVal)
	if !ok {
		panic("inventory item map is not an object")
	}

	for _, item := range items {
		entryVal, ok := docValue(entries, item.ID)
		if !ok {
			panic(fmt.Sprintf("item %s is not in the inventory", item.ID))
		}
		entry, ok := asDocument(entryVal)
		if !ok {
			panic(fmt.Sprintf("inventory entry %s is not an object", item.ID))
		}
		innerVal, ok := docValue(entry, itemsKey)
		if !ok {
			panic(fmt.Sprintf("inventory entry %s has no item object", item.ID))
		}
		inner, ok := asDocument(innerVal)
		if !ok {
			panic(fmt.Sprintf("inventory entry %s has no item object", item.ID))
		}

		inner = docSet(inner, quantityKey, int64(item.Count))
		if item.Durability != nil {
			inner = docSet(inner, durabilityKey, item.Durability.Minor)
			inner = docSet(inner, maxDurabilityKey, item.Durability.Major)
		}

		entry = docSet(entry, itemsKey, inner)
		entries = docSet(entries, item.ID, entry)
	}

	d.inventory = docSet(d.inventory, itemsKey, entries)
}

// skills returns the character sheet's skills object. Load guarantees
// it exists.
func (d *SaveDocument) skills() bson.D {
	val, _ := docValue(d.character, skillsKey)
	doc, _ := asDocument(val)
	return doc
}

func (d *SaveDocument) setSkillExperience(id uint64, exp int64) {
	key := strconv.FormatUint(id, 10)
	skills := d.skills()

	if skillVal, ok := docValue(skills, key); ok {
		// Update the existing entry's experience.
		skill, _ := asDocument(skillVal)
		skills = docSet(skills, key, docSet(skill, expKey, exp))
	} else {
		// Create a new entry from the timestamp template.
		skills = docSet(skills, key, bson.D{
			{Key: masteryKey, Value: int32(0)},
			{Key: dateKey, Value: d.date},
			{Key: expKey, Value: exp},
		})
	}

	d.character = docSet(d.character, skillsKey, skills)
}

func (d *SaveDocument) removeSkill(id uint64) {
	skills := docRemove(d.skills(), strconv.FormatUint(id, 10))
	d.character = docSet(d.character, skillsKey, skills)
}

func (d *SaveDocument) experience(key string) (int64, bool) {
	val, ok := docValue(d.character, key)
	if !ok {
		return 0, false
	}
	return toInt64(val)
}

func (d *SaveDocument) setExperience(key string, level int) {
	if level < 1 || level > d.levelTable.MaxLevel() {
		panic(fmt.Sprintf("level %d is outside the range 1..%d", level, d.levelTable.MaxLevel()))
	}
	d.character = docSet(d.character, key, d.levelTable.ExperienceFor(level))
}

// avatarID extracts the avatar id from the fixed-id User record.
func avatarID(text string) (string, bool) {
	payload, ok := RecordPayload(text, UserCollection, UserID)
	if !ok {
		return "", false
	}
	doc, err := DecodeRecordObject(payload)
	if err != nil {
		return "", false
	}
	val, ok := docValue(doc, avatarKey)
	if !ok {
		return "", false
	}
	id, ok := val.(string)
	return id, ok
}

// backpackID extracts the backpack id from the avatar's Character
// record.
func backpackID(text, avatar string) (string, bool) {
	payload, ok := RecordPayload(text, CharacterCollection, avatar)
	if !ok {
		return "", false
	}
	doc, err := DecodeRecordObject(payload)
	if err != nil {
		return "", false
	}
	val, ok := docValue(doc, backpackKey)
	if !ok {
		return "", false
	}
	id, ok := val.(string)
	return id, ok
}

// findDate scans the skills object for the first entry carrying a
// timestamp and returns its value verbatim. The value is opaque; it is
// only copied into newly created skill entries.
func findDate(skills bson.D) (interface{}, bool) {
	for _, entry := range skills {
		if skill, ok := asDocument(entry.Value); ok {
			if date, ok := docValue(skill, dateKey); ok {
				return date, true
			}
		}
	}
	return nil, false
}
