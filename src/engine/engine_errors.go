package engine

// Add custom error definitions here
import "errors"

// Load errors. Any of these aborts construction of a SaveDocument.
var (
	ErrNoAvatar          = errors.New("unable to determine the current avatar")
	ErrNoCharacterSheet  = errors.New("unable to find character sheet")
	ErrBadCharacterSheet = errors.New("error reading character sheet")
	ErrNoBackpack        = errors.New("unable to find the avatar's backpack")
	ErrNoInventory       = errors.New("unable to find inventory")
	ErrBadInventory      = errors.New("error reading inventory")
	ErrNoGold            = errors.New("unable to find user gold")
	ErrBadGold           = errors.New("error reading user gold")
	ErrBadExperience     = errors.New("unable to parse adventurer experience")
	ErrNoSkills          = errors.New("unable to find skills")
	ErrBadSkills         = errors.New("error reading skills")
	ErrNoDate            = errors.New("unable to parse the date/time")
)
