package engine

// Collections present in a save file.
const (
	UserCollection           = "User"
	CharacterCollection      = "Character"
	CharacterSheetCollection = "CharacterSheet"
	ItemStoreCollection      = "ItemStore"
	UserGoldCollection       = "UserGold"
)

// UserID is the reserved record id addressing the User and UserGold
// records.
const UserID = "000000000000000000000001"

// JSON field keys used by the save format.
const (
	avatarKey        = "dc"     // avatar id on the User record
	backpackKey      = "mainbp" // backpack id on the Character record
	advExpKey        = "ae"     // adventurer experience
	prdExpKey        = "pe"     // producer experience
	skillsKey        = "sk2"    // skills map on the character sheet
	masteryKey       = "m"      // skill mastery counter
	dateKey          = "t"      // skill timestamp
	expKey           = "x"      // skill experience
	goldKey          = "g"      // gold amount
	itemsKey         = "in"     // item map, also the inner item object
	assetNameKey     = "an"     // item asset path
	quantityKey      = "qn"     // item count
	durabilityKey    = "hp"     // current durability
	maxDurabilityKey = "php"    // maximum durability
	bagKey           = "bag"    // present when the item is a bag
)

// Durability holds an item's current and maximum durability.
type Durability struct {
	Minor float64
	Major float64
}

// Item is one entry of the inventory projection.
type Item struct {
	// ID is the item's instance id in the item map.
	ID string

	// Name is the display name, derived from the asset path.
	Name string

	// Count is the stack quantity.
	Count uint64

	// Durability is nil for items without durability.
	Durability *Durability

	// Bag reports whether the item is itself a container.
	Bag bool
}
