package engine

import (
	"go.mongodb.org/mongo-driver/bson"

	"cota/src/helpers"
)

// itemFromEntry projects one raw inventory entry into an Item. ok is
// false when a required field is missing or malformed, in which case
// the caller skips the entry instead of failing the whole read.
func itemFromEntry(id string, val interface{}) (Item, bool) {
	outer, ok := asDocument(val)
	if !ok {
		return Item{}, false
	}
	innerVal, ok := docValue(outer, itemsKey)
	if !ok {
		return Item{}, false
	}
	inner, ok := asDocument(innerVal)
	if !ok {
		return Item{}, false
	}

	// The display name is the last segment of the asset path.
	nameVal, ok := docValue(inner, assetNameKey)
	if !ok {
		return Item{}, false
	}
	asset, ok := nameVal.(string)
	if !ok {
		return Item{}, false
	}
	name, ok := helpers.LastPathSegment(asset)
	if !ok {
		return Item{}, false
	}

	cntVal, ok := docValue(inner, quantityKey)
	if !ok {
		return Item{}, false
	}
	cnt, ok := toUint64(cntVal)
	if !ok {
		return Item{}, false
	}

	// Bag membership is signaled by the field being present at all.
	_, bag := docValue(inner, bagKey)

	return Item{
		ID:         id,
		Name:       name,
		Count:      cnt,
		Durability: durabilityFromEntry(inner),
		Bag:        bag,
	}, true
}

// durabilityFromEntry returns nil unless both durability fields are
// present and numeric.
func durabilityFromEntry(inner bson.D) *Durability {
	minorVal, ok := docValue(inner, durabilityKey)
	if !ok {
		return nil
	}
	minor, ok := toFloat64(minorVal)
	if !ok {
		return nil
	}

	majorVal, ok := docValue(inner, maxDurabilityKey)
	if !ok {
		return nil
	}
	major, ok := toFloat64(majorVal)
	if !ok {
		return nil
	}

	return &Durability{Minor: minor, Major: major}
}
