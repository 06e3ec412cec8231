package engine

import (
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
)

func docValue(doc bson.D, key string) (interface{}, bool) {
	for i := range doc {
		if doc[i].Key == key {
			return doc[i].Value, true
		}
	}
	return nil, false
}

// docSet replaces the value for key, or appends the field if absent.
func docSet(doc bson.D, key string, val interface{}) bson.D {
	for i := range doc {
		if doc[i].Key == key {
			doc[i].Value = val
			return doc
		}
	}
	return append(doc, bson.E{Key: key, Value: val})
}

func docRemove(doc bson.D, key string) bson.D {
	for i := range doc {
		if doc[i].Key == key {
			return append(doc[:i], doc[i+1:]...)
		}
	}
	return doc
}

// asDocument reports whether a decoded JSON value is an object.
func asDocument(val interface{}) (bson.D, bool) {
	doc, ok := val.(bson.D)
	return doc, ok
}

// toInt64 coerces a decoded JSON value to an int64. Digit strings are
// accepted because some save fields store numbers as strings.
func toInt64(val interface{}) (int64, bool) {
	switch v := val.(type) {
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case float64:
		return int64(v), true
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

func toFloat64(val interface{}) (float64, bool) {
	switch v := val.(type) {
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case float64:
		return v, true
	}
	return 0, false
}

func toUint64(val interface{}) (uint64, bool) {
	switch v := val.(type) {
	case int32:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	case int64:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	}
	return 0, false
}
