package engine

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// DecodeRecord parses a record payload as an arbitrary JSON value. BSON
// requires a document at the top level, so the payload is wrapped before
// decoding and unwrapped afterwards.
func DecodeRecord(payload string) (interface{}, error) {
	doc, err := DecodeRecordObject(`{"v":` + payload + `}`)
	if err != nil {
		return nil, err
	}
	return doc[0].Value, nil
}

// DecodeRecordObject parses a record payload and requires the top level
// value to be a JSON object. Object keys keep their on-disk order
// because documents decode into bson.D.
func DecodeRecordObject(payload string) (bson.D, error) {
	var doc bson.D
	if err := bson.UnmarshalExtJSON([]byte(payload), false, &doc); err != nil {
		return nil, fmt.Errorf("error decoding record payload: %w", err)
	}
	return doc, nil
}

// EncodeRecord serializes a record document to compact JSON for splicing
// back into the save text. There is no pretty printing; field order
// follows the in-memory document.
func EncodeRecord(doc bson.D) (string, error) {
	data, err := bson.MarshalExtJSON(doc, false, false)
	if err != nil {
		return "", fmt.Errorf("error encoding record payload: %w", err)
	}
	return string(data), nil
}
