package engine

import "strings"

// The save container is a proprietary tagged-text format that embeds one
// JSON payload per record. The tags are matched as literal substrings; a
// record's payload can never contain the record terminator because valid
// JSON text cannot hold that token.

func collectionTag(collection string) string {
	return `<collection name="` + collection + `">`
}

func recordTag(id string) string {
	return `<record Id="` + id + `">`
}

const recordEnd = "</record>"

// FindRecordPayload returns the byte range of the JSON payload for the
// record with the given id inside the named collection. All lookups are
// first match and case sensitive. ok is false if any marker is missing.
func FindRecordPayload(text, collection, id string) (start, end int, ok bool) {
	// Find the collection tag.
	find := collectionTag(collection)
	pos := strings.Index(text, find)
	if pos < 0 {
		return 0, 0, false
	}
	start = pos + len(find)

	// From that point, find the record tag.
	find = recordTag(id)
	pos = strings.Index(text[start:], find)
	if pos < 0 {
		return 0, 0, false
	}
	start += pos + len(find)

	// Find the record end tag.
	pos = strings.Index(text[start:], recordEnd)
	if pos < 0 {
		return 0, 0, false
	}

	return start, start + pos, true
}

// RecordPayload returns the JSON payload text for a record.
func RecordPayload(text, collection, id string) (string, bool) {
	start, end, ok := FindRecordPayload(text, collection, id)
	if !ok {
		return "", false
	}
	return text[start:end], true
}

// ReplaceRecordPayload splices payload into the record's byte range,
// leaving every byte outside the range untouched.
func ReplaceRecordPayload(text, collection, id, payload string) (string, bool) {
	start, end, ok := FindRecordPayload(text, collection, id)
	if !ok {
		return "", false
	}

	var sb strings.Builder
	sb.Grow(start + len(payload) + len(text) - end)
	sb.WriteString(text[:start])
	sb.WriteString(payload)
	sb.WriteString(text[end:])
	return sb.String(), true
}
