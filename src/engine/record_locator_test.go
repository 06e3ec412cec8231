package engine

import (
	"strings"
	"testing"
)

const locatorText = `<save>` +
	`<collection name="User">` +
	`<record Id="000000000000000000000001">{"dc":"abc"}</record>` +
	`</collection>` +
	`<collection name="UserGold">` +
	`<record Id="000000000000000000000001">{"g":1000}</record>` +
	`<record Id="000000000000000000000002">{"g":5}</record>` +
	`</collection>` +
	`</save>`

func TestFindRecordPayload(t *testing.T) {
	start, end, ok := FindRecordPayload(locatorText, "UserGold", "000000000000000000000001")
	if !ok {
		t.Fatalf("expected to find the record")
	}
	if locatorText[start:end] != `{"g":1000}` {
		t.Errorf("payload = %q", locatorText[start:end])
	}
}

func TestFindRecordPayloadSearchesWithinCollectionTail(t *testing.T) {
	// Record id 000...001 appears in the User collection first; locating
	// it under UserGold must skip past that earlier occurrence.
	payload, ok := RecordPayload(locatorText, "UserGold", "000000000000000000000001")
	if !ok {
		t.Fatalf("expected to find the record")
	}
	if payload != `{"g":1000}` {
		t.Errorf("payload = %q", payload)
	}

	payload, ok = RecordPayload(locatorText, "UserGold", "000000000000000000000002")
	if !ok {
		t.Fatalf("expected to find the record")
	}
	if payload != `{"g":5}` {
		t.Errorf("payload = %q", payload)
	}
}

func TestFindRecordPayloadMissingCollection(t *testing.T) {
	if _, _, ok := FindRecordPayload(locatorText, "ItemStore", "000000000000000000000001"); ok {
		t.Errorf("expected no match for a missing collection")
	}
}

func TestFindRecordPayloadMissingRecord(t *testing.T) {
	if _, _, ok := FindRecordPayload(locatorText, "UserGold", "000000000000000000000009"); ok {
		t.Errorf("expected no match for a missing record")
	}
}

func TestFindRecordPayloadMissingTerminator(t *testing.T) {
	text := `<collection name="UserGold"><record Id="1">{"g":5}`
	if _, _, ok := FindRecordPayload(text, "UserGold", "1"); ok {
		t.Errorf("expected no match without a record terminator")
	}
}

func TestFindRecordPayloadCaseSensitive(t *testing.T) {
	if _, _, ok := FindRecordPayload(locatorText, "usergold", "000000000000000000000001"); ok {
		t.Errorf("expected collection lookup to be case sensitive")
	}
}

func TestReplaceRecordPayload(t *testing.T) {
	result, ok := ReplaceRecordPayload(locatorText, "UserGold", "000000000000000000000001", `{"g":2500}`)
	if !ok {
		t.Fatalf("expected to replace the record")
	}

	want := strings.Replace(locatorText, `{"g":1000}`, `{"g":2500}`, 1)
	if result != want {
		t.Errorf("result = %q, want %q", result, want)
	}
}

func TestReplaceRecordPayloadMissingRecord(t *testing.T) {
	if _, ok := ReplaceRecordPayload(locatorText, "ItemStore", "1", "{}"); ok {
		t.Errorf("expected no replacement for a missing record")
	}
}
