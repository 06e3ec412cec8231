package helpers

import "testing"

func TestLastPathSegment(t *testing.T) {
	name, ok := LastPathSegment("Items/Weapons/LongSword")
	if !ok {
		t.Fatalf("expected a segment")
	}
	if name != "LongSword" {
		t.Errorf("name = %q, want %q", name, "LongSword")
	}
}

func TestLastPathSegmentTrailingSlash(t *testing.T) {
	name, ok := LastPathSegment("Items/Weapons/")
	if !ok {
		t.Fatalf("expected a segment")
	}
	if name != "" {
		t.Errorf("name = %q, want empty", name)
	}
}

func TestLastPathSegmentNoSlash(t *testing.T) {
	if _, ok := LastPathSegment("LongSword"); ok {
		t.Errorf("expected no segment without a '/'")
	}
}

func TestStripQuotes(t *testing.T) {
	if s := StripQuotes(`"Blade Combat"`); s != "Blade Combat" {
		t.Errorf("got %q", s)
	}
	if s := StripQuotes("'Blade Combat'"); s != "Blade Combat" {
		t.Errorf("got %q", s)
	}
	if s := StripQuotes("  Blade Combat  "); s != "Blade Combat" {
		t.Errorf("got %q", s)
	}
	if s := StripQuotes(`"`); s != `"` {
		t.Errorf("got %q", s)
	}
}

func TestTimestampToString(t *testing.T) {
	if s := TimestampToString(0); s != "1970-01-01 00:00:00" {
		t.Errorf("got %q", s)
	}
	if s := TimestampToString(1136239445); s != "2006-01-02 22:04:05" {
		t.Errorf("got %q", s)
	}
}
