package toolkit

import "testing"

func TestDefaultFormats_ContainsKnownSheets(t *testing.T) {
	formats := DefaultFormats()
	if len(formats) != 5 {
		t.Fatalf("DefaultFormats returned %d formats, want 5", len(formats))
	}

	keys := make(map[string]bool)
	for _, f := range formats {
		if f.Key == "" || f.Name == "" {
			t.Fatalf("format with empty key or name: %#v", f)
		}
		if keys[f.Key] {
			t.Fatalf("duplicate format key %q", f.Key)
		}
		keys[f.Key] = true
		if f.LabelsPerPage != f.Columns*f.Rows {
			t.Fatalf("format %q: labels per page %d, want %d", f.Key, f.LabelsPerPage, f.Columns*f.Rows)
		}
	}
	if !keys[DefaultFormatKey] {
		t.Fatalf("DefaultFormats missing the default key %q", DefaultFormatKey)
	}
}

func TestFormatIndex(t *testing.T) {
	formats := DefaultFormats()
	if got := FormatIndex(formats, "avery_5167"); formats[got].Key != "avery_5167" {
		t.Fatalf("FormatIndex(avery_5167) = %d, wrong format", got)
	}
	if got := FormatIndex(formats, "unknown"); got != 0 {
		t.Fatalf("FormatIndex(unknown) = %d, want 0", got)
	}
	if got := FormatIndex(nil, "anything"); got != 0 {
		t.Fatalf("FormatIndex on empty list = %d, want 0", got)
	}
}
