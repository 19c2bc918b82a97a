package core

import (
	"testing"
	"time"
)

func TestParseMonth(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Month
		wantErr bool
	}{
		{name: "valid", in: "2026-05", want: Month{Year: 2026, Mon: time.May}},
		{name: "single-digit month rejected", in: "2026-5", wantErr: true},
		{name: "full date rejected", in: "2026-05-01", wantErr: true},
		{name: "empty", in: "", wantErr: true},
		{name: "garbage", in: "lol", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMonth(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMonth() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseMonth() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMonth_IsZero(t *testing.T) {
	if !(Month{}).IsZero() {
		t.Error("zero Month should report IsZero")
	}
	m, err := ParseMonth("2026-05")
	if err != nil {
		t.Fatal(err)
	}
	if m.IsZero() {
		t.Error("2026-05 should not report IsZero")
	}
}

func TestMonth_Range(t *testing.T) {
	first, last := Month{Year: 2026, Mon: time.February}.Range()
	if want := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC); !first.Equal(want) {
		t.Errorf("first = %v, want %v", first, want)
	}
	if want := time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC); !last.Equal(want) {
		t.Errorf("last = %v, want %v", last, want)
	}

	// leap year
	_, last = Month{Year: 2024, Mon: time.February}.Range()
	if last.Day() != 29 {
		t.Errorf("leap year last day = %d, want 29", last.Day())
	}
}

func TestMonth_Prev(t *testing.T) {
	tests := []struct {
		in   Month
		want Month
	}{
		{Month{Year: 2026, Mon: time.May}, Month{Year: 2026, Mon: time.April}},
		{Month{Year: 2026, Mon: time.January}, Month{Year: 2025, Mon: time.December}},
	}
	for _, tt := range tests {
		if got := tt.in.Prev(); got != tt.want {
			t.Errorf("%v.Prev() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestMonth_JSON(t *testing.T) {
	m := Month{Year: 2026, Mon: time.May}

	data, err := m.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON(): %v", err)
	}
	if string(data) != `"2026-05"` {
		t.Errorf("MarshalJSON() = %s", data)
	}

	var parsed Month
	if err := parsed.UnmarshalJSON(data); err != nil {
		t.Fatalf("UnmarshalJSON(): %v", err)
	}
	if parsed != m {
		t.Errorf("UnmarshalJSON() = %v, want %v", parsed, m)
	}

	if err := parsed.UnmarshalJSON([]byte(`"lol"`)); err == nil {
		t.Error("UnmarshalJSON() accepted garbage")
	}
}
