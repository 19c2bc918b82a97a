package progress

import (
	"encoding/json"
	"testing"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name     string
		score    Score
		valid    bool
		number   float64
		wantJSON string
	}{
		{name: "valued", score: Scored(87), valid: true, number: 87, wantJSON: "87"},
		{name: "zero is a value", score: Scored(0), valid: true, wantJSON: "0"},
		{name: "not applicable", score: NotApplicable(), wantJSON: `"not applicable"`},
		{name: "missing", score: NoScore(), wantJSON: "null"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.score.Valid(); got != tt.valid {
				t.Errorf("Valid() = %v, want %v", got, tt.valid)
			}
			if got := tt.score.Number(); got != tt.number {
				t.Errorf("Number() = %v, want %v", got, tt.number)
			}
			data, err := json.Marshal(tt.score)
			if err != nil {
				t.Fatalf("Marshal(): %v", err)
			}
			if string(data) != tt.wantJSON {
				t.Errorf("Marshal() = %s, want %s", data, tt.wantJSON)
			}
			var parsed Score
			if err := json.Unmarshal(data, &parsed); err != nil {
				t.Fatalf("Unmarshal(): %v", err)
			}
			if parsed != tt.score {
				t.Errorf("Unmarshal() = %v, want %v", parsed, tt.score)
			}
		})
	}
}

func TestParseReadingResult(t *testing.T) {
	tests := []struct {
		in   string
		want ReadingResult
	}{
		{"PASS", ReadingPass},
		{"pass", ReadingPass},
		{"Fail", ReadingFail},
		{"FAIL", ReadingFail},
		{"", ReadingUnset},
		{"maybe", ReadingUnset},
	}
	for _, tt := range tests {
		if got := ParseReadingResult(tt.in); got != tt.want {
			t.Errorf("ParseReadingResult(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNewEntry_BookRefs(t *testing.T) {
	ne := NewEntry{
		EnglishBooks: []BookRef{{ID: "e1", Title: "Frog and Toad"}},
		KoreanBooks:  []BookRef{{ID: "k1", Title: "Korean Reader"}},
	}
	refs := ne.BookRefs()
	if len(refs) != 2 || refs[0].ID != "e1" || refs[1].ID != "k1" {
		t.Errorf("BookRefs() = %+v", refs)
	}
}
