package progress

import (
	"strconv"
	"time"
)

// NASentinel is the literal marker the external store uses for a score that
// does not apply to an entry. It is distinct from zero and must never be
// treated as one.
const NASentinel = "not applicable"

type scoreKind int8

const (
	scoreMissing scoreKind = iota
	scoreNA
	scoreValued
)

// Score is a tagged numeric variant: a value, the "not applicable" sentinel,
// or nothing at all. Keeping the sentinel out of the numeric domain makes it
// impossible for aggregation code to average it in as a zero.
type Score struct {
	kind   scoreKind
	number float64
}

func Scored(n float64) Score { return Score{kind: scoreValued, number: n} }
func NotApplicable() Score   { return Score{kind: scoreNA} }
func NoScore() Score         { return Score{} }

// Valid reports whether the score carries a number that counts toward averages.
func (s Score) Valid() bool { return s.kind == scoreValued }

func (s Score) IsNotApplicable() bool { return s.kind == scoreNA }

// Number returns the carried value; 0 for non-valued scores.
func (s Score) Number() float64 {
	if s.kind != scoreValued {
		return 0
	}
	return s.number
}

func (s Score) String() string {
	switch s.kind {
	case scoreValued:
		return strconv.FormatFloat(s.number, 'f', -1, 64)
	case scoreNA:
		return NASentinel
	default:
		return ""
	}
}

func (s Score) MarshalJSON() ([]byte, error) {
	switch s.kind {
	case scoreValued:
		return []byte(strconv.FormatFloat(s.number, 'f', -1, 64)), nil
	case scoreNA:
		return []byte(`"` + NASentinel + `"`), nil
	default:
		return []byte("null"), nil
	}
}

func (s *Score) UnmarshalJSON(data []byte) error {
	str := string(data)
	switch {
	case str == "null":
		*s = NoScore()
	case str == `"`+NASentinel+`"`:
		*s = NotApplicable()
	default:
		n, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return err
		}
		*s = Scored(n)
	}
	return nil
}

// ReadingResult is the outcome of an entry's reading test, when one was taken.
type ReadingResult string

const (
	ReadingUnset ReadingResult = ""
	ReadingPass  ReadingResult = "PASS"
	ReadingFail  ReadingResult = "FAIL"
)

func ParseReadingResult(s string) ReadingResult {
	switch ReadingResult(s) {
	case ReadingPass, ReadingFail:
		return ReadingResult(s)
	}
	switch s {
	case "pass", "Pass":
		return ReadingPass
	case "fail", "Fail":
		return ReadingFail
	}
	return ReadingUnset
}

// Entry is one student's daily study submission, normalized from the external
// store's record shape. Duplicate same-day entries are possible (writes are
// append-only) and flow through aggregation like any other entry.
type Entry struct {
	ID          string        `json:"id"`
	StudentID   string        `json:"studentId"`
	StudentName string        `json:"studentName,omitempty"`
	Date        time.Time     `json:"date"`
	Completion  Score         `json:"completionRate"`
	Vocab       Score         `json:"vocabScore"`
	Grammar     Score         `json:"grammarScore"`
	Reading     ReadingResult `json:"readingResult"`
	Books       []string      `json:"bookTitles"`
	Comment     string        `json:"teacherComment"`
}

// BookRef identifies a book picked in the progress form.
type BookRef struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	AR     string `json:"ar,omitempty"`
	Lexile string `json:"lexile,omitempty"`
}

// NewEntry is the write model for a save-progress submission: the session's
// student, a free-form field map and the selected books. The storage layer
// owns mapping the fields onto the external record schema.
type NewEntry struct {
	StudentID    string
	StudentName  string
	Date         time.Time
	Fields       map[string]string
	EnglishBooks []BookRef
	KoreanBooks  []BookRef
}

// BookRefs returns the english and korean selections as one ordered list.
func (ne NewEntry) BookRefs() []BookRef {
	refs := make([]BookRef, 0, len(ne.EnglishBooks)+len(ne.KoreanBooks))
	refs = append(refs, ne.EnglishBooks...)
	refs = append(refs, ne.KoreanBooks...)
	return refs
}

// Filter narrows progress queries; zero value matches everything.
type Filter struct {
	StudentID string
}
