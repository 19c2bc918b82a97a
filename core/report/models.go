package report

import (
	"time"

	"github.com/jaykayhn/jindo/core"
)

// MonthlyReport is the derived monthly summary for one (student, month) key.
// Everything but AISummary is a pure function of the month's progress entries.
type MonthlyReport struct {
	ID          string     `json:"id,omitempty"` // external record id, set once stored
	StudentID   string     `json:"studentId"`
	StudentName string     `json:"studentName"`
	Month       core.Month `json:"month"`

	AttendanceDays    int      `json:"attendanceDays"`
	CompletionRateAvg int      `json:"completionRateAvg"`
	VocabScoreAvg     int      `json:"vocabScoreAvg"`
	GrammarScoreAvg   int      `json:"grammarScoreAvg"`
	ReadingPassRate   int      `json:"readingPassRate"`
	BookTitles        []string `json:"uniqueBookTitles"`
	TotalBooks        int      `json:"totalBooks"`

	AISummary   string    `json:"aiSummary"`
	URL         string    `json:"reportUrl"`
	GeneratedAt time.Time `json:"generatedAt"`
}
