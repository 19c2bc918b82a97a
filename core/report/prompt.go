package report

import (
	"fmt"
	"strings"

	"github.com/jaykayhn/jindo/core"
)

// buildPrompt interpolates the month's metrics and comment log into the fixed
// summary prompt. The persona and tone instructions live here so every
// generation asks the text service for the same kind of answer.
func buildPrompt(studentName string, month core.Month, st Stats) string {
	var b strings.Builder
	b.WriteString("You are an English academy teacher writing the monthly report comment ")
	b.WriteString("for a student's parents. Write in a friendly, encouraging tone and ")
	b.WriteString("include concrete improvement points. Keep it under 200 words.\n\n")

	fmt.Fprintf(&b, "Student: %s\nMonth: %s\n", studentName, month)
	fmt.Fprintf(&b, "Attendance: %d days\n", st.AttendanceDays)
	fmt.Fprintf(&b, "Average completion rate: %d%%\n", st.CompletionRateAvg)
	fmt.Fprintf(&b, "Average vocabulary score: %d\n", st.VocabScoreAvg)
	fmt.Fprintf(&b, "Average grammar score: %d\n", st.GrammarScoreAvg)
	fmt.Fprintf(&b, "Reading test pass rate: %d%%\n", st.ReadingPassRate)

	if len(st.BookTitles) > 0 {
		fmt.Fprintf(&b, "Books read (%d): %s\n", st.TotalBooks, strings.Join(st.BookTitles, ", "))
	} else {
		b.WriteString("Books read: none this month\n")
	}

	if st.CommentLog != "" {
		b.WriteString("\nDaily teacher comments:\n")
		b.WriteString(st.CommentLog)
		b.WriteString("\n")
	}
	return b.String()
}
