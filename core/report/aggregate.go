package report

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/jaykayhn/jindo/core"
	"github.com/jaykayhn/jindo/core/progress"
)

// Comments shorter than this are treated as boilerplate and left out of the
// summary prompt.
const minCommentLen = 15

// Stats is the aggregate of one student's progress entries for one month.
type Stats struct {
	AttendanceDays    int
	CompletionRateAvg int
	VocabScoreAvg     int
	GrammarScoreAvg   int
	ReadingPassRate   int
	BookTitles        []string
	TotalBooks        int

	// CommentLog is the prompt context for the AI summary, not a stored metric:
	// one "[date] comment" line per entry with a substantive comment.
	CommentLog string
}

// Aggregate reduces a month of entries to summary metrics. Callers short-circuit
// the empty month before getting here; an empty slice still yields all zeros.
func Aggregate(entries []progress.Entry) Stats {
	st := Stats{
		AttendanceDays:    len(entries),
		CompletionRateAvg: meanScore(entries, func(e progress.Entry) progress.Score { return e.Completion }),
		VocabScoreAvg:     meanScore(entries, func(e progress.Entry) progress.Score { return e.Vocab }),
		GrammarScoreAvg:   meanScore(entries, func(e progress.Entry) progress.Score { return e.Grammar }),
		ReadingPassRate:   passRate(entries),
		BookTitles:        uniqueBooks(entries),
		CommentLog:        commentLog(entries),
	}
	st.TotalBooks = len(st.BookTitles)
	return st
}

// meanScore averages the valued scores only; "not applicable" and missing
// scores are excluded, and an all-excluded month averages to 0.
func meanScore(entries []progress.Entry, score func(progress.Entry) progress.Score) int {
	var sum float64
	var n int
	for _, e := range entries {
		if s := score(e); s.Valid() {
			sum += s.Number()
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return int(math.Round(sum / float64(n)))
}

// passRate is PASS / (PASS + FAIL) as a rounded percentage; entries without a
// reading result stay out of the denominator, and no results at all means 0.
func passRate(entries []progress.Entry) int {
	var passed, taken int
	for _, e := range entries {
		switch e.Reading {
		case progress.ReadingPass:
			passed++
			taken++
		case progress.ReadingFail:
			taken++
		}
	}
	if taken == 0 {
		return 0
	}
	return int(math.Round(float64(passed) / float64(taken) * 100))
}

// uniqueBooks flattens every entry's book list and deduplicates it preserving
// first-occurrence order. Counting happens per book, not per day: a day with
// three books contributes three.
func uniqueBooks(entries []progress.Entry) []string {
	var titles []string
	seen := make(map[string]struct{})
	for _, e := range entries {
		for _, title := range e.Books {
			title = core.CleanString(title)
			if title == "" {
				continue
			}
			if _, ok := seen[title]; ok {
				continue
			}
			seen[title] = struct{}{}
			titles = append(titles, title)
		}
	}
	return titles
}

func commentLog(entries []progress.Entry) string {
	var b strings.Builder
	for _, e := range entries {
		comment := core.CleanString(e.Comment)
		if utf8.RuneCountInString(comment) <= minCommentLen {
			continue
		}
		_, _ = fmt.Fprintf(&b, "[%s] %s\n", e.Date.Format("2006-01-02"), comment)
	}
	return strings.TrimRight(b.String(), "\n")
}
