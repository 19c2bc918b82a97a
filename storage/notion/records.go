package notiondb

import (
	"strconv"
	"strings"
	"time"

	"github.com/jomei/notionapi"

	"github.com/jaykayhn/jindo/core"
	"github.com/jaykayhn/jindo/core/book"
	"github.com/jaykayhn/jindo/core/progress"
	"github.com/jaykayhn/jindo/core/report"
	"github.com/jaykayhn/jindo/core/student"
)

// Fixed property schema of the external databases. All field-name coupling
// lives in this file; nothing outside the parser touches a property by name.
const (
	// students database
	propName      = "Name" // title
	propStudentID = "StudentId"
	propPassword  = "Password"

	// progress database
	propRecord      = "Record" // title, "studentId YYYY-MM-DD"
	propDate        = "Date"
	propStudentName = "StudentName"
	propCompletion  = "CompletionRate" // formula, e.g. "87%"
	propVocab       = "VocabScore"
	propGrammar     = "GrammarScore"
	propReading     = "ReadingResult" // select: PASS | FAIL
	propBooksRel    = "Books"         // relation to the book databases
	propBookTitles  = "BookTitles"    // rollup over the relation
	propComment     = "TeacherComment"

	// book databases
	propAuthor    = "Author"
	propAR        = "AR"
	propLexile    = "Lexile"
	propLevel     = "Level" // select
	propPublisher = "Publisher"

	// reports database
	propMonth       = "Month"
	propAttendance  = "AttendanceDays"
	propCompAvg     = "CompletionRateAvg"
	propVocabAvg    = "VocabScoreAvg"
	propGrammarAvg  = "GrammarScoreAvg"
	propPassRate    = "ReadingPassRate"
	propTotalBooks  = "TotalBooks"
	propBookList    = "BookTitles"
	propSummary     = "AISummary"
	propGeneratedAt = "GeneratedAt"
)

// noBookPlaceholder is the rollup item the store produces for a day without
// reading; it is data to the API but noise to us.
const noBookPlaceholder = "no book read"

// Record parsing. Every helper tolerates a missing or differently-typed
// property and returns the zero value for it: a malformed record yields a
// best-effort partial entry, never an error for the whole batch.

func prop(page notionapi.Page, name string) notionapi.Property {
	if page.Properties == nil {
		return nil
	}
	return page.Properties[name]
}

func spanText(rt notionapi.RichText) string {
	if rt.PlainText != "" {
		return rt.PlainText
	}
	if rt.Text != nil {
		return rt.Text.Content
	}
	return ""
}

func joinSpans(rts []notionapi.RichText) string {
	var b strings.Builder
	for _, rt := range rts {
		b.WriteString(spanText(rt))
	}
	return b.String()
}

func firstSpan(rts []notionapi.RichText) string {
	if len(rts) == 0 {
		return ""
	}
	return spanText(rts[0])
}

// plainText extracts the textual value of a title, rich-text, formula or
// select property.
func plainText(p notionapi.Property) string {
	switch v := p.(type) {
	case *notionapi.TitleProperty:
		return joinSpans(v.Title)
	case *notionapi.RichTextProperty:
		return joinSpans(v.RichText)
	case *notionapi.FormulaProperty:
		if v.Formula.Type == notionapi.FormulaTypeString {
			return v.Formula.String
		}
	case *notionapi.SelectProperty:
		return v.Select.Name
	}
	return ""
}

func numberValue(p notionapi.Property) (float64, bool) {
	switch v := p.(type) {
	case *notionapi.NumberProperty:
		return v.Number, true
	case *notionapi.FormulaProperty:
		if v.Formula.Type == notionapi.FormulaTypeNumber {
			return v.Formula.Number, true
		}
	}
	return 0, false
}

func dateValue(p notionapi.Property) time.Time {
	if v, ok := p.(*notionapi.DateProperty); ok && v.Date != nil && v.Date.Start != nil {
		return time.Time(*v.Date.Start)
	}
	return time.Time{}
}

// percentScore parses the "87%"-formatted completion formula. An absent or
// unparseable value defaults to 0 (recorded product decision; see DESIGN.md).
func percentScore(p notionapi.Property) progress.Score {
	if n, ok := numberValue(p); ok {
		return progress.Scored(n)
	}
	s := core.CleanString(strings.TrimSuffix(core.CleanString(plainText(p)), "%"))
	if s == "" {
		return progress.Scored(0)
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return progress.Scored(0)
	}
	return progress.Scored(n)
}

// scoreValue parses a test-score property, keeping the "not applicable"
// sentinel distinct from both zero and absence.
func scoreValue(p notionapi.Property) progress.Score {
	if n, ok := numberValue(p); ok {
		return progress.Scored(n)
	}
	s := core.CleanString(plainText(p))
	if s == "" {
		return progress.NoScore()
	}
	if strings.EqualFold(s, progress.NASentinel) {
		return progress.NotApplicable()
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return progress.NoScore()
	}
	return progress.Scored(n)
}

// rollupTitles extracts book titles from the rollup's heterogeneous item list:
// title-type items are direct titles, rich-text items referenced text. Only
// the first plain-text span of each counts; empties and the "no book read"
// placeholder are dropped, order is preserved.
func rollupTitles(p notionapi.Property) []string {
	rp, ok := p.(*notionapi.RollupProperty)
	if !ok || rp.Rollup.Type != notionapi.RollupTypeArray {
		return nil
	}
	var titles []string
	for _, item := range rp.Rollup.Array {
		var title string
		switch v := item.(type) {
		case *notionapi.TitleProperty:
			title = firstSpan(v.Title)
		case *notionapi.RichTextProperty:
			title = firstSpan(v.RichText)
		}
		title = core.CleanString(title)
		if title == "" || strings.EqualFold(title, noBookPlaceholder) {
			continue
		}
		titles = append(titles, title)
	}
	return titles
}

func pageToStudent(page notionapi.Page) student.Student {
	return student.Student{
		ID:        string(page.ID),
		StudentID: core.CleanString(plainText(prop(page, propStudentID))),
		Name:      core.CleanString(plainText(prop(page, propName))),
	}
}

func pageToEntry(page notionapi.Page) progress.Entry {
	return progress.Entry{
		ID:          string(page.ID),
		StudentID:   core.CleanString(plainText(prop(page, propStudentID))),
		StudentName: core.CleanString(plainText(prop(page, propStudentName))),
		Date:        dateValue(prop(page, propDate)),
		Completion:  percentScore(prop(page, propCompletion)),
		Vocab:       scoreValue(prop(page, propVocab)),
		Grammar:     scoreValue(prop(page, propGrammar)),
		Reading:     progress.ParseReadingResult(core.CleanString(plainText(prop(page, propReading)))),
		Books:       rollupTitles(prop(page, propBookTitles)),
		Comment:     core.CleanString(plainText(prop(page, propComment))),
	}
}

func pageToBook(page notionapi.Page) book.Book {
	ar, _ := numberValue(prop(page, propAR))
	lexile := plainText(prop(page, propLexile))
	if lexile == "" {
		if n, ok := numberValue(prop(page, propLexile)); ok {
			lexile = strconv.FormatFloat(n, 'f', -1, 64)
		}
	}
	return book.Book{
		ID:     string(page.ID),
		Title:  core.CleanString(plainText(prop(page, propName))),
		Author: core.CleanString(plainText(prop(page, propAuthor))),
		AR:     ar,
		Lexile: core.CleanString(lexile),
		Level:  core.CleanString(plainText(prop(page, propLevel))),
	}
}

func pageToSayuBook(page notionapi.Page) book.SayuBook {
	return book.SayuBook{
		ID:        string(page.ID),
		Title:     core.CleanString(plainText(prop(page, propName))),
		Author:    core.CleanString(plainText(prop(page, propAuthor))),
		Publisher: core.CleanString(plainText(prop(page, propPublisher))),
	}
}

func pageToReport(page notionapi.Page) report.MonthlyReport {
	rep := report.MonthlyReport{
		ID:          string(page.ID),
		StudentID:   core.CleanString(plainText(prop(page, propStudentID))),
		StudentName: core.CleanString(plainText(prop(page, propStudentName))),
		AISummary:   core.CleanString(plainText(prop(page, propSummary))),
		URL:         page.URL,
		GeneratedAt: dateValue(prop(page, propGeneratedAt)),
	}
	if m, err := core.ParseMonth(core.CleanString(plainText(prop(page, propMonth)))); err == nil {
		rep.Month = m
	}
	rep.AttendanceDays = intValue(prop(page, propAttendance))
	rep.CompletionRateAvg = intValue(prop(page, propCompAvg))
	rep.VocabScoreAvg = intValue(prop(page, propVocabAvg))
	rep.GrammarScoreAvg = intValue(prop(page, propGrammarAvg))
	rep.ReadingPassRate = intValue(prop(page, propPassRate))
	rep.TotalBooks = intValue(prop(page, propTotalBooks))
	if list := core.CleanString(plainText(prop(page, propBookList))); list != "" {
		for _, title := range strings.Split(list, ", ") {
			if title = core.CleanString(title); title != "" {
				rep.BookTitles = append(rep.BookTitles, title)
			}
		}
	}
	return rep
}

func intValue(p notionapi.Property) int {
	n, _ := numberValue(p)
	return int(n)
}

// Write-side property builders.

func titleProp(s string) *notionapi.TitleProperty {
	return &notionapi.TitleProperty{
		Title: []notionapi.RichText{{Text: &notionapi.Text{Content: s}}},
	}
}

func richTextProp(s string) *notionapi.RichTextProperty {
	return &notionapi.RichTextProperty{
		RichText: []notionapi.RichText{{Text: &notionapi.Text{Content: s}}},
	}
}

func selectProp(s string) *notionapi.SelectProperty {
	return &notionapi.SelectProperty{Select: notionapi.Option{Name: s}}
}

func numberProp(n float64) *notionapi.NumberProperty {
	return &notionapi.NumberProperty{Number: n}
}

func dateProp(t time.Time) *notionapi.DateProperty {
	d := notionapi.Date(t)
	return &notionapi.DateProperty{Date: &notionapi.DateObject{Start: &d}}
}

func relationProp(ids []string) *notionapi.RelationProperty {
	rel := make([]notionapi.Relation, 0, len(ids))
	for _, id := range ids {
		rel = append(rel, notionapi.Relation{ID: notionapi.PageID(id)})
	}
	return &notionapi.RelationProperty{Relation: rel}
}
