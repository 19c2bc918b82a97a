package report

import (
	"html"
	"strconv"
	"strings"
)

// Placeholder tokens recognized by the renderer. Anything else in the template
// passes through untouched.
const (
	tokStudentName    = "{{STUDENT_NAME}}"
	tokMonth          = "{{MONTH}}"
	tokAttendanceDays = "{{ATTENDANCE_DAYS}}"
	tokCompletionRate = "{{COMPLETION_RATE}}"
	tokCompletionCls  = "{{COMPLETION_CLASS}}"
	tokVocabAvg       = "{{VOCAB_AVG}}"
	tokVocabCls       = "{{VOCAB_CLASS}}"
	tokGrammarAvg     = "{{GRAMMAR_AVG}}"
	tokGrammarCls     = "{{GRAMMAR_CLASS}}"
	tokReadingRate    = "{{READING_PASS_RATE}}"
	tokTotalBooks     = "{{TOTAL_BOOKS}}"
	tokBookList       = "{{BOOK_LIST}}"
	tokAISummary      = "{{AI_SUMMARY}}"
	tokGeneratedAt    = "{{GENERATED_AT}}"
)

// Styling cutoffs: the completion rate gets the warning style below 70,
// subject scores below 60.
const (
	completionWarnBelow = 70
	scoreWarnBelow      = 60
)

const emptyBookRow = `<li class="book empty">no books read this period</li>`

// Renderer substitutes report values into an HTML template. Substitution is a
// single pass over the template keyed by literal tokens: substituted values are
// never rescanned, so a value containing token-like text cannot trigger a
// second replacement, and re-rendering rendered output is a no-op.
type Renderer struct {
	tmpl string
}

// NewRenderer returns a Renderer over the given template; an empty template
// selects the built-in default.
func NewRenderer(tmpl string) *Renderer {
	if tmpl == "" {
		tmpl = defaultTemplate
	}
	return &Renderer{tmpl: tmpl}
}

// Render produces the final report document.
func (r *Renderer) Render(rep MonthlyReport) string {
	esc := html.EscapeString
	repl := strings.NewReplacer(
		tokStudentName, esc(rep.StudentName),
		tokMonth, rep.Month.String(),
		tokAttendanceDays, strconv.Itoa(rep.AttendanceDays),
		tokCompletionRate, strconv.Itoa(rep.CompletionRateAvg),
		tokCompletionCls, rateClass(rep.CompletionRateAvg, completionWarnBelow),
		tokVocabAvg, strconv.Itoa(rep.VocabScoreAvg),
		tokVocabCls, rateClass(rep.VocabScoreAvg, scoreWarnBelow),
		tokGrammarAvg, strconv.Itoa(rep.GrammarScoreAvg),
		tokGrammarCls, rateClass(rep.GrammarScoreAvg, scoreWarnBelow),
		tokReadingRate, strconv.Itoa(rep.ReadingPassRate),
		tokTotalBooks, strconv.Itoa(rep.TotalBooks),
		tokBookList, renderBookList(rep.BookTitles),
		tokAISummary, esc(rep.AISummary),
		tokGeneratedAt, rep.GeneratedAt.Format("2006-01-02 15:04"),
	)
	return repl.Replace(r.tmpl)
}

func rateClass(value, warnBelow int) string {
	if value < warnBelow {
		return "warn"
	}
	return "ok"
}

func renderBookList(titles []string) string {
	if len(titles) == 0 {
		return emptyBookRow
	}
	var b strings.Builder
	for _, title := range titles {
		b.WriteString(`<li class="book">`)
		b.WriteString(html.EscapeString(title))
		b.WriteString("</li>")
	}
	return b.String()
}
