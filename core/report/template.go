package report

// defaultTemplate backs the renderer when assets/templates/report/monthly.html
// is not deployed alongside the binary.
const defaultTemplate = `<!DOCTYPE html>
<html lang="ko">
<head>
<meta charset="utf-8">
<title>{{STUDENT_NAME}} {{MONTH}} Monthly Report</title>
<style>
  body { font-family: 'Apple SD Gothic Neo', 'Malgun Gothic', sans-serif; margin: 2rem; color: #222; }
  h1 { font-size: 1.4rem; }
  table { border-collapse: collapse; margin: 1rem 0; }
  td, th { border: 1px solid #ccc; padding: .4rem .8rem; text-align: left; }
  .ok { color: #1a7f37; }
  .warn { color: #c4320a; font-weight: bold; }
  ul.books { padding-left: 1.2rem; }
  li.empty { color: #888; list-style: none; }
  .summary { background: #f6f8fa; border-radius: 6px; padding: 1rem; white-space: pre-wrap; }
  footer { margin-top: 2rem; font-size: .8rem; color: #888; }
</style>
</head>
<body>
<h1>{{STUDENT_NAME}} &middot; {{MONTH}} Monthly Report</h1>
<table>
  <tr><th>Attendance</th><td>{{ATTENDANCE_DAYS}} days</td></tr>
  <tr><th>Completion rate</th><td class="{{COMPLETION_CLASS}}">{{COMPLETION_RATE}}%</td></tr>
  <tr><th>Vocabulary</th><td class="{{VOCAB_CLASS}}">{{VOCAB_AVG}}</td></tr>
  <tr><th>Grammar</th><td class="{{GRAMMAR_CLASS}}">{{GRAMMAR_AVG}}</td></tr>
  <tr><th>Reading pass rate</th><td>{{READING_PASS_RATE}}%</td></tr>
  <tr><th>Books read</th><td>{{TOTAL_BOOKS}}</td></tr>
</table>
<h2>Books</h2>
<ul class="books">{{BOOK_LIST}}</ul>
<h2>Teacher's note</h2>
<div class="summary">{{AI_SUMMARY}}</div>
<footer>Generated {{GENERATED_AT}}</footer>
</body>
</html>
`
