package tests

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/jaykayhn/jindo/core/progress"
	"github.com/jaykayhn/jindo/core/student"
)

func seedReportStudent(t *testing.T) student.Student {
	t.Helper()
	stu := student.Student{ID: "pg-rep", StudentID: "rep01", Name: "Report Kid"}
	db.AddStudent(stu, "pw")
	db.AddEntry(progress.Entry{
		StudentID:  "rep01",
		Date:       time.Date(2026, time.May, 4, 0, 0, 0, 0, time.UTC),
		Completion: progress.Scored(80),
		Vocab:      progress.Scored(70),
		Reading:    progress.ReadingPass,
		Books:      []string{"Danny the Champion"},
	})
	db.AddEntry(progress.Entry{
		StudentID:  "rep01",
		Date:       time.Date(2026, time.May, 5, 0, 0, 0, 0, time.UTC),
		Completion: progress.Scored(100),
		Vocab:      progress.NotApplicable(),
		Reading:    progress.ReadingFail,
		Books:      []string{"Danny the Champion", "Matilda"},
	})
	return stu
}

func Test_monthlyReport(t *testing.T) {
	seedReportStudent(t)

	tests := []httpTest{
		{
			name: "missing studentId", path: "/monthly-report?month=2026-05",
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"studentId": "this field is required"}),
		},
		{
			name: "bad month", path: "/monthly-report?studentId=rep01&month=lol",
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"month": "must be a month in YYYY-MM format"}),
		},
		{
			name: "missing month", path: "/monthly-report?studentId=rep01",
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"month": "this field is required"}),
		},
		{
			name: "unknown student", path: "/monthly-report?studentId=ghost&month=2026-05",
			wantCode: http.StatusNotFound,
			wantData: marchallObj(t, map[string]string{"error": "not found"}),
		},
		{
			name: "month without entries", path: "/monthly-report?studentId=rep01&month=2026-03",
			wantCode: http.StatusNotFound,
			wantData: marchallObj(t, map[string]string{"error": "not found"}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodGet, tt.path)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}

	t.Run("ok", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/monthly-report?studentId=rep01&month=2026-05")
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("code = %d, want 200; body %s", rec.Code, rec.Body.String())
		}
		html := rec.Body.String()
		for _, want := range []string{"Report Kid", "2026-05", "2 days", "Danny the Champion", "Matilda"} {
			if !strings.Contains(html, want) {
				t.Errorf("report HTML missing %q", want)
			}
		}
	})
}

func Test_generateReportAndURL(t *testing.T) {
	stu := student.Student{ID: "pg-gen", StudentID: "gen01", Name: "Gen Kid"}
	db.AddStudent(stu, "pw")
	db.AddEntry(progress.Entry{
		StudentID:  "gen01",
		Date:       time.Date(2026, time.May, 11, 0, 0, 0, 0, time.UTC),
		Completion: progress.Scored(95),
		Reading:    progress.ReadingPass,
	})

	// no report yet for the month before 2026-06-15
	t.Run("url before generation", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/api/monthly-report-url?studentName=Gen+Kid&date=2026-06-15")
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{
			wantCode: http.StatusNotFound,
			wantData: marchallObj(t, map[string]interface{}{"success": false, "message": "no report for this month"}),
		}, rec)
	})

	wantURL := "https://notion.example.com/reports/gen01-2026-05"

	t.Run("generate", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/api/manual-monthly-report-gen?studentName=Gen+Kid&month=2026-05")
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{
			wantCode: http.StatusOK,
			wantData: marchallObj(t, map[string]interface{}{"success": true, "url": wantURL}),
		}, rec)
	})

	t.Run("generate is idempotent on the url", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/api/manual-monthly-report-gen?studentName=Gen+Kid&month=2026-05")
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{
			wantCode: http.StatusOK,
			wantData: marchallObj(t, map[string]interface{}{"success": true, "url": wantURL}),
		}, rec)
	})

	t.Run("url after generation", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/api/monthly-report-url?studentName=Gen+Kid&date=2026-06-15")
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{
			wantCode: http.StatusOK,
			wantData: marchallObj(t, map[string]interface{}{"success": true, "url": wantURL}),
		}, rec)
	})

	t.Run("generate for unknown student", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/api/manual-monthly-report-gen?studentName=Ghost&month=2026-05")
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{
			wantCode: http.StatusNotFound,
			wantData: marchallObj(t, map[string]string{"error": "not found"}),
		}, rec)
	})

	t.Run("generate without entries", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/api/manual-monthly-report-gen?studentName=Gen+Kid&month=2026-01")
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{
			wantCode: http.StatusNotFound,
			wantData: marchallObj(t, map[string]string{"error": "not found"}),
		}, rec)
	})

	t.Run("generate with bad month", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/api/manual-monthly-report-gen?studentName=Gen+Kid&month=May")
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"month": "must be a month in YYYY-MM format"}),
		}, rec)
	})

	t.Run("bad date", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/api/monthly-report-url?studentName=Gen+Kid&date=2026-06")
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"error": "date must be in YYYY-MM-DD format"}),
		}, rec)
	})
}

func Test_studentProgress(t *testing.T) {
	db.AddStudent(student.Student{ID: "pg-prog", StudentID: "prog01", Name: "Prog Kid"}, "pw")
	db.AddEntry(progress.Entry{
		StudentID:  "prog01",
		Date:       time.Date(2026, time.May, 20, 0, 0, 0, 0, time.UTC),
		Completion: progress.Scored(75),
		Vocab:      progress.Scored(60),
	})

	t.Run("no token", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/api/student-progress/prog01")
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{
			wantCode: http.StatusUnauthorized,
			wantData: marchallObj(t, map[string]string{"error": "teacher token required"}),
		}, rec)
	})

	t.Run("wrong token", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/api/student-progress/prog01", "not-the-token")
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{
			wantCode: http.StatusForbidden,
			wantData: marchallObj(t, map[string]string{"error": "permission denied"}),
		}, rec)
	})

	t.Run("ok", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/api/student-progress/prog01", teacherToken)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("code = %d, want 200; body %s", rec.Code, rec.Body.String())
		}
		var entries []progress.Entry
		if err := json.Unmarshal(rec.Body.Bytes(), &entries); err != nil {
			t.Fatalf("decoding entries: %v", err)
		}
		if len(entries) != 1 || entries[0].StudentID != "prog01" {
			t.Errorf("entries = %+v", entries)
		}
	})

	t.Run("unknown student is empty list", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/api/student-progress/ghost", teacherToken)
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{wantCode: http.StatusOK, wantData: []byte(`[]`)}, rec)
	})
}
