package echoapi

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/jaykayhn/jindo/core"
	"github.com/jaykayhn/jindo/core/progress"
	"github.com/jaykayhn/jindo/core/report"
	"github.com/jaykayhn/jindo/core/student"
)

type reportApi struct {
	conf        *core.Config
	reportSvc   *report.Service
	progressSvc *progress.Service
	validate    *validator.Validate
}

func registerReportAPI(e *echo.Echo, deps ServerDeps) {
	api := reportApi{
		conf:        deps.Conf,
		reportSvc:   deps.ReportSvc,
		progressSvc: deps.ProgressSvc,
		validate:    deps.Validate,
	}

	e.GET("/monthly-report", api.monthlyReport)

	g := e.Group("/api")
	g.GET("/manual-monthly-report-gen", api.generateReport)
	g.GET("/monthly-report-url", api.reportURL)

	// teacher-only endpoints
	tg := g.Group("/student-progress", teacherMiddleware(deps.Conf))
	tg.GET("", api.studentProgress)
	tg.GET("/:studentId", api.studentProgress)
}

// Handlers

// monthlyReport renders the report document for one student and month.
// The metrics are recomputed from the month's progress entries on every
// request; the stored AI summary is reused as-is.
func (api *reportApi) monthlyReport(ctx echo.Context) error {
	var data MonthlyReportRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to MonthlyReportRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}
	month, err := core.ParseMonth(data.Month)
	if err != nil {
		return errors.Wrap(err, "parsing month")
	}

	html, err := api.reportSvc.RenderHTML(ctx.Request().Context(), data.StudentID, month)
	if err != nil {
		switch errors.Cause(err) {
		case report.ErrNoData, student.ErrNotFound:
			return errHttpNotFound
		}
		return errors.Wrap(err, "rendering monthly report")
	}
	return ctx.HTML(http.StatusOK, html)
}

func (api *reportApi) generateReport(ctx echo.Context) error {
	var data GenerateReportRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to GenerateReportRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}
	month, err := core.ParseMonth(data.Month)
	if err != nil {
		return errors.Wrap(err, "parsing month")
	}

	rep, err := api.reportSvc.Generate(ctx.Request().Context(), data.StudentName, month)
	if err != nil {
		switch errors.Cause(err) {
		case report.ErrNoData, student.ErrNotFound:
			return errHttpNotFound
		}
		return errors.Wrap(err, "generating monthly report")
	}
	return ctx.JSON(http.StatusOK, URLResponse{Success: true, URL: rep.URL})
}

// reportURL returns the stored report URL for the calendar month before the
// given date. The form links here right after a month ends, hence "previous".
func (api *reportApi) reportURL(ctx echo.Context) error {
	studentName := core.CleanString(ctx.QueryParam("studentName"))
	if studentName == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "studentName parameter is required")
	}
	date, err := time.Parse("2006-01-02", ctx.QueryParam("date"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "date must be in YYYY-MM-DD format")
	}
	month := core.MonthOf(date).Prev()

	url, err := api.reportSvc.URLFor(ctx.Request().Context(), studentName, month)
	if err != nil {
		switch errors.Cause(err) {
		case report.ErrNotFound, student.ErrNotFound:
			return ctx.JSON(http.StatusNotFound, SuccessResponse{Success: false, Message: "no report for this month"})
		}
		return errors.Wrap(err, "finding report url")
	}
	return ctx.JSON(http.StatusOK, URLResponse{Success: true, URL: url})
}

func (api *reportApi) studentProgress(ctx echo.Context) error {
	filter := progress.Filter{StudentID: core.CleanString(ctx.Param("studentId"))}

	entries, err := api.progressSvc.Query(ctx.Request().Context(), filter)
	if err != nil {
		return errors.Wrap(err, "querying progress entries")
	}
	if entries == nil {
		entries = []progress.Entry{}
	}
	return ctx.JSON(http.StatusOK, entries)
}
