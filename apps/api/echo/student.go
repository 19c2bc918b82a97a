package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/jaykayhn/jindo/core"
	"github.com/jaykayhn/jindo/core/book"
	"github.com/jaykayhn/jindo/core/progress"
	"github.com/jaykayhn/jindo/core/student"
)

type studentApi struct {
	conf        *core.Config
	studentSvc  *student.Service
	progressSvc *progress.Service
	bookSvc     *book.Service
	validate    *validator.Validate
}

func registerStudentAPI(e *echo.Echo, deps ServerDeps) {
	api := studentApi{
		conf:        deps.Conf,
		studentSvc:  deps.StudentSvc,
		progressSvc: deps.ProgressSvc,
		bookSvc:     deps.BookSvc,
		validate:    deps.Validate,
	}

	e.POST("/login", api.login)
	e.POST("/save-progress", api.saveProgress, sessionMiddleware(deps.Conf))

	g := e.Group("/api")
	g.GET("/search-books", api.searchBooks)
	g.GET("/search-sayu-books", api.searchSayuBooks)
}

// Handlers

func (api *studentApi) login(ctx echo.Context) error {
	var data LoginRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to LoginRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	stu, err := api.studentSvc.Authenticate(ctx.Request().Context(), data.StudentID, data.Password)
	if err != nil {
		if errors.Cause(err) == student.ErrAuthFailed {
			return ctx.JSON(http.StatusUnauthorized, SuccessResponse{Success: false, Message: "invalid student id or password"})
		}
		return errors.Wrap(err, "authenticating")
	}

	token, err := GenerateToken(NewSessionClaims(stu, api.conf), api.conf)
	if err != nil {
		return err
	}
	setSessionCookie(ctx, token, api.conf)

	return ctx.JSON(http.StatusOK, SuccessResponse{Success: true, Message: "login successful"})
}

func (api *studentApi) saveProgress(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return err
	}

	var data SaveProgressRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to SaveProgressRequest")
	}

	entry := progress.NewEntry{
		StudentID:    claims.Subject,
		StudentName:  claims.Name,
		Fields:       data.Fields,
		EnglishBooks: data.EnglishBooks,
		KoreanBooks:  data.KoreanBooks,
	}
	if err := api.progressSvc.Save(ctx.Request().Context(), entry); err != nil {
		return errors.Wrap(err, "saving progress")
	}

	return ctx.JSON(http.StatusOK, SuccessResponse{Success: true, Message: "progress saved"})
}

func (api *studentApi) searchBooks(ctx echo.Context) error {
	query := core.CleanString(ctx.QueryParam("query"))
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "query parameter is required")
	}

	books, err := api.bookSvc.SearchBooks(ctx.Request().Context(), query)
	if err != nil {
		return errors.Wrap(err, "searching books")
	}
	return ctx.JSON(http.StatusOK, books)
}

func (api *studentApi) searchSayuBooks(ctx echo.Context) error {
	query := core.CleanString(ctx.QueryParam("query"))
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "query parameter is required")
	}

	books, err := api.bookSvc.SearchSayuBooks(ctx.Request().Context(), query)
	if err != nil {
		return errors.Wrap(err, "searching sayu books")
	}
	return ctx.JSON(http.StatusOK, books)
}
