package echoapi

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jaykayhn/jindo/core"
	"github.com/jaykayhn/jindo/core/progress"
)

type (
	LoginRequest struct {
		StudentID string `json:"studentId" validate:"required"`
		Password  string `json:"password" validate:"required"`
	}

	MonthlyReportRequest struct {
		StudentID string `query:"studentId" json:"studentId" validate:"required"`
		Month     string `query:"month" json:"month" validate:"required,month"`
	}

	GenerateReportRequest struct {
		StudentName string `query:"studentName" json:"studentName" validate:"required"`
		Month       string `query:"month" json:"month" validate:"required,month"`
	}

	SuccessResponse struct {
		Success bool   `json:"success"`
		Message string `json:"message,omitempty"`
	}

	URLResponse struct {
		Success bool   `json:"success"`
		URL     string `json:"url"`
	}

	// SaveProgressRequest accepts the free-form progress submission: the book
	// selections under their fixed keys, every other field as a string.
	SaveProgressRequest struct {
		EnglishBooks []progress.BookRef
		KoreanBooks  []progress.BookRef
		Fields       map[string]string
	}

	// bookRefPayload tolerates numeric ar/lexile values sent by older form
	// versions.
	bookRefPayload struct {
		ID     string          `json:"id"`
		Title  string          `json:"title"`
		AR     json.RawMessage `json:"ar"`
		Lexile json.RawMessage `json:"lexile"`
	}
)

func (lr *LoginRequest) Validate(validate *validator.Validate) error {
	lr.StudentID = core.CleanString(lr.StudentID)
	return validate.Struct(lr)
}

func (mrr *MonthlyReportRequest) Validate(validate *validator.Validate) error {
	mrr.StudentID = core.CleanString(mrr.StudentID)
	return validate.Struct(mrr)
}

func (grr *GenerateReportRequest) Validate(validate *validator.Validate) error {
	grr.StudentName = core.CleanString(grr.StudentName)
	return validate.Struct(grr)
}

func (spr *SaveProgressRequest) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	spr.Fields = make(map[string]string, len(raw))
	for key, val := range raw {
		switch key {
		case "englishBooks":
			refs, err := unmarshalBookRefs(val)
			if err != nil {
				return err
			}
			spr.EnglishBooks = refs
		case "koreanBooks":
			refs, err := unmarshalBookRefs(val)
			if err != nil {
				return err
			}
			spr.KoreanBooks = refs
		default:
			spr.Fields[key] = rawString(val)
		}
	}
	return nil
}

func unmarshalBookRefs(data []byte) ([]progress.BookRef, error) {
	var payloads []bookRefPayload
	if err := json.Unmarshal(data, &payloads); err != nil {
		return nil, err
	}
	refs := make([]progress.BookRef, 0, len(payloads))
	for _, p := range payloads {
		refs = append(refs, progress.BookRef{
			ID:     p.ID,
			Title:  p.Title,
			AR:     rawString(p.AR),
			Lexile: rawString(p.Lexile),
		})
	}
	return refs, nil
}

// rawString renders a JSON scalar as the string the external record schema
// expects. null becomes empty; non-scalar values keep their raw JSON text.
func rawString(raw json.RawMessage) string {
	s := strings.TrimSpace(string(raw))
	switch {
	case s == "" || s == "null":
		return ""
	case strings.HasPrefix(s, `"`):
		var str string
		if err := json.Unmarshal(raw, &str); err == nil {
			return str
		}
		return strings.Trim(s, `"`)
	case s == "true" || s == "false":
		return s
	default:
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return strconv.FormatFloat(f, 'f', -1, 64)
		}
		return s
	}
}
