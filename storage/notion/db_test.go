package notiondb

import (
	"net/http"
	"testing"

	"github.com/jomei/notionapi"
	"github.com/pkg/errors"

	"github.com/jaykayhn/jindo/core"
)

func Test_tokenGuard(t *testing.T) {
	unauthorized := &notionapi.Error{Status: http.StatusUnauthorized, Message: "API token is invalid."}

	err := tokenGuard(unauthorized)
	if !core.IsShutdown(err) {
		t.Error("a rejected token should escalate to a shutdown error")
	}
	if wrapped := errors.Wrap(err, "querying database"); !core.IsShutdown(wrapped) {
		t.Error("shutdown should survive wrapping")
	}

	notFound := &notionapi.Error{Status: http.StatusNotFound, Message: "Could not find database."}
	if err := tokenGuard(notFound); core.IsShutdown(err) {
		t.Error("a plain API error is not a shutdown condition")
	}

	if err := tokenGuard(nil); err != nil {
		t.Errorf("tokenGuard(nil) = %v", err)
	}
}
