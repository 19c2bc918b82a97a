package logsvc

import (
	"io"
	"log"
	"testing"

	"github.com/jaykayhn/jindo/core"
	"github.com/jaykayhn/jindo/core/student"
)

func Test_RollbarLogger_prepare(t *testing.T) {
	l := NewRollbarLogger(log.New(io.Discard, "", 0), &core.Config{})
	l.Enable(false)

	stu := student.Student{StudentID: "jd01", Name: "Jindo Kid"}
	err := io.ErrUnexpectedEOF

	got := l.prepare("oops", []interface{}{err, stu})

	// the Student is consumed as the acting person, not forwarded as an arg
	if len(got) != 2 {
		t.Fatalf("expected [msg, err], got %d args: %v", len(got), got)
	}
	if got[0] != "oops" {
		t.Errorf("expected msg first, got %v", got[0])
	}
	if got[1] != err {
		t.Errorf("expected the error forwarded, got %v", got[1])
	}
}
