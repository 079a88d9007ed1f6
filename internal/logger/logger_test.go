package logger

import (
	"context"
	"net/http/httptest"
	"testing"
)

func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	// must not panic and must be usable
	l.Info().Msg("discarded")
	l.Err(nil).Send()
}

func TestGetChildLogger_NotNil(t *testing.T) {
	l := Nop()
	child := l.GetChildLogger()
	if child == nil {
		t.Fatal("expected non-nil child logger")
	}
}

func TestFromContext_NeverNil(t *testing.T) {
	if FromContext(context.Background()) == nil {
		t.Fatal("expected non-nil logger from empty context")
	}

	l := Nop()
	ctx := l.Logger.WithContext(context.Background())
	if FromContext(ctx) == nil {
		t.Fatal("expected non-nil logger from populated context")
	}
}

func TestFromRequest_NeverNil(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	if FromRequest(req) == nil {
		t.Fatal("expected non-nil logger from request")
	}
}
