// SPDX-License-Identifier: Apache-2.0

// Package logger wraps zerolog.Logger with the constructors and
// context-aware helpers shared by the blog server, the seeder, and the
// terminal client.
//
// Logger embeds zerolog.Logger, so the whole zerolog API (Debug, Info,
// Warn, Error, Fatal, ...) is reachable on *Logger. Code that runs inside
// a request should pick up the request-scoped instance through FromRequest
// or FromContext rather than holding its own.
package logger

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger embeds zerolog.Logger so helpers can be attached without hiding
// the upstream API.
type Logger struct {
	zerolog.Logger
}

// configureGlobals sets the process-wide zerolog knobs: everything down to
// Debug is emitted, and the caller field ("func") records the fully
// qualified function name instead of file:line.
func configureGlobals() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
}

// newWithOutput builds the standard logger on top of w: a "role" label for
// telling components apart, a timestamp, and the caller field.
func newWithOutput(w *os.File, role string) *Logger {
	configureGlobals()

	zl := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{zl}
}

// NewLogger constructs the JSON-to-stdout logger used by server-side
// binaries. role labels the component ("blog-server", "blog-seeder").
func NewLogger(role string) *Logger {
	return newWithOutput(os.Stdout, role)
}

// NewClientLogger constructs the logger for the terminal client. Writing to
// stdout would tear the TUI apart, so output goes to a "logs" file next to
// the executable instead; stdout remains the fallback when that file cannot
// be opened.
func NewClientLogger(role string) *Logger {
	execPath, _ := os.Executable()
	logPath := filepath.Join(filepath.Dir(execPath), "logs")

	out, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		out = os.Stdout
	}

	return newWithOutput(out, role)
}

// Nop returns a *Logger that discards everything. Handy in tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a copy of the receiver that can be enriched with
// extra fields without touching the parent.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the request-scoped logger that the trace middleware
// stored in r's context via zerolog's WithContext.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext returns the logger carried by ctx. When ctx carries none,
// zerolog hands back its global logger, so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
