package logger

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"strings"

	"github.com/cockroachdb/errors/errbase"
)

// middlewareError expands error attributes with the verbose error chain and,
// when the error carries one, the stack trace recorded by cockroachdb/errors.
func middlewareError() middleware {
	return func(next handleFunc) handleFunc {
		return func(ctx context.Context, rec slog.Record) error {
			var extra []slog.Attr
			rec.Attrs(func(attr slog.Attr) bool {
				if attr.Key != ErrorKey && attr.Key != "err" {
					return true
				}
				err, ok := attr.Value.Any().(error)
				if !ok || err == nil {
					return true
				}
				extra = append(extra, slog.String(ErrorVerboseKey, fmt.Sprintf("%+v", err)))
				if x, ok := stackTraceOf(err); ok {
					extra = append(extra, slog.Any(ErrorStackTraceKey, traceLines(x.StackTrace())))
				}
				return false
			})
			rec.AddAttrs(extra...)
			return next(ctx, rec)
		}
	}
}

// stackTraceOf returns the deepest stack trace provider of the error chain.
func stackTraceOf(err error) (errbase.StackTraceProvider, bool) {
	var found errbase.StackTraceProvider
	for ; err != nil; err = errbase.UnwrapOnce(err) {
		if x, ok := err.(errbase.StackTraceProvider); ok {
			found = x
		}
	}
	return found, found != nil
}

func traceLines(frames errbase.StackTrace) []string {
	lines := make([]string, 0, len(frames))

	// Iterate in reverse to skip uninteresting, consecutive runtime frames at
	// the bottom of the trace.
	skipping := true
	for i := len(frames) - 1; i >= 0; i-- {
		pc := uintptr(frames[i]) - 1
		fn := runtime.FuncForPC(pc)
		if fn == nil {
			lines = append(lines, "unknown")
			skipping = false
			continue
		}

		name := fn.Name()
		if skipping && strings.HasPrefix(name, "runtime.") {
			continue
		}
		skipping = false

		filename, lineNr := fn.FileLine(pc)
		lines = append(lines, fmt.Sprintf("%s %s:%d", name, filename, lineNr))
	}

	return lines[:len(lines):len(lines)]
}
