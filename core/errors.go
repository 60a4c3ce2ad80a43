package core

import (
	"fmt"
	"runtime"

	log "github.com/sirupsen/logrus"
)

// RuntimeContext carries the (file, line, col) triple threaded through
// anything that can abort, so aborts report source location (spec.md
// §3.1 "Runtime context").
type RuntimeContext struct {
	File string
	Line int
	Col  int
}

// CallerContext captures a Go source location as a RuntimeContext: via
// runtime.Caller(2), the call site of the function that invoked
// CallerContext (for a helper that aborts, the line that called that
// helper). Col is always 0: Go does not track column numbers at runtime.
func CallerContext() RuntimeContext {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return RuntimeContext{File: "unknown", Line: 0, Col: 0}
	}
	return RuntimeContext{File: file, Line: line, Col: 0}
}

// AbortError is the non-recoverable termination signal raised by Abort.
// Per spec.md §7, there is no recoverable error channel inside the
// runtime: every recognized error path aborts (or reverts at the host
// boundary) and does not return to its caller. Implemented as a Go panic
// value of this distinguished type so the only legitimate recovery point
// is the host/CLI boundary.
type AbortError struct {
	Message string
	Ctx     RuntimeContext
}

func (e *AbortError) Error() string {
	return fmt.Sprintf("%s, %s:%d:%d", e.Message, e.Ctx.File, e.Ctx.Line, e.Ctx.Col)
}

// RevertError is the host-signalled termination that propagates an error
// code and message back to the caller contract (spec.md §7).
type RevertError struct {
	Code    uint32
	Message []byte
}

func (e *RevertError) Error() string {
	return fmt.Sprintf("revert(code=%d): %s", e.Code, string(e.Message))
}

var abortLog = log.WithField("component", "core")

// Abort formats "{msg}, {file}:{line}:{col}", logs it, and raises an
// AbortError panic. It never returns (runtime_abort in spec.md §4.J).
func Abort(ctx RuntimeContext, msg string) {
	err := &AbortError{Message: msg, Ctx: ctx}
	abortLog.Error(err.Error())
	panic(err)
}

// Abortf is Abort with fmt.Sprintf-style formatting.
func Abortf(ctx RuntimeContext, format string, args ...any) {
	Abort(ctx, fmt.Sprintf(format, args...))
}
