package errors

import (
	stderrors "errors"
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"
)

var (
	// DefaultHandler receives every reported error. It starts as a terse
	// LogHandler writing to stderr.
	DefaultHandler ErrorHandler = &LogHandler{}

	handlerMu sync.RWMutex
)

// SetHandler replaces the global error handler. nil restores a terse
// LogHandler.
func SetHandler(h ErrorHandler) {
	handlerMu.Lock()
	defer handlerMu.Unlock()
	if h == nil {
		h = &LogHandler{}
	}
	DefaultHandler = h
}

func handler() ErrorHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return DefaultHandler
}

// Report sends err to the global handler, stamping it with the current time
// if it has none.
func Report(err *FlowError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	handler().HandleError(err)
}

// ReportErr reports any error under op. A *FlowError anywhere in the chain
// is reported as is; other errors are wrapped with KindUnknown.
func ReportErr(op string, err error) {
	if err == nil {
		return
	}
	var fe *FlowError
	if stderrors.As(err, &fe) {
		Report(fe)
		return
	}
	Report(&FlowError{Op: op, Kind: KindUnknown, Err: err})
}

// ReportPanic sends a recovered panic to the global handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	handler().HandlePanic(err)
}

// Recover reports a panic in the calling function and lets execution
// continue after the deferred call:
//
//	defer errors.Recover("watch.Watcher.onChange")
func Recover(op string) {
	if r := recover(); r != nil {
		ReportPanic(&PanicError{
			Op:         op,
			Value:      r,
			StackTrace: CaptureStack(),
			Timestamp:  time.Now(),
		})
	}
}

// CaptureStack returns the caller's stack, one function and file:line pair
// per frame, without the frames of this package.
func CaptureStack() string {
	const maxDepth = 32
	var pcs [maxDepth]uintptr
	n := runtime.Callers(2, pcs[:])
	if n == 0 {
		return ""
	}

	frames := runtime.CallersFrames(pcs[:n])
	var sb strings.Builder
	for {
		frame, more := frames.Next()
		if !strings.HasPrefix(frame.Function, pkgPath+".") {
			fmt.Fprintf(&sb, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
		}
		if !more {
			break
		}
	}
	return sb.String()
}

const pkgPath = "github.com/go-drift/flowlayout/pkg/errors"
