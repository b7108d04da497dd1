package jarray

import (
	"fmt"
	"io"
	"os"
)

// ErrorKind enumerates the failure taxonomy of the array engine.
type ErrorKind int

const (
	NoError ErrorKind = iota
	IndexOutOfBound
	Uninitialized
	DataNull // allocation failure or absent backing store
	PrintCallbackMissing
	StringifyCallbackMissing
	CompareCallbackMissing
	EqualityCallbackMissing
	Empty
	ElementNotFound
	InvalidArgument
	UnimplementedFunction
)

var kindText = [...]string{
	NoError:                  "no error",
	IndexOutOfBound:          "Index out of bound",
	Uninitialized:            "Array uninitialized",
	DataNull:                 "Data is null",
	PrintCallbackMissing:     "Print callback not set",
	StringifyCallbackMissing: "Stringify callback not set",
	CompareCallbackMissing:   "Compare callback not set",
	EqualityCallbackMissing:  "Equality callback not set",
	Empty:                    "Empty array",
	ElementNotFound:          "Element not found",
	InvalidArgument:          "Invalid argument",
	UnimplementedFunction:    "Function not implemented",
}

func (k ErrorKind) String() string {
	if k < 0 || int(k) >= len(kindText) {
		return fmt.Sprintf("Unknown error: %d", int(k))
	}
	return kindText[k]
}

// MaxMessageLen bounds the detail message of an Error. Longer messages are
// truncated, never rejected.
const MaxMessageLen = 100

// Error is the outcome record of a failed operation. It carries an ErrorKind,
// a bounded human-readable message and a non-owning back-reference to the
// container that produced it, which is used solely to dispatch an optional
// RenderError override.
type Error struct {
	Kind ErrorKind
	msg  string
	src  errorRenderer
}

// errorRenderer is implemented by *Array[T] for every T and gives an Error a
// way back to its container's RenderError override without naming the
// container's type parameter.
type errorRenderer interface {
	renderOverride(err *Error) (string, bool)
}

func newError(src errorRenderer, kind ErrorKind, format string, args ...interface{}) *Error {
	msg := fmt.Sprintf(format, args...)
	if len(msg) > MaxMessageLen {
		msg = msg[:MaxMessageLen]
	}
	return &Error{Kind: kind, msg: msg, src: src}
}

func (e *Error) Error() string {
	return e.Kind.String() + ": " + e.msg
}

// Message returns the detail message, without the kind prefix.
func (e *Error) Message() string {
	return e.msg
}

// Print renders the error to w (os.Stderr if w is nil), tagged with the
// caller-supplied source location. If the originating container has a
// RenderError override installed, rendering is delegated to it.
func (e *Error) Print(w io.Writer, file string, line int) {
	if e == nil {
		return
	}
	if w == nil {
		w = os.Stderr
	}
	if e.src != nil {
		if s, ok := e.src.renderOverride(e); ok {
			io.WriteString(w, s)
			return
		}
	}
	fmt.Fprintf(w, "%s:%d [Error: %s] : %s\n", file, line, e.Kind, e.msg)
}

// --- Per-container status record -------------------------------------------

// Status returns the outcome of the most recent operation on this container,
// or nil if it succeeded. The record is overwritten by the next operation.
func (a *Array[T]) Status() *Error {
	if a == nil {
		return nil
	}
	return a.status
}

// ClearStatus resets the status record to the ok state.
func (a *Array[T]) ClearStatus() {
	if a != nil {
		a.status = nil
	}
}

// PrintStatus renders the current status record to w; a nil record (ok state)
// prints nothing. See Error.Print.
func (a *Array[T]) PrintStatus(w io.Writer, file string, line int) {
	if a == nil || a.status == nil {
		return
	}
	a.status.Print(w, file, line)
}

func (a *Array[T]) renderOverride(err *Error) (string, bool) {
	if a == nil || a.over.RenderError == nil {
		return "", false
	}
	return a.over.RenderError(err), true
}

// fail records and returns an error outcome. Safe on a nil receiver.
func (a *Array[T]) fail(kind ErrorKind, format string, args ...interface{}) *Error {
	err := newError(a, kind, format, args...)
	if a != nil {
		a.status = err
	}
	return err
}

// succeed resets the status record and returns nil.
func (a *Array[T]) succeed() *Error {
	if a != nil {
		a.status = nil
	}
	return nil
}
