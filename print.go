package jarray

import (
	"fmt"
	"io"
	"os"
)

// Print renders the whole array to w (os.Stdout if w is nil). If a
// PrintArray override is installed, rendering is delegated to it; otherwise
// a header with length and reservation floor is followed by every element,
// rendered through the Print capability.
func (a *Array[T]) Print(w io.Writer) *Error {
	if a == nil {
		return a.fail(InvalidArgument, "cannot print a nil array")
	}
	if a.caps.Print == nil {
		return a.fail(PrintCallbackMissing, "Print callback not set")
	}
	if w == nil {
		w = os.Stdout
	}
	if a.over.PrintArray != nil {
		a.over.PrintArray(w, a)
		return a.succeed()
	}
	fmt.Fprintf(w, "Array [size: %d, reserve: %d] =>\n", a.length, a.minReserve)
	for i := 0; i < a.length; i++ {
		a.caps.Print(w, a.buf[i])
	}
	fmt.Fprintln(w)
	return a.succeed()
}
