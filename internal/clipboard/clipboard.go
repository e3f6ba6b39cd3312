// Package clipboard copies generated text to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrUnavailable wraps every failure to reach the system clipboard
var ErrUnavailable = errors.New("clipboard unavailable")

// Writer puts text on a clipboard
type Writer interface {
	WriteAll(text string) error
}

// System is the operating system clipboard
type System struct{}

func (System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return errors.New("no clipboard utility found")
	}
	return clipboard.WriteAll(text)
}

// Copy writes text to w. Any failure is returned wrapped in ErrUnavailable.
func Copy(w Writer, text string) error {
	if w == nil {
		return ErrUnavailable
	}
	if err := w.WriteAll(text); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}
