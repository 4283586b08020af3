// errors.go - descriptive errors for pgbackup/link
//
// (c) 2025 Sudhi Herle <sudhi@herle.net>
//
// Licensing Terms: GPLv2
//
// If you need a commercial license for this work, please contact
// the author.
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

package link

import (
	"fmt"
)

// Error represents the errors returned by the link engine's
// traversal modes
type Error struct {
	Op   string
	From string
	To   string
	Err  error
}

// Error returns a string representation of Error
func (e *Error) Error() string {
	return fmt.Sprintf("link: %s '%s' '%s': %s",
		e.Op, e.From, e.To, e.Err.Error())
}

// Unwrap returns the underlying wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

var _ error = &Error{}

func wrap(o, from, to string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{o, from, to, err}
}
