package present

import (
	"errors"
	"fmt"
	"io"

	"hrtrack/internal/domain"
)

// Failure prints err followed by a hint matching its kind.
func Failure(w io.Writer, err error) {
	fmt.Fprintln(w, bad.Sprint("error: ")+err.Error())
	switch {
	case errors.Is(err, domain.ErrNoSession):
		fmt.Fprintln(w, faint.Sprint("not signed in; run `hrtrack login <email>` first"))
	case errors.Is(err, domain.ErrRequestFailed):
		fmt.Fprintln(w, faint.Sprint("the request did not go through; check the connection and try again"))
	case errors.Is(err, domain.ErrInvalidArgument):
		fmt.Fprintln(w, faint.Sprint("check the arguments and try again"))
	}
}
