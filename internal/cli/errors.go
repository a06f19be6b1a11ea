package cli

import (
	"errors"
	"fmt"
	"io"
)

// emitError writes err to w as "Error [CODE]: message" with an optional hint
// line. Errors that are not *CLIError are printed without a code.
func emitError(w io.Writer, err error) {
	var cliErr *CLIError
	if !errors.As(err, &cliErr) {
		fmt.Fprintf(w, "Error: %s\n", err)
		return
	}

	fmt.Fprintf(w, "Error [%s]: %s\n", cliErr.Code, cliErr.Message)
	if cliErr.Hint != "" {
		fmt.Fprintf(w, "Hint: %s\n", cliErr.Hint)
	}
}
