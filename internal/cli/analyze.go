package cli

import (
	"errors"
	"fmt"

	"github.com/vburojevic/reqlog/internal/analyzer"
	"github.com/vburojevic/reqlog/internal/output"
)

// Run analyzes the log file and prints the report to stdout
func (c *CLI) Run(globals *Globals) error {
	policy := analyzer.Strict
	if c.Lenient {
		policy = analyzer.Lenient
	}

	a := analyzer.New(
		analyzer.WithLogger(globals.Logger),
		analyzer.WithFieldPolicy(policy),
	)

	result, err := a.Analyze(c.File)
	if err != nil {
		var fileErr *analyzer.FileError
		if errors.As(err, &fileErr) {
			return &CLIError{
				Code:    fileErr.Code(),
				Message: fmt.Sprintf("cannot %s log file %q: %s", fileErr.Op, c.File, fileErr.Err),
				Hint:    hintForFileError(fileErr),
			}
		}
		return &CLIError{Code: CodeInternal, Message: err.Error()}
	}

	styled := output.ShouldStyle(c.Color, globals.Stdout)
	if err := output.NewReportWriter(globals.Stdout, styled).Write(result); err != nil {
		return &CLIError{Code: CodeOutput, Message: fmt.Sprintf("write report: %s", err)}
	}
	return nil
}
