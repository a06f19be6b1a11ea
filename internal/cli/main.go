package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/vburojevic/reqlog/internal/config"
	"github.com/vburojevic/reqlog/internal/logging"
)

const usage = "Usage: reqlog [flags] <logfile>"

const description = `Summarize a JSONL API request log.

Each line is one JSON object with "timestamp", "endpoint" and "status_code".
Prints the number of valid requests, the number of error requests
(status_code >= 400) and the three endpoints with the most errors.
Lines that cannot be parsed are reported on stderr and skipped.`

// exitRequest carries an exit code out of kong's help and version hooks
type exitRequest struct {
	code int
}

// Main runs reqlog with args (without the program name) and returns the
// process exit code. It never exits the process itself.
func Main(args []string, stdout, stderr io.Writer) (code int) {
	defer func() {
		if r := recover(); r != nil {
			exit, ok := r.(exitRequest)
			if !ok {
				panic(r)
			}
			code = exit.code
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Warning: failed to load config: %v\n", err)
		cfg = config.Default()
	}

	var c CLI
	parser, err := kong.New(&c,
		kong.Name("reqlog"),
		kong.Description(description),
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) { panic(exitRequest{code: code}) }),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version":        fmt.Sprintf("reqlog version %s (%s)", Version, Commit),
			"config_lenient": strconv.FormatBool(cfg.Lenient),
			"config_quiet":   strconv.FormatBool(cfg.Quiet),
			"config_verbose": strconv.FormatBool(cfg.Verbose),
			"config_color":   cfg.Color,
		},
	)
	if err != nil {
		emitError(stderr, &CLIError{Code: CodeInternal, Message: err.Error()})
		return ExitFailure
	}

	if _, err := parser.Parse(args); err != nil {
		fmt.Fprintln(stderr, usage)
		emitError(stderr, &CLIError{
			Code:    CodeUsage,
			Message: err.Error(),
			Hint:    "Run 'reqlog --help' for details",
		})
		return ExitFailure
	}

	logger := logging.New(stderr, c.Verbose, c.Quiet)
	defer func() { _ = logger.Sync() }()

	globals := NewGlobals(stdout, logger)
	if err := c.Run(globals); err != nil {
		emitError(stderr, err)
		return ExitFailure
	}
	return ExitOK
}
