package cli

import (
	"io"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"
)

// CLI is the command-line grammar for reqlog
type CLI struct {
	File string `arg:"" name:"logfile" help:"JSONL request log to analyze (gzip and zstd input is detected)"`

	Lenient bool             `default:"${config_lenient}" help:"Accept entries without a timestamp field"`
	Quiet   bool             `short:"q" default:"${config_quiet}" help:"Suppress per-line warnings"`
	Verbose bool             `short:"v" default:"${config_verbose}" help:"Show debug output (run id, timing, counts)"`
	Color   string           `default:"${config_color}" enum:"auto,always,never" help:"Style the report: auto, always or never"`
	Version kong.VersionFlag `help:"Show version information"`
}

// Globals holds shared state for a run
type Globals struct {
	Stdout io.Writer
	Logger *zap.Logger
}

// NewGlobals creates a Globals instance. A nil logger discards diagnostics.
func NewGlobals(stdout io.Writer, logger *zap.Logger) *Globals {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Globals{
		Stdout: stdout,
		Logger: logger,
	}
}

// Version information (set at build time)
var (
	Version = "dev"
	Commit  = "none"
)
