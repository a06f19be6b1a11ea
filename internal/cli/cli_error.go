package cli

// CLIError is a structured error used for consistent text emission.
type CLIError struct {
	Code    string
	Message string
	Hint    string
}

func (e *CLIError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

// Error codes that do not come from the analyzer
const (
	CodeUsage    = "USAGE"
	CodeInternal = "INTERNAL"
	CodeOutput   = "OUTPUT_FAILED"
)

// Process exit codes
const (
	ExitOK      = 0
	ExitFailure = 1
)
