package analyzer

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"github.com/vburojevic/reqlog/internal/domain"
	"go.uber.org/zap"
)

// maxEntryPreview bounds how much of an invalid line is echoed in warnings
const maxEntryPreview = 200

// Analyzer computes request statistics from a JSONL log in a single pass
type Analyzer struct {
	logger    *zap.Logger
	clock     clock.Clock
	validator *Validator
}

// Option configures an Analyzer
type Option func(*Analyzer)

// WithLogger sets the logger that receives per-line warnings
func WithLogger(logger *zap.Logger) Option {
	return func(a *Analyzer) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithClock sets the clock used to time a run
func WithClock(clk clock.Clock) Option {
	return func(a *Analyzer) {
		if clk != nil {
			a.clock = clk
		}
	}
}

// WithFieldPolicy selects which fields an entry must carry
func WithFieldPolicy(policy FieldPolicy) Option {
	return func(a *Analyzer) {
		a.validator = NewValidator(policy)
	}
}

// New creates an analyzer. Without options it validates strictly and
// discards diagnostics.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		logger:    zap.NewNop(),
		clock:     clock.New(),
		validator: NewValidator(Strict),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze opens the file at path and analyzes it. Only failures to open or
// read the file are returned as errors, always as *FileError.
func (a *Analyzer) Analyze(path string) (*domain.AnalysisResult, error) {
	file, err := openLogFile(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := file.Close(); err != nil {
			a.logger.Debug("failed to close log file", zap.String("path", path), zap.Error(err))
		}
	}()

	result, err := a.AnalyzeReader(file)
	if err != nil {
		var fileErr *FileError
		if errors.As(err, &fileErr) && fileErr.Path == "" {
			fileErr.Path = path
		}
		return nil, err
	}
	return result, nil
}

func openLogFile(path string) (*os.File, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &FileError{Op: "open", Path: path, Err: unwrapPathError(err)}
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, &FileError{Op: "stat", Path: path, Err: unwrapPathError(err)}
	}
	if info.IsDir() {
		file.Close()
		return nil, &FileError{Op: "open", Path: path, Err: ErrNotAFile}
	}
	return file, nil
}

// unwrapPathError drops the *os.PathError layer so the path is not repeated
func unwrapPathError(err error) error {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}
	return err
}

// AnalyzeReader runs the analysis over r. Malformed and invalid lines are
// logged and skipped; only read failures end the run early.
func (a *Analyzer) AnalyzeReader(r io.Reader) (*domain.AnalysisResult, error) {
	runID := uuid.NewString()
	start := a.clock.Now()
	a.logger.Debug("analysis started",
		zap.String("run", runID),
		zap.Stringer("policy", a.validator.Policy()),
	)

	lines, err := newLineReader(r)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := lines.Close(); err != nil {
			a.logger.Debug("failed to close decompressor", zap.Error(err))
		}
	}()
	if lines.format != formatPlain {
		a.logger.Debug("decompressing input", zap.Stringer("format", lines.format))
	}

	result := domain.NewAnalysisResult()
	tally := NewErrorTally()

	for {
		text, num, err := lines.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		result.Lines = num
		a.processLine(num, text, tally, result)
	}

	result.TopErrors = tally.Top(TopN)
	if tally.Sum() != result.Errors {
		a.logger.Error("error tally out of step with error count",
			zap.Int("tallied", tally.Sum()),
			zap.Int("errors", result.Errors),
		)
	}

	if result.Skipped > 0 {
		a.logger.Info("skipped lines", zap.Int("count", result.Skipped))
	}
	a.logger.Debug("analysis finished",
		zap.String("run", runID),
		zap.Int("lines", result.Lines),
		zap.Int("total", result.Total),
		zap.Int("errors", result.Errors),
		zap.Int("skipped", result.Skipped),
		zap.Int("endpoints", tally.Len()),
		zap.Int("tallied", tally.Sum()),
		zap.Duration("elapsed", a.clock.Since(start)),
	)

	return result, nil
}

func (a *Analyzer) processLine(num int, raw []byte, tally *ErrorTally, result *domain.AnalysisResult) {
	line := bytes.TrimSpace(raw)

	doc, err := decodeLine(line)
	if err != nil {
		result.Skipped++
		a.logger.Warn("skipping malformed line", zap.Int("line", num), zap.Error(err))
		return
	}

	verdict := a.validator.Validate(doc)
	if !verdict.Valid {
		result.Skipped++
		fields := []zap.Field{
			zap.Int("line", num),
			zap.String("reason", verdict.Reason),
		}
		if verdict.Field != "" {
			fields = append(fields, zap.String("field", verdict.Field))
		}
		fields = append(fields, zap.String("entry", preview(line)))
		a.logger.Warn("skipping invalid entry", fields...)
		return
	}

	entry := verdict.Entry
	entry.Line = num

	result.Total++
	if entry.IsError() {
		result.Errors++
		tally.Add(entry.Endpoint)
	}
}

func preview(line []byte) string {
	if len(line) <= maxEntryPreview {
		return string(line)
	}
	return fmt.Sprintf("%s... (%d bytes)", line[:maxEntryPreview], len(line))
}
