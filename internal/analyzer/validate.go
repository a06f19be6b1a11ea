package analyzer

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/vburojevic/reqlog/internal/domain"
)

// Field names of a request record
const (
	FieldTimestamp  = "timestamp"
	FieldEndpoint   = "endpoint"
	FieldStatusCode = "status_code"
)

// Reasons reported for invalid entries
const (
	ReasonNotObject = "not an object"
	ReasonBadField  = "missing or mistyped field"
)

// FieldPolicy selects which fields an entry must carry
type FieldPolicy int

const (
	// Strict requires timestamp, endpoint and status_code
	Strict FieldPolicy = iota
	// Lenient drops the timestamp requirement, matching older tooling
	Lenient
)

func (p FieldPolicy) String() string {
	if p == Lenient {
		return "lenient"
	}
	return "strict"
}

// Verdict is the outcome of validating one decoded line. Invalid entries are
// ordinary values, not errors.
type Verdict struct {
	Valid  bool
	Entry  domain.LogEntry
	Reason string
	Field  string // offending field, empty when the document is not an object
}

func valid(entry domain.LogEntry) Verdict {
	return Verdict{Valid: true, Entry: entry}
}

func invalid(reason, field string) Verdict {
	return Verdict{Reason: reason, Field: field}
}

// Validator checks decoded documents against a FieldPolicy
type Validator struct {
	policy FieldPolicy
}

// NewValidator creates a validator for the given policy
func NewValidator(policy FieldPolicy) *Validator {
	return &Validator{policy: policy}
}

// Policy returns the field policy in use
func (v *Validator) Policy() FieldPolicy {
	return v.policy
}

// Validate inspects a decoded document and never panics
func (v *Validator) Validate(doc gjson.Result) Verdict {
	if !doc.IsObject() {
		return invalid(ReasonNotObject, "")
	}

	var entry domain.LogEntry
	ts, endpoint, status := lastFields(doc)

	if ts.Type == gjson.String {
		entry.Timestamp = ts.Str
	} else if v.policy == Strict {
		return invalid(ReasonBadField, FieldTimestamp)
	}

	if endpoint.Type != gjson.String {
		return invalid(ReasonBadField, FieldEndpoint)
	}
	entry.Endpoint = endpoint.Str

	code, ok := integerValue(status)
	if !ok {
		return invalid(ReasonBadField, FieldStatusCode)
	}
	entry.StatusCode = code

	return valid(entry)
}

// lastFields picks the record fields out of an object. A repeated key
// resolves to its last value, as with encoding/json.
func lastFields(doc gjson.Result) (ts, endpoint, status gjson.Result) {
	doc.ForEach(func(key, value gjson.Result) bool {
		switch key.Str {
		case FieldTimestamp:
			ts = value
		case FieldEndpoint:
			endpoint = value
		case FieldStatusCode:
			status = value
		}
		return true
	})
	return ts, endpoint, status
}

// integerValue accepts number literals without fraction or exponent.
// Out-of-range values clamp to the int64 bounds.
func integerValue(r gjson.Result) (int64, bool) {
	if r.Type != gjson.Number {
		return 0, false
	}

	raw := strings.TrimSpace(r.Raw)
	if raw == "" || strings.ContainsAny(raw, ".eE") {
		return 0, false
	}

	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		if !errors.Is(err, strconv.ErrRange) {
			return 0, false
		}
		if strings.HasPrefix(raw, "-") {
			return math.MinInt64, true
		}
		return math.MaxInt64, true
	}
	return n, true
}
