package analyzer

import (
	"errors"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/tidwall/gjson"
)

var errInvalidJSON = errors.New("invalid JSON")

// decodeLine parses one trimmed line into a JSON document. The fast gjson
// validity check handles the common case; malformed input is decoded again
// with go-json to get an error that says where it went wrong.
func decodeLine(line []byte) (gjson.Result, error) {
	if gjson.ValidBytes(line) {
		return gjson.ParseBytes(line), nil
	}

	var v any
	if err := json.Unmarshal(line, &v); err != nil {
		return gjson.Result{}, fmt.Errorf("%w: %v", errInvalidJSON, err)
	}
	return gjson.Result{}, errInvalidJSON
}
