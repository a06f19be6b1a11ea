package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeLine(t *testing.T) {
	t.Run("decodes object", func(t *testing.T) {
		doc, err := decodeLine([]byte(`{"endpoint":"/a","status_code":200}`))
		require.NoError(t, err)
		assert.True(t, doc.IsObject())
		assert.Equal(t, "/a", doc.Get("endpoint").String())
	})

	t.Run("decodes scalars and arrays", func(t *testing.T) {
		for _, input := range []string{`42`, `"x"`, `[1,2]`, `null`, `true`} {
			_, err := decodeLine([]byte(input))
			assert.NoError(t, err, input)
		}
	})

	malformed := []string{
		`not json`,
		`{"endpoint":"/a"`,
		`{"endpoint":"/a",}`,
		`{"endpoint":"/a"} trailing`,
		`{'endpoint':'/a'}`,
	}
	t.Run("rejects empty line", func(t *testing.T) {
		_, err := decodeLine([]byte{})
		assert.ErrorIs(t, err, errInvalidJSON)
	})
	for _, input := range malformed {
		t.Run("rejects "+input, func(t *testing.T) {
			_, err := decodeLine([]byte(input))
			require.Error(t, err)
			assert.ErrorIs(t, err, errInvalidJSON)
		})
	}
}
