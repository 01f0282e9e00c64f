package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExactlyOne(t *testing.T) {
	t.Run("one source", func(t *testing.T) {
		err := ExactlyOne("parser",
			Source{Option: "WithFilePath", Set: true},
			Source{Option: "WithBytes"},
		)
		assert.NoError(t, err)
	})

	t.Run("no source", func(t *testing.T) {
		err := ExactlyOne("parser",
			Source{Option: "WithFilePath"},
			Source{Option: "WithReader"},
			Source{Option: "WithBytes"},
		)
		require.Error(t, err)
		assert.Equal(t, "parser: must specify an input source (use WithFilePath, WithReader or WithBytes)", err.Error())
	})

	t.Run("two sources", func(t *testing.T) {
		err := ExactlyOne("validator",
			Source{Option: "WithFilePath", Set: true},
			Source{Option: "WithParsed", Set: true},
		)
		require.Error(t, err)
		assert.Equal(t, "validator: must specify exactly one input source, got WithFilePath and WithParsed", err.Error())
	})
}
