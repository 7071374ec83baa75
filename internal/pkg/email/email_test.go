package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateResetCode(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		code, err := GenerateResetCode()
		require.NoError(t, err)

		assert.Len(t, code, 6)
		for _, r := range code {
			assert.True(t, r >= '0' && r <= '9', "code must be numeric, got %q", code)
		}
		seen[code] = true
	}

	// Not a strict randomness test, just a sanity check that the generator
	// is not stuck on one value
	assert.Greater(t, len(seen), 1)
}
