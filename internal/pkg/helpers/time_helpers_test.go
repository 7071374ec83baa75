package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 90*time.Second, ParseDuration("90s", time.Minute))
	assert.Equal(t, 720*time.Hour, ParseDuration("720h", time.Minute))

	// Fallback on anything time.ParseDuration rejects
	assert.Equal(t, 5*time.Minute, ParseDuration("", 5*time.Minute))
	assert.Equal(t, 5*time.Minute, ParseDuration("soon", 5*time.Minute))
	assert.Equal(t, 5*time.Minute, ParseDuration("10 minutes", 5*time.Minute))
}
