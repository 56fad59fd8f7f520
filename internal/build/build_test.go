package build

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersion(t *testing.T) {
	assert.NotEmpty(t, Version())
	assert.NotContains(t, Version(), "\n")

	old := version
	t.Cleanup(func() { version = old })
	version = "9.9.9"
	assert.Equal(t, "9.9.9", Version())
}
