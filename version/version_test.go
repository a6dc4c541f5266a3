package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFull(t *testing.T) {
	info := Full()
	assert.Equal(t, dev, info.Version)
	assert.Equal(t, "unknown", info.Hash)
	assert.NotEmpty(t, info.Date)
	assert.Contains(t, info.String(), "reporeply "+dev)
}
