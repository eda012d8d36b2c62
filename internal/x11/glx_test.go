package x11

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseVisualConfigs(t *testing.T) {
	// Two visuals with four properties each: id, class, rgba, red size.
	props := []uint32{
		0x21, 4, 1, 8,
		0x22, 3, 0, 0,
	}

	configs := parseVisualConfigs(2, 4, props)
	assert.Equal(t, map[uint32]glxConfig{
		0x21: {rgba: true},
		0x22: {rgba: false},
	}, configs)
}

func TestParseVisualConfigsShortReply(t *testing.T) {
	props := []uint32{0x21, 4, 1, 8, 0x22, 4}

	configs := parseVisualConfigs(2, 4, props)
	assert.Len(t, configs, 1)
	assert.Contains(t, configs, uint32(0x21))

	assert.Empty(t, parseVisualConfigs(1, 2, []uint32{0x21, 4}))
	assert.Empty(t, parseVisualConfigs(0, 18, nil))
}

func TestIsTrueColor(t *testing.T) {
	assert.True(t, isTrueColor(4))
	assert.True(t, isTrueColor(5))
	assert.False(t, isTrueColor(3))
	assert.False(t, isTrueColor(0))
}
