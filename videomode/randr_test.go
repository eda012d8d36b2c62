package videomode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandRClosest(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		rate          int
		want          Match
	}{
		{
			name:  "exact size",
			width: 1024, height: 768,
			want: Match{Index: 3, Width: 1024, Height: 768},
		},
		{
			name:  "nearest size",
			width: 1300, height: 1000,
			want: Match{Index: 1, Width: 1280, Height: 1024},
		},
		{
			name:  "duplicate size picks first",
			width: 1280, height: 720, rate: 30,
			want: Match{Index: 2, Width: 1280, Height: 720, Rate: 30},
		},
		{
			name:  "nearest rate",
			width: 1024, height: 768, rate: 72,
			want: Match{Index: 3, Width: 1024, Height: 768, Rate: 70},
		},
		{
			name:  "equidistant rate picks first listed",
			width: 800, height: 600, rate: 58,
			want: Match{Index: 4, Width: 800, Height: 600, Rate: 60},
		},
		{
			name:  "larger than any size",
			width: 4096, height: 2160, rate: 144,
			want: Match{Index: 0, Width: 1920, Height: 1080, Rate: 60},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, r := randrSetup()
			p := NewRandRProvider(r, d)

			m, ok, err := p.Closest(0, tt.width, tt.height, tt.rate)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, tt.want, m)
		})
	}
}

func TestRandRClosestEquidistantSizes(t *testing.T) {
	d, r := randrSetup()
	r.infos[0].Sizes = []Resolution{{1000, 800}, {1200, 800}}
	r.infos[0].Rates = nil

	m, ok, err := NewRandRProvider(r, d).Closest(0, 1100, 800, 0)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 0, m.Index)
}

func TestRandRClosestMissingRates(t *testing.T) {
	d, r := randrSetup()
	r.infos[0].Rates = nil

	m, ok, err := NewRandRProvider(r, d).Closest(0, 800, 600, 75)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, Match{Index: 4, Width: 800, Height: 600, Rate: 75}, m)
}

func TestRandRClosestEmpty(t *testing.T) {
	d, r := randrSetup()
	r.infos[0].Sizes = nil

	_, ok, err := NewRandRProvider(r, d).Closest(0, 800, 600, 0)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRandRSwitchRemembersFirstMode(t *testing.T) {
	d, r := randrSetup()
	r.infos[0].Rotation = 2
	p := NewRandRProvider(r, d)

	var saved savedMode
	require.NoError(t, p.switchMode(0, 3, 75, &saved))
	assert.Equal(t, savedMode{changed: true, size: Resolution{1920, 1080}, sizeID: 0, rotation: 2}, saved)
	assert.Equal(t, 3, r.infos[0].SizeID)
	assert.Equal(t, RotateNormal, r.infos[0].Rotation)
	assert.Equal(t, 75, r.infos[0].Rate)

	require.NoError(t, p.switchMode(0, 4, 0, &saved))
	assert.Equal(t, Resolution{1920, 1080}, saved.size, "second switch must keep the original")
	assert.Equal(t, 0, r.infos[0].Rate)

	require.NoError(t, p.restore(0, &saved))
	assert.Equal(t, 0, r.infos[0].SizeID)
	assert.Equal(t, uint16(2), r.infos[0].Rotation)
}

func TestRandRSwitchFailureKeepsState(t *testing.T) {
	d, r := randrSetup()
	r.reject = true
	p := NewRandRProvider(r, d)

	var saved savedMode
	err := p.switchMode(0, 1, 0, &saved)
	assert.ErrorIs(t, err, ErrSwitchRejected)
	assert.False(t, saved.changed)

	err = p.switchMode(0, 42, 0, &saved)
	assert.ErrorIs(t, err, ErrNoSuchMode)
}
