package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FyshOS/vidmode/internal/config"
	"github.com/FyshOS/vidmode/videomode"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		in            string
		width, height int
		wantErr       bool
	}{
		{in: "1280x1024", width: 1280, height: 1024},
		{in: "800X600", width: 800, height: 600},
		{in: " 640 x 480 ", width: 640, height: 480},
		{in: "1280", wantErr: true},
		{in: "0x600", wantErr: true},
		{in: "800x-1", wantErr: true},
		{in: "widexhigh", wantErr: true},
	}

	for _, tt := range tests {
		w, h, err := parseSize(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.width, w)
		assert.Equal(t, tt.height, h)
	}
}

func TestPrintModes(t *testing.T) {
	modes := []videomode.VideoMode{
		{Width: 1920, Height: 1080, RedBits: 8, GreenBits: 8, BlueBits: 8},
		{Width: 640, Height: 480, RedBits: 5, GreenBits: 6, BlueBits: 5},
	}

	var buf bytes.Buffer
	require.NoError(t, printModes(&buf, modes, false))
	assert.Equal(t, " 1920 x 1080   24 bpp  (R8 G8 B8)\n  640 x 480    16 bpp  (R5 G6 B5)\n", buf.String())

	buf.Reset()
	require.NoError(t, printModes(&buf, modes, true))
	var infos []ModeInfo
	require.NoError(t, json.Unmarshal(buf.Bytes(), &infos))
	assert.Equal(t, ModeInfo{Width: 640, Height: 480, RedBits: 5, GreenBits: 6, BlueBits: 5}, infos[1])

	buf.Reset()
	require.NoError(t, printModes(&buf, nil, false))
	assert.Equal(t, "No video modes available\n", buf.String())
}

func TestPrintMatch(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printMatch(&buf, videomode.Match{Index: 3, Width: 1024, Height: 768, Rate: 85}, "randr", false))
	assert.Equal(t, "Mode 3: 1024x768 @ 85 Hz (randr)\n", buf.String())

	buf.Reset()
	require.NoError(t, printMatch(&buf, videomode.Match{Width: 1366, Height: 768}, "none", false))
	assert.Equal(t, "Mode 0: 1366x768 (none)\n", buf.String())

	buf.Reset()
	require.NoError(t, printMatch(&buf, videomode.Match{Index: 1, Width: 800, Height: 600}, "xf86vidmode", true))
	assert.JSONEq(t, `{"index":1,"width":800,"height":600,"extension":"xf86vidmode"}`, buf.String())
}

func TestPrintDesktop(t *testing.T) {
	var buf bytes.Buffer
	m := videomode.VideoMode{Width: 2560, Height: 1440, RedBits: 10, GreenBits: 10, BlueBits: 10}
	require.NoError(t, printDesktop(&buf, m, false))
	assert.Equal(t, "Desktop mode: 2560x1440, 30 bpp (R10 G10 B10)\n", buf.String())
}

func TestLoadConfigFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vidmode.toml")
	require.NoError(t, os.WriteFile(path, []byte("[display]\nextension = \"randr\"\nscreen = 1\n"), 0644))

	viper.Reset()
	t.Cleanup(func() {
		viper.Reset()
		config.Set(nil)
		config.SetConfigPath("")
		configPath, extension = "", ""
		screenIndex = -1
		rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
	})

	require.NoError(t, rootCmd.ParseFlags([]string{"--config", path, "--extension", "none"}))
	require.NoError(t, loadConfig(rootCmd, nil))

	cfg := config.Get()
	assert.Equal(t, "none", cfg.Display.Extension)
	assert.Equal(t, 1, cfg.Display.Screen)
}

func TestLoadConfigRejectsBadExtension(t *testing.T) {
	viper.Reset()
	t.Cleanup(func() {
		viper.Reset()
		config.Set(nil)
		config.SetConfigPath("")
		extension = ""
		rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
	})

	require.NoError(t, rootCmd.ParseFlags([]string{"--extension", "glx"}))
	assert.Error(t, loadConfig(rootCmd, nil))
}
