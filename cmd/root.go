package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/FyshOS/vidmode/internal/config"
	"github.com/FyshOS/vidmode/internal/logger"
	"github.com/FyshOS/vidmode/internal/x11"
	"github.com/FyshOS/vidmode/videomode"
)

var (
	// Version is set during build
	Version = "0.1.0-dev"

	configPath  string
	displayName string
	screenIndex int
	extension   string
	logLevel    string

	rootCmd = &cobra.Command{
		Use:   "vidmode",
		Short: "vidmode - X11 video mode switching",
		Long: `vidmode lists the video modes of an X11 screen, finds the mode closest to
a requested size and refresh rate, and switches to it for fullscreen use.

Modes are switched with RandR when the server has it, XF86VidMode otherwise.
Without either the screen stays at its desktop resolution.`,
		SilenceUsage:      true,
		PersistentPreRunE: loadConfig,
	}
)

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s\n" .Version}}`)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Config file (default $HOME/.config/vidmode/vidmode.toml)")
	flags.StringVarP(&displayName, "display", "d", "", "X display to connect to (default $DISPLAY)")
	flags.IntVarP(&screenIndex, "screen", "s", -1, "Screen number (default: the display's default screen)")
	flags.StringVarP(&extension, "extension", "e", "", "Mode extension: auto, randr, xf86vidmode or none")
	flags.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn or error")
}

func loadConfig(cmd *cobra.Command, _ []string) error {
	if configPath != "" {
		config.SetConfigPath(configPath)
	}
	if err := config.Init(); err != nil {
		return err
	}

	cfg := config.Get()
	flags := cmd.Flags()
	if flags.Changed("display") {
		cfg.Display.Name = displayName
	}
	if flags.Changed("screen") {
		cfg.Display.Screen = screenIndex
	}
	if flags.Changed("extension") {
		cfg.Display.Extension = extension
	}
	if flags.Changed("log-level") {
		cfg.Logging.LogLevel = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.Logging.LogLevel != "" {
		logger.SetLevel(cfg.Logging.LogLevel)
	}
	return nil
}

// openSession connects to the configured display and returns a session on
// the configured screen. The caller closes the connection.
func openSession() (*x11.Conn, *videomode.Session, int, error) {
	cfg := config.Get()

	conn, err := x11.Open(cfg.Display.Name)
	if err != nil {
		return nil, nil, 0, err
	}

	session, err := conn.Session(cfg.Display.Extension, videomode.WithLogger(logger.Logger))
	if err != nil {
		conn.Close()
		return nil, nil, 0, err
	}

	screen := cfg.Display.Screen
	if screen < 0 {
		screen = conn.DefaultScreen()
	}
	if screen >= conn.ScreenCount() {
		conn.Close()
		return nil, nil, 0, fmt.Errorf("%w: %d (display has %d)", videomode.ErrBadScreen, screen, conn.ScreenCount())
	}
	return conn, session, screen, nil
}
