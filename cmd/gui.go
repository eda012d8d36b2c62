package cmd

import (
	"github.com/spf13/cobra"

	"github.com/FyshOS/vidmode/internal/config"
	"github.com/FyshOS/vidmode/internal/gui"
)

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Pick and try video modes in a window",
	Args:  cobra.NoArgs,
	RunE: func(*cobra.Command, []string) error {
		conn, session, screen, err := openSession()
		if err != nil {
			return err
		}
		defer conn.Close()

		gui.Run(conn, session, screen, config.Get().Modes.Max)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(guiCmd)
}
