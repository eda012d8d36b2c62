package cmd

import (
	"github.com/spf13/cobra"

	"github.com/FyshOS/vidmode/internal/config"
)

var (
	listMax  int
	listJSON bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available video modes",
	Long: `List every combination of the screen's OpenGL capable colour formats and
the resolutions the mode extension can switch to.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().IntVarP(&listMax, "max", "n", 0, "Maximum number of modes (default modes.max from config)")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	conn, session, screen, err := openSession()
	if err != nil {
		return err
	}
	defer conn.Close()

	limit := config.Get().Modes.Max
	if cmd.Flags().Changed("max") {
		limit = listMax
	}

	modes, err := session.ListModes(screen, limit)
	if err != nil {
		return err
	}
	return printModes(cmd.OutOrStdout(), modes, listJSON)
}
