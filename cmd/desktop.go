package cmd

import "github.com/spf13/cobra"

var desktopJSON bool

var desktopCmd = &cobra.Command{
	Use:   "desktop",
	Short: "Show the desktop video mode",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		conn, session, screen, err := openSession()
		if err != nil {
			return err
		}
		defer conn.Close()

		m, err := session.DesktopMode(screen)
		if err != nil {
			return err
		}
		return printDesktop(cmd.OutOrStdout(), m, desktopJSON)
	},
}

func init() {
	desktopCmd.Flags().BoolVar(&desktopJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(desktopCmd)
}
