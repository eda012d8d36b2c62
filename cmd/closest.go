package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var (
	closestRate int
	closestJSON bool
)

var closestCmd = &cobra.Command{
	Use:   "closest WIDTHxHEIGHT",
	Short: "Show the mode closest to a size",
	Args:  cobra.ExactArgs(1),
	RunE:  runClosest,
}

func init() {
	closestCmd.Flags().IntVarP(&closestRate, "rate", "r", 0, "Desired refresh rate in Hz")
	closestCmd.Flags().BoolVar(&closestJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(closestCmd)
}

func runClosest(cmd *cobra.Command, args []string) error {
	width, height, err := parseSize(args[0])
	if err != nil {
		return err
	}

	conn, session, screen, err := openSession()
	if err != nil {
		return err
	}
	defer conn.Close()

	m, err := session.ClosestMode(screen, width, height, closestRate)
	if err != nil {
		return err
	}
	return printMatch(cmd.OutOrStdout(), m, session.Provider().Name(), closestJSON)
}

// parseSize reads "1280x1024" style sizes.
func parseSize(s string) (int, int, error) {
	w, h, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid size %q, want WIDTHxHEIGHT", s)
	}
	width, err := strconv.Atoi(strings.TrimSpace(w))
	if err != nil || width <= 0 {
		return 0, 0, fmt.Errorf("invalid width in %q", s)
	}
	height, err := strconv.Atoi(strings.TrimSpace(h))
	if err != nil || height <= 0 {
		return 0, 0, fmt.Errorf("invalid height in %q", s)
	}
	return width, height, nil
}
