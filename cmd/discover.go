package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"freebox-gate/internal/discovery"
	"freebox-gate/internal/integration"

	"github.com/spf13/cobra"
)

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Browse the local network for Freebox servers",
	RunE: func(cmd *cobra.Command, args []string) error {
		timeout, _ := cmd.Flags().GetDuration("timeout")
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		browser := discovery.NewBrowser(discovery.ServiceFreebox, logger)
		found := 0
		err := browser.Run(ctx, func(ev discovery.Event) {
			found++
			PrintDiscovery(cmd.OutOrStdout(), ev)
		})
		if err != nil {
			return err
		}
		if found == 0 {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No Freebox found")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(discoverCmd)
	discoverCmd.Flags().Duration("timeout", 5*time.Second, "How long to browse")
}

// PrintDiscovery writes one announcement and the endpoint it resolves to.
func PrintDiscovery(w io.Writer, ev discovery.Event) {
	_, _ = fmt.Fprintf(w, "%s at %s:%d\n", ev.Instance, ev.Host, ev.Port)
	src, err := integration.FromDiscovery(ev)
	if err != nil {
		_, _ = fmt.Fprintf(w, "  unusable: %v\n", err)
		return
	}
	_, _ = fmt.Fprintf(w, "  API endpoint: https://%s:%d (api_version %s)\n", src.Host, src.Port, ev.Property("api_version"))
}
