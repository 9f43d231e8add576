package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"freebox-gate/internal/config"
	"freebox-gate/internal/freebox"
	"freebox-gate/internal/integration"
	"freebox-gate/internal/wifiswitch"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// wifiCmd is a one-shot version of the switch for scripts.
var wifiCmd = &cobra.Command{
	Use:       "wifi [status|on|off]",
	Short:     "Show or change the Freebox WiFi state",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"status", wifiswitch.StateOn, wifiswitch.StateOff},
	RunE:      runWifi,
}

func init() {
	rootCmd.AddCommand(wifiCmd)
	wifiCmd.Flags().String("host", "", "Freebox API host (env: FREEBOX_HOST)")
	wifiCmd.Flags().Int("port", 0, "Freebox API HTTPS port (env: FREEBOX_PORT)")
}

func runWifi(cmd *cobra.Command, args []string) error {
	_ = viper.BindPFlag("freebox.host", cmd.Flags().Lookup("host"))
	_ = viper.BindPFlag("freebox.port", cmd.Flags().Lookup("port"))
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}
	if cfg.Freebox == nil {
		return errors.New("wifi needs a Freebox host and port (--host/--port, FREEBOX_HOST/FREEBOX_PORT or the config file)")
	}

	opts := integrationOptions(cfg)
	client, err := freebox.New(freebox.Options{
		AppDesc:          integration.AppDescriptor(opts.Version),
		TokenFile:        opts.TokenFile,
		APIVersion:       opts.APIVersion,
		CAFile:           opts.CAFile,
		AuthorizeTimeout: opts.AuthorizeTimeout,
		Logger:           logger,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return RunWifi(ctx, client, *cfg.Freebox, args[0], cmd.OutOrStdout())
}

// RunWifi opens a session, applies action and prints the resulting state.
func RunWifi(ctx context.Context, client freebox.Client, target config.Freebox, action string, w io.Writer) error {
	if err := client.Open(ctx, target.Host, target.Port); err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer client.Close(context.Background())

	sw := wifiswitch.New(client, false)
	switch action {
	case wifiswitch.StateOn:
		if err := sw.TurnOn(ctx); err != nil {
			return err
		}
	case wifiswitch.StateOff:
		if err := sw.TurnOff(ctx); err != nil {
			return err
		}
	case "status":
	default:
		return fmt.Errorf("unknown action %q", action)
	}

	if err := sw.Update(ctx); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(w, "%s: %s\n", sw.Name(), sw.State())
	if !sw.Available() {
		_, _ = fmt.Fprintln(w, "Missing \"settings\" permission: grant it in Freebox OS to change the WiFi state")
	}
	return nil
}
