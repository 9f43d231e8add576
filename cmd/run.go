package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"freebox-gate/internal/config"
	"freebox-gate/internal/discovery"
	"freebox-gate/internal/hub"
	"freebox-gate/internal/integration"
	"freebox-gate/internal/wifiswitch"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// runCmd connects to the Freebox, polls the switch and serves the HTTP API.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Connect to the Freebox, poll the WiFi switch and serve the HTTP API",
	Long: `Connect to the Freebox given by --host/--port (or the freebox section of the
config file). Without a static host, the Freebox is discovered over mDNS.`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().String("host", "", "Freebox API host (env: FREEBOX_HOST)")
	runCmd.Flags().Int("port", 0, "Freebox API HTTPS port (env: FREEBOX_PORT)")
	runCmd.Flags().Duration("interval", hub.DefaultPollInterval, "Interval between entity polls")
	runCmd.Flags().Int("web-port", 8080, "Port of the HTTP API")
	runCmd.Flags().Duration("authorize-timeout", 2*time.Minute, "How long to wait for access to be granted on the Freebox display")

	_ = viper.BindPFlag("freebox.host", runCmd.Flags().Lookup("host"))
	_ = viper.BindPFlag("freebox.port", runCmd.Flags().Lookup("port"))
	_ = viper.BindPFlag("interval", runCmd.Flags().Lookup("interval"))
	_ = viper.BindPFlag("web-port", runCmd.Flags().Lookup("web-port"))
	_ = viper.BindPFlag("authorize-timeout", runCmd.Flags().Lookup("authorize-timeout"))
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	h := hub.New(logger)
	h.RegisterPlatform(integration.PlatformSwitch, wifiswitch.SetupPlatform)

	integ := integration.Setup(ctx, h, integrationOptions(cfg))
	if cfg.Freebox != nil && !integ.Ready() {
		logger.Warn("Freebox unreachable, the switch stays unavailable until restart",
			zap.String("host", cfg.Freebox.Host), zap.Int("port", cfg.Freebox.Port))
	}

	if cfg.Freebox == nil {
		browser := discovery.NewBrowser(discovery.ServiceFreebox, logger)
		go func() {
			err := browser.Run(ctx, func(ev discovery.Event) { h.Discover(ctx, ev) })
			if err != nil {
				logger.Error("Discovery stopped", zap.Error(err))
			}
		}()
	}

	server := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.WebPort),
		Handler:           NewAPIHandler(h, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		_ = server.Close()
	}()
	go func() {
		logger.Info("API server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server error", zap.Error(err))
		}
	}()

	h.Poll(ctx, cfg.Interval)

	logger.Info("Received interrupt, shutting down")
	stopCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return h.Stop(stopCtx)
}

func integrationOptions(cfg *config.Config) integration.Options {
	return integration.Options{
		Static:           cfg.Freebox,
		TokenFile:        cfg.TokenFile(),
		APIVersion:       cfg.APIVersion,
		CAFile:           cfg.CAFile,
		AuthorizeTimeout: cfg.AuthorizeTimeout,
		Version:          appVersion,
	}
}

type toggle interface {
	TurnOn(ctx context.Context) error
	TurnOff(ctx context.Context) error
}

// NewAPIHandler serves entity snapshots and the WiFi switch commands.
//
//	GET  /status              entity snapshots
//	POST /switch/wifi/on|off  forward the command to the Freebox
func NewAPIHandler(h *hub.Hub, logger *zap.Logger) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /status", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, h.Data.Entities())
	})
	mux.HandleFunc("POST /switch/wifi/{action}", func(w http.ResponseWriter, r *http.Request) {
		e, ok := h.Entity(wifiswitch.Name)
		if !ok {
			http.Error(w, "switch not loaded", http.StatusServiceUnavailable)
			return
		}
		sw, ok := e.(toggle)
		if !ok {
			http.Error(w, "entity is not a switch", http.StatusInternalServerError)
			return
		}

		action := r.PathValue("action")
		var err error
		switch action {
		case wifiswitch.StateOn:
			err = sw.TurnOn(r.Context())
		case wifiswitch.StateOff:
			err = sw.TurnOff(r.Context())
		default:
			http.Error(w, "unknown action "+action, http.StatusBadRequest)
			return
		}
		if err != nil {
			logger.Error("Switch command failed", zap.String("action", action), zap.Error(err))
			http.Error(w, err.Error(), http.StatusBadGateway)
			return
		}
		writeJSON(w, http.StatusAccepted, map[string]string{"entity": e.Name(), "requested": action})
	})
	return mux
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
