package cmd

import (
	"errors"
	"fmt"
	"os"

	"freebox-gate/internal/config"
	"freebox-gate/internal/logging"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	appVersion = "dev"
	logger     = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "freebox-gate",
	Short: "Discover and control a Freebox",
	Long: `freebox-gate connects to a Freebox (v6, mini 4K and later) over the
Freebox OS API and exposes its WiFi radio as a switch.`,
	SilenceUsage:      true,
	PersistentPreRunE: initConfig,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Config file (default: ./freebox-gate.yaml or ~/.config/freebox-gate/freebox-gate.yaml)")
	rootCmd.PersistentFlags().String("config-dir", ".", "Directory holding the Freebox app token (env: FREEBOX_CONFIG_DIR)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error (env: FREEBOX_LOG_LEVEL)")
	rootCmd.PersistentFlags().String("api-version", "v4", "Freebox OS API version")
	rootCmd.PersistentFlags().String("ca-file", "", "PEM bundle used to verify the Freebox certificate (env: FREEBOX_CA_FILE)")

	_ = viper.BindPFlag("config-dir", rootCmd.PersistentFlags().Lookup("config-dir"))
	_ = viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("api-version", rootCmd.PersistentFlags().Lookup("api-version"))
	_ = viper.BindPFlag("ca-file", rootCmd.PersistentFlags().Lookup("ca-file"))
}

// Execute runs the root command.
func Execute(version string) {
	appVersion = version
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func initConfig(cmd *cobra.Command, args []string) error {
	envErr := godotenv.Load()

	config.SetDefaults(viper.GetViper())
	if file, _ := cmd.Flags().GetString("config"); file != "" {
		viper.SetConfigFile(file)
	} else {
		viper.SetConfigName("freebox-gate")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home + "/.config/freebox-gate")
		}
	}
	configErr := viper.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if configErr != nil && !errors.As(configErr, &notFound) {
		return fmt.Errorf("read config: %w", configErr)
	}

	l, err := logging.New(viper.GetString("log-level"))
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	logger = l
	if envErr != nil {
		logger.Debug("No .env file found, using environment variables")
	}
	if configErr == nil {
		logger.Debug("Using config file", zap.String("file", viper.ConfigFileUsed()))
	}
	return nil
}
