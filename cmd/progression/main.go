// Package main is the entry point for the progression CLI
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/KirkDiggler/rpg-progression/internal/errors"
	"github.com/KirkDiggler/rpg-progression/internal/logging"
)

// Setting keys, also the flag names
const (
	keyConfig      = "config"
	keyCatalogDir  = "catalog-dir"
	keyStore       = "store"
	keyDataDir     = "data-dir"
	keyRedisAddr   = "redis-addr"
	keyLogLevel    = "log-level"
	keyMetricsFile = "metrics-file"
)

// Character stores
const (
	storeFile  = "file"
	storeRedis = "redis"
)

var settings = viper.New()

var rootCmd = &cobra.Command{
	Use:   "progression",
	Short: "VP character progression",
	Long: `progression buys abilities for VP characters, runs the free class grants
and prints the character sheet. Characters are stored as JSON files or in Redis.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initConfig,
}

// main exits with the gRPC code number of a classified error, see errors.ExitCode
func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(errors.ExitCode(err))
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String(keyConfig, "", "config file (yaml, json or toml)")
	flags.String(keyCatalogDir, "catalogs", "directory holding the ability catalogs")
	flags.String(keyStore, storeFile, "character store: file or redis")
	flags.String(keyDataDir, "characters", "directory of the file store")
	flags.String(keyRedisAddr, "localhost:6379", "redis address, comma separated for a cluster")
	flags.String(keyLogLevel, "warn", "log level: debug, info, warn or error")
	flags.String(keyMetricsFile, "", "write prometheus metrics to this file after each command")

	if err := settings.BindPFlags(flags); err != nil {
		panic(err)
	}
	settings.SetEnvPrefix("VP")
	settings.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	settings.AutomaticEnv()

	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(catalogsCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(buyCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(grantCmd)
	rootCmd.AddCommand(openCmd)
}

func initConfig(_ *cobra.Command, _ []string) error {
	if path := settings.GetString(keyConfig); path != "" {
		settings.SetConfigFile(path)
		if err := settings.ReadInConfig(); err != nil {
			return errors.WrapWithCodef(err, errors.CodeInvalidArgument, "failed to read config %s", path)
		}
	}

	level, err := logging.ParseLevel(settings.GetString(keyLogLevel))
	if err != nil {
		return err
	}
	slog.SetDefault(logging.New(level))

	switch store := settings.GetString(keyStore); store {
	case storeFile, storeRedis:
	default:
		return errors.InvalidArgumentf("unknown store %q, want %s or %s", store, storeFile, storeRedis)
	}

	return nil
}
