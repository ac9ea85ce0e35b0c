package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/abhisek/sm2/internal/config"
	"github.com/abhisek/sm2/internal/logging"
	"github.com/abhisek/sm2/internal/store"
)

// Execute runs the sm2 command tree.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the sm2 command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sm2",
		Short: "SM-2 spaced repetition scheduler",
		Long: "sm2 computes the next repetition count, easiness factor and review interval\n" +
			"of a learning item using the SM-2 algorithm.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
	}

	rootCmd.PersistentFlags().String("config", "", "config file (default .sm2.yaml)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SM2_DB env var)")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(newReviewCmd())
	rootCmd.AddCommand(newIntervalCmd())
	rootCmd.AddCommand(newNewCmd())
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newDeleteCmd())
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// setup loads configuration and installs the logger before any subcommand runs.
func setup(cmd *cobra.Command, _ []string) error {
	if err := initConfig(cmd); err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := logging.Init(cmd.ErrOrStderr(), cfg.LogLevel); err != nil {
		return err
	}
	return nil
}

func initConfig(cmd *cobra.Command) error {
	flags := cmd.Root().PersistentFlags()
	if err := viper.BindPFlag("db", flags.Lookup("db")); err != nil {
		return err
	}
	if err := viper.BindPFlag("log_level", flags.Lookup("log-level")); err != nil {
		return err
	}

	if cfgFile, _ := flags.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".sm2")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("SM2")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// It's fine if no config file is found; we use defaults.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("read config: %w", err)
		}
	}
	return nil
}

// openStore resolves the database path and opens the store.
// The --db flag wins, then SM2_DB, then the default XDG path.
func openStore() (*store.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	dbPath := cfg.DB
	if dbPath != "" {
		err = store.EnsureDir(dbPath)
	} else {
		dbPath, err = store.DefaultDBPath()
	}
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}
