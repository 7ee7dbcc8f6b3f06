package main

import (
	"os"

	"github.com/sessamekesh/fedpro-client/pkg/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type rootOptions struct {
	configPath string
	address    string
	mode       string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "fedpro-client",
		Short: "Federate Protocol client for talking to an RTI over WebSocket.",
		Long: `Federate Protocol client for talking to an RTI over WebSocket. ` +
			`Settings come from an optional TOML file, then FEDPRO_* ` +
			`environment variables, then flags.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "TOML config file")
	root.PersistentFlags().StringVarP(&opts.address, "address", "a", "", `compact address "<server>;<settings>;<rtiAddress>"`)
	root.PersistentFlags().StringVarP(&opts.mode, "mode", "m", "", "callback model: immediate or evoked")

	root.AddCommand(newListenCmd(opts))
	root.AddCommand(newParseAddressCmd(opts))
	return root
}

// load layers the config file, the environment and the flags, in that
// order.
func (opts *rootOptions) load() (config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return config.Config{}, err
	}

	if opts.address != "" {
		cfg.Address = opts.address
	}
	if opts.mode != "" {
		model, err := config.ParseCallbackModel(opts.mode)
		if err != nil {
			return config.Config{}, err
		}
		cfg.CallbackModel = model
	}

	if os.Getenv("APP_ENV") == "development" {
		cfg.LogDevelopment = true
	}

	return cfg, cfg.Validate()
}

func (opts *rootOptions) logger(cfg config.Config) *zap.Logger {
	logger, err := cfg.Logger()
	if err != nil {
		return zap.Must(zap.NewProduction())
	}
	return logger
}
