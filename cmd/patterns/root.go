// Command patterns — каталог паттернов безопасности Solana в терминале:
// список, просмотр, копирование кода, полноэкранный браузер и веб-сервер.
package main

import (
	"solana-patterns/internal/clipboard"
	"solana-patterns/internal/config"
	"solana-patterns/internal/content"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// app — то, что нужно всем подкомандам. Датасет грузится лениво один раз.
type app struct {
	v    *viper.Viper
	sink clipboard.Sink
	ds   *content.Dataset
}

func (a *app) dataset() (*content.Dataset, error) {
	if a.ds != nil {
		return a.ds, nil
	}
	ds, err := content.Load()
	if err != nil {
		return nil, errors.Wrap(err, "load patterns")
	}
	a.ds = ds
	return ds, nil
}

func (a *app) config() (*config.Config, error) {
	cfg := config.FromViper(a.v)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newRootCmd(v *viper.Viper, sink clipboard.Sink) *cobra.Command {
	a := &app{v: v, sink: sink}

	root := &cobra.Command{
		Use:   "patterns",
		Short: "Solana security patterns: vulnerable vs secure code",
		Long: `Browse common Solana program vulnerabilities side by side with their fixes.

Quick Start:
  patterns list                          List all patterns
  patterns show missing-signer-check     Print one pattern
  patterns copy arbitrary-cpi -v secure  Copy the secure example to the clipboard
  patterns browse                        Interactive browser
  patterns serve --port 8080             Start the web site`,
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.StringP("log-level", "l", "info", "log level (debug, info, warn, error)")
	flags.String("log-format", "console", "log format (console, json)")
	flags.String("style", "monokai", "syntax highlighting style")
	bindFlags(v, flags, map[string]string{
		"log-level":  config.KeyLogLevel,
		"log-format": config.KeyLogFormat,
		"style":      config.KeyHighlightStyle,
	})

	root.AddCommand(
		newListCmd(a),
		newShowCmd(a),
		newCopyCmd(a),
		newBrowseCmd(a),
		newServeCmd(a),
	)
	return root
}

// bindFlags — флаг побеждает env и .env, но только если его указали явно
func bindFlags(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) {
	for name, key := range keys {
		_ = v.BindPFlag(key, flags.Lookup(name))
	}
}
