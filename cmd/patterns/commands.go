package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"solana-patterns/internal/config"
	"solana-patterns/internal/highlight"
	"solana-patterns/internal/logger"
	"solana-patterns/internal/markup"
	"solana-patterns/internal/models"
	"solana-patterns/internal/server"
	"solana-patterns/internal/tui"
	"solana-patterns/internal/widgets"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var ErrPatternNotFound = errors.New("pattern not found")

func (a *app) find(id string) (models.SecurityPattern, error) {
	ds, err := a.dataset()
	if err != nil {
		return models.SecurityPattern{}, err
	}
	p, ok := ds.Find(id)
	if !ok {
		return models.SecurityPattern{}, errors.Wrapf(ErrPatternNotFound, "%q", id)
	}
	return p, nil
}

// codeOf — код нужного варианта; neutral для паттерна смысла не имеет
func codeOf(p models.SecurityPattern, variant string) (string, error) {
	v, ok := widgets.ParseVariant(variant)
	switch {
	case ok && v == widgets.VariantVulnerable:
		return p.VulnerableCode, nil
	case ok && v == widgets.VariantSecure:
		return p.SecureCode, nil
	default:
		return "", errors.Newf("unknown variant %q (vulnerable, secure)", variant)
	}
}

type listEntry struct {
	ID       string `json:"id" yaml:"id"`
	Title    string `json:"title" yaml:"title"`
	Severity string `json:"severity" yaml:"severity"`
	Category string `json:"category" yaml:"category"`
	Path     string `json:"path" yaml:"path"`
}

func newListCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all patterns in display order",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ds, err := a.dataset()
			if err != nil {
				return err
			}

			patterns := ds.All()
			entries := make([]listEntry, len(patterns))
			for i, p := range patterns {
				entries[i] = listEntry{
					ID:       p.ID,
					Title:    p.Title,
					Severity: string(p.Severity),
					Category: p.Category,
					Path:     widgets.PatternPath(p.ID),
				}
			}
			return writeList(cmd.OutOrStdout(), format, entries)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "table", "output format (table, json, yaml)")
	return cmd
}

func writeList(w io.Writer, format string, entries []listEntry) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return err
		}
		return enc.Close()
	case "table":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tSEVERITY\tCATEGORY\tTITLE")
		for _, e := range entries {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.ID, strings.ToUpper(e.Severity), e.Category, e.Title)
		}
		return tw.Flush()
	default:
		return errors.Newf("unknown format %q (table, json, yaml)", format)
	}
}

func newShowCmd(a *app) *cobra.Command {
	var variant string

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Print a pattern, or only its raw code with --variant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.find(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if variant != "" {
				code, err := codeOf(p, variant)
				if err != nil {
					return err
				}
				_, err = io.WriteString(out, code)
				return err
			}
			writePattern(out, p)
			return nil
		},
	}

	cmd.Flags().StringVarP(&variant, "variant", "v", "", "print only the code: vulnerable or secure")
	return cmd
}

func writePattern(w io.Writer, p models.SecurityPattern) {
	fmt.Fprintf(w, "%s [%s] %s\n\n%s\n", p.Title, strings.ToUpper(p.Severity.Label()), p.Category, p.Description)

	section := func(title, text string) {
		if strings.TrimSpace(text) == "" {
			return
		}
		fmt.Fprintf(w, "\n== %s ==\n", title)
		for _, b := range markup.Parse(text) {
			switch b.Kind {
			case markup.Bullet:
				fmt.Fprintf(w, "  - %s\n", b.Plain())
			case markup.Ordered:
				fmt.Fprintf(w, "  %d. %s\n", b.Number, b.Plain())
			default:
				fmt.Fprintln(w, b.Plain())
			}
		}
	}
	code := func(v widgets.Variant, src string) {
		fmt.Fprintf(w, "\n-- %s --\n%s\n", v.Label(), strings.TrimSpace(src))
	}

	section("The Problem", p.Explanation)
	code(widgets.VariantVulnerable, p.VulnerableCode)
	section("Why it is vulnerable", p.VulnerableExplanation)
	code(widgets.VariantSecure, p.SecureCode)
	section("Why it is secure", p.SecureExplanation)
	section("Attack Scenario", p.AttackScenario)

	if len(p.Prevention) > 0 {
		fmt.Fprintln(w, "\n== Prevention Checklist ==")
		for _, item := range p.Prevention {
			fmt.Fprintf(w, "  ✓ %s\n", item)
		}
	}
	if len(p.References) > 0 {
		fmt.Fprintln(w, "\n== References ==")
		for _, ref := range p.References {
			fmt.Fprintf(w, "  %s: %s\n", ref.Title, ref.URL)
		}
	}
}

func newCopyCmd(a *app) *cobra.Command {
	var variant string

	cmd := &cobra.Command{
		Use:   "copy <id>",
		Short: "Copy a code example to the system clipboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.find(args[0])
			if err != nil {
				return err
			}
			code, err := codeOf(p, variant)
			if err != nil {
				return err
			}
			if err := a.sink.Write(cmd.Context(), code); err != nil {
				return errors.Wrap(err, "copy")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Copied! %s code of %s\n", variant, p.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&variant, "variant", "v", string(widgets.VariantSecure), "vulnerable or secure")
	return cmd
}

func newBrowseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "browse",
		Aliases: []string{"b"},
		Short:   "Interactive pattern browser",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ds, err := a.dataset()
			if err != nil {
				return err
			}
			cfg, err := a.config()
			if err != nil {
				return err
			}
			return tui.Run(ds, highlight.New(cfg.HighlightStyle), a.sink)
		},
	}
}

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "serve",
		Aliases: []string{"s"},
		Short:   "Serve the patterns web site",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.config()
			if err != nil {
				return err
			}
			ds, err := a.dataset()
			if err != nil {
				return err
			}

			log := logger.New(cfg.LogLevel, cfg.LogFormat)
			defer func() { _ = log.Sync() }()

			if err := server.Run(cmd.Context(), cfg, ds, log); err != nil {
				log.Error("server error", zap.Error(err))
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringP("port", "p", "8080", "port to listen on")
	_ = a.v.BindPFlag(config.KeyServerPort, cmd.Flags().Lookup("port"))
	return cmd
}
