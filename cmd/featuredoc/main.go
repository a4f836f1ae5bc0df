// Command featuredoc extracts doc comments from a Cargo.toml manifest and
// renders a Markdown fragment documenting the crate's feature flags and
// optional dependencies.
//
// # Usage
//
//	featuredoc [flags] [path]
//
// path is a directory containing Cargo.toml (default "."), a manifest file,
// or "-" to read manifest text from stdin. When given a directory,
// Cargo.toml.orig is used as a fallback for packaged source trees whose
// manifests were stripped of comments.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/featuredoc/featuredoc/featuredoc"
	"github.com/featuredoc/featuredoc/log"
	"github.com/featuredoc/featuredoc/version"
)

func main() {
	cfg := featuredoc.NewConfig()
	logCfg := log.NewConfig()

	var configFile string

	rootCmd := &cobra.Command{
		Use:   "featuredoc [flags] [path]",
		Short: "Generate Markdown documentation for Cargo feature flags",
		Long: `featuredoc extracts ## and #! doc comments from a Cargo.toml manifest and
renders a Markdown fragment documenting the crate's feature flags and
optional dependencies, in source order, with default features annotated.`,
		Version:       version.Short(),
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			if configFile != "" {
				// Flags set on the command line win over config file values.
				if err := loadFileConfig(cmd, cfg, configFile); err != nil {
					return err
				}
			}

			handler, err := logCfg.NewHandler(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			slog.SetDefault(slog.New(handler))

			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			return run(cfg, path)
		},
	}

	cfg.RegisterFlags(rootCmd.Flags())
	logCfg.RegisterFlags(rootCmd.PersistentFlags())
	rootCmd.Flags().StringVar(&configFile, "config", "",
		"YAML config file pre-seeding flag values")

	completionErr := cfg.RegisterCompletions(rootCmd)
	if completionErr == nil {
		completionErr = logCfg.RegisterCompletions(rootCmd)
	}

	if completionErr != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", completionErr)
	}

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// loadFileConfig applies config file values underneath any flags the user
// set explicitly on the command line.
func loadFileConfig(cmd *cobra.Command, cfg *featuredoc.Config, path string) error {
	set := map[string]string{}

	for _, name := range []string{cfg.Flags.Output, cfg.Flags.Label, cfg.Flags.Format} {
		if cmd.Flags().Changed(name) {
			v, _ := cmd.Flags().GetString(name)
			set[name] = v
		}
	}

	if err := cfg.LoadFile(path); err != nil {
		return err
	}

	for name, v := range set {
		switch name {
		case cfg.Flags.Output:
			cfg.Output = v
		case cfg.Flags.Label:
			cfg.Label = v
		case cfg.Flags.Format:
			cfg.Format = v
		}
	}

	return nil
}

func run(cfg *featuredoc.Config, path string) error {
	ext, err := cfg.NewExtractor()
	if err != nil {
		return err
	}

	manifest, err := readManifest(path)
	if err != nil {
		return err
	}

	slog.Debug("loaded manifest", "path", path, "bytes", len(manifest))

	md, err := ext.Process(manifest)
	if err != nil {
		return err
	}

	out := []byte(md)

	if cfg.Format == featuredoc.FormatHTML {
		out, err = featuredoc.RenderHTML(out)
		if err != nil {
			return err
		}
	}

	if cfg.Output == "" || cfg.Output == "-" {
		_, err = os.Stdout.Write(out)
		if err != nil {
			return fmt.Errorf("%w: %w", featuredoc.ErrWriteOutput, err)
		}

		return nil
	}

	err = os.WriteFile(cfg.Output, out, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %w", featuredoc.ErrWriteOutput, err)
	}

	return nil
}

// readManifest resolves path into manifest text: "-" reads stdin, a
// directory goes through [featuredoc.LoadManifest] (with its .orig
// fallback), anything else is read as a file.
func readManifest(path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("%w: stdin: %w", featuredoc.ErrReadManifest, err)
		}

		return data, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", featuredoc.ErrReadManifest, err)
	}

	if info.IsDir() {
		return featuredoc.LoadManifest(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", featuredoc.ErrReadManifest, err)
	}

	return data, nil
}
