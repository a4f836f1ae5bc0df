package featuredoc

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Output formats accepted by the CLI.
const (
	// FormatMarkdown emits the rendered fragment as-is.
	FormatMarkdown = "markdown"
	// FormatHTML converts the fragment to HTML via [RenderHTML].
	FormatHTML = "html"
)

// Flags holds CLI flag names for extraction configuration, allowing
// callers to customize flag names while keeping sensible defaults.
type Flags struct {
	Output string
	Label  string
	Format string
}

// Config holds CLI flag values for extraction configuration.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.NewExtractor] to create a validated
// [Extractor].
type Config struct {
	Flags  Flags
	Output string
	Label  string
	Format string
}

// NewConfig returns a new [Config] with default flag names.
func NewConfig() *Config {
	f := Flags{
		Output: "output",
		Label:  "label",
		Format: "format",
	}

	return &Config{Flags: f}
}

// RegisterFlags adds extraction flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&c.Output, c.Flags.Output, "o", "-",
		"output file path (- for stdout)")
	flags.StringVar(&c.Label, c.Flags.Label, DefaultFeatureLabel,
		"label template for rendered entries, must contain {feature}")
	flags.StringVar(&c.Format, c.Flags.Format, FormatMarkdown,
		fmt.Sprintf("output format, one of: %s, %s", FormatMarkdown, FormatHTML))
}

// RegisterCompletions registers shell completions for extraction flags on
// cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.RegisterFlagCompletionFunc(c.Flags.Format,
		cobra.FixedCompletions([]string{FormatMarkdown, FormatHTML},
			cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Format, err)
	}

	err = cmd.RegisterFlagCompletionFunc(c.Flags.Label,
		func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
			return nil, cobra.ShellCompDirectiveNoFileComp
		})
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Label, err)
	}

	return nil
}

// fileConfig is the YAML shape accepted by [Config.LoadFile].
type fileConfig struct {
	Output string `yaml:"output"`
	Label  string `yaml:"label"`
	Format string `yaml:"format"`
}

// LoadFile pre-seeds flag values from a YAML config file. Empty fields
// leave the corresponding value untouched, so flags set on the command
// line keep their values when registered after loading.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: config file: %w", ErrInvalidOption, err)
	}

	var fc fileConfig

	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("%w: config file %s: %w", ErrInvalidOption, path, err)
	}

	if fc.Output != "" {
		c.Output = fc.Output
	}

	if fc.Label != "" {
		c.Label = fc.Label
	}

	if fc.Format != "" {
		c.Format = fc.Format
	}

	return nil
}

// NewExtractor creates a validated [Extractor] using this [Config].
func (c *Config) NewExtractor() (*Extractor, error) {
	if c.Label != "" && !strings.Contains(c.Label, featurePlaceholder) {
		return nil, fmt.Errorf("%w: label template %q does not contain %s",
			ErrInvalidOption, c.Label, featurePlaceholder)
	}

	if c.Format != "" && c.Format != FormatMarkdown && c.Format != FormatHTML {
		return nil, fmt.Errorf("%w: unknown format %q", ErrInvalidOption, c.Format)
	}

	var opts []Option

	if c.Label != "" {
		opts = append(opts, WithFeatureLabel(c.Label))
	}

	return NewExtractor(opts...), nil
}
