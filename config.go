package toollog

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flags holds CLI flag names for log configuration, allowing hosts to
// customize flag names while keeping sensible defaults via [NewConfig].
type Flags struct {
	File       string
	Level      string
	Mode       string
	Template   string
	DateFormat string
}

// NewConfig creates a new [Config] embedding these flag names.
func (f Flags) NewConfig() *Config {
	return &Config{
		Flags: f,
	}
}

// Config holds the logging configuration of one tool invocation.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags], or load values from a YAML document with
// [Config.LoadFile]. Use [Config.Apply] to initialize a [Session] from the
// stored values.
type Config struct {
	File       string `yaml:"file"`
	Level      string `yaml:"level"`
	Mode       string `yaml:"mode"`
	Template   string `yaml:"format"`
	DateFormat string `yaml:"date_format"`

	Flags Flags `yaml:"-"`
}

// NewConfig returns a new [Config] with default flag names.
// Use [Config.RegisterFlags] to add CLI flags, or set values directly.
func NewConfig() *Config {
	f := Flags{
		File:       "log-file",
		Level:      "log-level",
		Mode:       "log-mode",
		Template:   "log-format",
		DateFormat: "log-date-format",
	}

	return f.NewConfig()
}

// RegisterFlags adds logging flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.File, c.Flags.File, "log.txt", "log file path")
	flags.StringVar(&c.Level, c.Flags.Level, "info",
		fmt.Sprintf("log level, one of: %s", AllLevelStrings()))
	flags.StringVar(&c.Mode, c.Flags.Mode, "append",
		fmt.Sprintf("log file open mode, one of: %s", AllModeStrings()))
	flags.StringVar(&c.Template, c.Flags.Template, "",
		"log line template, empty for the computed default")
	flags.StringVar(&c.DateFormat, c.Flags.DateFormat, DefaultDateFormat,
		"log timestamp format, strftime syntax")
}

// RegisterCompletions registers shell completions for log flags on cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.RegisterFlagCompletionFunc(c.Flags.Level,
		cobra.FixedCompletions(AllLevelStrings(), cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Level, err)
	}

	err = cmd.RegisterFlagCompletionFunc(c.Flags.Mode,
		cobra.FixedCompletions(AllModeStrings(), cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Mode, err)
	}

	return nil
}

// LoadFile reads a YAML document from path into c. Unknown keys are
// rejected.
func (c *Config) LoadFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.UnmarshalWithOptions(b, c, yaml.Strict()); err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}

	return nil
}

// Apply parses the stored strings and initializes s from them, replacing
// whatever a previous invocation attached. Empty values fall back to the
// same defaults [Config.RegisterFlags] advertises. It delegates to
// [Session.Init].
func (c *Config) Apply(s *Session) error {
	level := c.Level
	if level == "" {
		level = "info"
	}

	lvl, err := ParseLevel(level)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	mode := c.Mode
	if mode == "" {
		mode = string(ModeAppend)
	}

	m, err := ParseMode(mode)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	file := c.File
	if file == "" {
		file = "log.txt"
	}

	return s.Init(file,
		WithLevel(lvl),
		WithTemplate(c.Template),
		WithDateFormat(c.DateFormat),
		WithMode(m),
	)
}
