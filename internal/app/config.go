package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/specialistvlad/aeroconst/internal/render"
)

// Command names accepted by the app.
const (
	CommandList    = "list"
	CommandEval    = "eval"
	CommandVerify  = "verify"
	CommandVersion = "version"
)

// DefaultClassName is the class constants are published on.
const DefaultClassName = "Aerospike"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Command string
	Args    []string

	ClassName string
	Format    string

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and returns a copy with defaults applied.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Command == "" {
		return nil, errors.New("a command is required (list, eval, verify, version)")
	}
	if cfg.ClassName == "" {
		cfg.ClassName = DefaultClassName
	}
	if !hclsyntax.ValidIdentifier(cfg.ClassName) {
		return nil, fmt.Errorf("invalid class name %q: must be a valid identifier", cfg.ClassName)
	}
	if cfg.Format == "" {
		cfg.Format = string(render.FormatText)
	}
	format, err := render.ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}
	cfg.Format = string(format)

	switch cfg.Command {
	case CommandList, CommandVersion:
	case CommandEval:
		if len(cfg.Args) == 0 || strings.TrimSpace(strings.Join(cfg.Args, "")) == "" {
			return nil, errors.New("eval requires an expression, e.g. 'Aerospike.OPT_TTL'")
		}
	case CommandVerify:
		if len(cfg.Args) == 0 {
			return nil, errors.New("verify requires at least one symbol file or directory")
		}
	default:
		return nil, fmt.Errorf("unknown command %q", cfg.Command)
	}

	return &cfg, nil
}

// Expression returns the eval arguments joined into one expression.
func (c *Config) Expression() string {
	return strings.Join(c.Args, " ")
}
