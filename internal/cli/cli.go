package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/specialistvlad/aeroconst/internal/app"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable that can supply a flag default.
const EnvPrefix = "AEROCONST"

// DotEnvFiles are loaded, in order, before flag defaults are resolved.
// Variables already present in the environment are never overwritten.
var DotEnvFiles = []string{".env", ".env.local"}

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated AppConfig,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	env, err := newEnv()
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	flagSet := flag.NewFlagSet("aeroconst", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
aeroconst - Aerospike policy and option constants, published on a host class.

Usage:
  aeroconst [options] COMMAND [ARGS]

Commands:
  list [NAME...]       Print all constants, or only the named ones.
  eval EXPRESSION      Evaluate an HCL expression against the class, e.g. 'Aerospike.OPT_TTL'.
  verify PATH...       Compare integer constants with a symbol oracle (.hcl files or directories).
  version              Print the version and the native library it mirrors.

Every option can also be set through the environment as AEROCONST_<OPTION>,
e.g. AEROCONST_LOG_LEVEL=debug. .env and .env.local are read if present.

Options:
`)
		flagSet.PrintDefaults()
	}

	classFlag := flagSet.String("class", env.GetString("class"), "Name of the class the constants are published on.")
	formatFlag := flagSet.String("format", env.GetString("format"), "Output format. Options: 'text', 'json', 'yaml' or 'hcl'.")
	logFormatFlag := flagSet.String("log-format", env.GetString("log-format"), "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", env.GetString("log-level"), "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() == 0 {
		slog.Debug("No command provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}
	command := strings.ToLower(flagSet.Arg(0))
	if command == "help" {
		flagSet.Usage()
		return nil, true, nil
	}
	slog.Debug("Command determined.", "command", command)

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		Command:   command,
		Args:      flagSet.Args()[1:],
		ClassName: *classFlag,
		Format:    *formatFlag,
		LogFormat: logFormat,
		LogLevel:  logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

// newEnv loads the dotenv files and returns a viper instance that resolves
// flag defaults from AEROCONST_* variables.
func newEnv() (*viper.Viper, error) {
	for _, file := range DotEnvFiles {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("failed to load %s: %w", file, err)
		}
		slog.Debug("Loaded environment file.", "file", file)
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("class", app.DefaultClassName)
	v.SetDefault("format", "text")
	v.SetDefault("log-format", "text")
	v.SetDefault("log-level", "warn")
	return v, nil
}
