package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/vk/qualbench/internal/app"
	"github.com/vk/qualbench/internal/forks"
	"github.com/vk/qualbench/internal/profile"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
// The first argument is the action selector; everything after it is flags.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("qualbench", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
qualbench - conformance harness for pluggable image-quality providers.

Usage:
  qualbench vectorq -i inputFile [options]

Options:
`)
		flagSet.PrintDefaults()
	}

	configDirFlag := flagSet.String("c", "config", "Directory of provider configuration files.")
	outputDirFlag := flagSet.String("o", "output", "Directory for shard files and result logs.")
	stemFlag := flagSet.String("s", "validate", "Filename stem for result logs.")
	inputFlag := flagSet.String("i", "", "Path to the input manifest.")
	forksFlag := flagSet.Int("f", 1, "Number of worker processes to fork.")
	providerFlag := flagSet.String("p", "reference", "Name of the registered provider to evaluate.")
	profileFlag := flagSet.String("profile", "", "Optional HCL run profile supplying flag defaults.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Logging level. Options: 'debug', 'info', 'warn', 'error'.")

	// Worker mode is internal plumbing between the parent and its spawned
	// children; operators never set these.
	workerShardFlag := flagSet.String("worker-shard", "", "Internal: shard file for this worker process.")
	workerLogFlag := flagSet.String("worker-log", "", "Internal: result log for this worker process.")

	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		if len(args) > 0 && (args[0] == "-h" || args[0] == "-help" || args[0] == "--help") {
			flagSet.Usage()
			return nil, true, nil
		}
		flagSet.Usage()
		return nil, false, &ExitError{Code: forks.ExitUsage, Message: "an action is required"}
	}
	action := args[0]

	if err := flagSet.Parse(args[1:]); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: forks.ExitUsage, Message: err.Error()}
	}

	if *profileFlag != "" {
		prof, err := profile.Load(*profileFlag)
		if err != nil {
			return nil, false, &ExitError{Code: forks.ExitUsage, Message: err.Error()}
		}
		if err := applyProfile(flagSet, prof); err != nil {
			return nil, false, &ExitError{Code: forks.ExitUsage, Message: err.Error()}
		}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: forks.ExitUsage, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: forks.ExitUsage, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	config, err := app.NewConfig(app.Config{
		Action:      action,
		Provider:    *providerFlag,
		ConfigDir:   *configDirFlag,
		OutputDir:   *outputDirFlag,
		Stem:        *stemFlag,
		InputFile:   *inputFlag,
		Forks:       *forksFlag,
		LogLevel:    logLevel,
		LogFormat:   logFormat,
		WorkerShard: *workerShardFlag,
		WorkerLog:   *workerLogFlag,
	})
	if err != nil {
		flagSet.Usage()
		return nil, false, &ExitError{Code: forks.ExitUsage, Message: err.Error()}
	}

	return config, false, nil
}

// applyProfile fills in profile values for every flag the user did not set
// explicitly. Precedence is flag > profile > built-in default. A profile
// value the flag cannot accept is a usage error, not a silent skip.
func applyProfile(flagSet *flag.FlagSet, prof *profile.Profile) error {
	set := make(map[string]bool)
	flagSet.Visit(func(f *flag.Flag) { set[f.Name] = true })

	var applyErr error
	assign := func(name string, value string) {
		if applyErr != nil || set[name] || value == "" {
			return
		}
		if err := flagSet.Set(name, value); err != nil {
			applyErr = fmt.Errorf("invalid profile value for -%s: %v", name, err)
		}
	}
	if prof.Provider != nil {
		assign("p", *prof.Provider)
	}
	if prof.ConfigDir != nil {
		assign("c", *prof.ConfigDir)
	}
	if prof.OutputDir != nil {
		assign("o", *prof.OutputDir)
	}
	if prof.Stem != nil {
		assign("s", *prof.Stem)
	}
	if prof.Forks != nil {
		assign("f", fmt.Sprintf("%d", *prof.Forks))
	}
	if prof.LogLevel != nil {
		assign("log-level", *prof.LogLevel)
	}
	if prof.LogFormat != nil {
		assign("log-format", *prof.LogFormat)
	}
	return applyErr
}
