package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/idelchi/fsaudit/internal/audit"
	"github.com/idelchi/fsaudit/internal/logger"
)

// RootEnv names the environment variable consulted when no path is given.
const RootEnv = "FSAUDIT_ROOT"

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// settings collects flag values that need parsing before they become audit.Options.
type settings struct {
	options  audit.Options
	maxSize  string
	logLevel string
	summary  bool
	noColor  bool
}

// Command builds the root cobra command.
func (c CLI) Command() *cobra.Command {
	cfg := settings{options: audit.DefaultOptions()}

	cmd := &cobra.Command{
		Use:   "fsaudit [flags] [path]",
		Short: "Report duplicate names, large files and suspicious names in a directory tree",
		Long: heredoc.Doc(`
			fsaudit walks a directory tree and prints three sections:

			  Duplicate Files        base names shared by two or more paths
			  Large Files            files above the size threshold
			  Suspicious File Names  backup/temporary suffixes (~ .bak .old .tmp)
			                         and hidden names other than .env

			Directories named .git and node_modules are never entered.
			Duplicates are detected by file name only, not by content.

			The path is taken from the first argument, or from $FSAUDIT_ROOT.
		`),
		Version:       c.version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.resolve(args); err != nil {
				return err
			}

			return logic(cmd.Context(), cfg, cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.SortFlags = false
	flags.StringVarP(&cfg.maxSize, "max-size", "s", "5MiB",
		"Large-file threshold in binary units (e.g., 5MiB, 512KiB); 5MB means 5,000,000 bytes")
	flags.BoolVar(&cfg.options.SkipUnreadable, "skip-unreadable", false,
		"Skip directories that cannot be read instead of aborting")
	flags.BoolVar(&cfg.options.DedupeSuspicious, "dedupe-suspicious", false,
		"List a file once even if it matches several suspicious-name rules")
	flags.IntVarP(&cfg.options.Workers, "workers", "w", cfg.options.Workers, "Number of traversal workers")
	flags.BoolVar(&cfg.summary, "summary", false, "Print scan statistics after the report")
	flags.BoolVar(&cfg.noColor, "no-color", false, "Disable colored section headers")
	flags.StringVar(&cfg.logLevel, "log-level", "info", "Log level: debug, info, warn or error")

	return cmd
}

// resolve validates flags and fills in the root path.
func (s *settings) resolve(args []string) error {
	if !logger.ValidLevel(s.logLevel) {
		return fmt.Errorf("invalid log level %q", s.logLevel)
	}

	logger.Init(s.logLevel)

	if s.options.Workers < 1 {
		return errors.New("workers must be at least 1")
	}

	size, err := humanize.ParseBytes(s.maxSize)
	if err != nil {
		return fmt.Errorf("invalid max-size: %w", err)
	}

	s.options.MaxFileSizeMB = float64(size) / audit.BytesPerMB

	switch {
	case len(args) > 0:
		s.options.Path = args[0]
	case os.Getenv(RootEnv) != "":
		s.options.Path = os.Getenv(RootEnv)
	default:
		return fmt.Errorf("no path given: pass one as an argument or set $%s", RootEnv)
	}

	return nil
}

// Execute runs the CLI with the process arguments.
func (c CLI) Execute() error {
	return c.Command().Execute()
}
