package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/LukasForst/katlib/core/config"
	"github.com/LukasForst/katlib/core/log"
)

const envPrefix = "KATLIB"

type globalOptions struct {
	cfgFile string
	verbose bool

	cfg    *config.Config
	logger *log.Logger
}

// NewRootCommand builds the katlib command tree
func NewRootCommand() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:   "katlib",
		Short: "katlib - collection and sampling utilities",
		Long: `katlib exposes the library's utilities on the command line.

Commands:
  pick     - weighted random pick
  order    - weighted random ordering
  hash     - base64 digests of files or stdin
  json     - pretty printing and schema validation
  env      - environment variable lookup`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd.ErrOrStderr())
		},
	}

	root.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (TOML or YAML)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(
		newPickCommand(opts),
		newOrderCommand(opts),
		newHashCommand(),
		newJSONCommand(),
		newEnvCommand(),
		newVersionCommand(),
	)
	return root
}

// Execute runs the command tree with the process arguments
func Execute() error {
	return NewRootCommand().Execute()
}

// setup loads the configuration and installs the default logger
func (o *globalOptions) setup(stderr io.Writer) error {
	if o.cfgFile != "" {
		cfg, err := config.Load(o.cfgFile)
		if err != nil {
			return err
		}
		o.cfg = cfg.WithEnvPrefix(envPrefix)
	} else {
		o.cfg = config.Empty().WithEnvPrefix(envPrefix)
	}

	level, err := log.ParseLevel(o.cfg.GetString("log.level", "warn"))
	if err != nil {
		return err
	}
	if o.verbose {
		level = log.LevelDebug
	}
	format, err := log.ParseFormat(o.cfg.GetString("log.format", "text"))
	if err != nil {
		return err
	}

	if stderr == nil {
		stderr = os.Stderr
	}
	o.logger = log.NewWithConfig(log.Config{
		Level:  level,
		Format: format,
		Output: stderr,
		Name:   "katlib",
	})
	log.SetDefault(o.logger)
	o.logger.Debug("configuration loaded", log.String("config", o.cfgFile))
	return nil
}
