package cmd

import (
	"fmt"

	"github.com/cottand/fxtype/config"
	"github.com/cottand/fxtype/fxerr"
	"github.com/cottand/fxtype/internal/log"
	"github.com/cottand/fxtype/parser"
	"github.com/cottand/fxtype/schema"
	"github.com/cottand/fxtype/types"
	"github.com/spf13/cobra"
)

var logger = log.DefaultLogger.With("section", "cmd")

// rootFlags holds the persistent flags shared by every subcommand
type rootFlags struct {
	configPath  string
	schemaPaths []string
	logLevel    string
}

// NewRootCmd builds the fxtype command tree. Each call returns independent commands and flags.
func NewRootCmd() *cobra.Command {
	f := &rootFlags{}
	root := &cobra.Command{
		Use:          "fxtype [subcommand]",
		Short:        "fxtype checks and combines structural types written in the fx type grammar",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&f.configPath, "config", "c", "", "yaml configuration file")
	root.PersistentFlags().StringArrayVarP(&f.schemaPaths, "schemas", "s", nil, "yaml schema catalog, may be repeated")
	root.PersistentFlags().StringVarP(&f.logLevel, "log-level", "l", "", "log level: debug, info, warn or error")

	root.AddCommand(
		f.acceptsCmd(),
		f.coercesCmd(),
		f.unionCmd(),
		f.intersectCmd(),
		f.supertypeCmd(),
		f.fmtCmd(),
		f.describeCmd(),
		f.addCmd(),
		f.dropCmd(),
		f.setCmd(),
		f.dropKindCmd(),
	)
	return root
}

// session is what every subcommand needs: logging configured and named schemas available to the parser
type session struct {
	catalog *schema.Catalog
}

func (f *rootFlags) newSession() (*session, error) {
	conf := config.Default()
	if f.configPath != "" {
		var err error
		conf, err = config.ReadConfig(f.configPath)
		if err != nil {
			return nil, fmt.Errorf("could not read config %s: %w", f.configPath, err)
		}
	}
	conf.Schemas = append(conf.Schemas, f.schemaPaths...)
	if f.logLevel != "" {
		conf.LogLevel = f.logLevel
	}
	if err := conf.Apply(); err != nil {
		return nil, err
	}

	s := &session{}
	if len(conf.Schemas) > 0 {
		catalog, err := schema.LoadFile(conf.Schemas...)
		if err != nil {
			return nil, fmt.Errorf("could not load schemas: %w", err)
		}
		s.catalog = catalog
		logger.Debug("loaded schemas", "files", conf.Schemas, "names", catalog.Names())
	}
	return s, nil
}

func (s *session) parseType(text string) (types.Type, error) {
	var opts []parser.Option
	if s.catalog != nil {
		opts = append(opts, parser.WithSchemas(s.catalog))
	}
	t, err := parser.ParseType(text, opts...)
	if err != nil {
		if fxErr, ok := err.(fxerr.FxError); ok {
			return nil, fmt.Errorf("%s", fxerr.FormatInSource(fxErr, text))
		}
		return nil, err
	}
	return t, nil
}

func (s *session) parseTypes(texts []string) ([]types.Type, error) {
	parsed := make([]types.Type, len(texts))
	for i, text := range texts {
		t, err := s.parseType(text)
		if err != nil {
			return nil, err
		}
		parsed[i] = t
	}
	return parsed, nil
}

func parsePath(text string) (types.Path, error) {
	path, err := parser.ParsePath(text)
	if err != nil {
		if fxErr, ok := err.(fxerr.FxError); ok {
			return types.Root, fmt.Errorf("%s", fxerr.FormatInSource(fxErr, text))
		}
		return types.Root, err
	}
	return path, nil
}

// withTypes builds a RunE that parses every argument as a type before calling run
func (f *rootFlags) withTypes(run func(c *cobra.Command, ts []types.Type) error) func(*cobra.Command, []string) error {
	return func(c *cobra.Command, args []string) error {
		s, err := f.newSession()
		if err != nil {
			return err
		}
		ts, err := s.parseTypes(args)
		if err != nil {
			return err
		}
		return run(c, ts)
	}
}
