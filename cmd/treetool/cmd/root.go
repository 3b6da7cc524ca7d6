package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/imdario/mergo"
	"github.com/npillmayer/schuko/tracing"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/npillmayer/treetools/tree"
)

type rootOpts struct {
	cfgFile     string
	debugModeOn bool
}

// Config holds the settings shared by all commands. Settings come from
// flags, environment variables prefixed with TREETOOL_ and an optional
// config file, in that order of precedence.
type Config struct {
	Fields tree.FieldNames
	Format string
	Label  string
}

// Output formats.
const (
	formatJSON  = "json"
	formatYAML  = "yaml"
	formatTree  = "tree"
	formatTable = "table"
)

var supportedFormats = []string{formatJSON, formatYAML, formatTree, formatTable}

var longRootCmdDescription = `treetool searches, filters, flattens and builds trees of records
read from JSON or YAML documents. A top-level object is a single tree,
a top-level array is a forest. Field names for ids, parent ids and children
are configurable.
`

// treetool carries the state of one invocation.
type treetool struct {
	opts   rootOpts
	viper  *viper.Viper
	config Config
}

// NewRootCmd creates the treetool command with all of its subcommands.
func NewRootCmd() *cobra.Command {
	tt := &treetool{viper: viper.New()}
	rootCmd := &cobra.Command{
		Use:           "treetool",
		Short:         "A tool to traverse, search, filter and build trees of records.",
		Long:          longRootCmdDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return tt.initConfig()
		},
	}
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&tt.opts.cfgFile, "config", "", "config file of treetool (YAML, JSON or TOML)")
	flags.BoolVarP(&tt.opts.debugModeOn, "debug", "d", false, "turn on debug mode")
	flags.String("children", "", "name of the children field (default \"children\")")
	flags.String("id", "", "name of the id field (default \"id\")")
	flags.String("parent-id", "", "name of the parent id field (default \"parentId\")")
	flags.StringP("format", "f", "", fmt.Sprintf("output format, one of %v (default \"json\")", supportedFormats))
	flags.String("label", "", "field to print for a node (default: the id field)")
	for _, key := range []string{"children", "id", "parent-id", "format", "label"} {
		if err := tt.viper.BindPFlag(key, flags.Lookup(key)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %q: %v", key, err))
		}
	}
	rootCmd.AddCommand(
		NewBFSCmd(tt), NewDFSCmd(tt), NewFlattenCmd(tt),
		NewFindCmd(tt), NewPathCmd(tt), NewFilterCmd(tt),
		NewBuildCmd(tt),
	)
	rootCmd.DisableAutoGenTag = true
	return rootCmd
}

// Execute runs the treetool command. This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		logrus.Errorf("treetool: %v", err)
		os.Exit(1)
	}
}

// initConfig reads in config file and ENV variables if set.
func (tt *treetool) initConfig() error {
	if tt.opts.debugModeOn {
		logrus.SetLevel(logrus.DebugLevel)
		tracing.Select("treetools.tree").SetTraceLevel(tracing.LevelDebug)
		tracing.Select("treetools.query").SetTraceLevel(tracing.LevelDebug)
	}
	tt.viper.SetEnvPrefix("TREETOOL")
	tt.viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	tt.viper.AutomaticEnv() // read in environment variables that match
	if tt.opts.cfgFile != "" {
		tt.viper.SetConfigFile(tt.opts.cfgFile)
		if err := tt.viper.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "failed to read config file %s", tt.opts.cfgFile)
		}
		logrus.Debugf("using config file %s", tt.viper.ConfigFileUsed())
	}
	cfg, err := tt.loadConfig()
	if err != nil {
		return err
	}
	tt.config = cfg
	logrus.Debugf("field names are %s, output format is %s", cfg.Fields, cfg.Format)
	return nil
}

func defaultConfig() Config {
	return Config{
		Fields: tree.DefaultFieldNames(),
		Format: formatJSON,
	}
}

// loadConfig merges the settings found by viper over the defaults.
func (tt *treetool) loadConfig() (Config, error) {
	v := tt.viper
	cfg := Config{
		Fields: tree.FieldNames{
			ID:       v.GetString("id"),
			ParentID: v.GetString("parent-id"),
			Children: v.GetString("children"),
		},
		Format: strings.ToLower(v.GetString("format")),
		Label:  v.GetString("label"),
	}
	if err := mergo.Merge(&cfg, defaultConfig()); err != nil {
		return cfg, errors.Wrap(err, "failed to merge configuration")
	}
	if cfg.Label == "" {
		cfg.Label = cfg.Fields.ID
	}
	for _, f := range supportedFormats {
		if cfg.Format == f {
			return cfg, nil
		}
	}
	return cfg, errors.Errorf("unsupported output format %q, the possible values are %v", cfg.Format, supportedFormats)
}

// shape returns the record accessor for the configured field names.
func (tt *treetool) shape() tree.RecordShape {
	return tree.Fields(tt.config.Fields)
}
