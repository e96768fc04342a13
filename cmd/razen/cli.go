package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/HicaroD/razen/internal/compiler"
	"github.com/HicaroD/razen/internal/config"
	"github.com/HicaroD/razen/internal/logger"
	"github.com/HicaroD/razen/internal/verifier"
)

var APP_NAME = config.APP_NAME

// opt is a command-line option that can also be set through a RAZEN_
// environment variable.
type opt struct {
	destP any
	flag  string
	dflt  any
	desc  string
}

func bindOptions(v *viper.Viper, flags *pflag.FlagSet, opts []opt) {
	for _, o := range opts {
		switch destP := o.destP.(type) {
		case *string:
			flags.StringVar(destP, o.flag, cast.ToString(o.dflt), o.desc)
		case *int:
			flags.IntVar(destP, o.flag, cast.ToInt(o.dflt), o.desc)
		case *bool:
			flags.BoolVar(destP, o.flag, cast.ToBool(o.dflt), o.desc)
		case *[]string:
			// Repeatable flags only fall back to the environment.
			flags.StringArrayVar(destP, o.flag, cast.ToStringSlice(o.dflt), o.desc)
			if err := v.BindEnv(o.flag); err != nil {
				panic(err)
			}
			continue
		default:
			panic(fmt.Errorf("unknown destination type %T", o.destP))
		}
		if err := v.BindPFlag(o.flag, flags.Lookup(o.flag)); err != nil {
			panic(err)
		}
	}
}

// resolveOptions copies the viper values into the destinations, so that an
// environment variable applies when its flag was not given.
func resolveOptions(v *viper.Viper, opts []opt) {
	for _, o := range opts {
		switch destP := o.destP.(type) {
		case *string:
			*destP = v.GetString(o.flag)
		case *int:
			*destP = v.GetInt(o.flag)
		case *bool:
			*destP = v.GetBool(o.flag)
		case *[]string:
			if env := v.GetString(o.flag); len(*destP) == 0 && env != "" {
				*destP = strings.Fields(env)
			}
		}
	}
}

type flags struct {
	configPath       string
	defines          []string
	noBlockScope     bool
	noUnusedWarnings bool
	maxCycles        int
	logFormat        string
	logLevel         string
	metrics          bool
}

func (f *flags) opts() []opt {
	return []opt{
		{&f.configPath, "config", "", "path to a razen.toml file (defaults to the one in the user config directory)"},
		{&f.defines, "define", nil, "define a configuration constant, NAMESPACE::name=value (repeatable)"},
		{&f.noBlockScope, "no-block-scope", false, "do not give blocks and for..in loops their own scope"},
		{&f.noUnusedWarnings, "no-unused-warnings", false, "do not warn about unused imports"},
		{&f.maxCycles, "max-cycles", 0, "maximum number of verification passes (0 keeps the configured value)"},
		{&f.logFormat, "log-format", "auto", "log format: auto, console, logfmt or json"},
		{&f.logLevel, "log-level", "warn", "log level: debug, info, warn or error"},
		{&f.metrics, "metrics", false, "print verifier metrics in the Prometheus text format"},
	}
}

// compilerOptions loads the configuration file and applies the flags on top
// of it.
func (f *flags) compilerOptions() (*config.CompilerOptions, string, error) {
	path := f.configPath
	if path == "" {
		defaultPath, err := config.DefaultConfigFile()
		if err != nil {
			return nil, "", err
		}
		if _, err := os.Stat(defaultPath); err == nil {
			path = defaultPath
		}
	}

	opts := config.NewCompilerOptions()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, "", err
		}
		opts = loaded
	}

	if f.noBlockScope {
		opts.BlockScope = false
	}
	if f.noUnusedWarnings {
		opts.Warnings.Unused = false
	}
	if f.maxCycles > 0 {
		opts.MaxCycles = f.maxCycles
	}
	for _, flag := range f.defines {
		define, err := config.ParseDefineFlag(flag)
		if err != nil {
			return nil, "", err
		}
		opts.Defines[define.QualifiedName()] = defineSource(define.Value)
	}
	return opts, path, opts.Validate()
}

func defineSource(value any) string {
	if s, ok := value.(string); ok {
		return strconv.Quote(s)
	}
	return cast.ToString(value)
}

func (f *flags) logger(w io.Writer) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(f.logLevel)
	if err != nil {
		return nil, err
	}
	return logger.Config{Format: f.logFormat, Level: level}.New(w)
}

func newRootCommand() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(strings.ToUpper(APP_NAME))
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	f := new(flags)
	opts := f.opts()

	root := &cobra.Command{
		Use:           APP_NAME,
		Short:         "Verify ActionScript directives",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			resolveOptions(v, opts)
		},
	}
	bindOptions(v, root.PersistentFlags(), opts)

	root.AddCommand(
		newVerifyCommand(f),
		newScopesCommand(f),
		newEnvCommand(f),
	)
	return root
}

func newVerifyCommand(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "verify [files or directories...]",
		Short: "Verify the directives of a program",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var metrics *verifier.Metrics
			if f.metrics {
				metrics = verifier.NewMetrics()
			}
			result, err := compile(cmd, f, args, metrics)
			if result != nil {
				printDiagnostics(cmd.ErrOrStderr(), result)
			}
			if metrics != nil {
				if err := printMetrics(cmd.OutOrStdout(), metrics); err != nil {
					return err
				}
			}
			return err
		},
	}
}

func newScopesCommand(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "scopes [files or directories...]",
		Short: "Verify a program and print its scope tree",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := compile(cmd, f, args, nil)
			if result != nil {
				printDiagnostics(cmd.ErrOrStderr(), result)
				if result.Host != nil {
					fmt.Fprint(cmd.OutOrStdout(), verifier.DumpScopes(result.Host, result.Program))
				}
			}
			return err
		},
	}
}

func newEnvCommand(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Show the resolved configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, path, err := f.compilerOptions()
			if err != nil {
				return err
			}
			return printEnv(cmd.OutOrStdout(), path, opts)
		},
	}
}

func compile(cmd *cobra.Command, f *flags, paths []string, metrics *verifier.Metrics) (*compiler.Result, error) {
	opts, _, err := f.compilerOptions()
	if err != nil {
		return nil, err
	}
	log, err := f.logger(cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	defer log.Sync()

	ctx := logger.NewContextWithLogger(cmd.Context(), log)
	c := compiler.New(opts, compiler.WithMetrics(metrics))
	return c.CompileFiles(ctx, paths)
}

func printDiagnostics(w io.Writer, result *compiler.Result) {
	for _, diag := range result.Collector.Sorted() {
		fmt.Fprintln(w, diag.String())
	}
}

func printMetrics(w io.Writer, metrics *verifier.Metrics) error {
	registry := prometheus.NewRegistry()
	registry.MustRegister(metrics.PrometheusCollectors()...)
	families, err := registry.Gather()
	if err != nil {
		return errors.Wrap(err, "gathering metrics")
	}
	for _, family := range families {
		if _, err := expfmt.MetricFamilyToText(w, family); err != nil {
			return errors.Wrap(err, "writing metrics")
		}
	}
	return nil
}
