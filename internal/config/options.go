package config

import (
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
)

const (
	DEFAULT_MAX_CYCLES = 32
)

// CompilerOptions is the read-only compiler configuration consulted by the
// verifier.
type CompilerOptions struct {
	AS3        bool `toml:"as3"`
	InferTypes bool `toml:"infer-types"`
	// Whether to use block scoped properties.
	// If this is true:
	// * All block statements will create their own scope, and
	// * for..in will contribute any bindings to a new scope
	//   surrounding the loop's body.
	BlockScope bool `toml:"block-scope"`
	// Whether to allow Markdown text in ASDoc comments.
	ASDocMarkdown bool `toml:"asdoc-markdown"`
	// Used for inheriting the type of the this object.
	InheritThisType bool `toml:"inherit-this-type"`
	// Used for identifying the AS3 package in a MXML source tree.
	SourcePath []string `toml:"source-path"`

	// MaxCycles bounds the number of verification passes over a program.
	MaxCycles int `toml:"max-cycles"`

	// Defines maps qualified configuration constants (CONFIG::debug) to
	// their source text (true, 10, "str").
	Defines map[string]string `toml:"defines"`

	Warnings CompilerWarningOptions `toml:"warnings"`
}

type CompilerWarningOptions struct {
	Unused bool `toml:"unused"`
}

func NewCompilerOptions() *CompilerOptions {
	return &CompilerOptions{
		AS3:             true,
		InferTypes:      true,
		BlockScope:      true,
		ASDocMarkdown:   true,
		InheritThisType: true,
		SourcePath:      []string{},
		MaxCycles:       DEFAULT_MAX_CYCLES,
		Defines:         map[string]string{},
		Warnings: CompilerWarningOptions{
			Unused: true,
		},
	}
}

// Load decodes a TOML file on top of the default options.
func Load(path string) (*CompilerOptions, error) {
	opts := NewCompilerOptions()
	if _, err := toml.DecodeFile(path, opts); err != nil {
		return nil, errors.Wrapf(err, "decoding compiler options %s", path)
	}
	return opts, opts.Validate()
}

// Decode is Load for in-memory TOML documents.
func Decode(data string) (*CompilerOptions, error) {
	opts := NewCompilerOptions()
	if _, err := toml.Decode(data, opts); err != nil {
		return nil, errors.Wrap(err, "decoding compiler options")
	}
	return opts, opts.Validate()
}

func (opts *CompilerOptions) Validate() error {
	if opts.MaxCycles <= 0 {
		return errors.Errorf("max-cycles must be positive, got %d", opts.MaxCycles)
	}
	for _, qname := range opts.sortedDefineNames() {
		if _, err := ParseDefine(qname, opts.Defines[qname]); err != nil {
			return err
		}
	}
	return nil
}

// Clone returns a deep copy, so command-line overrides never leak into a
// shared options value.
func (opts *CompilerOptions) Clone() *CompilerOptions {
	clone := *opts
	clone.SourcePath = append([]string{}, opts.SourcePath...)
	clone.Defines = make(map[string]string, len(opts.Defines))
	for k, v := range opts.Defines {
		clone.Defines[k] = v
	}
	return &clone
}

type Define struct {
	Namespace string
	Name      string
	// Value is a bool, a float64 or a string.
	Value any
}

func (d Define) QualifiedName() string { return d.Namespace + "::" + d.Name }

// ParseDefine converts one entry of Defines. Values are tried as booleans,
// then numbers; anything else is a string, with surrounding quotes removed.
func ParseDefine(qname, value string) (Define, error) {
	ns, name, ok := strings.Cut(qname, "::")
	if !ok || ns == "" || name == "" {
		return Define{}, errors.Errorf("invalid configuration constant name %q, expected NAMESPACE::name", qname)
	}

	define := Define{Namespace: ns, Name: name}
	value = strings.TrimSpace(value)
	if value == "true" || value == "false" {
		define.Value = value == "true"
	} else if n, err := cast.ToFloat64E(value); err == nil {
		define.Value = n
	} else {
		define.Value = strings.Trim(value, `"'`)
	}
	return define, nil
}

// ParseDefineFlag splits a command-line define, NS::name=value or the
// mxmlc-style NS::name,value.
func ParseDefineFlag(flag string) (Define, error) {
	sep := strings.IndexAny(flag, "=,")
	if sep < 0 {
		return Define{}, errors.Errorf("invalid define %q, expected NAMESPACE::name=value", flag)
	}
	return ParseDefine(flag[:sep], flag[sep+1:])
}

// ParsedDefines returns the defines ordered by qualified name.
func (opts *CompilerOptions) ParsedDefines() ([]Define, error) {
	var defines []Define
	for _, qname := range opts.sortedDefineNames() {
		define, err := ParseDefine(qname, opts.Defines[qname])
		if err != nil {
			return nil, err
		}
		defines = append(defines, define)
	}
	return defines, nil
}

func (opts *CompilerOptions) sortedDefineNames() []string {
	names := make([]string, 0, len(opts.Defines))
	for qname := range opts.Defines {
		names = append(names, qname)
	}
	sort.Strings(names)
	return names
}
