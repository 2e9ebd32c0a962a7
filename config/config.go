// Package config describes a Parser declaratively so that declarations and
// policy can live in a TOML or YAML file.
//
//	name = "tar"
//	flag_markers = "-"
//
//	[policy]
//	greedy = "lax"
//	arguments = -1
//
//	[[flags]]
//	class = "bare"
//	names = ["short:c", "--create"]
//
//	[[flags]]
//	class = "mandatory"
//	max = 1
//	names = ["short:f", "--file"]
//
//	[templates]
//	missing_input = "%opt needs a value"
//
// A name may carry a "short:", "long:" or "unset:" prefix to fix its type;
// otherwise the type follows from the flag markers.
package config

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	clutils "github.com/definitelyprobably/libclutils"
	"github.com/definitelyprobably/libclutils/errs"
	"github.com/iancoleman/strcase"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Format is a configuration file syntax.
type Format int

const (
	TOML Format = iota
	YAML
)

func (f Format) String() string {
	if f == YAML {
		return "yaml"
	}
	return "toml"
}

// File is one parser description.
type File struct {
	Name         string            `toml:"name,omitempty" yaml:"name,omitempty"`
	Flags        []Declaration     `toml:"flags,omitempty" yaml:"flags,omitempty"`
	Policy       Policy            `toml:"policy,omitempty" yaml:"policy,omitempty"`
	FlagMarkers  string            `toml:"flag_markers,omitempty" yaml:"flag_markers,omitempty"`
	ExtraMarkers string            `toml:"extra_markers,omitempty" yaml:"extra_markers,omitempty"`
	InputMarker  string            `toml:"input_marker,omitempty" yaml:"input_marker,omitempty"`
	Preamble     string            `toml:"preamble,omitempty" yaml:"preamble,omitempty"`
	Postscript   string            `toml:"postscript,omitempty" yaml:"postscript,omitempty"`
	Language     string            `toml:"language,omitempty" yaml:"language,omitempty"`
	Templates    map[string]string `toml:"templates,omitempty" yaml:"templates,omitempty"`
}

// Declaration is one flag. A nil Max means unlimited.
type Declaration struct {
	Class string   `toml:"class" yaml:"class"`
	Max   *int     `toml:"max,omitempty" yaml:"max,omitempty"`
	Names []string `toml:"names" yaml:"names"`
}

// Policy mirrors the Parser setters. Nil pointers leave the Parser default.
type Policy struct {
	Greedy           string `toml:"greedy,omitempty" yaml:"greedy,omitempty"`
	OptionalGreedy   bool   `toml:"optional_greedy,omitempty" yaml:"optional_greedy,omitempty"`
	Chaining         *bool  `toml:"chaining,omitempty" yaml:"chaining,omitempty"`
	Arguments        *int   `toml:"arguments,omitempty" yaml:"arguments,omitempty"`
	Unrecognized     *int   `toml:"unrecognized,omitempty" yaml:"unrecognized,omitempty"`
	Aggressive       bool   `toml:"aggressive,omitempty" yaml:"aggressive,omitempty"`
	UnrecognizedOpts bool   `toml:"unrecognized_opts,omitempty" yaml:"unrecognized_opts,omitempty"`
	EmptyArguments   bool   `toml:"empty_arguments,omitempty" yaml:"empty_arguments,omitempty"`
	EmptyInputs      bool   `toml:"empty_inputs,omitempty" yaml:"empty_inputs,omitempty"`
}

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}

	return TOML, errs.ErrConfigFormat.WithArgs(filepath.Ext(path))
}

// Load reads and decodes the file at path.
func Load(path string) (*File, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	fh, err := os.Open(path)
	if err != nil {
		return nil, errs.ErrConfigDecode.WithArgs(path).Wrap(err)
	}
	defer fh.Close()

	f, err := Decode(fh, format)
	if err != nil {
		return nil, errs.ErrConfigDecode.WithArgs(path).Wrap(err)
	}

	return f, nil
}

// Decode reads a File. Keys the File does not know are an error.
func Decode(r io.Reader, format Format) (*File, error) {
	var f File

	switch format {
	case TOML:
		md, err := toml.NewDecoder(r).Decode(&f)
		if err != nil {
			return nil, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errs.ErrConfigDecode.WithArgs(undecoded[0].String())
		}
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	default:
		return nil, errs.ErrConfigFormat.WithArgs(format.String())
	}

	return &f, nil
}

// Encode writes f in format.
func (f *File) Encode(w io.Writer, format Format) error {
	switch format {
	case TOML:
		return toml.NewEncoder(w).Encode(f)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(f); err != nil {
			return err
		}
		return enc.Close()
	}

	return errs.ErrConfigFormat.WithArgs(format.String())
}

// NewParser builds a Parser from f.
func (f *File) NewParser() (*clutils.Parser, error) {
	opts, err := f.Options()
	if err != nil {
		return nil, err
	}

	return clutils.NewParserWith(opts...)
}

// Apply configures an existing Parser. Declarations are appended to any it
// already has.
func (f *File) Apply(p *clutils.Parser) error {
	opts, err := f.Options()
	if err != nil {
		return err
	}
	for _, opt := range opts {
		opt(p, &err)
		if err != nil {
			return err
		}
	}

	return nil
}

// Options translates f into parser options.
func (f *File) Options() ([]clutils.ConfigureParserFunc, error) {
	var opts []clutils.ConfigureParserFunc

	for _, d := range f.Flags {
		class, err := ParseClass(d.Class)
		if err != nil {
			return nil, err
		}
		max := clutils.Unlimited
		if d.Max != nil {
			max = *d.Max
		}
		opts = append(opts, clutils.WithDeclaration(class, max, ParseNames(d.Names)...))
	}

	if f.FlagMarkers != "" {
		opts = append(opts, clutils.WithFlagMarkers([]rune(f.FlagMarkers)...))
	}
	if f.ExtraMarkers != "" {
		extra := []rune(f.ExtraMarkers)
		opts = append(opts, func(p *clutils.Parser, err *error) {
			*err = p.AddFlagMarkers(extra...)
		})
	}
	if f.InputMarker != "" {
		r, size := utf8.DecodeRuneInString(f.InputMarker)
		if size != len(f.InputMarker) {
			return nil, errs.ErrInvalidMarker.WithArgs(f.InputMarker)
		}
		opts = append(opts, clutils.WithInputMarker(r))
	}

	policy, err := f.Policy.options()
	if err != nil {
		return nil, err
	}
	opts = append(opts, policy...)

	if f.Preamble != "" {
		opts = append(opts, clutils.WithPreamble(f.Preamble))
	}
	if f.Postscript != "" {
		opts = append(opts, clutils.WithPostscript(f.Postscript))
	}
	if f.Language != "" {
		tag, err := language.Parse(f.Language)
		if err != nil {
			return nil, errs.ErrUnknownLanguage.WithArgs(f.Language).Wrap(err)
		}
		opts = append(opts, clutils.WithLanguage(tag))
	}

	names := make([]string, 0, len(f.Templates))
	for name := range f.Templates {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		key, err := clutils.ParseErrorKey(name)
		if err != nil {
			return nil, err
		}
		opts = append(opts, clutils.WithErrorFormat(key, f.Templates[name]))
	}

	return opts, nil
}

func (p Policy) options() ([]clutils.ConfigureParserFunc, error) {
	var opts []clutils.ConfigureParserFunc

	if p.Greedy != "" {
		greedy, err := ParseGreedy(p.Greedy)
		if err != nil {
			return nil, err
		}
		opts = append(opts, clutils.WithGreedy(greedy))
	}
	opts = append(opts,
		clutils.WithOptionalGreedy(p.OptionalGreedy),
		clutils.WithEmptyArguments(p.EmptyArguments),
		clutils.WithEmptyInputs(p.EmptyInputs))

	if p.Chaining != nil {
		opts = append(opts, clutils.WithChaining(*p.Chaining))
	}
	if p.Arguments != nil {
		opts = append(opts, clutils.WithArguments(*p.Arguments))
	}
	if p.Unrecognized != nil {
		switch {
		case p.UnrecognizedOpts:
			opts = append(opts, clutils.WithUnrecognizedOpts(*p.Unrecognized))
		case p.Aggressive:
			opts = append(opts, clutils.WithUnrecognizedFlags(*p.Unrecognized, clutils.AggressiveYes))
		default:
			opts = append(opts, clutils.WithUnrecognizedFlags(*p.Unrecognized, clutils.AggressiveNo))
		}
	}

	return opts, nil
}

// ParseClass accepts a class name in any case convention.
func ParseClass(s string) (clutils.FlagClass, error) {
	switch strcase.ToSnake(strings.TrimSpace(s)) {
	case "bare":
		return clutils.Bare, nil
	case "optional":
		return clutils.Optional, nil
	case "mandatory":
		return clutils.Mandatory, nil
	case "stop":
		return clutils.Stop, nil
	}

	return clutils.Bare, errs.ErrUnknownClass.WithArgs(s)
}

// ParseGreedy accepts no/lax/yes and the booleans.
func ParseGreedy(s string) (clutils.Greedy, error) {
	switch strcase.ToSnake(strings.TrimSpace(s)) {
	case "no", "false", "off":
		return clutils.GreedyNo, nil
	case "lax":
		return clutils.GreedyLax, nil
	case "yes", "true", "on":
		return clutils.GreedyYes, nil
	}

	return clutils.GreedyNo, errs.ErrUnknownGreedy.WithArgs(s)
}

// ParseNames turns "short:c"-style entries into names.
func ParseNames(texts []string) []clutils.Name {
	names := make([]clutils.Name, 0, len(texts))
	for _, text := range texts {
		names = append(names, ParseName(text))
	}

	return names
}

func ParseName(text string) clutils.Name {
	prefix, rest, found := strings.Cut(text, ":")
	if found && rest != "" {
		switch prefix {
		case "short":
			return clutils.NewShortName(rest)
		case "long":
			return clutils.NewLongName(rest)
		case "unset":
			return clutils.NewTypedName(rest, clutils.UnsetType)
		}
	}

	return clutils.NewName(text)
}

// FormatName is the inverse of ParseName.
func FormatName(n clutils.Name) string {
	if !n.IsExplicit() {
		return n.Text()
	}

	return n.Type().String() + ":" + n.Text()
}
