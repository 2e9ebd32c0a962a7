// Command clexec parses its arguments with a named parser configuration and
// prints what the parser recorded, one item per line:
//
//	I:{flag}:{pos}:{subpos}[:{input}:{external}]
//	U:{flag}:{pos}
//	A:{arg}:{pos}
//	E:{errno}:{pos}:{subpos}:{type}:{opt}:{input}
//	ret:{0|1}
//
// Instances, unrecognized flags and arguments are printed when parsing
// succeeds, errors when it does not. Empty texts print as _empty_.
//
// Usage:
//
//	clexec [--file path] [--color mode] [--lang tag] [--line] [--dump format] [--] [config] args...
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	clutils "github.com/definitelyprobably/libclutils"
	"github.com/definitelyprobably/libclutils/config"
	"github.com/definitelyprobably/libclutils/util"
	"github.com/fatih/color"
	"github.com/shayne/yargs"
	"golang.org/x/text/language"
)

// Exit codes.
const (
	exitOK = iota
	exitUsage
	exitUnknownConfig
	exitFailure
)

const errorTemplate = "E:%errno:%pos:%subpos:%type:%opt:%input"

type options struct {
	File  string `flag:"file" help:"Load the parser from a TOML or YAML file instead of a built-in configuration"`
	Color string `flag:"color" help:"Colorize output: auto, always or never"`
	Lang  string `flag:"lang" help:"Language of the error messages; implies the default templates"`
	Line  bool   `flag:"line" help:"Join the arguments and split them again with shell quoting rules"`
	Dump  string `flag:"dump" help:"Print the configuration as toml or yaml instead of parsing"`
}

// valued lists the options which take the next token as their value.
var valued = map[string]bool{"--file": true, "--color": true, "--lang": true, "--dump": true}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, util.DefaultTerminal{}))
}

func run(args []string, stdout, stderr io.Writer, term util.Terminal) int {
	head, rest := splitOptions(args)
	result, err := yargs.ParseFlags[options](head)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}
	opts := result.Flags

	var f *config.File
	if opts.File != "" {
		if f, err = config.Load(opts.File); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitFailure
		}
	} else {
		if len(rest) == 0 {
			fmt.Fprintln(stderr, "Error: no configuration given")
			return exitUsage
		}
		if f, err = builtin(rest[0]); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			fmt.Fprintf(stderr, "available: %s\n", strings.Join(builtinNames(), " "))
			return exitUnknownConfig
		}
		rest = rest[1:]
	}

	if opts.Dump != "" {
		return dump(f, opts.Dump, stdout, stderr)
	}

	p, err := newParser(f, opts.Lang)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitFailure
	}

	var hadErrors bool
	if opts.Line {
		hadErrors, err = p.ParseString(strings.Join(rest, " "))
	} else {
		hadErrors, err = p.Parse(rest...)
	}
	if err != nil {
		fmt.Fprintf(stderr, "exception: %v\n", err)
		return exitFailure
	}

	pr := newPrinter(stdout, util.ColorEnabled(term, fdOf(stdout), opts.Color, os.Getenv("NO_COLOR") != ""))
	if hadErrors {
		err = pr.errors(p)
	} else {
		err = pr.results(p)
	}
	if err != nil {
		fmt.Fprintf(stderr, "exception: %v\n", err)
		return exitFailure
	}
	pr.ret(hadErrors)

	return exitOK
}

// splitOptions separates clexec's own leading options from the tokens
// handed to the configured parser. The first token that is not one of the
// options ends them, and a "--" at that point is dropped.
func splitOptions(args []string) ([]string, []string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return args[:i], args[i+1:]
		}
		name, _, hasValue := strings.Cut(arg, "=")
		switch {
		case name == "--line" && !hasValue:
		case valued[name]:
			if !hasValue {
				i++
			}
		default:
			return args[:i], args[i:]
		}
	}

	return args, nil
}

func newParser(f *config.File, lang string) (*clutils.Parser, error) {
	p, err := f.NewParser()
	if err != nil {
		return nil, err
	}

	if lang != "" {
		tag, err := language.Parse(lang)
		if err != nil {
			return nil, err
		}
		if err = p.SetLanguage(tag); err != nil {
			return nil, err
		}
		return p, nil
	}

	own := make(map[clutils.ErrorKey]bool, len(f.Templates))
	for name := range f.Templates {
		key, err := clutils.ParseErrorKey(name)
		if err != nil {
			return nil, err
		}
		own[key] = true
	}

	for _, key := range clutils.ErrorKeys() {
		if own[key] {
			continue
		}
		if err = p.FormatError(key, errorTemplate); err != nil {
			return nil, err
		}
	}

	return p, nil
}

func dump(f *config.File, format string, stdout, stderr io.Writer) int {
	var err error
	switch strings.ToLower(format) {
	case "toml":
		err = f.Encode(stdout, config.TOML)
	case "yaml", "yml":
		err = f.Encode(stdout, config.YAML)
	default:
		err = fmt.Errorf("unknown dump format %q", format)
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitFailure
	}

	return exitOK
}

func fdOf(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		return int(f.Fd())
	}
	return -1
}

type printer struct {
	w                             io.Writer
	inst, unrec, arg, fail, plain *color.Color
}

func newPrinter(w io.Writer, colored bool) *printer {
	pr := &printer{
		w:     w,
		inst:  color.New(color.FgGreen),
		unrec: color.New(color.FgYellow),
		arg:   color.New(color.FgCyan),
		fail:  color.New(color.FgRed),
		plain: color.New(color.Reset),
	}
	for _, c := range []*color.Color{pr.inst, pr.unrec, pr.arg, pr.fail, pr.plain} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return pr
}

func (pr *printer) results(p *clutils.Parser) error {
	for _, name := range p.RegisteredFlags() {
		instances, err := p.Instances(name)
		if err != nil {
			return err
		}
		for _, in := range instances {
			line := fmt.Sprintf("I:%s:%d:%d", in.Name(), in.Pos(), in.SubPos())
			if in.HasInput() {
				line += fmt.Sprintf(":%s:%d", text(in.Input().Text()), btoi(in.Input().IsExternal()))
			}
			pr.inst.Fprintln(pr.w, line)
		}
	}
	for _, u := range p.UnrecognizedFlags() {
		pr.unrec.Fprintf(pr.w, "U:%s:%d\n", text(u.Text()), u.Pos())
	}
	for _, a := range p.Arguments() {
		pr.arg.Fprintf(pr.w, "A:%s:%d\n", text(a.Text()), a.Pos())
	}

	return nil
}

func (pr *printer) errors(p *clutils.Parser) error {
	var buf bytes.Buffer
	if err := p.WriteErrors(&buf); err != nil {
		return err
	}
	for _, line := range strings.SplitAfter(buf.String(), "\n") {
		if line == "" {
			continue
		}
		pr.fail.Fprint(pr.w, line)
	}

	return nil
}

func (pr *printer) ret(hadErrors bool) {
	pr.plain.Fprintf(pr.w, "ret:%d\n", btoi(hadErrors))
}

func text(s string) string {
	if s == "" {
		return "_empty_"
	}
	return s
}

func btoi(b bool) int {
	if b {
		return 1
	}
	return 0
}
