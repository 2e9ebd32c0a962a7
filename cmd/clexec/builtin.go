package main

import (
	"sort"
	"strconv"
	"strings"

	"github.com/definitelyprobably/libclutils/config"
	"github.com/definitelyprobably/libclutils/errs"
)

func ptr[T any](v T) *T {
	return &v
}

func decl(class string, max int, names ...string) config.Declaration {
	d := config.Declaration{Class: class, Names: names}
	if max >= 0 {
		d.Max = ptr(max)
	}
	return d
}

func stdconfigA() *config.File {
	return &config.File{
		Flags: []config.Declaration{
			decl("bare", -1, "-a", "--aflag"),
			decl("bare", -1, "-b"),
			decl("bare", -1, "--cflag"),
			decl("optional", -1, "-o", "--oflag"),
			decl("optional", -1, "-p"),
			decl("optional", -1, "--qflag"),
			decl("mandatory", -1, "-x", "--xflag"),
			decl("mandatory", -1, "-y"),
			decl("mandatory", -1, "--zflag"),
			decl("stop", -1, "--", "--stop", "-s"),
		},
	}
}

// stdconfigB adds occurrence limits to A's layout.
func stdconfigB() *config.File {
	return &config.File{
		Flags: []config.Declaration{
			decl("bare", -1, "-a", "--aflag"),
			decl("bare", 2, "-b"),
			decl("bare", 2, "--cflag"),
			decl("bare", 1, "-d", "--dflag"),
			decl("optional", -1, "-o", "--oflag"),
			decl("optional", 2, "-p"),
			decl("optional", 1, "--qflag"),
			decl("optional", 3, "-r", "--rflag"),
			decl("mandatory", -1, "-x", "--xflag"),
			decl("mandatory", 2, "-y"),
			decl("mandatory", 3, "--zflag"),
			decl("mandatory", 1, "-w", "--wflag"),
			decl("stop", 2, "--", "--stop", "-s"),
		},
	}
}

func stdconfigC() *config.File {
	return &config.File{
		Flags: []config.Declaration{
			decl("bare", -1, "-a", "+a", "--aflag"),
			decl("bare", 2, "-b", "+b", "--bflag"),
			decl("bare", -1, "-c", "--cflag"),
			decl("optional", -1, "-o", "+o", "--oflag"),
			decl("optional", 2, "-p", "+p", "--pflag"),
			decl("optional", -1, "-q", "--qflag"),
			decl("mandatory", -1, "-x", "+x", "--xflag"),
			decl("mandatory", 2, "-y", "+y", "--yflag"),
			decl("mandatory", -1, "-z", "--zflag"),
			decl("bare", -1, "-"),
		},
		FlagMarkers:  "-+",
		ExtraMarkers: "_",
	}
}

// stdconfigD declares markerless names, some with a forced type.
func stdconfigD() *config.File {
	return &config.File{
		Flags: []config.Declaration{
			decl("bare", -1, "a"),
			decl("bare", -1, "bflag"),
			decl("bare", -1, "short:c", "long:cflag"),
			decl("bare", -1, "long:d", "short:dflag"),
			decl("bare", -1, "e", "eflag"),
			decl("optional", -1, "o"),
			decl("optional", -1, "pflag"),
			decl("optional", -1, "short:q", "long:qflag"),
			decl("optional", -1, "long:r", "short:rflag"),
			decl("optional", -1, "long:n", "short:nflag"),
			decl("mandatory", -1, "x"),
			decl("mandatory", -1, "yflag"),
			decl("mandatory", -1, "short:z", "long:zflag"),
			decl("mandatory", -1, "long:w", "short:wflag"),
			decl("mandatory", 0, "v", "vflag"),
			decl("stop", -1, "s", "stop"),
			decl("stop", 0, "t", "tstop"),
			decl("stop", -1, "long:u", "short:ustop"),
		},
	}
}

// stdconfigE overlaps names across marker styles.
func stdconfigE() *config.File {
	return &config.File{
		Flags: []config.Declaration{
			decl("bare", -1, "-a", "a", "aa", "--aa"),
			decl("bare", -1, "aaa", "--aaa"),
			decl("bare", -1, "short:aaaa"),
			decl("optional", -1, "+o", "o", "oo", "++oo"),
			decl("optional", -1, "ooo", "++ooo"),
			decl("optional", -1, "short:oooo"),
			decl("mandatory", -1, "-x", "+x", "x", "xx", "--xx", "++xx"),
			decl("mandatory", -1, "xxx"),
			decl("mandatory", -1, "short:xxxx"),
		},
		ExtraMarkers: "+",
	}
}

// greedyMatrix is the policy grid shared by the numbered configurations 18
// to 41: every mandatory greedy level against optional greedy off and on,
// each with nothing, arguments, unrecognized flags, or both collected.
func greedyMatrix(n int) config.Policy {
	idx := n - 18
	greedy := []string{"no", "lax", "yes"}[(idx/4)%3]
	policy := config.Policy{Greedy: greedy, OptionalGreedy: idx >= 12}

	switch idx % 4 {
	case 1:
		policy.Arguments = ptr(-1)
	case 2:
		policy.Unrecognized = ptr(-1)
	case 3:
		policy.Arguments = ptr(-1)
		policy.Unrecognized = ptr(-1)
		policy.UnrecognizedOpts = true
	}

	return policy
}

func with(base func() *config.File, policy config.Policy) func() *config.File {
	return func() *config.File {
		f := base()
		f.Policy = policy
		return f
	}
}

var builtins = map[string]func() *config.File{
	"stdconfigA": stdconfigA,
	"stdconfigB": stdconfigB,
	"stdconfigC": stdconfigC,
	"stdconfigD": stdconfigD,
	"stdconfigE": stdconfigE,

	"config1":  with(stdconfigA, config.Policy{Greedy: "yes"}),
	"config2":  with(stdconfigA, config.Policy{Greedy: "no", EmptyArguments: true, EmptyInputs: true}),
	"config3":  with(stdconfigA, config.Policy{Greedy: "lax"}),
	"config4":  with(stdconfigA, config.Policy{Greedy: "no", Arguments: ptr(-1)}),
	"config5":  with(stdconfigA, config.Policy{Greedy: "lax", Arguments: ptr(-1)}),
	"config6":  with(stdconfigA, config.Policy{Greedy: "yes", Arguments: ptr(-1)}),
	"config7":  with(stdconfigA, config.Policy{Greedy: "no", Unrecognized: ptr(-1)}),
	"config8":  with(stdconfigA, config.Policy{Greedy: "lax", Unrecognized: ptr(-1)}),
	"config9":  with(stdconfigA, config.Policy{Greedy: "yes", Unrecognized: ptr(-1)}),
	"config10": with(stdconfigB, config.Policy{Greedy: "yes", Arguments: ptr(3)}),
	"config11": with(stdconfigC, config.Policy{Greedy: "no"}),
	"config12": with(stdconfigC, config.Policy{Greedy: "yes", Arguments: ptr(2)}),
	"config13": func() *config.File {
		f := with(stdconfigD, config.Policy{Greedy: "yes", Arguments: ptr(2)})()
		f.InputMarker = "~"
		return f
	},
	"config14": with(stdconfigE, config.Policy{EmptyInputs: true}),
	"config15": with(stdconfigE, config.Policy{EmptyInputs: true, Arguments: ptr(8), EmptyArguments: true}),
	"config16": with(stdconfigE, config.Policy{Chaining: ptr(true), Unrecognized: ptr(-1), UnrecognizedOpts: true}),
	"config17": with(stdconfigE, config.Policy{Chaining: ptr(false), Unrecognized: ptr(-1), UnrecognizedOpts: true}),
}

func init() {
	for n := 18; n <= 41; n++ {
		builtins["config"+strconv.Itoa(n)] = with(stdconfigA, greedyMatrix(n))
	}
}

// builtin returns a fresh copy of the named configuration.
func builtin(name string) (*config.File, error) {
	mk, ok := builtins[name]
	if !ok {
		return nil, errs.ErrUnknownConfig.WithArgs(name)
	}

	f := mk()
	f.Name = name
	return f, nil
}

func builtinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := names[i], names[j]
		if len(a) != len(b) && strings.HasPrefix(a, "config") && strings.HasPrefix(b, "config") {
			return len(a) < len(b)
		}
		return a < b
	})

	return names
}
