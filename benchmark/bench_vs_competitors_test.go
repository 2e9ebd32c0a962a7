package benchmark_test

import (
	"io"
	"testing"

	clutils "github.com/definitelyprobably/libclutils"
	"github.com/shayne/yargs"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/urfave/cli/v2"
)

// Benchmark simple CLI with basic flags
// Every library parses the same tokens into a bare flag and a flag with input

var simpleArgs = []string{"--port", "9000", "--verbose", "file.txt"}

func BenchmarkSimpleCLI_Clutils(b *testing.B) {
	p, err := clutils.NewParserWith(
		clutils.WithMandatory("-p", "--port"),
		clutils.WithBare("-v", "--verbose"),
		clutils.WithArguments(clutils.Unlimited))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = p.Parse(simpleArgs...)
	}
}

func BenchmarkSimpleCLI_Pflag(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		fs := pflag.NewFlagSet("bench", pflag.ContinueOnError)
		fs.SetOutput(io.Discard)
		fs.IntP("port", "p", 8080, "Server port")
		fs.BoolP("verbose", "v", false, "Verbose output")
		_ = fs.Parse(simpleArgs)
	}
}

func BenchmarkSimpleCLI_Cobra(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		rootCmd := &cobra.Command{
			Use: "bench",
			Run: func(_ *cobra.Command, _ []string) {},
		}
		rootCmd.Flags().IntP("port", "p", 8080, "Server port")
		rootCmd.Flags().BoolP("verbose", "v", false, "Verbose output")
		rootCmd.SetArgs(simpleArgs)
		rootCmd.SetOut(io.Discard)
		_ = rootCmd.Execute()
	}
}

func BenchmarkSimpleCLI_Urfave(b *testing.B) {
	args := append([]string{"bench"}, simpleArgs...)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		app := &cli.App{
			Name:   "bench",
			Writer: io.Discard,
			Flags: []cli.Flag{
				&cli.IntFlag{Name: "port", Aliases: []string{"p"}, Value: 8080, Usage: "Server port"},
				&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "Verbose output"},
			},
			Action: func(_ *cli.Context) error { return nil },
		}
		_ = app.Run(args)
	}
}

type simpleFlags struct {
	Port    int  `flag:"port" short:"p" help:"Server port"`
	Verbose bool `flag:"verbose" short:"v" help:"Verbose output"`
}

func BenchmarkSimpleCLI_Yargs(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = yargs.ParseFlags[simpleFlags](simpleArgs)
	}
}

// Benchmark chained short flags
// Tests splitting of one token into several bare flags plus a trailing input

var chainedArgs = []string{"-xvzf", "archive.tar", "-C", "/tmp", "--", "a", "b"}

func BenchmarkChained_Clutils(b *testing.B) {
	p, err := clutils.NewParserWith(
		clutils.WithBare("-x"),
		clutils.WithBare("-v"),
		clutils.WithBare("-z"),
		clutils.WithMandatory("-f"),
		clutils.WithMandatory("-C"),
		clutils.WithStop("--"),
		clutils.WithArguments(clutils.Unlimited))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = p.Parse(chainedArgs...)
	}
}

func BenchmarkChained_Pflag(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		fs := pflag.NewFlagSet("bench", pflag.ContinueOnError)
		fs.SetOutput(io.Discard)
		fs.BoolP("extract", "x", false, "")
		fs.BoolP("verbose", "v", false, "")
		fs.BoolP("gzip", "z", false, "")
		fs.StringP("file", "f", "", "")
		fs.StringP("directory", "C", "", "")
		_ = fs.Parse(chainedArgs)
	}
}

// Benchmark many flags
// Tests lookup cost once the declaration table grows

var manyArgs = []string{
	"--flag1", "test1",
	"--flag2=test2",
	"--flag3", "test3",
	"--port", "9000",
	"--verbose",
	"--debug",
}

func BenchmarkManyFlags_Clutils(b *testing.B) {
	p, err := clutils.NewParserWith(
		clutils.WithMandatory("--flag1"),
		clutils.WithMandatory("--flag2"),
		clutils.WithMandatory("--flag3"),
		clutils.WithMandatory("--flag4"),
		clutils.WithMandatory("--flag5"),
		clutils.WithMandatory("--port"),
		clutils.WithBare("--verbose"),
		clutils.WithBare("--debug"),
		clutils.WithBare("--quiet"),
		clutils.WithBare("--force"))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = p.Parse(manyArgs...)
	}
}

func BenchmarkManyFlags_Cobra(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		rootCmd := &cobra.Command{
			Use: "bench",
			Run: func(_ *cobra.Command, _ []string) {},
		}
		for _, name := range []string{"flag1", "flag2", "flag3", "flag4", "flag5"} {
			rootCmd.Flags().String(name, "", "")
		}
		rootCmd.Flags().Int("port", 8080, "")
		for _, name := range []string{"verbose", "debug", "quiet", "force"} {
			rootCmd.Flags().Bool(name, false, "")
		}
		rootCmd.SetArgs(manyArgs)
		rootCmd.SetOut(io.Discard)
		_ = rootCmd.Execute()
	}
}

func BenchmarkManyFlags_Urfave(b *testing.B) {
	args := append([]string{"bench"}, manyArgs...)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		flags := []cli.Flag{&cli.IntFlag{Name: "port"}}
		for _, name := range []string{"flag1", "flag2", "flag3", "flag4", "flag5"} {
			flags = append(flags, &cli.StringFlag{Name: name})
		}
		for _, name := range []string{"verbose", "debug", "quiet", "force"} {
			flags = append(flags, &cli.BoolFlag{Name: name})
		}
		app := &cli.App{
			Name:   "bench",
			Writer: io.Discard,
			Flags:  flags,
			Action: func(_ *cli.Context) error { return nil },
		}
		_ = app.Run(args)
	}
}

// Benchmark error reporting
// Tests the cost of recording and rendering diagnostics

func BenchmarkErrors_Clutils(b *testing.B) {
	p, err := clutils.NewParserWith(
		clutils.WithBare("-a"),
		clutils.WithMandatory("-x"),
		clutils.WithPreamble("bench: invalid usage\n"))
	if err != nil {
		b.Fatal(err)
	}
	args := []string{"-a=1", "-q", "stray", "-x"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = p.Parse(args...)
		_ = p.WriteErrors(io.Discard)
	}
}
