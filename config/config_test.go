package config

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	clutils "github.com/definitelyprobably/libclutils"
	"github.com/definitelyprobably/libclutils/errs"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

var tarFile = &File{
	Name:        "tar",
	FlagMarkers: "-",
	Preamble:    "tar: invalid usage\n",
	Policy: Policy{
		Greedy:    "lax",
		Arguments: ptr(-1),
	},
	Flags: []Declaration{
		{Class: "bare", Names: []string{"short:c", "--create"}},
		{Class: "bare", Names: []string{"short:v", "--verbose"}},
		{Class: "mandatory", Max: ptr(1), Names: []string{"short:f", "--file"}},
		{Class: "stop", Names: []string{"--"}},
	},
	Templates: map[string]string{"missing_input": "%opt needs a value"},
}

func TestLoad(t *testing.T) {
	for _, name := range []string{"tar.toml", "tar.yaml"} {
		t.Run(name, func(t *testing.T) {
			f, err := Load(filepath.Join("testdata", name))
			require.NoError(t, err)
			if diff := cmp.Diff(tarFile, f); diff != "" {
				t.Errorf("Load() mismatch (-want +got):\n%s", diff)
			}
		})
	}

	_, err := Load(filepath.Join("testdata", "tar.json"))
	assert.ErrorIs(t, err, errs.ErrConfigFormat)
	_, err = Load(filepath.Join("testdata", "missing.toml"))
	assert.ErrorIs(t, err, errs.ErrConfigDecode)
}

func TestFile_NewParser(t *testing.T) {
	p, err := tarFile.NewParser()
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "v", "f", "--"}, p.RegisteredFlags())

	hadErrors, err := p.Parse("cvf", "archive.tar", "notes.txt", "--", "--file")
	require.NoError(t, err)
	assert.False(t, hadErrors)

	input, err := p.GetInput("--file", 0)
	require.NoError(t, err)
	assert.Equal(t, "archive.tar", input.Text())
	assert.True(t, input.IsExternal())

	var args []string
	for _, a := range p.Arguments() {
		args = append(args, a.Text())
	}
	assert.Equal(t, []string{"notes.txt", "--file"}, args)

	hadErrors, err = p.Parse("--file")
	require.NoError(t, err)
	assert.True(t, hadErrors)
	var buf bytes.Buffer
	require.NoError(t, p.WriteErrors(&buf))
	assert.Equal(t, "tar: invalid usage\n--file needs a value\n", buf.String())
}

func TestFile_Apply(t *testing.T) {
	p := clutils.NewParser()
	require.NoError(t, p.AddBare("-z"))

	f := &File{
		Flags:        []Declaration{{Class: "Optional", Names: []string{"++o"}}},
		ExtraMarkers: "+",
		InputMarker:  ":",
		Language:     "de",
		Policy: Policy{
			Chaining:     ptr(false),
			Unrecognized: ptr(2),
			Aggressive:   true,
			EmptyInputs:  true,
		},
	}
	require.NoError(t, f.Apply(p))
	assert.Equal(t, []rune{'-', '+'}, p.FlagMarkers())
	assert.Equal(t, ':', p.InputMarker())

	_, err := p.Parse("-z", "++o:x", "-q")
	require.NoError(t, err)
	input, err := p.GetInput("++o", 0)
	require.NoError(t, err)
	assert.Equal(t, "x", input.Text())
	assert.Len(t, p.UnrecognizedFlags(), 1)
}

func TestFile_Options_Errors(t *testing.T) {
	tests := []struct {
		name string
		file File
		want error
	}{
		{"bad class", File{Flags: []Declaration{{Class: "sometimes", Names: []string{"-a"}}}}, errs.ErrUnknownClass},
		{"bad greedy", File{Policy: Policy{Greedy: "very"}}, errs.ErrUnknownGreedy},
		{"bad input marker", File{InputMarker: "=="}, errs.ErrInvalidMarker},
		{"bad language", File{Language: "!!"}, errs.ErrUnknownLanguage},
		{"bad template", File{Templates: map[string]string{"no_such_key": "x"}}, errs.ErrUnknownErrorKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.file.Options()
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := (&File{Flags: []Declaration{{Class: "bare"}}}).NewParser()
	assert.ErrorIs(t, err, errs.ErrNoNames)
}

func TestDecode(t *testing.T) {
	_, err := Decode(strings.NewReader("nmae = \"typo\"\n"), TOML)
	assert.ErrorIs(t, err, errs.ErrConfigDecode)

	_, err = Decode(strings.NewReader("nmae: typo\n"), YAML)
	assert.Error(t, err)

	f, err := Decode(strings.NewReader(""), YAML)
	require.NoError(t, err)
	assert.Empty(t, f.Flags)

	_, err = Decode(strings.NewReader(""), Format(7))
	assert.ErrorIs(t, err, errs.ErrConfigFormat)
}

func TestFile_Encode(t *testing.T) {
	for _, format := range []Format{TOML, YAML} {
		t.Run(format.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, tarFile.Encode(&buf, format))

			f, err := Decode(&buf, format)
			require.NoError(t, err)
			if diff := cmp.Diff(tarFile, f); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseName(t *testing.T) {
	tests := []struct {
		in       string
		text     string
		typ      clutils.FlagType
		explicit bool
	}{
		{"-a", "-a", clutils.UnsetType, false},
		{"short:c", "c", clutils.ShortType, true},
		{"long:-d", "-d", clutils.LongType, true},
		{"unset:--e", "--e", clutils.UnsetType, true},
		{"other:x", "other:x", clutils.UnsetType, false},
		{"short:", "short:", clutils.UnsetType, false},
	}

	for _, tt := range tests {
		n := ParseName(tt.in)
		assert.Equal(t, tt.text, n.Text(), tt.in)
		assert.Equal(t, tt.explicit, n.IsExplicit(), tt.in)
		if tt.explicit {
			assert.Equal(t, tt.typ, n.Type(), tt.in)
			assert.Equal(t, tt.in, FormatName(n))
		}
	}
}

func TestParseGreedy(t *testing.T) {
	for in, want := range map[string]clutils.Greedy{"no": clutils.GreedyNo, "LAX": clutils.GreedyLax, "true": clutils.GreedyYes} {
		got, err := ParseGreedy(in)
		assert.NoError(t, err)
		assert.Equal(t, want, got, in)
	}
}
