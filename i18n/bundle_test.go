package i18n

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestDefaultBundle(t *testing.T) {
	b := Default()
	require.NotNil(t, b)
	assert.Equal(t, language.English, b.DefaultLanguage())
	assert.Equal(t, []language.Tag{language.German, language.English}, b.Languages())

	t.Run("formats arguments", func(t *testing.T) {
		assert.Equal(t, `"-x" is not a registered name`, b.T("clutils.error.unknown_name", "-x"))
		assert.Equal(t, `"-x" ist kein registrierter Name`, b.TL(language.German, "clutils.error.unknown_name", "-x"))
	})

	t.Run("unknown key echoes key", func(t *testing.T) {
		assert.Equal(t, "no.such.key", b.T("no.such.key"))
	})

	t.Run("raw templates keep placeholders", func(t *testing.T) {
		s, ok := b.Raw(language.English, "clutils.template.missing_input")
		assert.True(t, ok)
		assert.Equal(t, "pos %pos: %type '%opt': missing input", s)

		s, ok = b.Raw(language.French, "clutils.template.missing_input")
		assert.True(t, ok, "falls back to the default language")
		assert.Contains(t, s, "%opt")
	})
}

func TestNewBundleFromFS(t *testing.T) {
	tests := []struct {
		name    string
		files   fstest.MapFS
		wantErr error
	}{
		{
			name: "valid",
			files: fstest.MapFS{
				"l/en.json": {Data: []byte(`{"a":"A","b":"B"}`)},
				"l/fr.json": {Data: []byte(`{"a":"Á","b":"Ɓ"}`)},
			},
		},
		{
			name: "missing default",
			files: fstest.MapFS{
				"l/fr.json": {Data: []byte(`{"a":"Á"}`)},
			},
			wantErr: ErrDefaultLanguageAbsent,
		},
		{
			name: "missing key in secondary language",
			files: fstest.MapFS{
				"l/en.json": {Data: []byte(`{"a":"A","b":"B"}`)},
				"l/fr.json": {Data: []byte(`{"a":"Á"}`)},
			},
			wantErr: ErrMissingKey,
		},
		{
			name: "extra key in secondary language",
			files: fstest.MapFS{
				"l/en.json": {Data: []byte(`{"a":"A"}`)},
				"l/fr.json": {Data: []byte(`{"a":"Á","z":"Z"}`)},
			},
			wantErr: ErrExtraKey,
		},
		{
			name: "bad file name",
			files: fstest.MapFS{
				"l/en.json": {Data: []byte(`{"a":"A"}`)},
				"l/!!.json": {Data: []byte(`{"a":"A"}`)},
			},
			wantErr: ErrInvalidLanguage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBundleFromFS(tt.files, "l")
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.True(t, b.HasLanguage(language.French))
			assert.Equal(t, "Á", b.TL(language.French, "a"))
		})
	}
}

func TestBundle_Match(t *testing.T) {
	b := Default()
	assert.Equal(t, language.German, b.Match(language.MustParse("de-CH")))
	assert.Equal(t, language.English, b.Match(language.Japanese))
}

func TestTrError(t *testing.T) {
	sentinel := NewError("clutils.error.unknown_name")
	derived := sentinel.WithArgs("--zflag")
	wrapped := sentinel.Wrap(errors.New("boom"))

	assert.True(t, errors.Is(derived, sentinel))
	assert.True(t, errors.Is(wrapped, sentinel))
	assert.False(t, errors.Is(derived, NewError("clutils.error.unknown_name")))

	assert.Equal(t, `"--zflag" is not a registered name`, derived.Error())
	assert.Equal(t, `"--zflag" ist kein registrierter Name`, derived.Localize(language.German))
	assert.Contains(t, wrapped.Error(), ": boom")
	assert.Equal(t, []interface{}{"--zflag"}, derived.Args())
	assert.Equal(t, "clutils.error.unknown_name", derived.Key())

	b := NewEmptyBundle()
	require.NoError(t, b.AddLanguage(language.English, map[string]string{"clutils.error.unknown_name": "nope: %s"}))
	assert.Equal(t, "nope: x", sentinel.WithBundle(b).WithArgs("x").Error())
}
