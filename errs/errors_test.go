package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/definitelyprobably/libclutils/i18n"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestAll_Translated(t *testing.T) {
	bundle := i18n.Default()
	seen := map[string]bool{}

	for _, err := range All() {
		key := err.Key()
		assert.False(t, seen[key], "duplicate key %s", key)
		seen[key] = true

		for _, lang := range []language.Tag{language.English, language.German} {
			assert.True(t, bundle.HasKey(lang, key), "%s missing in %s", key, lang)
		}
	}
}

func TestSentinels(t *testing.T) {
	err := fmt.Errorf("declaring: %w", ErrUnknownName.WithArgs("--nope"))

	assert.True(t, errors.Is(err, ErrUnknownName))
	assert.False(t, errors.Is(err, ErrNoNames))
	assert.Contains(t, err.Error(), `"--nope"`)

	wrapped := ErrConfigDecode.WithArgs("tar.toml").Wrap(errors.New("line 3"))
	assert.ErrorIs(t, wrapped, ErrConfigDecode)
	assert.Contains(t, wrapped.Error(), "line 3")
}
