// Package i18n holds the translatable messages of the library: usage error
// messages and the default diagnostic templates, one JSON file per language.
package i18n

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

//go:embed locales/*.json
var embeddedLocales embed.FS

var (
	ErrInvalidLanguage       = errors.New("invalid language in filename")
	ErrDefaultLanguageAbsent = errors.New("default language translations missing")
	ErrInvalidTranslations   = errors.New("invalid translations")
	ErrEmptyTranslations     = errors.New("empty translations")
	ErrMissingKey            = errors.New("missing key")
	ErrExtraKey              = errors.New("extra key")
)

// Bundle maps language tags to translated messages. Messages used as error
// text go through a message.Printer; diagnostic templates are returned raw
// because their placeholders are not fmt verbs.
type Bundle struct {
	mu           sync.RWMutex
	defaultLang  language.Tag
	translations map[language.Tag]map[string]string
	catalog      *catalog.Builder
	printers     map[language.Tag]*message.Printer
}

var defaultBundle *Bundle

func init() {
	var err error
	defaultBundle, err = NewBundleFromFS(embeddedLocales, "locales")
	if err != nil {
		panic("failed to load embedded locales: " + err.Error())
	}
}

// Default returns the bundle built from the embedded locales.
func Default() *Bundle {
	return defaultBundle
}

// NewEmptyBundle returns a bundle without translations, defaulting to English.
func NewEmptyBundle() *Bundle {
	return &Bundle{
		defaultLang:  language.English,
		translations: make(map[language.Tag]map[string]string),
		catalog:      catalog.NewBuilder(),
		printers:     make(map[language.Tag]*message.Printer),
	}
}

// NewBundleFromFS loads every <lang>.json file under dir. The default language
// is loaded first so that the other languages can be validated against it.
func NewBundleFromFS(fsys fs.FS, dir string) (*Bundle, error) {
	b := NewEmptyBundle()

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}

	var deferred []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		tag, err := language.Parse(strings.TrimSuffix(entry.Name(), ".json"))
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidLanguage, entry.Name())
		}
		if tag != b.defaultLang {
			deferred = append(deferred, entry.Name())
			continue
		}
		if err := b.loadFile(fsys, tag, path.Join(dir, entry.Name())); err != nil {
			return nil, err
		}
	}

	if !b.HasLanguage(b.defaultLang) {
		return nil, fmt.Errorf("%w: %s", ErrDefaultLanguageAbsent, b.defaultLang)
	}

	for _, name := range deferred {
		tag := language.MustParse(strings.TrimSuffix(name, ".json"))
		if err := b.loadFile(fsys, tag, path.Join(dir, name)); err != nil {
			return nil, err
		}
	}

	return b, nil
}

func (b *Bundle) loadFile(fsys fs.FS, tag language.Tag, file string) error {
	data, err := fs.ReadFile(fsys, file)
	if err != nil {
		return err
	}

	var translations map[string]string
	if err := json.Unmarshal(data, &translations); err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}

	return b.AddLanguage(tag, translations)
}

// AddLanguage merges translations into lang. A language other than the default
// must define exactly the default language's keys.
func (b *Bundle) AddLanguage(lang language.Tag, translations map[string]string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	merged := make(map[string]string, len(translations))
	for k, v := range b.translations[lang] {
		merged[k] = v
	}
	for k, v := range translations {
		merged[k] = v
	}

	if errs := b.validate(lang, merged); len(errs) > 0 {
		return fmt.Errorf("%w: %s: %w", ErrInvalidTranslations, lang, errors.Join(errs...))
	}

	for k, v := range translations {
		if err := b.catalog.SetString(lang, k, v); err != nil {
			return fmt.Errorf("%w: %s", err, k)
		}
	}
	b.translations[lang] = merged
	b.printers[lang] = message.NewPrinter(lang, message.Catalog(b.catalog))

	return nil
}

func (b *Bundle) validate(lang language.Tag, translations map[string]string) []error {
	if len(translations) == 0 {
		return []error{fmt.Errorf("%w: %s", ErrEmptyTranslations, lang)}
	}
	if lang == b.defaultLang {
		return nil
	}

	reference := b.translations[b.defaultLang]
	var errs []error
	for key := range reference {
		if _, ok := translations[key]; !ok {
			errs = append(errs, fmt.Errorf("%w: %q", ErrMissingKey, key))
		}
	}
	for key := range translations {
		if _, ok := reference[key]; !ok {
			errs = append(errs, fmt.Errorf("%w: %q", ErrExtraKey, key))
		}
	}
	sort.Slice(errs, func(i, j int) bool { return errs[i].Error() < errs[j].Error() })

	return errs
}

// T formats key in the default language.
func (b *Bundle) T(key string, args ...interface{}) string {
	return b.TL(b.DefaultLanguage(), key, args...)
}

// TL formats key in lang, falling back to the default language and then to
// the key itself.
func (b *Bundle) TL(lang language.Tag, key string, args ...interface{}) string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.hasKey(lang, key) {
		lang = b.defaultLang
		if !b.hasKey(lang, key) {
			return key
		}
	}

	return b.printers[lang].Sprintf(key, args...)
}

// Raw returns the untranslated text stored for key in lang, falling back to
// the default language.
func (b *Bundle) Raw(lang language.Tag, key string) (string, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if s, ok := b.translations[lang][key]; ok {
		return s, true
	}
	s, ok := b.translations[b.defaultLang][key]

	return s, ok
}

// Match returns the best supported language for the requested tags.
func (b *Bundle) Match(tags ...language.Tag) language.Tag {
	supported := b.Languages()
	if len(supported) == 0 {
		return b.DefaultLanguage()
	}
	_, idx, conf := language.NewMatcher(supported).Match(tags...)
	if conf != language.No {
		return supported[idx]
	}

	return b.DefaultLanguage()
}

func (b *Bundle) HasLanguage(lang language.Tag) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.translations[lang]
	return ok
}

func (b *Bundle) HasKey(lang language.Tag, key string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.hasKey(lang, key)
}

func (b *Bundle) hasKey(lang language.Tag, key string) bool {
	_, ok := b.translations[lang][key]
	return ok
}

// Languages returns the supported languages sorted by tag.
func (b *Bundle) Languages() []language.Tag {
	b.mu.RLock()
	defer b.mu.RUnlock()

	langs := make([]language.Tag, 0, len(b.translations))
	for lang := range b.translations {
		langs = append(langs, lang)
	}
	sort.Slice(langs, func(i, j int) bool {
		return langs[i].String() < langs[j].String()
	})

	return langs
}

func (b *Bundle) DefaultLanguage() language.Tag {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.defaultLang
}

func (b *Bundle) SetDefaultLanguage(lang language.Tag) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.defaultLang = lang
}
