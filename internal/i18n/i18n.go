package i18n

import (
	"embed"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/en"
	ptbr "github.com/go-playground/locales/pt_BR"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entrans "github.com/go-playground/validator/v10/translations/en"
	ptbrtrans "github.com/go-playground/validator/v10/translations/pt_BR"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed messages/*.yaml
var messageFiles embed.FS

// a locale the API ships messages for
type supportedLocale struct {
	tag        language.Tag
	translator locales.Translator
	file       string
	register   func(v *validator.Validate, trans ut.Translator) error
}

var supportedLocales = []supportedLocale{
	{
		tag:        language.BrazilianPortuguese,
		translator: ptbr.New(),
		file:       "messages/pt_BR.yaml",
		register:   ptbrtrans.RegisterDefaultTranslations,
	},
	{
		tag:        language.English,
		translator: en.New(),
		file:       "messages/en.yaml",
		register:   entrans.RegisterDefaultTranslations,
	},
}

// Bundle holds the message resources for every supported locale and resolves
// keys and field validation errors against them. It is read-only once built.
type Bundle struct {
	translators map[language.Tag]ut.Translator
	tags        []language.Tag // default locale first
	matcher     language.Matcher
}

// creates a bundle and registers field error translations on v. v must be the
// validator that produces the field errors later passed to FieldMessage.
func New(v *validator.Validate, defaultLocale language.Tag) (*Bundle, error) {
	ordered, err := orderLocales(defaultLocale)
	if err != nil {
		return nil, err
	}

	fallback := ordered[0].translator
	all := make([]locales.Translator, 0, len(ordered))

	for _, loc := range ordered {
		all = append(all, loc.translator)
	}

	universal := ut.New(fallback, all...)

	b := &Bundle{
		translators: make(map[language.Tag]ut.Translator, len(ordered)),
		tags:        make([]language.Tag, 0, len(ordered)),
	}

	for _, loc := range ordered {
		trans, found := universal.GetTranslator(loc.translator.Locale())
		if !found {
			return nil, fmt.Errorf("no translator for locale %s", loc.translator.Locale())
		}

		if err := loadMessages(trans, loc.file); err != nil {
			return nil, err
		}

		if err := loc.register(v, trans); err != nil {
			return nil, fmt.Errorf("failed to register validation messages for %s: %w", loc.tag, err)
		}

		b.translators[loc.tag] = trans
		b.tags = append(b.tags, loc.tag)
	}

	v.RegisterTagNameFunc(jsonFieldName)
	b.matcher = language.NewMatcher(b.tags)

	return b, nil
}

// returns the locales the bundle can answer in, default first
func (b *Bundle) Tags() []language.Tag {
	return b.tags
}

// resolves a message key for the locale
func (b *Bundle) Message(locale language.Tag, key string, args ...string) (string, error) {
	trans := b.translator(locale)

	msg, err := trans.T(key, args...)
	if err != nil {
		return "", fmt.Errorf("no message %q for locale %s: %w", key, trans.Locale(), err)
	}

	return msg, nil
}

// resolves the localized text of a single field validation error. a tag with
// no registered translation is an error rather than the validator's raw text.
func (b *Bundle) FieldMessage(locale language.Tag, fe validator.FieldError) (string, error) {
	trans := b.translator(locale)

	// Translate falls back to fe.Error() when the tag has no translation
	msg := fe.Translate(trans)
	if msg == fe.Error() {
		return "", fmt.Errorf("no message for constraint %q on %s for locale %s", fe.Tag(), fe.Namespace(), trans.Locale())
	}

	return msg, nil
}

// picks the closest supported translator; unknown locales get the default
func (b *Bundle) translator(locale language.Tag) ut.Translator {
	if trans, ok := b.translators[locale]; ok {
		return trans
	}

	return b.translators[b.match(locale)]
}

func (b *Bundle) match(tags ...language.Tag) language.Tag {
	_, idx, confidence := b.matcher.Match(tags...)
	if confidence == language.No {
		return b.tags[0]
	}

	return b.tags[idx]
}

// moves the default locale to the front
func orderLocales(defaultLocale language.Tag) ([]supportedLocale, error) {
	ordered := make([]supportedLocale, 0, len(supportedLocales))

	for _, loc := range supportedLocales {
		if loc.tag == defaultLocale {
			ordered = append([]supportedLocale{loc}, ordered...)
			continue
		}

		ordered = append(ordered, loc)
	}

	if ordered[0].tag != defaultLocale {
		return nil, fmt.Errorf("unsupported default locale %s", defaultLocale)
	}

	return ordered, nil
}

func loadMessages(trans ut.Translator, file string) error {
	data, err := messageFiles.ReadFile(file)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", file, err)
	}

	var messages map[string]string
	if err := yaml.Unmarshal(data, &messages); err != nil {
		return fmt.Errorf("failed to parse %s: %w", file, err)
	}

	for key, text := range messages {
		if err := trans.Add(key, text, false); err != nil {
			return fmt.Errorf("failed to add %q from %s: %w", key, file, err)
		}
	}

	return nil
}

// reports fields by their json name so messages match the request payload
func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")

	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	}

	return name
}
