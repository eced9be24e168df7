package utils

import (
	"path"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v2"
)

var bundle *i18n.Bundle

// SupportedLanguages - languages with a message file, the first one is the default
var SupportedLanguages = []language.Tag{
	language.English,
	language.BrazilianPortuguese,
}

var matcher = language.NewMatcher(SupportedLanguages)

func InitI18NBundle(dir string) {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	bundle.MustLoadMessageFile(path.Join(dir, "en.yaml"))
	bundle.MustLoadMessageFile(path.Join(dir, "pt-BR.yaml"))
}

func NewLocalizer(lang ...string) *i18n.Localizer {
	return i18n.NewLocalizer(bundle, lang...)
}

// MatchLanguage picks the supported language closest to the given
// accept-language values
func MatchLanguage(lang ...string) language.Tag {
	_, index := language.MatchStrings(matcher, lang...)
	return SupportedLanguages[index]
}

// FormatCount prints n with the digit grouping of tag
func FormatCount(tag language.Tag, n int64) string {
	return message.NewPrinter(tag).Sprintf("%d", n)
}
