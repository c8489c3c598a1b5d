package datefmt

import (
	"strings"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/en_US"
)

// Locale returns the translator supplying month names for a locale name, eg. "en" or "en-US".
// ok is false for unsupported locales: layouts are english only.
func Locale(name string) (tr locales.Translator, ok bool) {
	switch strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), "-", "_")) {
	case "", "en":
		return en.New(), true
	case "en_us":
		return en_US.New(), true
	}
	return nil, false
}
