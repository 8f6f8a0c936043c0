package config

import (
	"log/slog"
	"os"
	"strings"
)

const (
	LangEN = "en"
	LangES = "es"
)

func GetLocaleConfig(lang string) string {
	switch lang {
	case LangEN:
		return LangEN
	case LangES:
		return LangES
	default:
		slog.Debug("unsupported language, falling back to english", "lang", lang)
		return LangEN
	}
}

// DetectLanguage picks the UI language from GITTR_LANG, then LANG
// ("es_AR.UTF-8" -> "es").
func DetectLanguage() string {
	if lang := os.Getenv("GITTR_LANG"); lang != "" {
		return GetLocaleConfig(lang)
	}
	lang := os.Getenv("LANG")
	if i := strings.IndexAny(lang, "_.-"); i > 0 {
		lang = lang[:i]
	}
	return GetLocaleConfig(strings.ToLower(lang))
}
