package helpers

import (
	"os"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// LocaleTag determines the display locale from the environment,
// falling back to English when nothing usable is set.
func LocaleTag() language.Tag {
	for _, name := range []string{"LC_ALL", "LC_NUMERIC", "LANG"} {
		val := os.Getenv(name)
		if val == "" {
			continue
		}

		// Strip encoding and modifier suffixes like ".UTF-8" or "@euro".
		if pos := strings.IndexAny(val, ".@"); pos >= 0 {
			val = val[:pos]
		}

		tag, err := language.Parse(strings.ReplaceAll(val, "_", "-"))
		if err == nil {
			return tag
		}
	}
	return language.English
}

// NewNumberPrinter returns a printer that formats numbers for the
// system locale.
func NewNumberPrinter() *message.Printer {
	return message.NewPrinter(LocaleTag())
}
