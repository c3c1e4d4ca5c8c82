// Package lang enumerates the supported languages and normalises their aliases.
package lang

import (
	"strings"

	"github.com/bastiangx/pawn/pkg/lexerr"
	"golang.org/x/text/language"
)

// Code is a canonical language code.
type Code string

const (
	English Code = "en"
	French  Code = "fr"
	Russian Code = "ru"
)

// Supported lists every language a session can activate, English first.
var Supported = []Code{English, French, Russian}

var aliases = map[string]Code{
	"en":      English,
	"eng":     English,
	"english": English,
	"fr":      French,
	"fra":     French,
	"fre":     French,
	"french":  French,
	"ru":      Russian,
	"rus":     Russian,
	"russian": Russian,
}

// names maps a code to the long name used by third-party backends.
var names = map[Code]string{
	English: "english",
	French:  "french",
	Russian: "russian",
}

// Parse maps an alias or BCP-47 tag ("fr", "French", "fr-CA") to its Code.
func Parse(s string) (Code, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if c, ok := aliases[key]; ok {
		return c, nil
	}
	tag, err := language.Parse(key)
	if err != nil {
		return "", lexerr.Configuration("lang.Parse", s)
	}
	base, _ := tag.Base()
	if c, ok := aliases[base.String()]; ok {
		return c, nil
	}
	return "", lexerr.Configuration("lang.Parse", s)
}

// MustParse is like Parse but panics on unknown input.
func MustParse(s string) Code {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Name returns the long lowercase language name ("french").
func (c Code) Name() string {
	return names[c]
}

// IsEnglish reports whether c is delegated entirely to the English resource.
func (c Code) IsEnglish() bool {
	return c == English
}

func (c Code) String() string {
	return string(c)
}
