package config

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Default supported languages. Codes and names correspond positionally.
const (
	defaultLanguageCodes = "ar, cs, da, de, en, es, fr, hu, id, it, ja, lt, mg, nb, nl_NL, pl, pt, pt_BR, ru, si, sl, ta, uk, zh_TW"
	defaultLanguageNames = "Arabic, Česky, Dansk, Deutsch, English, Español, Français, Magyar, Indonesia, Italiano, 日本語, Lietuvos, Malagasy, Bokmål, Nederlands, Polish, Português, Português (Brasil), Русский, සිංහල, Slovenščina, தமிழ், Українська, 中文"
)

// Locale is one entry of the supported languages table.
type Locale struct {
	Code string       `yaml:"code"`
	Name string       `yaml:"name"`
	Tag  language.Tag `yaml:"-"`
}

// ParseLocaleTable pairs a comma-separated code list with a comma-separated
// name list. Both lists must have the same number of non-empty entries and
// every code must be a valid BCP 47 tag (underscores are accepted).
func ParseLocaleTable(codes, names string) ([]Locale, error) {
	codeList := splitList(codes)
	nameList := splitList(names)
	if len(codeList) != len(nameList) {
		return nil, fmt.Errorf("%w: %d codes but %d names", ErrMalformedLocaleTable, len(codeList), len(nameList))
	}
	if len(codeList) == 0 {
		return nil, fmt.Errorf("%w: no languages configured", ErrMalformedLocaleTable)
	}

	table := make([]Locale, 0, len(codeList))
	for i, code := range codeList {
		name := nameList[i]
		if code == "" || name == "" {
			return nil, fmt.Errorf("%w: empty entry at position %d", ErrMalformedLocaleTable, i+1)
		}
		tag, err := language.Parse(code)
		if err != nil {
			return nil, fmt.Errorf("%w: code %q: %v", ErrMalformedLocaleTable, code, err)
		}
		table = append(table, Locale{Code: code, Name: name, Tag: tag})
	}
	return table, nil
}

// LocaleCodes returns the codes of table in order.
func LocaleCodes(table []Locale) []string {
	codes := make([]string, len(table))
	for i, l := range table {
		codes[i] = l.Code
	}
	return codes
}

// LocaleNames returns the display names of table in order.
func LocaleNames(table []Locale) []string {
	names := make([]string, len(table))
	for i, l := range table {
		names[i] = l.Name
	}
	return names
}

// LocaleMatcher is used by the localization layer to negotiate the response
// language from Accept-Language. It picks the closest supported language for
// a user's preferences; the first entry of table is the fallback.
func LocaleMatcher(table []Locale) language.Matcher {
	tags := make([]language.Tag, len(table))
	for i, l := range table {
		tags[i] = l.Tag
	}
	return language.NewMatcher(tags)
}

func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	return parts
}
