package gen

import (
	"strings"
	"unicode"

	"github.com/go-openapi/inflect"
)

var (
	// rules is the casing ruleset shared by the emitters.
	rules    = ruleset()
	acronyms = make(map[string]struct{})
)

func ruleset() *inflect.Ruleset {
	rules := inflect.NewDefaultRuleset()
	for _, w := range []string{
		"API", "ASCII", "CPU", "CSS", "DNS", "GPU", "HTML", "HTTP", "HTTPS",
		"ID", "IP", "JSON", "OEM", "OTA", "RAM", "SDK", "SKU", "SSH", "TLS",
		"TTL", "UI", "UID", "URI", "URL", "UTC", "UUID", "VM", "XML",
	} {
		acronyms[w] = struct{}{}
		rules.AddAcronym(w)
	}
	return rules
}

// Pascal converts a snake_case identifier into PascalCase, keeping known
// acronyms uppercase ("ota_build_id" => "OTABuildID").
func Pascal(s string) string {
	words := strings.FieldsFunc(s, isSeparator)
	for i, w := range words {
		upper := strings.ToUpper(w)
		if _, ok := acronyms[upper]; ok {
			words[i] = upper
			continue
		}
		words[i] = rules.Capitalize(w)
	}
	return strings.Join(words, "")
}

// Camel converts a snake_case identifier into camelCase.
func Camel(s string) string {
	words := strings.FieldsFunc(s, isSeparator)
	if len(words) == 0 {
		return s
	}
	first := strings.ToLower(words[0])
	return first + Pascal(strings.Join(words[1:], "_"))
}

// Snake converts a PascalCase or camelCase identifier into snake_case
// ("HTTPCode" => "http_code").
func Snake(s string) string {
	var (
		j int
		b strings.Builder
	)
	for i := 0; i < len(s); i++ {
		r := rune(s[i])
		// Put '_' only between words: the current rune is uppercase and
		// either follows a lowercase rune or starts a trailing word.
		if i > 0 && i < len(s)-1 && unicode.IsUpper(r) {
			if unicode.IsLower(rune(s[i-1])) ||
				j != i-1 && unicode.IsLower(rune(s[i+1])) {
				j = i
				b.WriteString("_")
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || unicode.IsSpace(r)
}
