// Package translate cleans up machine-translated menu item names.
//
// Each language has its own known defects: English carries untranslated
// Turkish words like STIL and KEBAP, German picked up STIL both standalone
// and glued into compounds, Russian only suffers from stray whitespace.
package translate

import (
	"strings"
	"unicode"
)

// Rule is one ordered literal replacement, applied verbatim and
// case-sensitively.
type Rule struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// DefaultEnglishFixes returns the built-in literal fixes for known English
// mistranslations. Order matters: a literal fix pre-empts the generic word
// substitutions that follow it.
func DefaultEnglishFixes() []Rule {
	return []Rule{
		{From: "SAUTEED OF SHRIMP", To: "Sauteed Shrimp"},
		{From: "ADANA STYLE KEBAP", To: "Adana Style Kebab"},
		{From: "ADANA STIL KEBAP", To: "Adana Style Kebab"},
	}
}

// germanCompounds collapses STIL glued into German compound words,
// case-sensitive exact substrings.
var germanCompounds = []Rule{
	{From: "STILSUPPE", To: "SUPPE"},
	{From: "STILFILET", To: "FILET"},
	{From: "STILFRIKADELLE", To: "FRIKADELLE"},
}

// Cleaner holds the translation cleanup functions. All three are pure and
// idempotent; empty input is returned as-is.
type Cleaner struct {
	fixes []Rule
}

// NewCleaner creates a Cleaner with the given English literal fixes.
func NewCleaner(fixes []Rule) *Cleaner {
	return &Cleaner{fixes: fixes}
}

// English applies the literal fixes in order, then replaces the standalone
// words STIL/USULÜ/USULU with "Style" and KEBAP with "Kebab", any casing.
func (c *Cleaner) English(text string) string {
	if text == "" {
		return text
	}
	for _, r := range c.fixes {
		text = strings.ReplaceAll(text, r.From, r.To)
	}
	return replaceWords(text, func(word string) (string, bool) {
		switch {
		case strings.EqualFold(word, "STIL"),
			strings.EqualFold(word, "USULÜ"),
			strings.EqualFold(word, "USULU"):
			return "Style", true
		case strings.EqualFold(word, "KEBAP"):
			return "Kebab", true
		}
		return "", false
	})
}

// German collapses the known STIL compounds, removes the standalone words
// STIL and Stil (exactly those two casings), and normalizes whitespace.
func (c *Cleaner) German(text string) string {
	if text == "" {
		return text
	}
	for _, r := range germanCompounds {
		text = strings.ReplaceAll(text, r.From, r.To)
	}
	text = replaceWords(text, func(word string) (string, bool) {
		if word == "STIL" || word == "Stil" {
			return "", true
		}
		return "", false
	})
	return collapseSpace(text)
}

// Russian normalizes whitespace only.
func (c *Cleaner) Russian(text string) string {
	if text == "" {
		return text
	}
	return collapseSpace(text)
}

// collapseSpace reduces every run of whitespace to a single space and trims
// the ends.
func collapseSpace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// replaceWords rewrites each maximal run of letters and digits through repl,
// leaving all separators in place. Word boundaries are Unicode-aware, so
// Turkish and German letters count as word characters.
func replaceWords(text string, repl func(word string) (string, bool)) string {
	var b strings.Builder
	b.Grow(len(text))

	start := -1
	for i, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			writeWord(&b, text[start:i], repl)
			start = -1
		}
		b.WriteRune(r)
	}
	if start >= 0 {
		writeWord(&b, text[start:], repl)
	}
	return b.String()
}

func writeWord(b *strings.Builder, word string, repl func(string) (string, bool)) {
	if out, ok := repl(word); ok {
		b.WriteString(out)
		return
	}
	b.WriteString(word)
}
