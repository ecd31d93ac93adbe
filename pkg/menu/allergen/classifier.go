package allergen

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// shortKeywordMax is the keyword length (in runes) at or below which a
// keyword must occur as a whole word. Longer keywords match as plain
// substrings.
const shortKeywordMax = 2

// Flags holds the presence decision for each allergen category.
type Flags struct {
	Gluten bool
	Milk   bool
	Egg    bool
	Fish   bool
}

// keyword is one compiled keyword: the Turkish-folded text plus, for short
// keywords, a whole-word matcher.
type keyword struct {
	text string
	word *regexp.Regexp
}

// Classifier detects allergen categories in Turkish food names by keyword
// containment. Matching is case-insensitive with Turkish letter handling:
// İ folds to i and I folds to ı before comparison.
type Classifier struct {
	gluten []keyword
	milk   []keyword
	egg    []keyword
	fish   []keyword
}

// New creates a classifier from the given keyword lists.
func New(kw Keywords) *Classifier {
	return &Classifier{
		gluten: compile(kw.Gluten),
		milk:   compile(kw.Milk),
		egg:    compile(kw.Egg),
		fish:   compile(kw.Fish),
	}
}

// FoldTurkish lowercases text with Turkish casing rules, so that dotted and
// dotless I variants compare equal the way a Turkish reader expects.
func FoldTurkish(text string) string {
	return strings.ToLowerSpecial(unicode.TurkishCase, text)
}

func compile(words []string) []keyword {
	out := make([]keyword, 0, len(words))
	for _, w := range words {
		kw := keyword{text: FoldTurkish(w)}
		if utf8.RuneCountInString(kw.text) <= shortKeywordMax {
			// Whole-word match with Unicode-aware boundaries. regexp's \b
			// is ASCII-only and would treat Turkish letters as boundaries.
			kw.word = regexp.MustCompile(`(^|[^\p{L}\p{N}])` + regexp.QuoteMeta(kw.text) + `([^\p{L}\p{N}]|$)`)
		}
		out = append(out, kw)
	}
	return out
}

// Check evaluates all four categories against a food name.
func (c *Classifier) Check(name string) Flags {
	folded := FoldTurkish(name)
	return Flags{
		Gluten: match(folded, c.gluten),
		Milk:   match(folded, c.milk),
		Egg:    match(folded, c.egg),
		Fish:   match(folded, c.fish),
	}
}

// match reports whether any keyword occurs in the folded subject.
func match(folded string, kws []keyword) bool {
	if folded == "" {
		return false
	}
	for _, kw := range kws {
		if kw.word != nil {
			if kw.word.MatchString(folded) {
				return true
			}
			continue
		}
		if strings.Contains(folded, kw.text) {
			return true
		}
	}
	return false
}
