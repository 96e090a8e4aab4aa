// Package syntax classifies cash ledger source text into highlighting
// categories. Classification is purely lexical: it does not care whether
// the surrounding text is a valid ledger, it only finds substrings that
// look like keywords, numbers, dates, comments or account references.
package syntax

import (
	"regexp"
	"unicode/utf8"
)

// A Category is one of the fixed highlighting classes. The set is closed:
// themes map each Category to a display style, so adding one here means
// every colorscheme needs a new entry.
type Category uint8

const (
	None Category = iota
	Keyword
	Number
	Date
	Comment
	PositiveRef // asset (a:) and income (i:) account references
	NegativeRef // expense (e:) and liability (l:) account references
)

func (c Category) String() string {
	switch c {
	case Keyword:
		return "Keyword"
	case Number:
		return "Number"
	case Date:
		return "Date"
	case Comment:
		return "Comment"
	case PositiveRef:
		return "PositiveRef"
	case NegativeRef:
		return "NegativeRef"
	}
	return "None"
}

// A Span is a labeled substring range. Start and End are byte offsets into
// the classified text; End is exclusive.
type Span struct {
	Start    int
	End      int
	Category Category
}

// A rule is one entry of the ordered pattern table. Rules are tried
// top-to-bottom at every position and the first match wins, which is what
// lets a comment swallow dates and numbers to the end of its line.
//
// wordStart rules only apply when the previous byte is not alphanumeric,
// so "rates" is not half a keyword and "abc123" stays unstyled.
type rule struct {
	category  Category
	pattern   *regexp.Regexp
	wordStart bool
}

// The ordered pattern table. Date must come before Number or 2024-01-15
// would be claimed as the integer 2024. The number forms (long suffix,
// imaginary suffix, exponent, leading/trailing-dot decimals) are carried
// over from the original cash highlighter as-is.
var rules = []rule{
	{Comment, regexp.MustCompile(`^#[^\n]*`), false},
	{Keyword, regexp.MustCompile(`^(currency|initial|rate|split|rev)\b`), true},
	{Date, regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`), true},
	{Number, regexp.MustCompile(`^(\d+\.\d*([eE][+-]?\d+)?[jJ]?|\.\d+([eE][+-]?\d+)?[jJ]?|\d+[eE][+-]?\d+[jJ]?|\d+[jJ]|\d+[Ll]?)`), true},
	{PositiveRef, regexp.MustCompile(`^[ai]:[-0-9a-zA-Z:]+`), true},
	{NegativeRef, regexp.MustCompile(`^[el]:[-0-9a-zA-Z:]+`), true},
}

func isWordByte(b byte) bool {
	return b >= '0' && b <= '9' || b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}

// Classify scans text and returns every matched span in left-to-right
// order. Spans never overlap; gaps between spans are unstyled text. The
// function is total and deterministic: any input, including the empty
// string, yields the same spans every call. The pattern table is never
// mutated after package init, so Classify is safe for concurrent use.
func Classify(text string) []Span {
	var spans []Span

	pos := 0
	for pos < len(text) {
		atWordStart := pos == 0 || !isWordByte(text[pos-1])

		matched := false
		for _, r := range rules {
			if r.wordStart && !atWordStart {
				continue
			}
			if loc := r.pattern.FindStringIndex(text[pos:]); loc != nil {
				spans = append(spans, Span{
					Start:    pos,
					End:      pos + loc[1],
					Category: r.category,
				})
				pos += loc[1]
				matched = true
				break
			}
		}

		if !matched {
			_, size := utf8.DecodeRuneInString(text[pos:])
			pos += size
		}
	}

	return spans
}
