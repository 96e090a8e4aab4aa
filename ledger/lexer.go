package ledger

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"time"
)

// DateFormat is the only accepted date layout in ledger files.
const DateFormat = "2006-01-02"

var keywords = map[string]Kind{
	"currency": Currency,
	"rate":     Rate,
	"initial":  Initial,
	"split":    Split,
	"rev":      Rev,
}

// Lex splits ledger source into tokens. Blank lines produce nothing.
// Every non-blank line yields its words followed by a LineEnd; an
// indented line is preceded by an Indent token carrying the exact leading
// whitespace, which is how the parser matches nesting levels.
//
// Word classification mirrors the original tool: "#" starts a comment
// that takes the rest of the line, keywords are reserved, anything
// containing a colon is an account reference, a word that parses as
// YYYY-MM-DD is a date, a word that parses as a float is a number, and
// the rest are identifiers (currency codes, mostly).
func Lex(r io.Reader) ([]Token, error) {
	var tokens []Token

	scanner := bufio.NewScanner(r)
	ln := 0
	for scanner.Scan() {
		ln++
		line := scanner.Text()
		stripped := strings.TrimLeft(line, " \t\r")
		if stripped == "" {
			continue
		}

		if width := len(line) - len(stripped); width > 0 {
			tokens = append(tokens, Token{Kind: Indent, Text: line[:width], Line: ln})
		}

		words := strings.Fields(stripped)
		for i := 0; i < len(words); i++ {
			word := words[i]

			if word == "#" {
				tokens = append(tokens, Token{
					Kind: Comment,
					Text: strings.Join(words[i+1:], " "),
					Line: ln,
				})
				break
			}

			if kind, ok := keywords[word]; ok {
				tokens = append(tokens, Token{Kind: kind, Text: word, Line: ln})
				continue
			}

			if strings.Contains(word, ":") {
				tokens = append(tokens, Token{Kind: AccountRef, Text: word, Line: ln})
				continue
			}

			if strings.Contains(word, "-") {
				if dt, err := time.Parse(DateFormat, word); err == nil {
					tokens = append(tokens, Token{Kind: Date, Text: word, Date: dt, Line: ln})
					continue
				}
			}

			if value, err := strconv.ParseFloat(word, 64); err == nil {
				tokens = append(tokens, Token{Kind: Number, Text: word, Number: value, Line: ln})
				continue
			}

			tokens = append(tokens, Token{Kind: Ident, Text: word, Line: ln})
		}

		tokens = append(tokens, Token{Kind: LineEnd, Line: ln})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return tokens, nil
}
