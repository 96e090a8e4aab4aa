package ledger

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// InitialDate is the date assigned to "initial" operations, well before
// any plausible ledger entry so date filters never cut them off.
var InitialDate = time.Date(1983, time.June, 11, 0, 0, 0, 0, time.UTC)

// An Op is a single-entry posting: amount credited to (or debited from,
// when negative) one account. A transaction line produces two mirrored
// Ops. Currency is empty when the op uses the ledger's base currency.
type Op struct {
	Initial  bool
	Date     time.Time
	Account  string
	Amount   float64
	Currency string
	Comment  string
}

// A Config is the parsed form of a ledger file, before any balances are
// computed.
type Config struct {
	Currency string
	Rates    map[string]float64
	Ops      []Op
}

// feed is a token stream with one-token lookahead, padded with an EOF
// sentinel so callers never index out of range.
type feed struct {
	tokens []Token
	pos    int
}

func (f *feed) peek() Token {
	if f.pos >= len(f.tokens) {
		return Token{Kind: EOF}
	}
	return f.tokens[f.pos]
}

func (f *feed) pop() Token {
	tok := f.peek()
	if f.pos < len(f.tokens) {
		f.pos++
	}
	return tok
}

// popAny consumes the next token, which must be one of kinds.
func (f *feed) popAny(kinds ...Kind) (Token, error) {
	tok := f.pop()
	for _, k := range kinds {
		if tok.Kind == k {
			return tok, nil
		}
	}

	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	if tok.Kind == EOF {
		return tok, fmt.Errorf("unexpected end of input, want %s", strings.Join(names, " or "))
	}
	return tok, fmt.Errorf("line %d: unexpected %s, want %s", tok.Line, tok, strings.Join(names, " or "))
}

// skipIf consumes the next token if it has the given kind.
func (f *feed) skipIf(kind Kind) bool {
	if f.peek().Kind == kind {
		f.pop()
		return true
	}
	return false
}

// skipIfIndent consumes the next token if it is an Indent of exactly the
// given whitespace.
func (f *feed) skipIfIndent(text string) bool {
	if tok := f.peek(); tok.Kind == Indent && tok.Text == text {
		f.pop()
		return true
	}
	return false
}

// get consumes and returns the next token only if it has the given kind.
func (f *feed) get(kind Kind) (Token, bool) {
	if f.peek().Kind == kind {
		return f.pop(), true
	}
	return Token{}, false
}

// indented runs parse either once on the remainder of the current line,
// or, when the line ends here, once per following line of the indented
// block. Block membership is exact-match on the leading whitespace, so
// nested blocks with deeper indents are left for inner calls.
func (f *feed) indented(parse func() error) error {
	if f.skipIf(LineEnd) {
		indent := f.peek()
		if indent.Kind != Indent {
			return nil
		}
		for f.skipIfIndent(indent.Text) {
			if err := parse(); err != nil {
				return err
			}
		}
		return nil
	}
	return parse()
}

// Parse reads a ledger and returns its configuration: base currency,
// conversion rates and the flat list of postings in file order.
func Parse(r io.Reader) (*Config, error) {
	tokens, err := Lex(r)
	if err != nil {
		return nil, err
	}

	f := &feed{tokens: tokens}
	cfg := &Config{Rates: make(map[string]float64)}

	for f.peek().Kind != EOF {
		if err := parseRoot(f, cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func parseRoot(f *feed, cfg *Config) error {
	tok, err := f.popAny(Rate, Currency, Initial, Date, Comment)
	if err != nil {
		return err
	}

	switch tok.Kind {
	case Currency:
		cur, err := f.popAny(Ident)
		if err != nil {
			return err
		}
		cfg.Currency = cur.Text
		_, err = f.popAny(LineEnd)
		return err
	case Rate:
		return parseRate(f, cfg)
	case Initial:
		return parseInitial(f, cfg)
	case Date:
		return parseDate(f, cfg, tok.Date)
	case Comment:
		_, err := f.popAny(LineEnd)
		return err
	}
	return nil
}

func parseRate(f *feed, cfg *Config) error {
	return f.indented(func() error {
		cur, err := f.popAny(Ident)
		if err != nil {
			return err
		}
		mult, err := f.popAny(Number)
		if err != nil {
			return err
		}
		cfg.Rates[cur.Text] = mult.Number
		_, err = f.popAny(LineEnd)
		return err
	})
}

func parseInitial(f *feed, cfg *Config) error {
	return f.indented(func() error {
		account, err := f.popAny(AccountRef)
		if err != nil {
			return err
		}
		amount, err := f.popAny(Number)
		if err != nil {
			return err
		}
		currency, _ := f.get(Ident)
		comment, _ := f.get(Comment)
		cfg.Ops = append(cfg.Ops, Op{
			Initial:  true,
			Date:     InitialDate,
			Account:  account.Text,
			Amount:   amount.Number,
			Currency: currency.Text,
			Comment:  comment.Text,
		})
		_, err = f.popAny(LineEnd)
		return err
	})
}

func parseDate(f *feed, cfg *Config, dt time.Time) error {
	return f.indented(func() error {
		if f.skipIf(Split) {
			return parseSplit(f, cfg, dt)
		}

		rev := f.skipIf(Rev)
		from, err := f.popAny(AccountRef)
		if err != nil {
			return err
		}

		return f.indented(func() error {
			to, err := f.popAny(AccountRef)
			if err != nil {
				return err
			}

			return f.indented(func() error {
				amount, err := f.popAny(Number)
				if err != nil {
					return err
				}
				currency, _ := f.get(Ident)
				comment, _ := f.get(Comment)

				value := amount.Number
				if rev {
					value = -value
				}
				cfg.Ops = append(cfg.Ops,
					Op{Date: dt, Account: from.Text, Amount: -value, Currency: currency.Text, Comment: comment.Text},
					Op{Date: dt, Account: to.Text, Amount: value, Currency: currency.Text, Comment: comment.Text},
				)
				_, err = f.popAny(LineEnd)
				return err
			})
		})
	})
}

// parseSplit handles the "split" form: every listed account gets its
// amount as a single-entry posting, with no counter-account.
func parseSplit(f *feed, cfg *Config, dt time.Time) error {
	return f.indented(func() error {
		account, err := f.popAny(AccountRef)
		if err != nil {
			return err
		}

		return f.indented(func() error {
			amount, err := f.popAny(Number)
			if err != nil {
				return err
			}
			currency, _ := f.get(Ident)
			comment, _ := f.get(Comment)
			cfg.Ops = append(cfg.Ops, Op{
				Date:     dt,
				Account:  account.Text,
				Amount:   amount.Number,
				Currency: currency.Text,
				Comment:  comment.Text,
			})
			_, err = f.popAny(LineEnd)
			return err
		})
	})
}
