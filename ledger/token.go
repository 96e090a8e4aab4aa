// Package ledger parses cash ledger files and computes account balances.
//
// A ledger is a line-oriented format of four top-level statements:
//
//	currency USD
//	rate EURUSD 1.1
//	initial a:bank 1000
//	2014-01-01 a:pocket e:food 100 USD # lunch
//
// Date statements describe money moving between two accounts, with
// indented blocks for multiple targets and a "split" form for fanning one
// source out over several accounts. Account names are qualified by colons
// under the four fixed roots: a (assets), e (expenses), l (liabilities)
// and i (income).
package ledger

import (
	"fmt"
	"time"
)

type Kind uint8

const (
	EOF Kind = iota
	LineEnd
	Indent
	Date
	Comment
	Number
	Ident
	AccountRef
	Currency
	Rate
	Initial
	Split
	Rev
)

func (k Kind) String() string {
	switch k {
	case EOF:
		return "end of input"
	case LineEnd:
		return "end of line"
	case Indent:
		return "indent"
	case Date:
		return "date"
	case Comment:
		return "comment"
	case Number:
		return "number"
	case Ident:
		return "identifier"
	case AccountRef:
		return "account"
	case Currency:
		return "currency"
	case Rate:
		return "rate"
	case Initial:
		return "initial"
	case Split:
		return "split"
	case Rev:
		return "rev"
	}
	return "unknown"
}

// A Token is one lexical item of a ledger file. Text holds the raw word
// (or the whitespace of an Indent, or the body of a Comment). Number and
// Date are only set for their kinds. Line is 1-based.
type Token struct {
	Kind   Kind
	Text   string
	Number float64
	Date   time.Time
	Line   int
}

func (t Token) String() string {
	switch t.Kind {
	case Number:
		return fmt.Sprintf("%v", t.Number)
	case Date:
		return t.Date.Format(DateFormat)
	case EOF, LineEnd, Indent:
		return t.Kind.String()
	}
	return t.Text
}
