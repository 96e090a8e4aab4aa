package ledger

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func lexString(t *testing.T, source string) []Token {
	t.Helper()
	tokens, err := Lex(strings.NewReader(source))
	require.NoError(t, err)
	return tokens
}

func kinds(tokens []Token) []Kind {
	out := make([]Kind, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}
	return out
}

func TestLexTransactionLine(t *testing.T) {
	tokens := lexString(t, "2014-01-01 a:pocket e:food 100.50 USD # lunch\n")

	require.Equal(t,
		[]Kind{Date, AccountRef, AccountRef, Number, Ident, Comment, LineEnd},
		kinds(tokens))
	require.Equal(t, 100.50, tokens[3].Number)
	require.Equal(t, "lunch", tokens[5].Text)
	for _, tok := range tokens {
		require.Equal(t, 1, tok.Line)
	}
}

func TestLexKeywords(t *testing.T) {
	tokens := lexString(t, "currency USD\nrate EURUSD 1.1\ninitial a:bank 5\nsplit\nrev\n")

	require.Equal(t, []Kind{
		Currency, Ident, LineEnd,
		Rate, Ident, Number, LineEnd,
		Initial, AccountRef, Number, LineEnd,
		Split, LineEnd,
		Rev, LineEnd,
	}, kinds(tokens))
}

func TestLexIndentCarriesExactWhitespace(t *testing.T) {
	tokens := lexString(t, "2014-01-01\n    a:pocket\n        e:food 100\n")

	require.Equal(t, []Kind{
		Date, LineEnd,
		Indent, AccountRef, LineEnd,
		Indent, AccountRef, Number, LineEnd,
	}, kinds(tokens))
	require.Equal(t, "    ", tokens[2].Text)
	require.Equal(t, "        ", tokens[5].Text)
}

func TestLexSkipsBlankLines(t *testing.T) {
	tokens := lexString(t, "\n   \nrev\n\n")
	require.Equal(t, []Kind{Rev, LineEnd}, kinds(tokens))
	require.Equal(t, 3, tokens[0].Line)
}

func TestLexCommentJoinsRestOfLine(t *testing.T) {
	tokens := lexString(t, "# set   rate here 2024-01-01\n")
	require.Equal(t, []Kind{Comment, LineEnd}, kinds(tokens))
	// Words after # are rejoined with single spaces, never re-classified.
	require.Equal(t, "set rate here 2024-01-01", tokens[0].Text)
}

func TestLexNegativeNumber(t *testing.T) {
	tokens := lexString(t, "initial l:friend -42.5\n")
	require.Equal(t, []Kind{Initial, AccountRef, Number, LineEnd}, kinds(tokens))
	require.Equal(t, -42.5, tokens[2].Number)
}

func TestLexDashedWordIsNotADate(t *testing.T) {
	// A dash alone does not make a date; fall through to identifier.
	tokens := lexString(t, "some-word 2014-13-01\n")
	require.Equal(t, []Kind{Ident, Ident, LineEnd}, kinds(tokens))
}
