package ledger

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseOneLinerTransaction(t *testing.T) {
	cfg, err := Parse(strings.NewReader("2014-01-01 a:pocket e:food 100 USD # lunch\n"))
	require.NoError(t, err)

	require.Len(t, cfg.Ops, 2)
	from, to := cfg.Ops[0], cfg.Ops[1]
	require.Equal(t, "a:pocket", from.Account)
	require.Equal(t, -100.0, from.Amount)
	require.Equal(t, "e:food", to.Account)
	require.Equal(t, 100.0, to.Amount)
	require.Equal(t, "USD", to.Currency)
	require.Equal(t, "lunch", to.Comment)
	require.Equal(t, time.Date(2014, time.January, 1, 0, 0, 0, 0, time.UTC), to.Date)
}

func TestParseNestedBlocks(t *testing.T) {
	// A from-account with two targets, each with two amounts.
	cfg, err := Parse(strings.NewReader(src(
		"2014-01-01",
		"    a:pocket",
		"        e:food",
		"            100",
		"            50",
		"        e:games 200",
	)))
	require.NoError(t, err)

	require.Len(t, cfg.Ops, 6)
	var food, games float64
	for _, op := range cfg.Ops {
		switch op.Account {
		case "e:food":
			food += op.Amount
		case "e:games":
			games += op.Amount
		}
	}
	require.Equal(t, 150.0, food)
	require.Equal(t, 200.0, games)
}

func TestParseRateBlock(t *testing.T) {
	cfg, err := Parse(strings.NewReader(src(
		"rate",
		"    EURUSD 1.1",
		"    GBPUSD 1.3",
	)))
	require.NoError(t, err)
	require.Equal(t, map[string]float64{"EURUSD": 1.1, "GBPUSD": 1.3}, cfg.Rates)
}

func TestParseTopLevelComment(t *testing.T) {
	cfg, err := Parse(strings.NewReader(src(
		"# household ledger",
		"currency EUR",
	)))
	require.NoError(t, err)
	require.Equal(t, "EUR", cfg.Currency)
	require.Empty(t, cfg.Ops)
}

func TestParseErrorsCarryLineNumbers(t *testing.T) {
	_, err := Parse(strings.NewReader(src(
		"currency USD",
		"initial 100",
	)))
	require.ErrorContains(t, err, "line 2")
	require.ErrorContains(t, err, "want account")

	_, err = Parse(strings.NewReader("currency\n"))
	require.ErrorContains(t, err, "line 1")

	_, err = Parse(strings.NewReader("a:pocket e:food 100\n"))
	require.ErrorContains(t, err, "line 1: unexpected a:pocket")
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, cfg.Ops)
	require.Empty(t, cfg.Currency)
}
