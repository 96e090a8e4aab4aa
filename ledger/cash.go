package ledger

import (
	"fmt"
	"strings"
	"time"
)

// An Account is one node of the account tree. Balance maps currency code
// to amount. Reverse is the sign convention of the subtree: +1 for assets
// and expenses, -1 for liabilities and income, so that money you owe and
// money you earn both report as positive numbers.
type Account struct {
	QName    string // fully qualified name, e.g. "a:bank:checking"
	Title    string // last segment of the qualified name
	Reverse  float64
	Balance  map[string]float64
	Parent   *Account
	Children map[string]*Account
	Level    int
}

func newAccount(qname, title string, reverse float64, parent *Account) *Account {
	acc := &Account{
		QName:    qname,
		Title:    title,
		Reverse:  reverse,
		Balance:  make(map[string]float64),
		Parent:   parent,
		Children: make(map[string]*Account),
	}
	if parent != nil {
		acc.Level = parent.Level + 1
	}
	return acc
}

// add applies an amount to this account only. Initial amounts are stated
// as-is in the ledger and skip the sign convention.
func (a *Account) add(amount float64, currency string, initial bool) {
	if !initial {
		amount *= a.Reverse
	}
	a.Balance[currency] += amount
}

// HasBalance reports whether any currency of the account is non-zero.
func (a *Account) HasBalance() bool {
	for _, amount := range a.Balance {
		if amount != 0 {
			return true
		}
	}
	return false
}

// Cash holds the four root accounts and everything needed to post
// operations against them.
type Cash struct {
	Assets      *Account
	Expenses    *Account
	Liabilities *Account
	Income      *Account
	Accounts    map[string]*Account

	Currency string // base currency, USD unless the ledger says otherwise
	Rates    map[string]float64
}

func NewCash(currency string) *Cash {
	if currency == "" {
		currency = "USD"
	}

	c := &Cash{
		Assets:      newAccount("a", "assets", 1, nil),
		Expenses:    newAccount("e", "expenses", 1, nil),
		Liabilities: newAccount("l", "liabilities", -1, nil),
		Income:      newAccount("i", "income", -1, nil),
		Currency:    currency,
		Rates:       make(map[string]float64),
	}
	c.Accounts = map[string]*Account{
		"a": c.Assets,
		"e": c.Expenses,
		"l": c.Liabilities,
		"i": c.Income,
	}
	return c
}

// Account returns the account with the given qualified name, creating it
// and any missing ancestors on demand. The root segment must be one of
// a, e, l or i.
func (c *Cash) Account(qname string) (*Account, error) {
	if acc, ok := c.Accounts[qname]; ok {
		return acc, nil
	}

	idx := strings.LastIndex(qname, ":")
	if idx < 0 {
		return nil, fmt.Errorf("unknown account root %q", qname)
	}
	parentName, title := qname[:idx], qname[idx+1:]

	parent, err := c.Account(parentName)
	if err != nil {
		return nil, err
	}

	acc := newAccount(qname, title, parent.Reverse, parent)
	parent.Children[title] = acc
	c.Accounts[qname] = acc
	return acc, nil
}

// Convert translates an amount between currencies using the rate table.
// Rates are keyed by the concatenated pair, e.g. EURUSD.
func (c *Cash) Convert(from, to string, amount float64) (float64, error) {
	if from == to {
		return amount, nil
	}
	rate, ok := c.Rates[from+to]
	if !ok {
		return 0, fmt.Errorf("no conversion rate for %s%s", from, to)
	}
	return amount * rate, nil
}

// Post applies an amount to the named account and all of its ancestors.
func (c *Cash) Post(qname string, amount float64, currency string, initial bool) error {
	if currency == "" {
		currency = c.Currency
	}

	acc, err := c.Account(qname)
	if err != nil {
		return err
	}
	for acc != nil {
		acc.add(amount, currency, initial)
		acc = acc.Parent
	}
	return nil
}

// Apply posts every operation in order.
func (c *Cash) Apply(ops []Op) error {
	for _, op := range ops {
		if err := c.Post(op.Account, op.Amount, op.Currency, op.Initial); err != nil {
			return err
		}
	}
	return nil
}

// Equity returns assets minus liabilities per currency.
func (c *Cash) Equity() map[string]float64 {
	equity := make(map[string]float64)
	for cur := range c.Assets.Balance {
		equity[cur] = c.Assets.Balance[cur]
	}
	for cur, amount := range c.Liabilities.Balance {
		equity[cur] -= amount
	}
	return equity
}

// Total folds a multi-currency balance into the base currency.
func (c *Cash) Total(balance map[string]float64) (float64, error) {
	var total float64
	for cur, amount := range balance {
		converted, err := c.Convert(cur, c.Currency, amount)
		if err != nil {
			return 0, err
		}
		total += converted
	}
	return total, nil
}

// FilterOps keeps operations with start <= op.Date < end. A zero bound is
// open.
func FilterOps(ops []Op, start, end time.Time) []Op {
	filtered := make([]Op, 0, len(ops))
	for _, op := range ops {
		if !start.IsZero() && op.Date.Before(start) {
			continue
		}
		if !end.IsZero() && !op.Date.Before(end) {
			continue
		}
		filtered = append(filtered, op)
	}
	return filtered
}

// Build computes balances from a parsed ledger, keeping only operations
// within [start, end). Zero bounds are open.
func Build(cfg *Config, start, end time.Time) (*Cash, error) {
	c := NewCash(cfg.Currency)
	for cur, rate := range cfg.Rates {
		c.Rates[cur] = rate
	}
	if err := c.Apply(FilterOps(cfg.Ops, start, end)); err != nil {
		return nil, err
	}
	return c, nil
}

// NextMonth returns the first day of the month after t's.
func NextMonth(t time.Time) time.Time {
	yd, month := divmodMonth(int(t.Month()))
	return time.Date(t.Year()+yd, time.Month(month+1), 1, 0, 0, 0, 0, t.Location())
}

// PrevMonth returns the first day of the month before t's.
func PrevMonth(t time.Time) time.Time {
	yd, month := divmodMonth(int(t.Month()) - 2)
	return time.Date(t.Year()+yd, time.Month(month+1), 1, 0, 0, 0, 0, t.Location())
}

func divmodMonth(m int) (years, month int) {
	years = m / 12
	month = m % 12
	if month < 0 {
		month += 12
		years--
	}
	return years, month
}

// MonthRange returns the first day of t's month and the first day of the
// next month, the half-open range of that month.
func MonthRange(t time.Time) (start, end time.Time) {
	start = time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return start, NextMonth(start)
}
