package ledger

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

var (
	headerColor   = color.New(color.Bold)
	negativeColor = color.New(color.FgRed)
)

// walk visits acc and its descendants depth-first, children ordered by
// title. A maxLevel below zero means no depth limit.
func walk(acc *Account, maxLevel int, visit func(*Account)) {
	visit(acc)
	if maxLevel >= 0 && acc.Level >= maxLevel {
		return
	}

	titles := make([]string, 0, len(acc.Children))
	for title := range acc.Children {
		titles = append(titles, title)
	}
	sort.Strings(titles)
	for _, title := range titles {
		walk(acc.Children[title], maxLevel, visit)
	}
}

// collectStats gathers the accounts under the given roots that carry any
// balance, plus the currencies they mention. The base currency always
// comes first; the rest keep discovery order.
func collectStats(c *Cash, roots []string, maxLevel int) ([]*Account, []string) {
	var accounts []*Account
	currencies := []string{c.Currency}
	seen := map[string]bool{c.Currency: true}

	for _, root := range roots {
		acc, ok := c.Accounts[root]
		if !ok {
			continue
		}
		walk(acc, maxLevel, func(a *Account) {
			if !a.HasBalance() {
				return
			}
			accounts = append(accounts, a)
			curs := make([]string, 0, len(a.Balance))
			for cur, amount := range a.Balance {
				if amount != 0 && !seen[cur] {
					curs = append(curs, cur)
				}
			}
			sort.Strings(curs)
			for _, cur := range curs {
				seen[cur] = true
				currencies = append(currencies, cur)
			}
		})
	}

	return accounts, currencies
}

// padTitle right-pads a title to the given display width. Widths are
// terminal cells, not bytes, so wide runes in account names line up.
func padTitle(title string, width int) string {
	if pad := width - runewidth.StringWidth(title); pad > 0 {
		return title + strings.Repeat(" ", pad)
	}
	return title
}

func amountCell(amount float64) string {
	cell := fmt.Sprintf("%10.2f", amount)
	if amount < 0 {
		return negativeColor.Sprint(cell)
	}
	return cell
}

// Report writes an aligned balance table of every non-zero account under
// the given roots. Accounts are indented by tree level with one column
// per currency. With withEquity, an equity row (assets minus liabilities)
// and its base-currency total are appended. A maxLevel below zero means
// no depth limit.
func Report(w io.Writer, c *Cash, roots []string, withEquity bool, maxLevel int) error {
	accounts, currencies := collectStats(c, roots, maxLevel)
	if len(accounts) == 0 {
		_, err := fmt.Fprintln(w, "No data")
		return err
	}

	titleWidth := 0
	for _, acc := range accounts {
		if w := 2*acc.Level + runewidth.StringWidth(acc.Title); w > titleWidth {
			titleWidth = w
		}
	}
	if withEquity && titleWidth < len("equity") {
		titleWidth = len("equity")
	}

	var header strings.Builder
	header.WriteString(strings.Repeat(" ", titleWidth))
	for _, cur := range currencies {
		fmt.Fprintf(&header, "  %10s", cur)
	}
	if _, err := fmt.Fprintln(w, headerColor.Sprint(header.String())); err != nil {
		return err
	}

	first := true
	for _, acc := range accounts {
		if !first && acc.Level == 0 {
			fmt.Fprintln(w)
		}
		first = false

		row := padTitle(strings.Repeat("  ", acc.Level)+acc.Title, titleWidth)
		for _, cur := range currencies {
			row += "  " + amountCell(acc.Balance[cur])
		}
		if _, err := fmt.Fprintln(w, row); err != nil {
			return err
		}
	}

	if withEquity {
		equity := c.Equity()
		total, err := c.Total(equity)
		if err != nil {
			return err
		}

		fmt.Fprintln(w)
		row := padTitle("equity", titleWidth)
		for _, cur := range currencies {
			row += "  " + amountCell(equity[cur])
		}
		row += "   " + amountCell(total)
		if _, err := fmt.Fprintln(w, row); err != nil {
			return err
		}
	}

	return nil
}
