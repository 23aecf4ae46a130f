package budget

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

const chartTitle = "Percentage spent by category"

var hundred = decimal.NewFromInt(100)

// Percentages returns, for each category, the floor of its share of the total
// withdrawals as a percentage. Shares are truncated, so they may sum to less
// than 100. When nothing was withdrawn at all, every share is 0.
func Percentages(categories ...*Category) []int {
	spent := make([]decimal.Decimal, len(categories))
	total := decimal.Zero
	for i, c := range categories {
		spent[i] = c.Spent().value
		total = total.Add(spent[i])
	}

	percents := make([]int, len(categories))
	if total.IsZero() {
		return percents
	}
	for i, s := range spent {
		percents[i] = int(s.Mul(hundred).Div(total).Floor().IntPart())
	}
	return percents
}

// SpendChart renders a bar chart of the share of withdrawals of each
// category, in the given order, with the category names written vertically
// below.
//
//	Percentage spent by category
//	100|
//	...
//	  0| o  o  o
//	    ----------
//	     B  F  E
//	     u  o  n
func SpendChart(categories ...*Category) string {
	percents := Percentages(categories...)
	lines := []string{chartTitle}

	var row strings.Builder
	for threshold := 100; threshold >= 0; threshold -= 10 {
		row.Reset()
		row.WriteString(padLeft(strconv.Itoa(threshold), 3, ' '))
		row.WriteString("| ")
		for _, p := range percents {
			if p >= threshold {
				row.WriteString("o  ")
			} else {
				row.WriteString("   ")
			}
		}
		lines = append(lines, row.String())
	}

	lines = append(lines, "    "+strings.Repeat("-", 3*len(categories)+1))

	names := make([][]rune, len(categories))
	longest := 0
	for i, c := range categories {
		names[i] = []rune(c.Name())
		longest = max(longest, utf8.RuneCountInString(c.Name()))
	}
	for i := range longest {
		row.Reset()
		row.WriteString("     ")
		for _, name := range names {
			if i < len(name) {
				row.WriteRune(name[i])
				row.WriteString("  ")
			} else {
				row.WriteString("   ")
			}
		}
		lines = append(lines, row.String())
	}

	return strings.Join(lines, "\n")
}
