package renderer

import (
	"strconv"

	"github.com/etnz/budget"
)

// Budget holds everything rendered by the budget report.
type Budget struct {
	Rows       []Row
	Total      Row
	Statements []Statement
	Chart      string
}

// Row is one line of the balances table.
type Row struct {
	Name      string
	Deposited string
	Spent     string
	Balance   string
	Share     string // share of all withdrawals, truncated to a whole percent.
}

// Statement is the fixed-width statement of a category.
type Statement struct {
	Name string
	Text string
}

// NewBudget collects the report data of the book categories.
func NewBudget(book *budget.Book) *Budget {
	categories := book.Categories()
	percents := budget.Percentages(categories...)

	r := &Budget{Chart: book.SpendChart()}
	var deposited, spent, balance budget.Money
	for i, c := range categories {
		r.Rows = append(r.Rows, Row{
			Name:      c.Name(),
			Deposited: c.Deposited().String(),
			Spent:     c.Spent().String(),
			Balance:   c.Balance().String(),
			Share:     strconv.Itoa(percents[i]) + "%",
		})
		r.Statements = append(r.Statements, Statement{Name: c.Name(), Text: c.String()})
		deposited = deposited.Add(c.Deposited())
		spent = spent.Add(c.Spent())
		balance = balance.Add(c.Balance())
	}
	r.Total = Row{
		Name:      "Total",
		Deposited: deposited.String(),
		Spent:     spent.String(),
		Balance:   balance.String(),
	}
	return r
}
