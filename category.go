package budget

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

// Errors reported by category operations. Insufficient funds is not one of
// them: Withdraw and Transfer report it with a false result.
var (
	ErrNegativeAmount   = errors.New("amount must not be negative")
	ErrCurrencyMismatch = errors.New("currency mismatch")
	ErrInvalidTransfer  = errors.New("invalid transfer")
)

// Statement layout.
const (
	statementWidth   = 30
	descriptionWidth = 23
	amountWidth      = 7
)

// Entry is a single ledger line. Positive amounts are deposits, negative
// amounts are withdrawals.
type Entry struct {
	Amount      Money
	Description string
}

// Category is a named budget with its own append-only ledger.
//
// A Category is not safe for concurrent use: Withdraw and Transfer check the
// funds and then append.
type Category struct {
	name   string
	ledger []Entry
}

// NewCategory creates a category with an empty ledger.
func NewCategory(name string) *Category {
	return &Category{name: name}
}

// Name returns the category name.
func (c *Category) Name() string { return c.name }

// Len returns the number of ledger entries.
func (c *Category) Len() int { return len(c.ledger) }

// Currency returns the currency of the first entry that has one, or "".
func (c *Category) Currency() string {
	for _, e := range c.ledger {
		if e.Amount.cur != "" {
			return e.Amount.cur
		}
	}
	return ""
}

// Entries returns an iterator over the ledger in insertion order.
func (c *Category) Entries() iter.Seq2[int, Entry] {
	return func(yield func(int, Entry) bool) {
		for i, e := range c.ledger {
			if !yield(i, e) {
				return
			}
		}
	}
}

// check validates an amount before it is recorded in this category.
func (c *Category) check(amount Money) error {
	if amount.IsNegative() {
		return fmt.Errorf("%q: %s: %w", c.name, amount.Plain(), ErrNegativeAmount)
	}
	if cur := c.Currency(); !compatible(cur, amount.cur) {
		return fmt.Errorf("%q holds %s, got %s: %w", c.name, cur, amount.cur, ErrCurrencyMismatch)
	}
	return nil
}

// Deposit appends amount to the ledger.
func (c *Category) Deposit(amount Money, description string) error {
	if err := c.check(amount); err != nil {
		return fmt.Errorf("cannot deposit: %w", err)
	}
	c.ledger = append(c.ledger, Entry{Amount: amount, Description: description})
	return nil
}

// Withdraw records a withdrawal of amount if the funds are sufficient.
// It returns false, and leaves the ledger untouched, otherwise.
func (c *Category) Withdraw(amount Money, description string) (bool, error) {
	if err := c.check(amount); err != nil {
		return false, fmt.Errorf("cannot withdraw: %w", err)
	}
	if !c.CheckFunds(amount) {
		return false, nil
	}
	c.ledger = append(c.ledger, Entry{Amount: amount.Neg(), Description: description})
	return true, nil
}

// Balance returns the sum of all ledger amounts.
func (c *Category) Balance() Money {
	var total Money
	for _, e := range c.ledger {
		total = total.Add(e.Amount)
	}
	return total
}

// Spent returns the sum of all withdrawals, as a positive amount.
func (c *Category) Spent() Money {
	var total Money
	for _, e := range c.ledger {
		if e.Amount.IsNegative() {
			total = total.Add(e.Amount.Abs())
		}
	}
	return total
}

// Deposited returns the sum of all deposits.
func (c *Category) Deposited() Money {
	var total Money
	for _, e := range c.ledger {
		if e.Amount.IsPositive() {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// CheckFunds reports whether amount is not more than the balance.
func (c *Category) CheckFunds(amount Money) bool {
	return amount.LessThanOrEqual(c.Balance())
}

// Transfer moves amount from c to target. It returns false, and changes
// neither category, when c does not have the funds.
func (c *Category) Transfer(amount Money, target *Category) (bool, error) {
	if target == nil || target == c {
		return false, fmt.Errorf("cannot transfer from %q: %w", c.name, ErrInvalidTransfer)
	}
	if !compatible(c.Currency(), target.Currency()) {
		return false, fmt.Errorf("cannot transfer %s to %s: %w", c.Currency(), target.Currency(), ErrCurrencyMismatch)
	}
	if err := c.check(amount); err != nil {
		return false, fmt.Errorf("cannot transfer: %w", err)
	}
	// the target must accept the deposit before anything is withdrawn.
	if err := target.check(amount); err != nil {
		return false, fmt.Errorf("cannot transfer: %w", err)
	}
	if !c.CheckFunds(amount) {
		return false, nil
	}
	if ok, err := c.Withdraw(amount, "Transfer to "+target.name); !ok || err != nil {
		return ok, err
	}
	if err := target.Deposit(amount, "Transfer from "+c.name); err != nil {
		return false, err
	}
	return true, nil
}

// String returns the category statement: a title line, one line per entry
// and the total.
//
//	*************Food*************
//	initial deposit        1000.00
//	groceries               -10.15
//	Total: 989.85
func (c *Category) String() string {
	lines := make([]string, 0, len(c.ledger)+2)
	lines = append(lines, center(c.name, statementWidth, '*'))
	for _, e := range c.ledger {
		desc := padRight(truncate(e.Description, descriptionWidth), descriptionWidth, ' ')
		lines = append(lines, desc+e.Amount.Fixed(amountWidth))
	}
	lines = append(lines, "Total: "+c.Balance().Plain())
	return strings.Join(lines, "\n")
}
