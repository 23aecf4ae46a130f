package budget

import (
	"fmt"
)

// Book is an ordered set of categories, indexed by name.
//
// Categories are kept in creation order, which is also the column order of
// the spend chart.
type Book struct {
	categories []*Category
	index      map[string]*Category
}

// NewBook creates an empty book.
func NewBook() *Book {
	return &Book{index: make(map[string]*Category)}
}

// Replay creates a book and applies all operations in order. Refused
// withdrawals and transfers are not errors.
func Replay(ops ...Operation) (*Book, error) {
	b := NewBook()
	for i, op := range ops {
		if _, err := b.Apply(op); err != nil {
			return nil, fmt.Errorf("operation #%d: %w", i+1, err)
		}
	}
	return b, nil
}

// Open returns the category with this name, creating it if needed.
func (b *Book) Open(name string) *Category {
	if c, ok := b.index[name]; ok {
		return c
	}
	c := NewCategory(name)
	b.index[name] = c
	b.categories = append(b.categories, c)
	return c
}

// Category returns the category with this name, or nil if unknown.
func (b *Book) Category(name string) *Category {
	return b.index[name]
}

// Categories returns the categories in creation order.
func (b *Book) Categories() []*Category {
	return append([]*Category(nil), b.categories...)
}

// Apply performs the operation on the book, opening the categories it
// refers to. The boolean is false when a withdrawal or transfer was refused
// for insufficient funds.
func (b *Book) Apply(op Operation) (bool, error) {
	switch v := op.(type) {
	case Open:
		if v.Category == "" {
			return false, fmt.Errorf("open: category name is missing")
		}
		b.Open(v.Category)
		return true, nil
	case Deposit:
		if v.Category == "" {
			return false, fmt.Errorf("deposit: category name is missing")
		}
		if err := b.Open(v.Category).Deposit(v.Amount, v.Memo); err != nil {
			return false, err
		}
		return true, nil
	case Withdraw:
		if v.Category == "" {
			return false, fmt.Errorf("withdraw: category name is missing")
		}
		return b.Open(v.Category).Withdraw(v.Amount, v.Memo)
	case Transfer:
		if v.From == "" || v.To == "" {
			return false, fmt.Errorf("transfer: %w: both categories are required", ErrInvalidTransfer)
		}
		return b.Open(v.From).Transfer(v.Amount, b.Open(v.To))
	default:
		return false, fmt.Errorf("unsupported operation %T: %w", op, ErrUnknownCommand)
	}
}

// SpendChart renders the spend chart of all categories of the book.
func (b *Book) SpendChart() string {
	return SpendChart(b.categories...)
}
