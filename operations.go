package budget

import (
	"github.com/shopspring/decimal"
)

// CommandType is a typed string for identifying operations.
type CommandType string

// Command types used for identifying operations.
const (
	CmdOpen     CommandType = "open"
	CmdDeposit  CommandType = "deposit"
	CmdWithdraw CommandType = "withdraw"
	CmdTransfer CommandType = "transfer"
)

// Operation is a single step of a budget script, replayed into a Book.
type Operation interface {
	What() CommandType // What returns the command type of the operation (e.g., "deposit").
	Equal(Operation) bool
}

type baseCmd struct {
	Command CommandType `json:"command"` // Command specifies the type of operation.
}

// What returns the command name for the operation.
func (t baseCmd) What() CommandType { return t.Command }

// catCmd is a component for operations on a single category.
type catCmd struct {
	baseCmd
	Category string `json:"category"`
}

// MarshalJSON implements the json.Marshaler interface for catCmd.
func (t catCmd) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("command", t.Command)
	w.Append("category", t.Category)
	return w.MarshalJSON()
}

// amountCmd is a specialized struct to read an amount in two fields.
type amountCmd struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency,omitempty"`
}

func (a amountCmd) Money() Money { return M(a.Amount, a.Currency) }

// MarshalJSON writes the money as an "amount" and an optional "currency".
func (m Money) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("amount", m.value)
	w.Optional("currency", m.cur)
	return w.MarshalJSON()
}

// Open declares a category, so that it appears in the book even before any
// activity.
type Open struct {
	catCmd
}

// NewOpen creates a new Open operation.
func NewOpen(category string) Open {
	return Open{catCmd{baseCmd{CmdOpen}, category}}
}

func (t Open) Equal(other Operation) bool {
	o, ok := other.(Open)
	return ok && t == o
}

// Deposit adds money to a category.
type Deposit struct {
	catCmd
	Amount Money
	Memo   string // Memo is the ledger entry description.
}

// NewDeposit creates a new Deposit operation.
func NewDeposit(category string, amount Money, memo string) Deposit {
	return Deposit{catCmd: catCmd{baseCmd{CmdDeposit}, category}, Amount: amount, Memo: memo}
}

// MarshalJSON implements the json.Marshaler interface for Deposit.
func (t Deposit) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.catCmd)
	w.EmbedFrom(t.Amount)
	w.Optional("memo", t.Memo)
	return w.MarshalJSON()
}

func (t Deposit) Equal(other Operation) bool {
	o, ok := other.(Deposit)
	return ok && t.catCmd == o.catCmd && t.Amount.Equal(o.Amount) && t.Memo == o.Memo
}

// Withdraw takes money out of a category, if the funds allow it.
type Withdraw struct {
	catCmd
	Amount Money
	Memo   string // Memo is the ledger entry description.
}

// NewWithdraw creates a new Withdraw operation.
func NewWithdraw(category string, amount Money, memo string) Withdraw {
	return Withdraw{catCmd: catCmd{baseCmd{CmdWithdraw}, category}, Amount: amount, Memo: memo}
}

// MarshalJSON implements the json.Marshaler interface for Withdraw.
func (t Withdraw) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.catCmd)
	w.EmbedFrom(t.Amount)
	w.Optional("memo", t.Memo)
	return w.MarshalJSON()
}

func (t Withdraw) Equal(other Operation) bool {
	o, ok := other.(Withdraw)
	return ok && t.catCmd == o.catCmd && t.Amount.Equal(o.Amount) && t.Memo == o.Memo
}

// Transfer moves money between two categories.
type Transfer struct {
	baseCmd
	From   string `json:"from"`
	To     string `json:"to"`
	Amount Money
}

// NewTransfer creates a new Transfer operation.
func NewTransfer(from, to string, amount Money) Transfer {
	return Transfer{baseCmd: baseCmd{CmdTransfer}, From: from, To: to, Amount: amount}
}

// MarshalJSON implements the json.Marshaler interface for Transfer.
func (t Transfer) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("command", t.Command)
	w.Append("from", t.From)
	w.Append("to", t.To)
	w.EmbedFrom(t.Amount)
	return w.MarshalJSON()
}

func (t Transfer) Equal(other Operation) bool {
	o, ok := other.(Transfer)
	return ok && t.baseCmd == o.baseCmd && t.From == o.From && t.To == o.To && t.Amount.Equal(o.Amount)
}

// Demo returns the scenario used to showcase the package: three categories
// with a few purchases and a transfer.
func Demo() []Operation {
	return []Operation{
		NewDeposit("Food", M(1000, ""), "initial deposit"),
		NewWithdraw("Food", M(10.15, ""), "groceries"),
		NewWithdraw("Food", M(15.89, ""), "restaurant and more food for dessert"),
		NewOpen("Clothing"),
		NewTransfer("Food", "Clothing", M(50, "")),
		NewWithdraw("Clothing", M(25.55, ""), ""),
		NewWithdraw("Clothing", M(100, ""), ""),
		NewDeposit("Auto", M(1000, ""), "initial deposit"),
		NewWithdraw("Auto", M(15, ""), ""),
	}
}
