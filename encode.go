package budget

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

// ErrUnknownCommand is returned for operations this package does not know.
var ErrUnknownCommand = errors.New("unknown command")

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DecodeOperations decodes a stream of JSONL operations, one per line.
// Empty lines are skipped.
func DecodeOperations(r io.Reader) ([]Operation, error) {
	var ops []Operation
	scanner := bufio.NewScanner(r)

	line := 0
	for scanner.Scan() {
		line++
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}
		op, err := decodeOperation(lineBytes)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		ops = append(ops, op)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return ops, nil
}

func decodeOperation(lineBytes []byte) (Operation, error) {
	var identifier struct {
		Command CommandType `json:"command"`
	}
	if err := json.Unmarshal(lineBytes, &identifier); err != nil {
		return nil, fmt.Errorf("could not identify command in %q: %w", string(lineBytes), err)
	}

	switch identifier.Command {
	case CmdOpen:
		var temp catCmd
		if err := json.Unmarshal(lineBytes, &temp); err != nil {
			return nil, err
		}
		return Open{catCmd: temp}, nil
	case CmdDeposit, CmdWithdraw:
		// Use a temporary type that has all possible fields.
		var temp struct {
			catCmd
			amountCmd
			Memo string `json:"memo,omitempty"`
		}
		if err := json.Unmarshal(lineBytes, &temp); err != nil {
			return nil, err
		}
		if identifier.Command == CmdDeposit {
			return Deposit{catCmd: temp.catCmd, Amount: temp.Money(), Memo: temp.Memo}, nil
		}
		return Withdraw{catCmd: temp.catCmd, Amount: temp.Money(), Memo: temp.Memo}, nil
	case CmdTransfer:
		var temp struct {
			baseCmd
			amountCmd
			From string `json:"from"`
			To   string `json:"to"`
		}
		if err := json.Unmarshal(lineBytes, &temp); err != nil {
			return nil, err
		}
		return Transfer{baseCmd: temp.baseCmd, From: temp.From, To: temp.To, Amount: temp.Money()}, nil
	default:
		return nil, fmt.Errorf("%q: %w", identifier.Command, ErrUnknownCommand)
	}
}

// EncodeOperations writes the operations to w in JSONL format.
func EncodeOperations(w io.Writer, ops ...Operation) error {
	for _, op := range ops {
		data, err := json.Marshal(op)
		if err != nil {
			return fmt.Errorf("failed to marshal %s operation: %w", op.What(), err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("failed to write operation: %w", err)
		}
	}
	return nil
}
