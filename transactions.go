package ytd

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/etnz/ytd/date"
)

// TransactionType is the kind of economic event a Transaction records.
type TransactionType string

// Transaction types. The set is closed.
const (
	Buy        TransactionType = "buy"        // Securities were bought using cash.
	Sell       TransactionType = "sell"       // Securities were sold to get cash.
	Deposit    TransactionType = "deposit"    // Cash was added to the position.
	Withdrawal TransactionType = "withdrawal" // Cash was removed from the position.
)

// policy holds the behavior attached to a transaction type.
type policy struct {
	hasQuantity bool
	// revert undoes the forward effect of t on p.
	revert func(p *Position, t Transaction)
}

var policies = map[TransactionType]policy{
	Buy: {
		hasQuantity: true,
		revert: func(p *Position, t Transaction) {
			p.AddCash(t.cash)
			p.AddSecurityPosition(t.security, t.quantity.Neg())
		},
	},
	Sell: {
		hasQuantity: true,
		revert: func(p *Position, t Transaction) {
			p.AddCash(t.cash.Neg())
			p.AddSecurityPosition(t.security, t.quantity)
		},
	},
	Deposit: {
		revert: func(p *Position, t Transaction) { p.AddCash(t.cash.Neg()) },
	},
	Withdrawal: {
		revert: func(p *Position, t Transaction) { p.AddCash(t.cash) },
	},
}

// TransactionTypes returns every transaction type.
func TransactionTypes() []TransactionType { return []TransactionType{Buy, Sell, Deposit, Withdrawal} }

// ParseTransactionType returns the transaction type named s.
func ParseTransactionType(s string) (TransactionType, error) {
	t := TransactionType(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: unknown type %q", ErrInvalidTransaction, s)
	}
	return t, nil
}

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	_, ok := policies[t]
	return ok
}

// HasQuantity tells if this type of transactions involve a security movement.
func (t TransactionType) HasQuantity() bool { return policies[t].hasQuantity }

// Transaction is an immutable record of a single economic event.
//
// Cash and quantity are always non-negative magnitudes: the direction of the
// movement is given by the type.
type Transaction struct {
	kind     TransactionType
	date     date.Date
	cash     Amount
	security Security // zero unless kind.HasQuantity()
	quantity Quantity
	memo     string
}

// NewBuy creates a transaction where quantity units of security are bought for cash.
func NewBuy(day date.Date, memo string, security Security, quantity Quantity, cash Amount) Transaction {
	return Transaction{kind: Buy, date: day, memo: memo, security: security, quantity: quantity, cash: cash}
}

// NewSell creates a transaction where quantity units of security are sold for cash.
func NewSell(day date.Date, memo string, security Security, quantity Quantity, cash Amount) Transaction {
	return Transaction{kind: Sell, date: day, memo: memo, security: security, quantity: quantity, cash: cash}
}

// NewDeposit creates a transaction adding cash to the account.
func NewDeposit(day date.Date, memo string, cash Amount) Transaction {
	return Transaction{kind: Deposit, date: day, memo: memo, cash: cash, quantity: ZeroQuantity()}
}

// NewWithdrawal creates a transaction removing cash from the account.
func NewWithdrawal(day date.Date, memo string, cash Amount) Transaction {
	return Transaction{kind: Withdrawal, date: day, memo: memo, cash: cash, quantity: ZeroQuantity()}
}

// NewTransaction creates a transaction of any type and validates it.
//
// security and quantity are ignored for types without quantity, as long as
// they are zero.
func NewTransaction(kind TransactionType, day date.Date, memo string, cash Amount, security Security, quantity Quantity) (Transaction, error) {
	t := Transaction{kind: kind, date: day, memo: memo, cash: cash, security: security, quantity: quantity}
	if err := t.Validate(); err != nil {
		return Transaction{}, err
	}
	return t, nil
}

// Type returns the type of the transaction.
func (t Transaction) Type() TransactionType { return t.kind }

// Date returns the date on which the transaction occurred.
func (t Transaction) Date() date.Date { return t.date }

// Cash returns the amount of cash exchanged.
func (t Transaction) Cash() Amount { return t.cash }

// Security returns the security exchanged, and false for cash-only transactions.
func (t Transaction) Security() (Security, bool) { return t.security, t.kind.HasQuantity() }

// Quantity returns the quantity of security exchanged, zero for cash-only transactions.
func (t Transaction) Quantity() Quantity { return t.quantity }

// Memo returns the optional note attached to the transaction.
func (t Transaction) Memo() string { return t.memo }

// Validate checks the transaction against the invariants of its type.
func (t Transaction) Validate() error {
	if !t.kind.Valid() {
		return fmt.Errorf("%w: unknown type %q", ErrInvalidTransaction, t.kind)
	}
	if t.date.IsZero() {
		return fmt.Errorf("%w: %s without a date", ErrInvalidTransaction, t.kind)
	}
	if t.cash.IsNegative() {
		return fmt.Errorf("%w: %s cash must not be negative, got %s", ErrInvalidTransaction, t.kind, t.cash)
	}
	if t.kind.HasQuantity() {
		if !t.security.Valid() {
			return fmt.Errorf("%w: %s requires a security", ErrInvalidTransaction, t.kind)
		}
		if t.quantity.IsNegative() {
			return fmt.Errorf("%w: %s quantity must not be negative, got %s", ErrInvalidTransaction, t.kind, t.quantity)
		}
		return nil
	}
	if t.security != 0 || !t.quantity.IsZero() {
		return fmt.Errorf("%w: %s cannot carry a security", ErrInvalidTransaction, t.kind)
	}
	return nil
}

// Revert undoes the effect of the transaction on p, walking p one event back in time.
//
// Reverting the same transaction twice reverts it twice.
func (t Transaction) Revert(p *Position) {
	pol, ok := policies[t.kind]
	if !ok {
		panic(fmt.Sprintf("cannot revert transaction of unknown type %q", t.kind))
	}
	pol.revert(p, t)
}

// Apply records the effect of the transaction on p, walking p one event
// forward in time. It is the exact inverse of Revert.
func (t Transaction) Apply(p *Position) {
	inverse := t
	inverse.cash, inverse.quantity = t.cash.Neg(), t.quantity.Neg()
	inverse.Revert(p)
}

// Equal reports whether t and o record the same event.
func (t Transaction) Equal(o Transaction) bool {
	return t.kind == o.kind && t.date == o.date && t.memo == o.memo && t.security == o.security &&
		t.cash.Equal(o.cash) && t.quantity.Equal(o.quantity)
}

func (t Transaction) String() string {
	if t.kind.HasQuantity() {
		return fmt.Sprintf("%s %s %s %s for %s", t.date, t.kind, t.quantity, t.security, t.cash)
	}
	return fmt.Sprintf("%s %s %s", t.date, t.kind, t.cash)
}

// MarshalJSON implements the json.Marshaler interface for Transaction.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("type", t.kind)
	w.Append("date", t.date)
	if t.kind.HasQuantity() {
		w.Append("security", t.security)
		w.Append("quantity", t.quantity)
	}
	w.Append("cash", t.cash)
	w.Optional("memo", t.memo)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Transaction. The
// decoded transaction is validated.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var temp struct {
		Type     TransactionType `json:"type"`
		Date     date.Date       `json:"date"`
		Security *Security       `json:"security"`
		Quantity Quantity        `json:"quantity"`
		Cash     Amount          `json:"cash"`
		Memo     string          `json:"memo"`
	}
	temp.Quantity = ZeroQuantity()
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	var sec Security
	if temp.Security != nil {
		sec = *temp.Security
	}
	tx, err := NewTransaction(temp.Type, temp.Date, temp.Memo, temp.Cash, sec, temp.Quantity)
	if err != nil {
		return err
	}
	*t = tx
	return nil
}

// SortAntichronological returns a copy of txs sorted by date, most recent first.
// Transactions on the same day keep their relative order.
func SortAntichronological(txs []Transaction) []Transaction {
	sorted := slices.Clone(txs)
	slices.SortStableFunc(sorted, func(a, b Transaction) int { return date.Compare(b.date, a.date) })
	return sorted
}
