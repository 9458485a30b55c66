// Package money implements the fixed-point amount type used for all
// balances and transaction amounts.
package money

import (
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/shopspring/decimal"
)

// Places is the number of decimal places for currency amounts.
//
// Every fractional calculation (percentages, interest rates) is rounded
// to this precision with round-half-away-from-zero, and only in
// FromDecimal. Do not round anywhere else.
const Places = 2

// Money is an amount of currency in minor units (cents).
//
// The zero value is zero cents. Money never converts to or from floats;
// fractional arithmetic goes through decimal.Decimal.
type Money struct {
	cents int64
}

// Zero is the zero amount.
var Zero = Money{}

// FromCents returns the amount of the given number of minor units.
func FromCents(cents int64) Money {
	return Money{cents: cents}
}

// FromDecimal rounds a decimal currency value to the fixed precision
// and returns it as an amount.
func FromDecimal(d decimal.Decimal) Money {
	return Money{cents: d.Round(Places).Shift(Places).IntPart()}
}

// Cents returns the amount in minor units.
func (m Money) Cents() int64 {
	return m.cents
}

// Decimal returns the amount as a decimal currency value.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(m.cents, -Places)
}

func (m Money) Add(n Money) Money {
	return Money{cents: m.cents + n.cents}
}

func (m Money) Sub(n Money) Money {
	return Money{cents: m.cents - n.cents}
}

// Neg returns the amount with the opposite sign.
func (m Money) Neg() Money {
	return Money{cents: -m.cents}
}

// Abs returns the absolute value of the amount.
func (m Money) Abs() Money {
	if m.cents < 0 {
		return m.Neg()
	}
	return m
}

// Min returns the smaller of two amounts.
func Min(m, n Money) Money {
	if m.cents < n.cents {
		return m
	}
	return n
}

func (m Money) Equal(n Money) bool {
	return m.cents == n.cents
}

func (m Money) LessThan(n Money) bool {
	return m.cents < n.cents
}

func (m Money) GreaterThan(n Money) bool {
	return m.cents > n.cents
}

func (m Money) IsZero() bool {
	return m.cents == 0
}

func (m Money) IsPositive() bool {
	return m.cents > 0
}

func (m Money) IsNegative() bool {
	return m.cents < 0
}

// Percent applies a percentage (0-100) to the amount and rounds the
// result to the fixed precision.
func (m Money) Percent(p decimal.Decimal) Money {
	return FromDecimal(m.Decimal().Mul(p).Div(decimal.NewFromInt(100)))
}

// Div divides the amount by an integer and rounds the result to the
// fixed precision.
func (m Money) Div(n int64) Money {
	return FromDecimal(m.Decimal().Div(decimal.NewFromInt(n)))
}

// String returns the amount with the full currency precision, e.g. "12.30".
func (m Money) String() string {
	return m.Decimal().StringFixed(Places)
}

// MarshalJSON implements the json.Marshaler interface.
// Amounts are represented like decimal values.
func (m Money) MarshalJSON() ([]byte, error) {
	return m.Decimal().MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// It accepts everything decimal accepts and rounds to the fixed precision.
func (m *Money) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}

	*m = FromDecimal(d)
	return nil
}

// Value implements the driver.Valuer interface. Amounts are stored as
// integer minor units.
func (m Money) Value() (driver.Value, error) {
	return m.cents, nil
}

// Scan implements the sql.Scanner interface. NULL scans to zero so that
// aggregates over empty sets work without special casing.
func (m *Money) Scan(value any) error {
	if value == nil {
		*m = Zero
		return nil
	}

	cents := sql.NullInt64{}
	if err := cents.Scan(value); err != nil {
		return fmt.Errorf("scanning %v as an amount of money: %w", value, err)
	}

	*m = Money{cents: cents.Int64}
	return nil
}

// GormDataType defines the data type used by gorm for the type.
func (Money) GormDataType() string {
	return "integer"
}
