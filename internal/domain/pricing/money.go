package pricing

import (
	"errors"
	"fmt"
	"math"
)

// MaxUnits bounds decimal amounts accepted from callers; its cent value stays exact in
// both float64 and int64.
const MaxUnits = 1e12

var (
	ErrNegativeMoney    = errors.New("money cannot be negative")
	ErrAmountOutOfRange = errors.New("amount exceeds the supported range")
)

// Money holds an amount in cents (2 decimal places).
type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

// MoneyFromUnits rounds a decimal currency amount half away from zero to the cent.
func MoneyFromUnits(units float64) (Money, error) {
	if math.IsNaN(units) || math.IsInf(units, 0) {
		return Money{}, fmt.Errorf("invalid amount %v", units)
	}
	if units < 0 {
		return Money{}, ErrNegativeMoney
	}
	if units > MaxUnits {
		return Money{}, ErrAmountOutOfRange
	}
	return Money{cents: int64(math.Round(units * 100))}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Units() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) IsZero() bool {
	return m.cents == 0
}

func (m Money) Mul(n int64) Money {
	return Money{cents: m.cents * n}
}

func (m Money) Min(other Money) Money {
	if other.cents < m.cents {
		return other
	}
	return m
}

func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
