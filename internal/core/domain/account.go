package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is a ledger account holding a NUMERIC(15,2) balance.
// Balance is only ever mutated by the withdrawal engine inside a
// transaction that holds the account's row lock.
type Account struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// CanCover reports whether the balance covers the given amount.
func (a *Account) CanCover(amount decimal.Decimal) bool {
	return a.Balance.GreaterThanOrEqual(amount)
}
