// Package payment holds the boundary to the external wallet capability
// and the server-side relay that routes transfer intents between
// sessions. Monetary amounts use shopspring/decimal, never float64.
package payment

import (
	"context"

	"github.com/shopspring/decimal"
)

// Receipt acknowledges an executed transfer.
type Receipt struct {
	TransactionID string
	Amount        decimal.Decimal
}

// BalanceSnapshot is the wallet's view of its funds at a point in time.
type BalanceSnapshot struct {
	Available decimal.Decimal
	Total     decimal.Decimal
}

// Provider is the external wallet collaborator. The core never creates
// wallets, manages keys, or polls chains; it only calls through this.
type Provider interface {
	SendPayment(ctx context.Context, address string, amount decimal.Decimal, memo string) (Receipt, error)
	Balance(ctx context.Context) (BalanceSnapshot, error)
}
