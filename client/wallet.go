package client

import (
	"context"

	"github.com/shopspring/decimal"

	"blobfield/payment"
	"blobfield/protocol"
)

// Wallet reacts to forwarded payment requests on behalf of a session. It
// settles through the external provider and produces the messages the
// session should send back: a paymentResponse for the relay, and on
// success a balanceUpdate reflecting the provider's new view of funds.
type Wallet struct {
	playerID string
	provider payment.Provider
}

func NewWallet(playerID string, p payment.Provider) *Wallet {
	return &Wallet{playerID: playerID, provider: p}
}

// HandleRequest settles one forwarded request. Provider failures surface
// in the response error field; they are never swallowed and never panic
// the caller.
func (w *Wallet) HandleRequest(ctx context.Context, req protocol.ForwardedPaymentRequest) [][]byte {
	resp := protocol.PaymentResponse{
		FromPlayerID: req.FromPlayerID,
		ToPlayerID:   req.ToPlayerID,
		Amount:       req.Amount,
	}
	if !protocol.Finite(req.Amount) || req.Amount <= 0 {
		resp.Error = payment.ErrInvalidAmount.Error()
		return encodeAll(protocol.MsgPaymentResponse, resp)
	}

	receipt, err := w.provider.SendPayment(ctx, req.ArkAddress, decimal.NewFromFloat(req.Amount), req.Message)
	if err != nil {
		resp.Error = err.Error()
		return encodeAll(protocol.MsgPaymentResponse, resp)
	}
	resp.Success = true
	resp.TransactionID = receipt.TransactionID

	out := encodeAll(protocol.MsgPaymentResponse, resp)
	if snap, err := w.provider.Balance(ctx); err == nil {
		avail, _ := snap.Available.Float64()
		if b, err := protocol.Encode(protocol.MsgBalanceUpdate, protocol.BalanceUpdate{
			PlayerID:         w.playerID,
			AvailableBalance: avail,
		}); err == nil {
			out = append(out, b)
		}
	}
	return out
}

func encodeAll(kind string, payload any) [][]byte {
	b, err := protocol.Encode(kind, payload)
	if err != nil {
		return nil
	}
	return [][]byte{b}
}
