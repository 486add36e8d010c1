package room

import (
	"time"

	"blobfield/payment"
	"blobfield/protocol"
)

// Payment relaying. The field resolves the target through the relay,
// forwards the intent, and tracks the request until the target answers
// or the timeout fires. The expiry timer posts back into the inbox so
// pending-table mutation stays on the actor goroutine.

func pendingKey(fromID, toID string) string {
	return fromID + "->" + toID
}

func (f *Field) handlePaymentRequest(c PaymentRequest) {
	addr, err := f.relay.Resolve(c.ToID, c.Amount)
	if err != nil {
		f.send(c.FromID, protocol.MsgPaymentResponse, protocol.PaymentResponse{
			Success:      false,
			Error:        err.Error(),
			FromPlayerID: c.FromID,
			ToPlayerID:   c.ToID,
			Amount:       c.Amount,
		})
		return
	}

	key := pendingKey(c.FromID, c.ToID)
	if old, ok := f.pending[key]; ok {
		// Re-request to the same target supersedes the old intent.
		old.timer.Stop()
		delete(f.pending, key)
	}
	p := &pendingPayment{fromID: c.FromID, toID: c.ToID, amount: c.Amount}
	p.timer = time.AfterFunc(f.paymentTTL, func() {
		select {
		case f.Inbox <- paymentExpired{key: key}:
		case <-f.quit:
		}
	})
	f.pending[key] = p

	f.send(c.ToID, protocol.MsgPaymentRequest, protocol.ForwardedPaymentRequest{
		FromPlayerID: c.FromID,
		ToPlayerID:   c.ToID,
		Amount:       c.Amount,
		Message:      c.Message,
		ArkAddress:   addr,
	})
	f.log.Infof("payment request relayed: %s -> %s amount=%v", c.FromID, c.ToID, c.Amount)
}

func (f *Field) handlePaymentResponse(c PaymentResponse) {
	if c.ID != c.Response.ToPlayerID {
		return // only the target session may answer its own request
	}
	key := pendingKey(c.Response.FromPlayerID, c.Response.ToPlayerID)
	p, ok := f.pending[key]
	if !ok {
		return // already expired, or never relayed
	}
	p.timer.Stop()
	delete(f.pending, key)
	f.send(c.Response.FromPlayerID, protocol.MsgPaymentResponse, c.Response)
	f.log.Infof("payment response relayed: %s -> %s success=%v", c.Response.ToPlayerID, c.Response.FromPlayerID, c.Response.Success)
}

func (f *Field) handlePaymentExpired(c paymentExpired) {
	p, ok := f.pending[c.key]
	if !ok {
		return
	}
	delete(f.pending, c.key)
	f.send(p.fromID, protocol.MsgPaymentResponse, protocol.PaymentResponse{
		Success:      false,
		Error:        "payment request timed out",
		FromPlayerID: p.fromID,
		ToPlayerID:   p.toID,
		Amount:       p.amount,
	})
	f.log.Warnf("payment request timed out: %s -> %s", p.fromID, p.toID)
}

// failPendingFor resolves pending requests touching a departed session:
// requests aimed at it fail back to their senders as not-found; requests
// it initiated are dropped outright.
func (f *Field) failPendingFor(id string) {
	for key, p := range f.pending {
		switch id {
		case p.toID:
			p.timer.Stop()
			delete(f.pending, key)
			f.send(p.fromID, protocol.MsgPaymentResponse, protocol.PaymentResponse{
				Success:      false,
				Error:        payment.ErrTargetNotFound.Error(),
				FromPlayerID: p.fromID,
				ToPlayerID:   p.toID,
				Amount:       p.amount,
			})
		case p.fromID:
			p.timer.Stop()
			delete(f.pending, key)
		}
	}
}
