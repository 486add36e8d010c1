package room

import "blobfield/protocol"

// Conn is the sending half of a session. Narrow on purpose so tests can
// fake it.
type Conn interface {
	Send([]byte) error
	Close() error
}

// Commands posted into the field's inbox. One command type per inbound
// message kind plus connection lifecycle; each maps to exactly one
// registry mutation and one fan-out rule.

// Join: issued once per connection after the websocket upgrade.
type Join struct {
	ID   string
	Conn Conn
}

// Leave: issued on disconnect. Duplicates are harmless.
type Leave struct {
	ID string
}

// Move sets a new target for the sender's blob.
type Move struct {
	ID   string
	X, Y float64
}

// PositionUpdate refines the sender's authoritative position. Never
// broadcast.
type PositionUpdate struct {
	ID   string
	X, Y float64
}

// RegisterAddress sets the sender's payment address and recolors them.
type RegisterAddress struct {
	ID         string
	ArkAddress string
}

// BalanceUpdate records a self-reported balance for the sender.
type BalanceUpdate struct {
	ID     string
	Amount float64
}

// PaymentRequest asks the field to relay a transfer intent.
type PaymentRequest struct {
	FromID  string
	ToID    string
	Amount  float64
	Message string
}

// PaymentResponse carries the target session's settlement outcome back
// into the field. ID is the reporting session, which must be the target.
type PaymentResponse struct {
	ID       string
	Response protocol.PaymentResponse
}

// paymentExpired is posted by the expiry timer, never by the network.
type paymentExpired struct {
	key string
}
