package protocol

import "math"

// Payloads coming in from the client.

// Move sets a new target for the sender's blob.
type Move struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// PositionUpdate reports the client's interpolated position. Legacy path:
// it refines the authoritative position but is never broadcast.
type PositionUpdate struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// The registerArkAddress payload is a bare JSON string (the address),
// decoded with DecodePayload[string].

// BalanceUpdate is a self-reported wallet balance, advisory only.
type BalanceUpdate struct {
	PlayerID         string  `json:"playerId"`
	AvailableBalance float64 `json:"availableBalance"`
}

// PaymentRequest asks the server to relay a transfer intent to another
// session.
type PaymentRequest struct {
	FromPlayerID string  `json:"fromPlayerId"`
	ToPlayerID   string  `json:"toPlayerId"`
	Amount       float64 `json:"amount"`
	Message      string  `json:"message,omitempty"`
}

// Finite reports whether f is a usable coordinate or amount. Malformed
// numerics are rejected at this boundary and never reach the registry.
func Finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
