package protocol

// PlayerSnapshot is the externally visible state of one blob.
type PlayerSnapshot struct {
	ID               string   `json:"id"`
	X                float64  `json:"x"`
	Y                float64  `json:"y"`
	TargetX          float64  `json:"targetX"`
	TargetY          float64  `json:"targetY"`
	Color            string   `json:"color"`
	IsMoving         bool     `json:"isMoving"`
	ArkAddress       string   `json:"arkAddress,omitempty"`
	AvailableBalance *float64 `json:"availableBalance,omitempty"`
}

// GameState is sent once, unicast, when a session connects. YourID tells
// the session which entity is its own; the server never designates a
// global current player.
type GameState struct {
	YourID  string           `json:"yourId"`
	Players []PlayerSnapshot `json:"players"`
}

type PlayerJoined struct {
	Player PlayerSnapshot `json:"player"`
}

type PlayerLeft struct {
	PlayerID string `json:"playerId"`
}

type PlayerMoved struct {
	PlayerID string  `json:"playerId"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
}

type ArkAddressUpdated struct {
	PlayerID   string `json:"playerId"`
	ArkAddress string `json:"arkAddress"`
}

type BalanceUpdated struct {
	PlayerID         string  `json:"playerId"`
	AvailableBalance float64 `json:"availableBalance"`
}

// ForwardedPaymentRequest is the original request plus the resolved
// address, unicast to the target session.
type ForwardedPaymentRequest struct {
	FromPlayerID string  `json:"fromPlayerId"`
	ToPlayerID   string  `json:"toPlayerId"`
	Amount       float64 `json:"amount"`
	Message      string  `json:"message,omitempty"`
	ArkAddress   string  `json:"arkAddress"`
}

// PaymentResponse is unicast to the session that initiated the request.
// The target session produces it after settling (or failing to settle)
// through its payment provider.
type PaymentResponse struct {
	Success       bool    `json:"success"`
	TransactionID string  `json:"transactionId,omitempty"`
	Error         string  `json:"error,omitempty"`
	FromPlayerID  string  `json:"fromPlayerId"`
	ToPlayerID    string  `json:"toPlayerId"`
	Amount        float64 `json:"amount"`
}
