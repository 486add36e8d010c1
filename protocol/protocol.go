package protocol

import (
	"encoding/json"
)

// Message kinds, client -> server. paymentRequest and paymentResponse
// travel both directions: a request is relayed to the target session and
// the target's response is relayed back to the original sender.
const (
	MsgMove               = "move"
	MsgPositionUpdate     = "positionUpdate"
	MsgRegisterArkAddress = "registerArkAddress"
	MsgBalanceUpdate      = "balanceUpdate"
	MsgPaymentRequest     = "paymentRequest"
	MsgPaymentResponse    = "paymentResponse"
)

// Message kinds, server -> client.
const (
	MsgGameState         = "gameState"
	MsgPlayerJoined      = "playerJoined"
	MsgPlayerLeft        = "playerLeft"
	MsgPlayerMoved       = "playerMoved"
	MsgArkAddressUpdated = "playerArkAddressUpdated"
	MsgBalanceUpdated    = "balanceUpdated"
)

type Envelope struct {
	T string          `json:"t"`
	P json.RawMessage `json:"p"` // raw payload bytes
}
