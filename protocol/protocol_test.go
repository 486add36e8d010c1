package protocol

import (
	"math"
	"testing"
)

func TestMessageConstants(t *testing.T) {
	// Wire names are a contract with deployed web clients; lock them down.
	pairs := map[string]string{
		MsgMove:               "move",
		MsgPositionUpdate:     "positionUpdate",
		MsgRegisterArkAddress: "registerArkAddress",
		MsgBalanceUpdate:      "balanceUpdate",
		MsgPaymentRequest:     "paymentRequest",
		MsgPaymentResponse:    "paymentResponse",
		MsgGameState:          "gameState",
		MsgPlayerJoined:       "playerJoined",
		MsgPlayerLeft:         "playerLeft",
		MsgPlayerMoved:        "playerMoved",
		MsgArkAddressUpdated:  "playerArkAddressUpdated",
		MsgBalanceUpdated:     "balanceUpdated",
	}
	for got, want := range pairs {
		if got != want {
			t.Fatalf("message constant = %q, want %q", got, want)
		}
	}
}

func TestEncodeDecodeRoundtrip(t *testing.T) {
	b, err := Encode(MsgPlayerMoved, PlayerMoved{PlayerID: "p1", X: 10, Y: -3.5})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	env, err := DecodeEnvelope(b)
	if err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if env.T != MsgPlayerMoved {
		t.Fatalf("envelope type = %q, want %q", env.T, MsgPlayerMoved)
	}
	mv, err := DecodePayload[PlayerMoved](env)
	if err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if mv.PlayerID != "p1" || mv.X != 10 || mv.Y != -3.5 {
		t.Fatalf("payload roundtrip mismatch: %+v", mv)
	}
}

func TestEncodeRejectsEmptyType(t *testing.T) {
	if _, err := Encode("", Move{}); err == nil {
		t.Fatalf("expected error encoding empty type")
	}
	if _, err := Encode(MsgMove, nil); err == nil {
		t.Fatalf("expected error encoding nil payload")
	}
}

func TestDecodeEnvelopeRejectsEmpty(t *testing.T) {
	if _, err := DecodeEnvelope(nil); err == nil {
		t.Fatalf("expected error decoding empty bytes")
	}
	if _, err := DecodePayload[Move](Envelope{T: MsgMove}); err == nil {
		t.Fatalf("expected error decoding empty payload")
	}
}

func TestStringPayload(t *testing.T) {
	b, err := Encode(MsgRegisterArkAddress, "ark1qxyz")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	env, err := DecodeEnvelope(b)
	if err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	addr, err := DecodePayload[string](env)
	if err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if addr != "ark1qxyz" {
		t.Fatalf("address roundtrip = %q", addr)
	}
}

func TestFinite(t *testing.T) {
	for _, f := range []float64{0, -12.5, 1e9} {
		if !Finite(f) {
			t.Fatalf("Finite(%v) = false, want true", f)
		}
	}
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if Finite(f) {
			t.Fatalf("Finite(%v) = true, want false", f)
		}
	}
}
