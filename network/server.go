package network

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"blobfield/protocol"
	"blobfield/room"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// For dev, allow all origins. Lock this down in prod.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Server terminates websockets and feeds the field actor.
type Server struct {
	field *room.Field
	log   *zap.SugaredLogger
}

func NewServer(field *room.Field, log *zap.SugaredLogger) *Server {
	return &Server{field: field, log: log}
}

func (s *Server) HandleWS(w http.ResponseWriter, r *http.Request) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Errorf("upgrade: %v", err)
		return
	}
	// The connection id is the session identity for its whole lifetime.
	id := uuid.NewString()
	sess := newSession(ws)
	s.field.Inbox <- room.Join{ID: id, Conn: sess}
	go sess.writePump()
	go s.readPump(sess, id)
}

// readPump validates inbound traffic at the boundary and posts commands
// to the field. Malformed payloads are dropped here and never reach the
// registry, never partially applied.
func (s *Server) readPump(sess *session, id string) {
	defer func() {
		_ = sess.ws.Close()
		s.field.Inbox <- room.Leave{ID: id}
	}()
	sess.ws.SetReadLimit(readLimit)
	_ = sess.ws.SetReadDeadline(time.Now().Add(pongWait))
	sess.ws.SetPongHandler(func(string) error {
		return sess.ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, payload, err := sess.ws.ReadMessage()
		if err != nil {
			return
		}
		env, err := protocol.DecodeEnvelope(payload)
		if err != nil {
			continue
		}
		s.dispatch(env, id)
	}
}

func (s *Server) dispatch(env protocol.Envelope, id string) {
	switch env.T {
	case protocol.MsgMove:
		m, err := protocol.DecodePayload[protocol.Move](env)
		if err != nil || !protocol.Finite(m.X) || !protocol.Finite(m.Y) {
			return
		}
		s.field.Inbox <- room.Move{ID: id, X: m.X, Y: m.Y}
	case protocol.MsgPositionUpdate:
		m, err := protocol.DecodePayload[protocol.PositionUpdate](env)
		if err != nil || !protocol.Finite(m.X) || !protocol.Finite(m.Y) {
			return
		}
		s.field.Inbox <- room.PositionUpdate{ID: id, X: m.X, Y: m.Y}
	case protocol.MsgRegisterArkAddress:
		addr, err := protocol.DecodePayload[string](env)
		if err != nil || addr == "" {
			return
		}
		s.field.Inbox <- room.RegisterAddress{ID: id, ArkAddress: addr}
	case protocol.MsgBalanceUpdate:
		m, err := protocol.DecodePayload[protocol.BalanceUpdate](env)
		if err != nil || !protocol.Finite(m.AvailableBalance) {
			return
		}
		s.field.Inbox <- room.BalanceUpdate{ID: id, Amount: m.AvailableBalance}
	case protocol.MsgPaymentRequest:
		m, err := protocol.DecodePayload[protocol.PaymentRequest](env)
		if err != nil || !protocol.Finite(m.Amount) {
			return
		}
		// The sender is whoever holds this connection, regardless of
		// what the payload claims.
		s.field.Inbox <- room.PaymentRequest{FromID: id, ToID: m.ToPlayerID, Amount: m.Amount, Message: m.Message}
	case protocol.MsgPaymentResponse:
		m, err := protocol.DecodePayload[protocol.PaymentResponse](env)
		if err != nil {
			return
		}
		s.field.Inbox <- room.PaymentResponse{ID: id, Response: m}
	default:
		// Unknown kinds never crash the connection.
	}
}

// HandleHealth reports process liveness and the current entity count.
func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":  "ok",
		"players": s.field.NumPlayers(),
	})
}
