package room

import (
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"blobfield/game"
	"blobfield/payment"
	"blobfield/protocol"
)

// Field is the single authoritative world. One goroutine (Run) owns the
// registry and the pending-payment table; every mutation arrives as a
// command through Inbox and is processed to completion before the next,
// so no locking is needed anywhere behind it.
type Field struct {
	Inbox chan any

	registry *game.Registry
	relay    *payment.Relay
	clients  map[string]Conn
	pending  map[string]*pendingPayment

	paymentTTL time.Duration
	players    atomic.Int64
	log        *zap.SugaredLogger
	quit       chan struct{}
}

type pendingPayment struct {
	fromID string
	toID   string
	amount float64
	timer  *time.Timer
}

func New(log *zap.SugaredLogger, paymentTTL time.Duration) *Field {
	f := &Field{
		Inbox:      make(chan any, 256),
		registry:   game.NewRegistry(),
		clients:    make(map[string]Conn),
		pending:    make(map[string]*pendingPayment),
		paymentTTL: paymentTTL,
		log:        log,
		quit:       make(chan struct{}),
	}
	f.relay = payment.NewRelay(f.registry)
	return f
}

func (f *Field) Run() {
	for {
		select {
		case <-f.quit:
			return
		case cmd := <-f.Inbox:
			f.handleCommand(cmd)
		}
	}
}

func (f *Field) Stop() {
	close(f.quit)
}

// NumPlayers is safe to call from any goroutine; it feeds /health.
func (f *Field) NumPlayers() int {
	return int(f.players.Load())
}

func (f *Field) handleCommand(cmd any) {
	switch c := cmd.(type) {
	case Join:
		f.handleJoin(c)
	case Leave:
		f.handleLeave(c)
	case Move:
		f.handleMove(c)
	case PositionUpdate:
		f.registry.SetPosition(c.ID, c.X, c.Y) // refinement, never broadcast
	case RegisterAddress:
		f.handleRegisterAddress(c)
	case BalanceUpdate:
		f.handleBalanceUpdate(c)
	case PaymentRequest:
		f.handlePaymentRequest(c)
	case PaymentResponse:
		f.handlePaymentResponse(c)
	case paymentExpired:
		f.handlePaymentExpired(c)
	}
}

func (f *Field) handleJoin(c Join) {
	ent, err := f.registry.Add(c.ID)
	if err != nil {
		// Duplicate session id: transport guarantees make this
		// unreachable, so refuse the connection rather than corrupt
		// the registry.
		f.log.Errorf("join rejected for %s: %v", c.ID, err)
		_ = c.Conn.Close()
		return
	}
	f.clients[c.ID] = c.Conn
	f.players.Store(int64(f.registry.Len()))

	f.broadcast(protocol.MsgPlayerJoined, protocol.PlayerJoined{Player: toSnapshot(ent)}, c.ID)

	snap := f.registry.Snapshot()
	players := make([]protocol.PlayerSnapshot, 0, len(snap))
	for _, e := range snap {
		players = append(players, toSnapshot(e))
	}
	f.send(c.ID, protocol.MsgGameState, protocol.GameState{YourID: c.ID, Players: players})
	f.log.Infof("player connected: %s (%d online)", c.ID, f.registry.Len())
}

func (f *Field) handleLeave(c Leave) {
	conn, ok := f.clients[c.ID]
	if !ok {
		return // duplicate disconnect signal
	}
	delete(f.clients, c.ID)
	f.registry.Remove(c.ID)
	f.players.Store(int64(f.registry.Len()))
	_ = conn.Close()
	f.failPendingFor(c.ID)
	f.broadcast(protocol.MsgPlayerLeft, protocol.PlayerLeft{PlayerID: c.ID}, "")
	f.log.Infof("player disconnected: %s (%d online)", c.ID, f.registry.Len())
}

func (f *Field) handleMove(c Move) {
	if !f.registry.SetTarget(c.ID, c.X, c.Y) {
		return // late event after disconnect
	}
	f.broadcast(protocol.MsgPlayerMoved, protocol.PlayerMoved{PlayerID: c.ID, X: c.X, Y: c.Y}, "")
}

func (f *Field) handleRegisterAddress(c RegisterAddress) {
	if !f.registry.SetArkAddress(c.ID, c.ArkAddress) {
		return
	}
	f.broadcast(protocol.MsgArkAddressUpdated, protocol.ArkAddressUpdated{
		PlayerID:   c.ID,
		ArkAddress: c.ArkAddress,
	}, "")
}

func (f *Field) handleBalanceUpdate(c BalanceUpdate) {
	if !f.registry.SetBalance(c.ID, c.Amount) {
		return
	}
	f.broadcast(protocol.MsgBalanceUpdated, protocol.BalanceUpdated{
		PlayerID:         c.ID,
		AvailableBalance: c.Amount,
	}, "")
}

// send unicasts one message. A failed write means the session is gone:
// run the full leave path so everyone else hears about it.
func (f *Field) send(id, kind string, payload any) {
	c, ok := f.clients[id]
	if !ok {
		return
	}
	b, err := protocol.Encode(kind, payload)
	if err != nil {
		f.log.Errorf("encode %s: %v", kind, err)
		return
	}
	if c.Send(b) != nil {
		f.handleLeave(Leave{ID: id})
	}
}

// broadcast fans one message out to every connected session except
// exceptID (empty string means truly everyone). Failed conns are dropped
// after the loop; dropping triggers a playerLeft broadcast of its own,
// which terminates because each drop removes a client.
func (f *Field) broadcast(kind string, payload any, exceptID string) {
	b, err := protocol.Encode(kind, payload)
	if err != nil {
		f.log.Errorf("encode %s: %v", kind, err)
		return
	}
	var failed []string
	for id, c := range f.clients {
		if id == exceptID {
			continue
		}
		if c.Send(b) != nil {
			failed = append(failed, id)
		}
	}
	for _, id := range failed {
		f.log.Warnf("dropping unresponsive session %s", id)
		f.handleLeave(Leave{ID: id})
	}
}

func toSnapshot(e game.Entity) protocol.PlayerSnapshot {
	s := protocol.PlayerSnapshot{
		ID:         e.ID,
		X:          e.X,
		Y:          e.Y,
		TargetX:    e.TargetX,
		TargetY:    e.TargetY,
		Color:      e.Color,
		IsMoving:   e.IsMoving,
		ArkAddress: e.ArkAddress,
	}
	if e.HasBalance {
		b := e.AvailableBalance
		s.AvailableBalance = &b
	}
	return s
}
