// Package client is the headless counterpart of the server: a local
// mirror of the field driven by inbound protocol events, a per-frame
// motion interpolator, and a wallet reactor for forwarded payment
// requests. Nothing here ever mutates authoritative server state.
package client

import (
	"sync"

	"blobfield/game"
	"blobfield/protocol"
)

// EntityView is one blob as this client displays it. X,Y is the
// interpolated position, advanced every frame toward the last target
// the server broadcast.
type EntityView struct {
	ID               string
	X, Y             float64
	TargetX, TargetY float64
	Color            string
	IsMoving         bool
	ArkAddress       string
	AvailableBalance float64
}

// View applies server events reducer-style and steps displayed positions
// once per animation frame. The event stream and the frame loop run on
// different goroutines, hence the mutex.
type View struct {
	mu       sync.Mutex
	yourID   string
	entities map[string]*EntityView
	order    []string

	// Own movement is two-phase: the predicted target applies the
	// instant MoveTo is called, the confirmed value lands with the
	// echoed playerMoved broadcast. The server echoes the coordinates
	// it accepted, so the two converge and never diverge permanently.
	predictedX, predictedY float64
	hasPredicted           bool
}

func NewView() *View {
	return &View{entities: make(map[string]*EntityView)}
}

// Apply folds one server event into the local state. Events for unknown
// entity ids are silently ignored; payment traffic is the wallet's
// business, not the view's.
func (v *View) Apply(env protocol.Envelope) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	switch env.T {
	case protocol.MsgGameState:
		gs, err := protocol.DecodePayload[protocol.GameState](env)
		if err != nil {
			return err
		}
		v.yourID = gs.YourID
		v.entities = make(map[string]*EntityView, len(gs.Players))
		v.order = v.order[:0]
		for _, p := range gs.Players {
			v.insert(p)
		}
	case protocol.MsgPlayerJoined:
		ev, err := protocol.DecodePayload[protocol.PlayerJoined](env)
		if err != nil {
			return err
		}
		if _, ok := v.entities[ev.Player.ID]; !ok {
			v.insert(ev.Player)
		}
	case protocol.MsgPlayerLeft:
		ev, err := protocol.DecodePayload[protocol.PlayerLeft](env)
		if err != nil {
			return err
		}
		v.remove(ev.PlayerID)
	case protocol.MsgPlayerMoved:
		ev, err := protocol.DecodePayload[protocol.PlayerMoved](env)
		if err != nil {
			return err
		}
		e, ok := v.entities[ev.PlayerID]
		if !ok {
			return nil
		}
		e.TargetX = ev.X
		e.TargetY = ev.Y
		e.IsMoving = true
		if ev.PlayerID == v.yourID {
			v.hasPredicted = false // confirmed by the authoritative echo
		}
	case protocol.MsgArkAddressUpdated:
		ev, err := protocol.DecodePayload[protocol.ArkAddressUpdated](env)
		if err != nil {
			return err
		}
		e, ok := v.entities[ev.PlayerID]
		if !ok {
			return nil
		}
		e.ArkAddress = ev.ArkAddress
		// Recomputed locally, not trusted from the wire: the same
		// address must color identically in every process.
		e.Color = game.ColorForAddress(ev.ArkAddress)
	case protocol.MsgBalanceUpdated:
		ev, err := protocol.DecodePayload[protocol.BalanceUpdated](env)
		if err != nil {
			return err
		}
		if e, ok := v.entities[ev.PlayerID]; ok {
			e.AvailableBalance = ev.AvailableBalance
		}
	}
	return nil
}

// MoveTo optimistically sets the own blob's target and returns the
// encoded move message to send to the server.
func (v *View) MoveTo(x, y float64) ([]byte, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if e, ok := v.entities[v.yourID]; ok {
		e.TargetX = x
		e.TargetY = y
		e.IsMoving = true
	}
	v.predictedX = x
	v.predictedY = y
	v.hasPredicted = true
	return protocol.Encode(protocol.MsgMove, protocol.Move{X: x, Y: y})
}

// Advance runs one animation frame: every moving blob steps toward its
// target at its balance-scaled speed. Blobs at rest stay put, so calling
// this every display refresh is safe regardless of network tick rate.
func (v *View) Advance() {
	v.mu.Lock()
	defer v.mu.Unlock()
	for _, e := range v.entities {
		if !e.IsMoving {
			continue
		}
		x, y, arrived := game.Step(e.X, e.Y, e.TargetX, e.TargetY, game.SpeedForBalance(e.AvailableBalance))
		e.X = x
		e.Y = y
		if arrived {
			e.IsMoving = false
		}
	}
}

// ReportPosition encodes the own blob's displayed position for the
// positionUpdate refinement path.
func (v *View) ReportPosition() ([]byte, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	e, ok := v.entities[v.yourID]
	if !ok {
		return nil, false
	}
	b, err := protocol.Encode(protocol.MsgPositionUpdate, protocol.PositionUpdate{X: e.X, Y: e.Y})
	if err != nil {
		return nil, false
	}
	return b, true
}

// YourID is the session's own entity id, learned from the connect
// snapshot. "My blob" is always a per-client derived view.
func (v *View) YourID() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.yourID
}

// Self returns the own blob, if the connect snapshot has arrived.
func (v *View) Self() (EntityView, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	e, ok := v.entities[v.yourID]
	if !ok {
		return EntityView{}, false
	}
	return *e, true
}

// PredictedTarget reports the optimistic target still awaiting its
// authoritative echo.
func (v *View) PredictedTarget() (x, y float64, pending bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.predictedX, v.predictedY, v.hasPredicted
}

// Entities returns copies of all blobs in join order.
func (v *View) Entities() []EntityView {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]EntityView, 0, len(v.order))
	for _, id := range v.order {
		out = append(out, *v.entities[id])
	}
	return out
}

func (v *View) insert(p protocol.PlayerSnapshot) {
	e := &EntityView{
		ID:         p.ID,
		X:          p.X,
		Y:          p.Y,
		TargetX:    p.TargetX,
		TargetY:    p.TargetY,
		Color:      p.Color,
		IsMoving:   p.IsMoving,
		ArkAddress: p.ArkAddress,
	}
	if p.AvailableBalance != nil {
		e.AvailableBalance = *p.AvailableBalance
	}
	v.entities[p.ID] = e
	v.order = append(v.order, p.ID)
}

func (v *View) remove(id string) {
	if _, ok := v.entities[id]; !ok {
		return
	}
	delete(v.entities, id)
	for i, o := range v.order {
		if o == id {
			v.order = append(v.order[:i], v.order[i+1:]...)
			break
		}
	}
}
