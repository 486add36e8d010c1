package network

import (
	"errors"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 25 * time.Second
	readLimit  = 1 << 20 // 1MB
)

var errSendBufferFull = errors.New("send buffer full")

// session wraps one websocket connection. Outbound messages go through a
// buffered queue drained by writePump, so the field actor never blocks
// on a slow client.
type session struct {
	ws     *websocket.Conn
	send   chan []byte
	closed bool // owned by the field goroutine, like Send and Close
	once   sync.Once
}

func newSession(ws *websocket.Conn) *session {
	return &session{ws: ws, send: make(chan []byte, 64)}
}

// Send enqueues without blocking. A full queue means the client cannot
// keep up; the field treats that like a dead connection.
func (s *session) Send(b []byte) error {
	if s.closed {
		return errors.New("session closed")
	}
	select {
	case s.send <- b:
		return nil
	default:
		return errSendBufferFull
	}
}

// Close is idempotent: the field calls it on leave and duplicate leaves
// are tolerated.
func (s *session) Close() error {
	s.once.Do(func() {
		s.closed = true
		close(s.send)
	})
	return nil
}

// writePump drains the send queue onto the wire and keeps the connection
// alive with pings. gorilla allows one writer at a time, so pings share
// this goroutine.
func (s *session) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = s.ws.Close()
	}()
	for {
		select {
		case msg, ok := <-s.send:
			_ = s.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = s.ws.WriteMessage(websocket.CloseMessage, nil)
				return
			}
			if err := s.ws.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = s.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
