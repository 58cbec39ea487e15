package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"telnet-animations/internal/animation"
)

const wsWriteTimeout = 5 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// The admin endpoint is expected to be bound to a private address.
		return true
	},
}

// wsSink sends each write unit as one WebSocket text message. Only the
// animation task writes on this path, so no further serialization is
// needed.
type wsSink struct {
	ws *websocket.Conn
}

func (s wsSink) WriteFrame(b []byte) error {
	_ = s.ws.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
	return s.ws.WriteMessage(websocket.TextMessage, b)
}

// handleWS streams an animation as text messages for browser terminal
// emulators: GET /ws?animation=lollercoaster. There is no Telnet
// negotiation on this path.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("animation")
	if name == "" && len(s.cfg.Listeners) > 0 {
		name = s.cfg.Listeners[0].Animation
	}

	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warnf("websocket upgrade: %v", err)
		return
	}
	defer ws.Close()
	log := s.log.With("remote", ws.RemoteAddr().String())

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	// Discard client input; a read error means the peer is gone.
	go func() {
		defer cancel()
		ws.SetReadLimit(1024)
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				return
			}
		}
	}()

	sink := countingSink{Sink: wsSink{ws: ws}, metrics: s.metrics}
	anim, ok := animation.New(name)
	if !ok {
		log.Warnf("unknown animation %q requested", name)
		_ = sink.WriteFrame([]byte(animation.FallbackMessage))
		return
	}
	s.metrics.IncAnimations()
	if err := anim.Play(ctx, sink); err != nil {
		log.Debugf("websocket animation stopped: %v", err)
	}
}
