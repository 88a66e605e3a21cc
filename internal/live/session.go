// Package live runs a presentation session shared across browsers: the
// navigation controller lives server-side, viewers relay their input over a
// websocket, and every render operation is broadcast back so all connected
// clients mirror the same slide.
package live

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/slidecast/slidecast/internal/player"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The site is served from the same process; cross-origin viewers are fine.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// client is one connected viewer.
type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Session owns the controller for one live presentation. All commands are
// funneled through a single run loop, so controller handlers execute to
// completion one at a time.
type Session struct {
	ID string

	controller *player.Controller
	surface    *batchSurface

	clients    map[*client]bool
	register   chan *client
	unregister chan *client
	commands   chan command
}

// NewSession builds a session over the given slides. The swipe threshold is
// applied server-side; clients relay raw touch coordinates.
func NewSession(slides []player.Slide, swipeThreshold float64) *Session {
	surface := &batchSurface{}
	s := &Session{
		ID:         uuid.NewString(),
		surface:    surface,
		clients:    make(map[*client]bool),
		register:   make(chan *client),
		unregister: make(chan *client),
		commands:   make(chan command, 16),
	}
	s.controller = player.New(surface, slides)
	s.controller.Threshold = swipeThreshold
	// The initial render has no audience yet; joining clients get a snapshot.
	s.surface.take()
	return s
}

// Run processes registrations and commands until ctx is cancelled.
func (s *Session) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			for c := range s.clients {
				close(c.send)
				delete(s.clients, c)
			}
			return

		case c := <-s.register:
			s.clients[c] = true
			// Bring the new viewer up to date with a full re-render.
			s.controller.JumpTo(s.controller.CurrentIndex())
			if data := s.takeFrame(); data != nil {
				c.send <- data
			}

		case c := <-s.unregister:
			if s.clients[c] {
				delete(s.clients, c)
				close(c.send)
			}

		case cmd := <-s.commands:
			s.apply(cmd)
			if data := s.takeFrame(); data != nil {
				for c := range s.clients {
					select {
					case c.send <- data:
					default:
						// Viewer too slow; drop it.
						delete(s.clients, c)
						close(c.send)
					}
				}
			}
		}
	}
}

// apply dispatches one command to the controller.
func (s *Session) apply(cmd command) {
	switch cmd.Cmd {
	case "advance":
		s.controller.Advance()
	case "retreat":
		s.controller.Retreat()
	case "goto":
		s.controller.JumpTo(cmd.Target)
	case "key":
		s.controller.HandleKey(player.Key(cmd.Key))
	case "swipe":
		s.controller.HandleSwipe(cmd.StartX, cmd.EndX)
	case "showHidden":
		s.controller.SetShowHidden(cmd.On)
	}
}

// takeFrame drains the surface buffer into a marshalled frame, or nil when
// the last command produced no render.
func (s *Session) takeFrame() []byte {
	ops := s.surface.take()
	if len(ops) == 0 {
		return nil
	}
	data, err := json.Marshal(frame{Ops: ops})
	if err != nil {
		log.Printf("live: marshalling frame: %v", err)
		return nil
	}
	return data
}

// ServeWS upgrades an HTTP request to a websocket viewer connection.
func (s *Session) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("live: upgrade: %v", err)
		return
	}
	c := &client{conn: conn, send: make(chan []byte, 32)}
	s.register <- c

	go c.writePump()
	go c.readPump(s)
}

// readPump relays viewer commands into the session until the connection
// drops.
func (c *client) readPump(s *Session) {
	defer func() {
		s.unregister <- c
		c.conn.Close()
	}()
	c.conn.SetReadLimit(1024)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		var cmd command
		if err := c.conn.ReadJSON(&cmd); err != nil {
			return
		}
		s.commands <- cmd
	}
}

// writePump pushes frames and keepalive pings to one viewer.
func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case data, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
