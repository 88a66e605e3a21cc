package live

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/slidecast/slidecast/internal/player"
)

func startSession(t *testing.T) (*Session, *websocket.Conn) {
	t.Helper()

	slides := []player.Slide{
		{},
		{Animations: []player.Animation{{Delay: 0.1, Duration: 0.5}}},
		{Hidden: true},
	}
	s := NewSession(slides, 50)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go s.Run(ctx)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.ServeWS)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dialing websocket: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return s, conn
}

func readFrame(t *testing.T, conn *websocket.Conn) frame {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var f frame
	if err := conn.ReadJSON(&f); err != nil {
		t.Fatalf("reading frame: %v", err)
	}
	return f
}

func findOp(ops []wireOp, name string) (wireOp, bool) {
	for _, op := range ops {
		if op.Op == name {
			return op, true
		}
	}
	return wireOp{}, false
}

func TestSessionSnapshotOnJoin(t *testing.T) {
	_, conn := startSession(t)

	f := readFrame(t, conn)
	counter, ok := findOp(f.Ops, "counter")
	if !ok {
		t.Fatal("snapshot frame missing counter op")
	}
	if counter.Current != 1 || counter.Total != 2 {
		t.Errorf("counter = %d/%d, want 1/2 (hidden slide excluded)", counter.Current, counter.Total)
	}
}

func TestSessionAdvanceBroadcast(t *testing.T) {
	s, conn := startSession(t)
	readFrame(t, conn) // snapshot

	if err := conn.WriteJSON(command{Cmd: "advance"}); err != nil {
		t.Fatalf("sending command: %v", err)
	}

	f := readFrame(t, conn)
	counter, ok := findOp(f.Ops, "counter")
	if !ok || counter.Current != 2 {
		t.Fatalf("counter after advance = %+v, want current 2", counter)
	}

	// Slide 2 is animated: its frame must carry the reset → flush → start
	// sequence in order.
	var flushIdx, startIdx = -1, -1
	for i, op := range f.Ops {
		switch op.Op {
		case "flush":
			flushIdx = i
		case "start":
			startIdx = i
		}
	}
	if flushIdx == -1 || startIdx == -1 || startIdx < flushIdx {
		t.Errorf("animation ops out of order: flush at %d, start at %d", flushIdx, startIdx)
	}

	if s.controller.CurrentIndex() != 2 {
		t.Errorf("controller current = %d, want 2", s.controller.CurrentIndex())
	}
}

func TestSessionBoundaryCommandProducesNoFrame(t *testing.T) {
	_, conn := startSession(t)
	readFrame(t, conn) // snapshot

	// Retreat at the first slide is absorbed: no render, no frame.
	if err := conn.WriteJSON(command{Cmd: "retreat"}); err != nil {
		t.Fatal(err)
	}
	// A follow-up advance does render; the next frame we read must be it.
	if err := conn.WriteJSON(command{Cmd: "advance"}); err != nil {
		t.Fatal(err)
	}

	f := readFrame(t, conn)
	counter, ok := findOp(f.Ops, "counter")
	if !ok || counter.Current != 2 {
		t.Errorf("first frame after no-op retreat = %+v, want the advance render", counter)
	}
}

func TestSessionShowHiddenCommand(t *testing.T) {
	s, conn := startSession(t)
	readFrame(t, conn)

	if err := conn.WriteJSON(command{Cmd: "showHidden", On: true}); err != nil {
		t.Fatal(err)
	}
	f := readFrame(t, conn)
	counter, ok := findOp(f.Ops, "counter")
	if !ok || counter.Total != 3 {
		t.Errorf("counter after reveal = %+v, want total 3", counter)
	}
	if !s.controller.ShowHidden() {
		t.Error("controller should track showHidden")
	}
}
