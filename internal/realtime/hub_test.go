package realtime

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubConn records frames written by a connection's write loop.
type stubConn struct {
	mu     sync.Mutex
	frames [][]byte
	closed bool
}

func (s *stubConn) WriteMessage(_ int, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frames = append(s.frames, data)
	return nil
}

func (s *stubConn) WriteControl(int, []byte, time.Time) error { return nil }
func (s *stubConn) SetWriteDeadline(time.Time) error          { return nil }

func (s *stubConn) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func (s *stubConn) waitFrames(t *testing.T, n int) [][]byte {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		s.mu.Lock()
		if len(s.frames) >= n {
			frames := append([][]byte(nil), s.frames...)
			s.mu.Unlock()
			return frames
		}
		s.mu.Unlock()
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("expected %d frames", n)
	return nil
}

func attach(t *testing.T, hub *Hub, userID string) (*Connection, *stubConn) {
	t.Helper()
	ws := &stubConn{}
	conn := NewConnection(userID, ws)
	hub.Attach(conn)
	return conn, ws
}

func TestBroadcast_OnlyRoomMembersReceive(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	c1, ws1 := attach(t, hub, "u1")
	_, ws2 := attach(t, hub, "u2")
	hub.Join("conv-1", c1)

	hub.Broadcast("conv-1", "new-message", map[string]string{"id": "msg-1"})

	frames := ws1.waitFrames(t, 1)
	var env envelope
	require.NoError(t, json.Unmarshal(frames[0], &env))
	assert.Equal(t, "new-message", env.Event)

	// u2 never joined the room
	time.Sleep(20 * time.Millisecond)
	ws2.mu.Lock()
	assert.Empty(t, ws2.frames)
	ws2.mu.Unlock()
}

func TestBroadcast_EmptyRoomIsNoop(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	hub.Broadcast("conv-ghost", "new-message", map[string]string{"id": "msg-1"})
}

func TestLeaveStopsDelivery(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	c1, ws1 := attach(t, hub, "u1")
	hub.Join("conv-1", c1)
	hub.Broadcast("conv-1", "new-message", map[string]string{"id": "m1"})
	ws1.waitFrames(t, 1)

	hub.Leave("conv-1", c1)
	hub.Broadcast("conv-1", "new-message", map[string]string{"id": "m2"})

	time.Sleep(20 * time.Millisecond)
	ws1.mu.Lock()
	assert.Len(t, ws1.frames, 1)
	ws1.mu.Unlock()
}

func TestAttach_ReplacesPreviousSession(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	c1, ws1 := attach(t, hub, "u1")
	hub.Join("conv-1", c1)

	c2, ws2 := attach(t, hub, "u1")
	hub.Join("conv-1", c2)

	hub.Broadcast("conv-1", "new-message", map[string]string{"id": "m1"})

	ws2.waitFrames(t, 1)
	ws1.mu.Lock()
	assert.True(t, ws1.closed, "old session is closed on replacement")
	ws1.mu.Unlock()
}

func TestDetachLeavesAllRooms(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	c1, ws1 := attach(t, hub, "u1")
	hub.Join("conv-1", c1)
	hub.Join("chan-1", c1)

	hub.Detach(c1)

	hub.Broadcast("conv-1", "new-message", nil)
	hub.Broadcast("chan-1", "new-message-of-channel", nil)

	time.Sleep(20 * time.Millisecond)
	ws1.mu.Lock()
	assert.Empty(t, ws1.frames)
	ws1.mu.Unlock()
}
