package realtime

import (
	"sync"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
)

func TestSend_AfterCloseReturnsError(t *testing.T) {
	ws := &stubConn{}
	conn := NewConnection("u1", ws)
	conn.Start()

	conn.Close(websocket.CloseNormalClosure, "bye")

	err := conn.Send([]byte(`{"event":"new-message"}`))
	assert.Error(t, err)
	ws.mu.Lock()
	assert.True(t, ws.closed)
	ws.mu.Unlock()
}

func TestSend_RacingCloseNeverPanics(t *testing.T) {
	// A broadcast snapshots room members before delivering, so Send can land
	// on a connection that a session replacement is closing at the same
	// moment. Every such Send must fail cleanly instead of panicking.
	for i := 0; i < 500; i++ {
		conn := NewConnection("u1", &stubConn{})
		conn.Start()

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				_ = conn.Send([]byte("payload"))
			}
		}()
		go func() {
			defer wg.Done()
			conn.Close(websocket.CloseGoingAway, "session replaced")
		}()
		wg.Wait()
	}
}

func TestClose_IsIdempotent(t *testing.T) {
	ws := &stubConn{}
	conn := NewConnection("u1", ws)
	conn.Start()

	conn.Close(websocket.CloseNormalClosure, "bye")
	conn.Close(websocket.CloseNormalClosure, "bye again")

	ws.mu.Lock()
	assert.True(t, ws.closed)
	ws.mu.Unlock()
}
