package websocket

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	gorilla "github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testUpgrader = gorilla.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// dialPair upgrades one server-side connection and returns both ends
func dialPair(t *testing.T) (server *gorilla.Conn, client *gorilla.Conn) {
	t.Helper()

	connCh := make(chan *gorilla.Conn, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := testUpgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		connCh <- c
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	clientConn, _, err := gorilla.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { clientConn.Close() })

	select {
	case serverConn := <-connCh:
		return serverConn, clientConn
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for server side of connection")
		return nil, nil
	}
}

func TestHubSendToMissingKeyDropsSilently(t *testing.T) {
	hub := NewHub()

	delivered := hub.Send(Key("rider", uuid.New()), map[string]string{"type": "ping"})

	assert.False(t, delivered)
}

func TestHubRegisterAndSend(t *testing.T) {
	hub := NewHub()
	serverConn, clientConn := dialPair(t)

	userID := uuid.New()
	hub.Register("driver", userID, serverConn)
	key := Key("driver", userID)

	assert.True(t, hub.IsConnected(key))

	delivered := hub.Send(key, map[string]string{"type": "ride_started"})
	assert.True(t, delivered)

	var got map[string]string
	require.NoError(t, clientConn.ReadJSON(&got))
	assert.Equal(t, "ride_started", got["type"])
}

func TestHubUnregisterRemovesOnlySameClient(t *testing.T) {
	hub := NewHub()
	serverConn, _ := dialPair(t)
	newerConn, _ := dialPair(t)

	userID := uuid.New()
	old := hub.Register("rider", userID, serverConn)
	newer := hub.Register("rider", userID, newerConn)

	// stale connection going away must not evict the replacement
	hub.Unregister(old)
	assert.True(t, hub.IsConnected(newer.Key))

	hub.Unregister(newer)
	assert.False(t, hub.IsConnected(newer.Key))
}

func TestHubConcurrentSend(t *testing.T) {
	hub := NewHub()
	serverConn, clientConn := dialPair(t)

	userID := uuid.New()
	hub.Register("driver", userID, serverConn)
	key := Key("driver", userID)

	const n = 20
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			hub.Send(key, map[string]string{"type": "driver_location_update"})
		}()
	}

	for i := 0; i < n; i++ {
		var got map[string]string
		require.NoError(t, clientConn.ReadJSON(&got))
	}
	wg.Wait()
}

func TestHubDriverLocationCache(t *testing.T) {
	hub := NewHub()
	driverID := uuid.New()

	_, ok := hub.DriverLocation(driverID)
	assert.False(t, ok)

	hub.UpdateDriverLocation(driverID, 49.2827, -123.1207)

	loc, ok := hub.DriverLocation(driverID)
	require.True(t, ok)
	assert.Equal(t, 49.2827, loc.Lat)
	assert.Equal(t, -123.1207, loc.Lng)
}
