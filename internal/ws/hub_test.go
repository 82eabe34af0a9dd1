package ws

import (
	"testing"
	"time"
)

func TestHubBroadcast(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	a := NewClient(hub, nil)
	b := NewClient(hub, nil)
	hub.register <- a
	hub.register <- b

	waitFor(t, func() bool { return hub.ClientCount() == 2 })

	hub.Broadcast(&Event{Type: "video_added", VideoID: 7, Platform: "YouTube"})

	for _, c := range []*Client{a, b} {
		select {
		case event := <-c.send:
			if event.Type != "video_added" || event.VideoID != 7 {
				t.Errorf("received %+v, want the broadcast event", event)
			}
		case <-time.After(time.Second):
			t.Fatal("client did not receive the broadcast")
		}
	}
}

func TestHubUnregister(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	c := NewClient(hub, nil)
	hub.register <- c
	waitFor(t, func() bool { return hub.ClientCount() == 1 })

	hub.unregister <- c
	waitFor(t, func() bool { return hub.ClientCount() == 0 })

	// The send channel is closed so the write pump exits.
	select {
	case _, ok := <-c.send:
		if ok {
			t.Error("expected closed send channel")
		}
	case <-time.After(time.Second):
		t.Fatal("send channel was not closed")
	}
}

func TestHubDropsSlowClient(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	c := NewClient(hub, nil)
	hub.register <- c
	waitFor(t, func() bool { return hub.ClientCount() == 1 })

	// Fill the client's buffer without draining it; the next broadcast
	// must evict the client instead of blocking the hub.
	for i := 0; i < sendBufferSize+1; i++ {
		hub.Broadcast(&Event{Type: "videos_cleared"})
	}

	waitFor(t, func() bool { return hub.ClientCount() == 0 })
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}
