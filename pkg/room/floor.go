// Package room fans table and player state out to push subscribers.
// The mutation path never blocks on a subscriber: sends are best-effort, and
// a slow or dead connection is evicted rather than awaited.
package room

import (
	"time"

	"github.com/sirupsen/logrus"
)

// maxSubscribersPerTable caps the table watch list; the oldest connection is
// evicted when a new one would exceed it
const maxSubscribersPerTable = 10

// Subscriber is a single push connection.
// Send must not block: it returns false when the message cannot be accepted,
// which the Floor treats as a dead connection.
type Subscriber interface {
	Send(msg *Message) bool
	CloseWith(reason string)
}

// Message is the envelope written to subscribers
type Message struct {
	Key  string      `json:"key"`
	Data interface{} `json:"data,omitempty"`
}

// Floor owns the subscriber registries and runs the fan-out loop.
// All map access happens inside the run loop, so no locks are needed.
type Floor struct {
	tableSubs  map[string][]Subscriber
	playerSubs map[string]Subscriber
	actions    chan func()
	close      chan bool
	heartbeat  time.Duration
}

// NewFloor returns a Floor that heartbeats subscribers at the given interval
func NewFloor(heartbeat time.Duration) *Floor {
	return &Floor{
		tableSubs:  make(map[string][]Subscriber),
		playerSubs: make(map[string]Subscriber),
		actions:    make(chan func(), 256),
		close:      make(chan bool),
		heartbeat:  heartbeat,
	}
}

// Open starts the run loop
func (f *Floor) Open() {
	go f.runLoop()
}

// Close terminates the run loop
func (f *Floor) Close() {
	close(f.close)
}

func (f *Floor) runLoop() {
	ticker := time.NewTicker(f.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case fn := <-f.actions:
			fn()
		case <-ticker.C:
			f.sendHeartbeats()
		case <-f.close:
			return
		}
	}
}

// enqueue hands work to the run loop without ever blocking the caller
func (f *Floor) enqueue(fn func()) {
	select {
	case f.actions <- fn:
	default:
		logrus.Warn("floor action queue full, dropping update")
	}
}

// SubscribeTable registers a table watcher. When the table already has the
// maximum number of watchers, the oldest one is closed to make room.
func (f *Floor) SubscribeTable(tableID string, s Subscriber) {
	f.enqueue(func() {
		subs := f.tableSubs[tableID]
		if len(subs) >= maxSubscribersPerTable {
			logrus.WithField("tableId", tableID).Warn("too many table subscribers, evicting oldest")
			subs[0].CloseWith("too many subscribers")
			subs = subs[1:]
		}

		f.tableSubs[tableID] = append(subs, s)
	})
}

// UnsubscribeTable removes a table watcher
func (f *Floor) UnsubscribeTable(tableID string, s Subscriber) {
	f.enqueue(func() {
		f.removeTableSub(tableID, s)
	})
}

// SubscribePlayer registers a player's connection, replacing any prior one
func (f *Floor) SubscribePlayer(playerID string, s Subscriber) {
	f.enqueue(func() {
		if prev, ok := f.playerSubs[playerID]; ok {
			logrus.WithField("playerId", playerID).Debug("replacing player subscriber")
			prev.CloseWith("replaced by a newer connection")
		}

		f.playerSubs[playerID] = s
	})
}

// UnsubscribePlayer removes a player's connection.
// Only the current connection is removed; a replacement stays registered.
func (f *Floor) UnsubscribePlayer(playerID string, s Subscriber) {
	f.enqueue(func() {
		if f.playerSubs[playerID] == s {
			delete(f.playerSubs, playerID)
		}
	})
}

// PublishTable sends the snapshot to every table watcher
func (f *Floor) PublishTable(tableID string, snapshot TableSnapshot) {
	f.enqueue(func() {
		msg := &Message{Key: "table", Data: snapshot}
		// eviction splices the registered list, so walk a copy
		for _, s := range append([]Subscriber{}, f.tableSubs[tableID]...) {
			if !s.Send(msg) {
				logrus.WithField("tableId", tableID).Warn("table subscriber send failed, evicting")
				f.removeTableSub(tableID, s)
				s.CloseWith("send buffer full")
			}
		}
	})
}

// PublishPlayer sends the view to the player's connection, if any
func (f *Floor) PublishPlayer(playerID string, view PlayerView) {
	f.enqueue(func() {
		s, ok := f.playerSubs[playerID]
		if !ok {
			return
		}

		if !s.Send(&Message{Key: "player", Data: view}) {
			logrus.WithField("playerId", playerID).Warn("player subscriber send failed, evicting")
			delete(f.playerSubs, playerID)
			s.CloseWith("send buffer full")
		}
	})
}

// NOTE: must only be called from the run loop
func (f *Floor) sendHeartbeats() {
	msg := &Message{Key: "heartbeat"}

	for tableID, subs := range f.tableSubs {
		// eviction splices the registered list, so walk a copy
		for _, s := range append([]Subscriber{}, subs...) {
			if !s.Send(msg) {
				f.removeTableSub(tableID, s)
				s.CloseWith("heartbeat failed")
			}
		}
	}

	for playerID, s := range f.playerSubs {
		if !s.Send(msg) {
			delete(f.playerSubs, playerID)
			s.CloseWith("heartbeat failed")
		}
	}

	logrus.WithFields(logrus.Fields{
		"tables":  len(f.tableSubs),
		"players": len(f.playerSubs),
	}).Debug("heartbeat sent")
}

// NOTE: must only be called from the run loop
func (f *Floor) removeTableSub(tableID string, s Subscriber) {
	subs := f.tableSubs[tableID]
	for i, sub := range subs {
		if sub == s {
			subs = append(subs[:i], subs[i+1:]...)
			break
		}
	}

	if len(subs) == 0 {
		delete(f.tableSubs, tableID)
		return
	}

	f.tableSubs[tableID] = subs
}
