package server

import (
	"time"

	"github.com/gorilla/websocket"
	"github.com/zucenko/patchwork/model"
)

// Hub streams snapshots of one game to read-only watchers.
type Hub struct {
	Upgrader      *websocket.Upgrader
	Watchers      []*WatcherSession
	Registrations chan Registration
	Snapshots     chan model.Snapshot
	Errors        chan *WatcherSession
	Timeout       time.Duration
	last          *model.Snapshot
}

type WatcherState int

const (
	WS_NEW WatcherState = iota + 1
	WS_WATCH
	WS_ERR
)

type WatcherSession struct {
	State  WatcherState
	Id     string
	Hub    *Hub
	Conn   *websocket.Conn
	Closed chan struct{}

	MessagesToSend chan model.Snapshot

	DebugInMessages  int
	DebugOutMessages int
	DebugLastPing    time.Time
	DebugPings       int
}
