package server

import (
	"fmt"

	"github.com/gorilla/websocket"
)

func (ws WatcherState) Name() string {
	switch ws {
	case WS_NEW:
		return "NEW"
	case WS_WATCH:
		return "WATCH"
	case WS_ERR:
		return "ERR"
	default:
		return fmt.Sprintf("n/a:%d", ws)
	}
}

type Registration struct {
	Con    *websocket.Conn
	Closed chan struct{}
}
