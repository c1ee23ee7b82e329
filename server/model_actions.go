package server

import (
	"encoding/gob"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/patchwork/model"
)

func NewHub(cfg Config) *Hub {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 200 * time.Millisecond
	}
	return &Hub{
		Upgrader:      &websocket.Upgrader{},
		Watchers:      make([]*WatcherSession, 0),
		Registrations: make(chan Registration),
		Snapshots:     make(chan model.Snapshot),
		Errors:        make(chan *WatcherSession),
		Timeout:       timeout,
	}
}

// Publish hands a snapshot to the hub loop. It gives up after the hub
// timeout so the game never waits on watchers.
func (h *Hub) Publish(s model.Snapshot) {
	select {
	case h.Snapshots <- s:
	case <-time.After(h.Timeout):
		log.Warnf("Hub.Publish TIMEOUTED state:%s", s.State)
	}
}

func (h *Hub) HandleWatch() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Printf("HandleWatch - Conection received")
		con, err := h.Upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("HandleWatch websocket upgrade err %v", err)
			return
		}
		defer con.Close()

		closed := make(chan struct{})
		select {
		case h.Registrations <- Registration{Con: con, Closed: closed}:
		case <-time.After(h.Timeout):
			log.Warn("HandleWatch Registrations TIMEOUTED")
			_ = con.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseTryAgainLater, "busy"),
				time.Now().Add(time.Second))
			return
		}
		log.Info("HandleWatch wait for close")
		<-closed
	}
}

func (h *Hub) Loop() {
	log.Printf("Hub.Loop starting")
	for {
		select {
		case reg := <-h.Registrations:
			ws := h.addWatcher(reg.Con, reg.Closed)
			log.Infof("Hub.Loop watcher %s registered, %d watching", ws.Id, len(h.Watchers))
			if h.last != nil {
				ws.MessagesToSend <- *h.last
			}
		case s := <-h.Snapshots:
			h.last = &s
			for _, ws := range h.Watchers {
				select {
				case ws.MessagesToSend <- s:
				default:
					log.Warnf("Hub.Loop dropping snapshot for %s, queue FULL", ws.Id)
				}
			}
		case ws := <-h.Errors:
			h.removeWatcher(ws)
		}
	}
}

func (h *Hub) addWatcher(conn *websocket.Conn, closed chan struct{}) *WatcherSession {
	ws := &WatcherSession{
		State:          WS_NEW,
		Id:             uuid.New().String(),
		Hub:            h,
		Conn:           conn,
		Closed:         closed,
		MessagesToSend: make(chan model.Snapshot, 10),
	}
	conn.SetPingHandler(
		func(message string) error {
			err := conn.WriteControl(websocket.PongMessage, []byte(message), time.Now().Add(time.Second))
			ws.DebugLastPing = time.Now()
			ws.DebugPings++
			if err == websocket.ErrCloseSent {
				return nil
			} else if e, ok := err.(net.Error); ok && e.Temporary() {
				return nil
			}
			return err
		})
	go ws.LoopChannelRead()
	go ws.LoopChannelWrite()
	ws.State = WS_WATCH
	h.Watchers = append(h.Watchers, ws)
	return ws
}

func (h *Hub) removeWatcher(ws *WatcherSession) {
	if ws.State == WS_ERR {
		return
	}
	ws.State = WS_ERR
	for i, w := range h.Watchers {
		if w == ws {
			h.Watchers = append(h.Watchers[:i], h.Watchers[i+1:]...)
			break
		}
	}
	close(ws.MessagesToSend)
	close(ws.Closed)
	log.Infof("Hub watcher %s removed, %d watching", ws.Id, len(h.Watchers))
}

// LoopChannelRead drains the socket. Watchers cannot send moves; anything
// they write is dropped.
func (ws *WatcherSession) LoopChannelRead() {
	log.Printf("LoopChannelRead STARTED %s", ws.Id)
	for {
		messageType, _, err := ws.Conn.NextReader()
		if err != nil {
			log.Printf("LoopChannelRead err reading message from Conn %v", err)
			ws.Hub.Errors <- ws
			break
		}
		ws.DebugInMessages++
		log.Debugf("LoopChannelRead ignoring message type: %d", messageType)
	}
	log.Printf("LoopChannelRead ENDED %s", ws.Id)
}

// LoopChannelWrite only consumes, it ends when the hub closes the queue.
func (ws *WatcherSession) LoopChannelWrite() {
	log.Printf("WatcherSession.LoopChannelWrite STARTED")
	failed := false
	for mes := range ws.MessagesToSend {
		if failed {
			continue
		}
		if err := ws.write(mes); err != nil {
			log.Warnf("WatcherSession.LoopChannelWrite %v", err)
			failed = true
			go func() { ws.Hub.Errors <- ws }()
			continue
		}
		ws.DebugOutMessages++
	}
	log.Printf("LoopChannelWrite ENDED")
}

func (ws *WatcherSession) write(s model.Snapshot) error {
	w, err := ws.Conn.NextWriter(websocket.BinaryMessage)
	if err != nil {
		return err
	}
	if err := gob.NewEncoder(w).Encode(s); err != nil {
		return err
	}
	return w.Close()
}
