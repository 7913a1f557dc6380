package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/playperu/triviaboard/internal/app"
)

const (
	wsWriteWait  = 10 * time.Second
	wsPingPeriod = 30 * time.Second
	wsPongWait   = 2 * wsPingPeriod
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WSReply answers one inbound command on the socket. Events share the socket
// and are told apart by their own type.
type WSReply struct {
	Type     string        `json:"type"`
	Snapshot *app.Snapshot `json:"snapshot,omitempty"`
	Error    string        `json:"error,omitempty"`
}

// handleWS upgrades to a WebSocket carrying commands in and events out.
// Writes happen only on the handler goroutine.
func handleWS(logger *slog.Logger, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessionFrom(r)

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Error("websocket upgrade failed", "session", sess.ID, "error", err)
			return
		}
		defer conn.Close()

		ch := broker.Subscribe(sess.ID)
		defer broker.Unsubscribe(sess.ID, ch)

		ctx, cancel := context.WithCancel(r.Context())
		defer cancel()

		replies := make(chan WSReply, 8)
		go readCommands(ctx, cancel, logger, conn, sess, replies)

		ping := time.NewTicker(wsPingPeriod)
		defer ping.Stop()

		for {
			var err error
			select {
			case <-ctx.Done():
				return
			case data, ok := <-ch:
				if !ok {
					_ = conn.WriteControl(websocket.CloseMessage,
						websocket.FormatCloseMessage(websocket.CloseGoingAway, "session ended"),
						time.Now().Add(wsWriteWait))
					return
				}
				_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
				err = conn.WriteMessage(websocket.TextMessage, data)
			case reply := <-replies:
				_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
				err = conn.WriteJSON(reply)
			case <-ping.C:
				err = conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(wsWriteWait))
			}
			if err != nil {
				logger.Debug("websocket write failed", "session", sess.ID, "error", err)
				return
			}
		}
	}
}

func readCommands(ctx context.Context, cancel context.CancelFunc, logger *slog.Logger, conn *websocket.Conn, sess *Session, replies chan<- WSReply) {
	defer cancel()

	conn.SetReadLimit(maxBodyBytes)
	_ = conn.SetReadDeadline(time.Now().Add(wsPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wsPongWait))
	})

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			logger.Debug("websocket read ended", "session", sess.ID, "error", err)
			return
		}
		sess.touch(time.Now())

		reply := WSReply{Type: "snapshot"}
		cmd, err := app.DecodeCommand(msg)
		if err == nil {
			var snap app.Snapshot
			snap, err = sess.Machine.Dispatch(cmd)
			reply.Snapshot = &snap
		}
		if err != nil {
			reply = WSReply{Type: "error", Error: err.Error()}
		}

		select {
		case replies <- reply:
		case <-ctx.Done():
			return
		}
	}
}
