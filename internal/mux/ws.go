package mux

import (
	"net/http"
	"time"

	"holdemtable-server/pkg/room"

	gmux "github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const writeWait = time.Second * 10
const pongWait = time.Second * 60
const pingPeriod = pongWait * 9 / 10

var upgrader = &websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func (m *Mux) getTableUUIDWS() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tableID := gmux.Vars(r)["uuid"]

		tbl, err := m.store.Get(r.Context(), tableID)
		if err != nil {
			writeError(w, err)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logrus.WithError(err).Error("could not upgrade connection")
			return
		}

		client := room.NewClient(conn)
		client.Send(&room.Message{Key: "table", Data: room.NewTableSnapshot(tbl)})
		m.floor.SubscribeTable(tableID, client)

		defer func() {
			m.floor.UnsubscribeTable(tableID, client)
			_ = conn.Close()
		}()

		go m.webSocketWriteLoop(client)
		m.webSocketReadLoop(conn)
	}
}

func (m *Mux) getPlayerUUIDWS() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := gmux.Vars(r)["uuid"]

		tbl, err := m.findPlayerTable(r.Context(), playerID)
		if err != nil {
			writeError(w, err)
			return
		}

		view, err := room.NewPlayerView(tbl, playerID)
		if err != nil {
			writeError(w, err)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logrus.WithError(err).Error("could not upgrade connection")
			return
		}

		client := room.NewClient(conn)
		client.Send(&room.Message{Key: "player", Data: view})
		m.floor.SubscribePlayer(playerID, client)

		defer func() {
			m.floor.UnsubscribePlayer(playerID, client)
			_ = conn.Close()
		}()

		go m.webSocketWriteLoop(client)
		m.webSocketReadLoop(conn)
	}
}

func (m *Mux) webSocketWriteLoop(client *room.Client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = client.Conn.Close()
	}()

	for {
		select {
		case <-ticker.C:
			_ = client.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := client.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case reason := <-client.CloseChan():
			_ = client.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = client.Conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, reason))
			return
		case msg := <-client.SendChan():
			_ = client.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := client.Conn.WriteJSON(msg); err != nil {
				logrus.WithError(err).Debug("could not write message")
				return
			}
		}
	}
}

// webSocketReadLoop keeps the connection's read side alive for pong frames
// and returns when the client goes away; inbound payloads are ignored since
// all mutations arrive over the REST endpoints
func (m *Mux) webSocketReadLoop(conn *websocket.Conn) {
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logrus.WithError(err).Debug("websocket closed unexpectedly")
			}
			return
		}
	}
}
