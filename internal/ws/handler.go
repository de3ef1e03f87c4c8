package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"quizbattle-backend/internal/game"
	"quizbattle-backend/internal/hub"
	"quizbattle-backend/internal/room"
	"quizbattle-backend/internal/types"
)

const writeTimeout = 3 * time.Second

// Handler is the session gateway: it owns the websocket, translates inbound
// client events into hub/room messages, and pumps room broadcasts back out.
// The connection id doubles as the participant id.
func Handler(h *hub.Hub, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			// In dev ONLY, you can loosen origin checks:
			// OriginPatterns: []string{"http://localhost:*", "http://127.0.0.1:*"},
		})
		if err != nil {
			return
		}
		defer conn.Close(websocket.StatusNormalClosure, "bye")

		clientID := uuid.NewString()
		log.Debug("client connected", zap.String("client", clientID))

		var cur *room.Room
		defer func() {
			if cur != nil {
				cur.Send(room.Leave{ID: clientID})
			}
		}()

		writeCtx, writeCancel := context.WithCancel(r.Context())
		defer writeCancel()

		// Reader loop. No read deadline: players legitimately idle while
		// bots think and rounds cool down.
		for {
			_, data, err := conn.Read(r.Context())
			if err != nil {
				switch websocket.CloseStatus(err) {
				case websocket.StatusNormalClosure, websocket.StatusGoingAway:
					return
				}
				return
			}

			var cm types.ClientMessage
			if err := json.Unmarshal(data, &cm); err != nil {
				writeError(writeCtx, conn, "bad json")
				continue
			}

			switch cm.Type {
			case "createRoom":
				if cur != nil {
					writeError(writeCtx, conn, "already in a room")
					continue
				}
				reply := make(chan hub.Created, 1)
				h.Inbox() <- hub.CreateRoom{Reply: reply}
				created := <-reply
				if created.Room == nil {
					writeError(writeCtx, conn, "failed to create room")
					continue
				}
				writeEvent(writeCtx, conn, room.Event{Type: room.EvtRoomCreated, Code: created.Code})
				cur = created.Room
				out := make(chan room.Event, 8)
				cur.Send(room.Join{ID: clientID, Name: displayName(cm.Name), Outbox: out})
				go pump(writeCtx, conn, out)

			case "joinRoom":
				if cur != nil {
					writeError(writeCtx, conn, "already in a room")
					continue
				}
				reply := make(chan *room.Room, 1)
				h.Inbox() <- hub.GetRoom{Code: cm.Code, Reply: reply}
				rm := <-reply
				if rm == nil {
					writeEvent(writeCtx, conn, room.Event{Type: room.EvtInvalidCode, Code: cm.Code})
					continue
				}
				out := make(chan room.Event, 8)
				if !rm.Send(room.Join{ID: clientID, Name: displayName(cm.Name), Outbox: out}) {
					// Room died between lookup and join.
					writeEvent(writeCtx, conn, room.Event{Type: room.EvtInvalidCode, Code: cm.Code})
					continue
				}
				cur = rm
				go pump(writeCtx, conn, out)

			case "startGame":
				if cur == nil || cm.Code != cur.Code() {
					continue // unknown or stale room: silently ignored
				}
				cur.Send(room.Start{})

			case "playerResult":
				if cur == nil || cm.Code != cur.Code() {
					continue
				}
				team, ok := parseTeam(cm.WinnerTeam)
				if !ok {
					writeError(writeCtx, conn, "unknown team")
					continue
				}
				cur.Send(room.Result{ID: clientID, Winner: team})

			default:
				writeError(writeCtx, conn, "unknown type")
			}
		}
	}
}

// pump forwards room broadcasts until the room closes the outbox (on leave,
// slow-client drop, or room shutdown).
func pump(ctx context.Context, conn *websocket.Conn, out <-chan room.Event) {
	for ev := range out {
		payload, _ := json.Marshal(ev)
		wctx, cancel := context.WithTimeout(ctx, writeTimeout)
		_ = conn.Write(wctx, websocket.MessageText, payload)
		cancel()
	}
}

func writeEvent(ctx context.Context, conn *websocket.Conn, ev room.Event) {
	payload, _ := json.Marshal(ev)
	wctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	_ = conn.Write(wctx, websocket.MessageText, payload)
}

func writeError(ctx context.Context, conn *websocket.Conn, msg string) {
	writeEvent(ctx, conn, room.Event{Type: room.EvtError, Error: msg})
}

func parseTeam(team string) (game.Team, bool) {
	switch team {
	case "A":
		return game.TeamA, true
	case "B":
		return game.TeamB, true
	default:
		return "", false
	}
}

func displayName(name string) string {
	if name == "" {
		return "Player"
	}
	return name
}
