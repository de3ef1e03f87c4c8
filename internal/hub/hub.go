// Package hub owns the room-code registry. Like the rooms themselves it is
// a single goroutine fed by tagged messages, so the code->room map has
// exactly one writer for the life of the process.
package hub

import (
	"context"

	"go.uber.org/zap"

	"quizbattle-backend/internal/bot"
	"quizbattle-backend/internal/game"
	"quizbattle-backend/internal/room"
)

type HubMsg interface{ isHubMsg() }

// CreateRoom generates a fresh code and spins up its actor.
type CreateRoom struct {
	Reply chan Created
}

type Created struct {
	Code string
	Room *room.Room
}

// GetRoom resolves a code; the reply is nil for codes that don't exist or
// whose room has since been deleted.
type GetRoom struct {
	Code  string
	Reply chan *room.Room
}

// RemoveRoom drops a registry entry. Rooms post this about themselves when
// their last human leaves.
type RemoveRoom struct {
	Code string
}

type ShutdownHub struct{}

func (CreateRoom) isHubMsg()  {}
func (GetRoom) isHubMsg()     {}
func (RemoveRoom) isHubMsg()  {}
func (ShutdownHub) isHubMsg() {}

type Hub struct {
	inbox  chan HubMsg
	rooms  map[string]*room.Room
	rules  game.Rules
	bots   bot.Config
	log    *zap.Logger
	ctx    context.Context
	cancel context.CancelFunc
}

func NewHub(parent context.Context, rules game.Rules, bots bot.Config, log *zap.Logger) *Hub {
	ctx, cancel := context.WithCancel(parent)
	h := &Hub{
		inbox:  make(chan HubMsg, 64),
		rooms:  make(map[string]*room.Room),
		rules:  rules,
		bots:   bots,
		log:    log,
		ctx:    ctx,
		cancel: cancel,
	}
	go h.loop()
	return h
}

func (h *Hub) Inbox() chan<- HubMsg { return h.inbox }

func (h *Hub) loop() {
	for {
		select {
		case <-h.ctx.Done():
			h.shutdown()
			return

		case m := <-h.inbox:
			switch msg := m.(type) {
			case CreateRoom:
				code, err := game.GenerateCode()
				if err != nil {
					h.log.Error("code generation failed", zap.Error(err))
					msg.Reply <- Created{}
					break
				}
				// 33^6 codes; a collision is vanishingly unlikely and is
				// not checked, only surfaced.
				if h.rooms[code] != nil {
					h.log.Warn("room code collision", zap.String("code", code))
				}
				r := room.New(h.ctx, code, h.rules, h.bots, h.log, h.removeLater)
				h.rooms[code] = r
				h.log.Info("room created", zap.String("code", code))
				msg.Reply <- Created{Code: code, Room: r}

			case GetRoom:
				msg.Reply <- h.rooms[msg.Code] // may be nil

			case RemoveRoom:
				delete(h.rooms, msg.Code)
				h.log.Info("room removed", zap.String("code", msg.Code))

			case ShutdownHub:
				h.shutdown()
				return
			}
		}
	}
}

// removeLater is handed to each room; it runs on the room's goroutine, so
// the registry mutation itself still happens on the hub loop.
func (h *Hub) removeLater(code string) {
	select {
	case h.inbox <- RemoveRoom{Code: code}:
	case <-h.ctx.Done():
	}
}

func (h *Hub) shutdown() {
	for code, r := range h.rooms {
		r.Send(room.Shutdown{})
		delete(h.rooms, code)
	}
	h.cancel()
}
