// Package room runs one goroutine per live room. All room-mutating
// operations arrive as tagged messages on a single inbox and run to
// completion before the next is read, so no locking is needed anywhere in
// the game state. Timers (bot decisions, the round cool-down) post messages
// back into the inbox and are gated on the room's context, so a timer that
// outlives its room is a no-op instead of resurrecting deleted state.
package room

import (
	"context"
	"time"

	"go.uber.org/zap"

	"quizbattle-backend/internal/bot"
	"quizbattle-backend/internal/game"
)

type Room struct {
	inbox   chan Msg
	state   *game.Room
	bots    bot.Config
	clients map[string]chan Event
	log     *zap.Logger
	ctx     context.Context
	cancel  context.CancelFunc

	// closing is set between the round-end broadcast and the cool-down
	// firing, so the barrier cannot arm the advance timer twice.
	closing bool

	onEmpty func(code string)
}

// New starts the room actor. onEmpty is called from inside the loop right
// before the actor exits because its last human left; the hub uses it to
// drop the registry entry.
func New(parent context.Context, code string, rules game.Rules, bots bot.Config, log *zap.Logger, onEmpty func(code string)) *Room {
	ctx, cancel := context.WithCancel(parent)

	r := &Room{
		inbox:   make(chan Msg, 64),
		state:   game.NewRoom(code, rules),
		bots:    bots,
		clients: make(map[string]chan Event),
		log:     log.With(zap.String("room", code)),
		ctx:     ctx,
		cancel:  cancel,
		onEmpty: onEmpty,
	}

	go r.loop()
	return r
}

func (r *Room) Code() string { return r.state.Code }

// Inbox exposes the raw channel for tests and in-process callers.
func (r *Room) Inbox() chan<- Msg { return r.inbox }

// Send delivers a message unless the room has already shut down. A dropped
// message is exactly the "operation on a deleted room" case, which is
// silently ignored.
func (r *Room) Send(m Msg) bool {
	select {
	case r.inbox <- m:
		return true
	case <-r.ctx.Done():
		return false
	}
}

func (r *Room) loop() {
	for {
		select {
		case <-r.ctx.Done():
			r.shutdown()
			return

		case m := <-r.inbox:
			switch msg := m.(type) {
			case Join:
				r.clients[msg.ID] = msg.Outbox
				team := r.state.Join(msg.ID, msg.Name)
				r.log.Info("player joined", zap.String("name", msg.Name), zap.String("team", string(team)))
				r.broadcast(Event{Type: EvtPlayerJoined, Name: msg.Name, Team: team})
				r.broadcast(r.stateEvent(EvtUpdateState))

			case Leave:
				if r.handleLeave(msg.ID) {
					return
				}

			case Start:
				r.handleStart()

			case Result:
				r.applyResult(msg.ID, msg.Winner)

			case botTurn:
				r.handleBotTurn(msg)

			case advanceRound:
				r.handleAdvance(msg)

			case GetState:
				msg.Reply <- View{
					NumClients: len(r.clients),
					Started:    r.state.Started,
					Ended:      r.state.Ended,
					Host:       r.state.Host,
					Humans:     r.state.HumanCount(),
					Bots:       len(r.state.Bots),
					State:      r.state.Snapshot(),
				}

			case Shutdown:
				r.shutdown()
				return
			}
		}
	}
}

// handleLeave reports true when the room deleted itself.
func (r *Room) handleLeave(id string) bool {
	if ch, ok := r.clients[id]; ok {
		close(ch)
		delete(r.clients, id)
	}
	if !r.state.Remove(id) {
		return false
	}
	if r.state.HumanCount() == 0 {
		// Bots never keep a room alive on their own.
		r.log.Info("last human left, deleting room")
		if r.onEmpty != nil {
			r.onEmpty(r.state.Code)
		}
		r.shutdown()
		return true
	}
	// A duel both of whose sides are gone would block the barrier forever;
	// close it out with no winner.
	if r.state.Started && !r.state.Ended {
		r.state.FinishAbandoned()
	}
	r.broadcast(r.stateEvent(EvtUpdateState))
	if r.state.Started && !r.state.Ended {
		r.checkBarrier()
	}
	return false
}

func (r *Room) handleStart() {
	if r.state.Started {
		return
	}
	r.state.Started = true
	if b := r.state.BalanceTeams(); b != nil {
		r.log.Info("bot added", zap.String("bot", b.Name), zap.String("team", string(b.Team)), zap.String("skill", string(b.Skill)))
		r.broadcast(Event{Type: EvtBotAdded, Name: b.Name, Team: b.Team, BotID: b.ID})
	}
	r.startRound()
}

func (r *Room) startRound() {
	duels := r.state.PairRound()
	r.log.Info("round started", zap.Int("round", r.state.Round), zap.Int("duels", len(duels)))

	ev := Event{Type: EvtNewRound, Round: r.state.Round}
	for _, d := range duels {
		ev.Duels = append(ev.Duels, *d)
	}
	r.broadcast(ev)
	r.broadcast(r.stateEvent(EvtUpdateState))

	for _, d := range duels {
		for _, id := range []string{d.A, d.B} {
			if p := r.state.Participant(id); p != nil && p.Bot {
				r.after(r.bots.Think(p.Skill), botTurn{BotID: p.ID, Round: r.state.Round})
			}
		}
	}
}

func (r *Room) handleBotTurn(msg botTurn) {
	if msg.Round != r.state.Round || r.state.Ended {
		return // stale fire from an earlier round
	}
	b := r.state.Participant(msg.BotID)
	if b == nil {
		return
	}
	d := r.state.DuelFor(b.ID)
	if d == nil {
		return
	}
	correct := r.bots.Answer(b.Skill)
	winner := b.Team
	if !correct {
		winner = b.Team.Opponent()
	}
	r.broadcast(Event{
		Type:    EvtBotAnswer,
		BotID:   b.ID,
		BotTeam: b.Team,
		Correct: correct,
		Winner:  string(winner),
	})
	if !d.Finished {
		r.applyResult(b.ID, winner)
	}
}

func (r *Room) applyResult(id string, winner game.Team) {
	if !r.state.Started || r.state.Ended {
		return
	}
	if winner != game.TeamA && winner != game.TeamB {
		return
	}
	if !r.state.RecordResult(id, winner) {
		return // no duel this round, or already finished
	}
	r.broadcast(r.stateEvent(EvtUpdateState))
	r.checkBarrier()
}

// checkBarrier closes the round once every duel has finished: broadcast the
// summary, then advance (or end the match) after the cool-down.
func (r *Room) checkBarrier() {
	if r.closing || !r.state.AllDuelsFinished() {
		return
	}
	r.closing = true
	r.log.Info("round ended", zap.Int("round", r.state.Round))
	r.broadcast(r.stateEvent(EvtRoundEnded))
	r.after(r.state.Rules.RoundCooldown, advanceRound{Round: r.state.Round})
}

func (r *Room) handleAdvance(msg advanceRound) {
	if !r.closing || msg.Round != r.state.Round {
		return
	}
	r.closing = false
	if r.state.Round < r.state.Rules.MaxRounds {
		r.state.Round++
		r.startRound()
		return
	}
	r.state.Ended = true
	winner := "tie"
	if t := r.state.Leader(); t != "" {
		winner = string(t)
	}
	r.log.Info("match ended", zap.String("winner", winner))
	r.broadcast(Event{
		Type:   EvtMatchEnded,
		Scores: r.state.Snapshot().Scores,
		Winner: winner,
	})
}

func (r *Room) stateEvent(typ string) Event {
	s := r.state.Snapshot()
	return Event{Type: typ, Round: s.Round, Teams: s.Teams, Scores: s.Scores, Duels: s.Duels}
}

// after posts a message back into the inbox once d elapses. The send is
// raced against the room context so a timer outliving the room is dropped
// rather than delivered to a dead inbox.
func (r *Room) after(d time.Duration, m Msg) {
	time.AfterFunc(d, func() {
		select {
		case r.inbox <- m:
		case <-r.ctx.Done():
		}
	})
}

func (r *Room) broadcast(ev Event) {
	for id, ch := range r.clients {
		select {
		case ch <- ev:
			// ok
		default:
			// Client is slow/full - drop them.
			close(ch)
			delete(r.clients, id)
		}
	}
}

func (r *Room) shutdown() {
	for id, ch := range r.clients {
		close(ch)
		delete(r.clients, id)
	}
	r.cancel()
}
