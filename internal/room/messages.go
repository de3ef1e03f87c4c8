package room

import "quizbattle-backend/internal/game"

type Msg interface{ isRoomMsg() }

// Join registers a human participant and the channel their events go out on.
type Join struct {
	ID     string
	Name   string
	Outbox chan Event
}

func (Join) isRoomMsg() {}

// Leave removes a participant on disconnect. The room deletes itself when
// the last human is gone.
type Leave struct{ ID string }

func (Leave) isRoomMsg() {}

// Start begins the match: one balancing pass, then round one.
type Start struct{}

func (Start) isRoomMsg() {}

// Result is a duel outcome submission. Bots submit through the same path.
type Result struct {
	ID     string
	Winner game.Team
}

func (Result) isRoomMsg() {}

type Shutdown struct{}

func (Shutdown) isRoomMsg() {}

// GetState reflects internal state without data races; test-only.
type GetState struct {
	Reply chan View
}

func (GetState) isRoomMsg() {}

// botTurn is posted by a bot's thinking timer. Round lets stale fires from
// a previous round be dropped.
type botTurn struct {
	BotID string
	Round int
}

func (botTurn) isRoomMsg() {}

// advanceRound is posted by the cool-down timer after a round barrier closes.
type advanceRound struct {
	Round int
}

func (advanceRound) isRoomMsg() {}

type View struct {
	NumClients int
	Started    bool
	Ended      bool
	Host       string
	Humans     int
	Bots       int
	State      game.Snapshot
}
