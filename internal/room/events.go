package room

import "quizbattle-backend/internal/game"

const (
	EvtRoomCreated  = "roomCreated"
	EvtPlayerJoined = "playerJoined"
	EvtInvalidCode  = "invalidCode"
	EvtUpdateState  = "updateState"
	EvtBotAdded     = "botAdded"
	EvtNewRound     = "newRound"
	EvtBotAnswer    = "botAnswer"
	EvtRoundEnded   = "roundEnded"
	EvtMatchEnded   = "matchEnded"
	EvtError        = "error"
)

// Event is the wire shape for everything the server pushes. One struct with
// omitempty fields rather than a type per event; Type discriminates.
type Event struct {
	Type    string                           `json:"type"`
	Code    string                           `json:"code,omitempty"`
	Name    string                           `json:"name,omitempty"`
	Team    game.Team                        `json:"team,omitempty"`
	Round   int                              `json:"round,omitempty"`
	Teams   map[game.Team][]game.Participant `json:"teams,omitempty"`
	Scores  map[game.Team]int                `json:"scores,omitempty"`
	Duels   []game.Duel                      `json:"duels,omitempty"`
	BotID   string                           `json:"botId,omitempty"`
	BotTeam game.Team                        `json:"botTeam,omitempty"`
	Correct bool                             `json:"correct,omitempty"`
	Winner  string                           `json:"winner,omitempty"`
	Error   string                           `json:"error,omitempty"`
}
