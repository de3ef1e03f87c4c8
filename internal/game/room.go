package game

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
)

type Team string

const (
	TeamA Team = "A"
	TeamB Team = "B"
)

func (t Team) Opponent() Team {
	if t == TeamA {
		return TeamB
	}
	return TeamA
}

type SkillTier string

const (
	SkillLow  SkillTier = "low"
	SkillMid  SkillTier = "mid"
	SkillHigh SkillTier = "high"
)

type Participant struct {
	ID     string    `json:"id"`
	Name   string    `json:"name"`
	Team   Team      `json:"team"`
	Points int       `json:"points"`
	Host   bool      `json:"host"`
	Bot    bool      `json:"isBot"`
	Skill  SkillTier `json:"-"`
}

// Duel pairs one participant from each team for the current round.
// A is always the team-A side.
type Duel struct {
	A        string `json:"a"`
	B        string `json:"b"`
	Winner   Team   `json:"winner,omitempty"`
	Finished bool   `json:"finished"`
}

func (d *Duel) Has(id string) bool {
	return d.A == id || d.B == id
}

type Rules struct {
	MaxRounds     int
	RewardPoints  int
	RoundCooldown time.Duration
}

func DefaultRules() Rules {
	return Rules{
		MaxRounds:     3,
		RewardPoints:  10,
		RoundCooldown: 3 * time.Second,
	}
}

// Room is the full per-session state. It is owned by exactly one room actor
// and never touched concurrently; see internal/room.
type Room struct {
	Code    string
	Host    string
	Round   int
	Started bool
	Ended   bool
	Players []*Participant
	Bots    []*Participant
	Teams   map[Team][]*Participant
	Scores  map[Team]int
	Duels   []*Duel
	Rules   Rules
}

func NewRoom(code string, rules Rules) *Room {
	return &Room{
		Code:   code,
		Round:  1,
		Teams:  map[Team][]*Participant{TeamA: {}, TeamB: {}},
		Scores: map[Team]int{TeamA: 0, TeamB: 0},
		Rules:  rules,
	}
}

// Join adds a human to whichever team currently has fewer members, ties
// going to team A. The first human in becomes host.
func (r *Room) Join(id, name string) Team {
	team := TeamA
	if len(r.Teams[TeamB]) < len(r.Teams[TeamA]) {
		team = TeamB
	}
	p := &Participant{ID: id, Name: name, Team: team}
	if len(r.Players) == 0 {
		p.Host = true
		r.Host = id
	}
	r.Players = append(r.Players, p)
	r.Teams[team] = append(r.Teams[team], p)
	return team
}

// Remove strips a human from the player list and both team slices. If the
// host left and humans remain, the first remaining human is promoted.
// Removal is idempotent; removing an unknown id is a no-op.
func (r *Room) Remove(id string) bool {
	removed := false
	for i, p := range r.Players {
		if p.ID == id {
			r.Players = slices.Delete(r.Players, i, i+1)
			removed = true
			break
		}
	}
	if !removed {
		return false
	}
	for _, t := range []Team{TeamA, TeamB} {
		r.Teams[t] = slices.DeleteFunc(r.Teams[t], func(p *Participant) bool {
			return p.ID == id
		})
	}
	if r.Host == id {
		r.Host = ""
		if len(r.Players) > 0 {
			r.Players[0].Host = true
			r.Host = r.Players[0].ID
		}
	}
	return true
}

func (r *Room) Participant(id string) *Participant {
	for _, p := range r.Players {
		if p.ID == id {
			return p
		}
	}
	for _, b := range r.Bots {
		if b.ID == id {
			return b
		}
	}
	return nil
}

func (r *Room) HumanCount() int { return len(r.Players) }

// DuelFor returns the duel the participant is fighting in this round, or
// nil if they are sitting the round out. Each id appears in at most one
// duel per round.
func (r *Room) DuelFor(id string) *Duel {
	for _, d := range r.Duels {
		if d.Has(id) {
			return d
		}
	}
	return nil
}

// RecordResult marks the submitter's duel finished and credits the winning
// team. Returns false when the participant has no duel or the duel already
// finished, which makes duplicate submissions (human vs. racing bot timer)
// a no-op.
func (r *Room) RecordResult(id string, winner Team) bool {
	d := r.DuelFor(id)
	if d == nil || d.Finished {
		return false
	}
	d.Finished = true
	d.Winner = winner
	r.Scores[winner]++
	if p := r.Participant(id); p != nil {
		p.Points += r.Rules.RewardPoints
	}
	return true
}

func (r *Room) AllDuelsFinished() bool {
	if len(r.Duels) == 0 {
		return false
	}
	for _, d := range r.Duels {
		if !d.Finished {
			return false
		}
	}
	return true
}

// FinishAbandoned closes out duels whose both sides have left the room,
// with no winner and no score change, so the round barrier can still close.
func (r *Room) FinishAbandoned() bool {
	changed := false
	for _, d := range r.Duels {
		if d.Finished {
			continue
		}
		if r.Participant(d.A) == nil && r.Participant(d.B) == nil {
			d.Finished = true
			changed = true
		}
	}
	return changed
}

// Leader returns the team with the strictly greater score, or "" on a tie.
func (r *Room) Leader() Team {
	switch {
	case r.Scores[TeamA] > r.Scores[TeamB]:
		return TeamA
	case r.Scores[TeamB] > r.Scores[TeamA]:
		return TeamB
	default:
		return ""
	}
}

// Snapshot is the full room view broadcast to clients after every mutation.
// It deep-copies the participant and duel data so the actor can keep
// mutating its own state while the websocket writers marshal.
type Snapshot struct {
	Round  int                    `json:"round"`
	Teams  map[Team][]Participant `json:"teams"`
	Scores map[Team]int           `json:"scores"`
	Duels  []Duel                 `json:"duels"`
}

func (r *Room) Snapshot() Snapshot {
	s := Snapshot{
		Round:  r.Round,
		Teams:  make(map[Team][]Participant, 2),
		Scores: map[Team]int{TeamA: r.Scores[TeamA], TeamB: r.Scores[TeamB]},
		Duels:  make([]Duel, 0, len(r.Duels)),
	}
	for _, t := range []Team{TeamA, TeamB} {
		members := make([]Participant, 0, len(r.Teams[t]))
		for _, p := range r.Teams[t] {
			members = append(members, *p)
		}
		s.Teams[t] = members
	}
	for _, d := range r.Duels {
		s.Duels = append(s.Duels, *d)
	}
	return s
}

func newBotID() string { return "bot-" + uuid.NewString() }

func botName(n int) string { return fmt.Sprintf("Bot %d", n) }
