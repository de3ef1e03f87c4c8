package game

import (
	"crypto/rand"
	"math/big"
	mrand "math/rand"
)

var tiers = []SkillTier{SkillLow, SkillMid, SkillHigh}

func RandomTier() SkillTier {
	return tiers[mrand.Intn(len(tiers))]
}

// BalanceTeams injects a single bot onto the smaller team when the teams
// are uneven, and returns it. It corrects exactly one seat per call; a
// startGame pass never loops, so gaps wider than one stay uneven.
func (r *Room) BalanceTeams() *Participant {
	a, b := len(r.Teams[TeamA]), len(r.Teams[TeamB])
	if a == b {
		return nil
	}
	team := TeamA
	if b < a {
		team = TeamB
	}
	bot := &Participant{
		ID:    newBotID(),
		Name:  botName(len(r.Bots) + 1),
		Team:  team,
		Bot:   true,
		Skill: RandomTier(),
	}
	r.Bots = append(r.Bots, bot)
	r.Teams[team] = append(r.Teams[team], bot)
	return bot
}

// PairRound shuffles both teams independently (uniform Fisher-Yates via
// rand.Shuffle, not a comparator sort) and pairs by position up to the
// shorter team's length. Surplus members on the longer team sit the round
// out but stay in the room.
func (r *Room) PairRound() []*Duel {
	a := append([]*Participant(nil), r.Teams[TeamA]...)
	b := append([]*Participant(nil), r.Teams[TeamB]...)
	mrand.Shuffle(len(a), func(i, j int) { a[i], a[j] = a[j], a[i] })
	mrand.Shuffle(len(b), func(i, j int) { b[i], b[j] = b[j], b[i] })

	n := min(len(a), len(b))
	duels := make([]*Duel, 0, n)
	for i := 0; i < n; i++ {
		duels = append(duels, &Duel{A: a[i].ID, B: b[i].ID})
	}
	r.Duels = duels
	return duels
}

// codeAlphabet drops the characters that read ambiguously on a shared
// screen (0/O, I/l). 33^6 codes; collisions are not checked.
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ123456789"

func GenerateCode() (string, error) {
	code := make([]byte, 6)
	for i := range code {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(codeAlphabet))))
		if err != nil {
			return "", err
		}
		code[i] = codeAlphabet[num.Int64()]
	}
	return string(code), nil
}
