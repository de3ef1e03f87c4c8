package types

// updateState / roundEnded:
//   round: number                         // 1..3
//   teams: { A: Participant[], B: Participant[] }
//   scores: { A: number, B: number }      // duel wins this match
//   duels: Duel[]                         // recomputed every round
//
// Participant: { id, name, team, points, host, isBot }
// Duel: { a, b, winner?, finished }       // a is the team-A side
