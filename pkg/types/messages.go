package types

// Client -> Server
// createRoom:
//   name: string
//
// joinRoom:
//   code: string
//   name: string
//
// startGame:
//   code: string
//
// playerResult:
//   code: string
//   winnerTeam: "A" | "B"
//
// (disconnect is transport-level; the connection id identifies the player)

// Server -> Client
// roomCreated (directed):
//   code: string
//
// invalidCode (directed):
//   code: string
//
// playerJoined:
//   name: string
//   team: "A" | "B"
//
// botAdded:
//   name: string
//   team: "A" | "B"
//   botId: string
//
// newRound:
//   round: number
//   duels: Duel[]
//
// updateState / roundEnded:
//   round, teams, scores, duels   // see snapshot.go
//
// botAnswer:
//   botId: string
//   botTeam: "A" | "B"
//   correct: boolean   // omitted when false
//   winner: "A" | "B"
//
// matchEnded:
//   scores: { A: number, B: number }
//   winner: "A" | "B" | "tie"
//
// error (directed):
//   error: string
