package types

// ClientMessage is every inbound event. Type is one of
// "createRoom" | "joinRoom" | "startGame" | "playerResult";
// the gateway validates the variant before anything reaches a room.
type ClientMessage struct {
	Type       string `json:"type"`
	Code       string `json:"code,omitempty"`
	Name       string `json:"name,omitempty"`
	WinnerTeam string `json:"winnerTeam,omitempty"`
}
