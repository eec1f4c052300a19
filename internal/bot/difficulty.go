package bot

import "time"

// Difficulty gates the computer player's monster interceptions and sets
// its think delays. All computer seats in one room share a difficulty.
type Difficulty uint8

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
	Master
)

// DefaultDifficulty is the room setting before the host changes it.
const DefaultDifficulty = Medium

// ParseDifficulty maps a client-supplied level name; ok is false for
// unknown names.
func ParseDifficulty(s string) (Difficulty, bool) {
	switch s {
	case "Easy":
		return Easy, true
	case "Medium":
		return Medium, true
	case "Hard":
		return Hard, true
	case "Expert":
		return Expert, true
	case "Master":
		return Master, true
	}
	return DefaultDifficulty, false
}

// String returns the client-facing level name.
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	case Hard:
		return "Hard"
	case Expert:
		return "Expert"
	case Master:
		return "Master"
	}
	return "Medium"
}

// StartDelay is the think delay before a bot's first move of a game.
func (d Difficulty) StartDelay() time.Duration {
	switch d {
	case Easy:
		return 2500 * time.Millisecond
	case Medium:
		return 1500 * time.Millisecond
	case Hard:
		return 800 * time.Millisecond
	}
	return 400 * time.Millisecond
}

// TurnDelay is the think delay between bot turns mid-game.
func (d Difficulty) TurnDelay() time.Duration {
	switch d {
	case Easy:
		return 2000 * time.Millisecond
	case Medium:
		return 1000 * time.Millisecond
	case Hard:
		return 600 * time.Millisecond
	}
	return 300 * time.Millisecond
}
