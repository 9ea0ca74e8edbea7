package lobby

// State is the lifecycle phase of a lobby. Completed is terminal.
type State int

const (
	StateWaitingForPlayers State = iota
	StateSetup
	StateInProgress
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateWaitingForPlayers:
		return "WaitingForPlayers"
	case StateSetup:
		return "Setup"
	case StateInProgress:
		return "InProgress"
	case StateCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}
