package ui

// Screen identifies the active arm of the controller state machine. Exactly
// one screen is active at a time; transitions are explicit and total.
type Screen int

const (
	ScreenWelcome Screen = iota
	ScreenSessionList
	ScreenNewSession
	ScreenResurrect
	ScreenNotFound
)

func (s Screen) String() string {
	switch s {
	case ScreenWelcome:
		return "welcome"
	case ScreenSessionList:
		return "session-list"
	case ScreenNewSession:
		return "new-session"
	case ScreenResurrect:
		return "resurrect"
	case ScreenNotFound:
		return "session-not-found"
	default:
		return "unknown"
	}
}

// NewSessionPhase splits the new-session screen into its two input phases.
type NewSessionPhase int

const (
	PhaseEnteringName NewSessionPhase = iota
	PhaseSearchingLayout
)

// tabOrder is the Tab cycling sequence across the list screens.
var tabOrder = []Screen{ScreenSessionList, ScreenNewSession, ScreenResurrect}

func nextTabScreen(current Screen) Screen {
	for i, s := range tabOrder {
		if s == current {
			return tabOrder[(i+1)%len(tabOrder)]
		}
	}
	return tabOrder[0]
}
