package events

import "zellij-session-manager/internal/logging"

type ScreenTracer struct{}

var Screen = ScreenTracer{}

func (ScreenTracer) Enter(screen string) {
	logging.Trace("screen.enter", map[string]interface{}{"screen": screen})
}

func (ScreenTracer) Transition(from, to string) {
	logging.Trace("screen.transition", map[string]interface{}{"from": from, "to": to})
}

func (ScreenTracer) Cursor(screen string, position int) {
	logging.Trace("screen.cursor", map[string]interface{}{"screen": screen, "position": position})
}

func (ScreenTracer) NotFound(session string) {
	logging.Trace("screen.session-not-found", map[string]interface{}{"session": session})
}
