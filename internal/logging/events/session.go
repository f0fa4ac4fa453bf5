package events

import "zellij-session-manager/internal/logging"

type SessionTracer struct{}

var Session = SessionTracer{}

func (SessionTracer) Switch(target string) {
	logging.Trace("session.switch", map[string]interface{}{"target": target})
}

func (SessionTracer) Kill(target string) {
	logging.Trace("session.kill", map[string]interface{}{"target": target})
}

func (SessionTracer) KillAll(count int) {
	logging.Trace("session.kill-all", map[string]interface{}{"count": count})
}

func (SessionTracer) Create(name, layout string) {
	logging.Trace("session.create", map[string]interface{}{"name": name, "layout": layout})
}

func (SessionTracer) Rename(name string) {
	logging.Trace("session.rename", map[string]interface{}{"name": name})
}

func (SessionTracer) Resurrect(target string) {
	logging.Trace("session.resurrect", map[string]interface{}{"target": target})
}

func (SessionTracer) DeleteDead(target string) {
	logging.Trace("session.delete-dead", map[string]interface{}{"target": target})
}

func (SessionTracer) DeleteAllDead(count int) {
	logging.Trace("session.delete-all-dead", map[string]interface{}{"count": count})
}
