package events

import "zellij-session-manager/internal/logging"

type CommandTracer struct{}

var Command = CommandTracer{}

func (CommandTracer) Queue(name, target string) {
	logging.Trace("command.queue", map[string]interface{}{"name": name, "target": target})
}

func (CommandTracer) Error(name string, err error) {
	payload := map[string]interface{}{"name": name}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("command.error", payload)
}

func (CommandTracer) Success(name, info string) {
	logging.Trace("command.success", map[string]interface{}{"name": name, "info": info})
}
