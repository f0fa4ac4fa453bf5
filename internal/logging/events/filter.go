package events

import "zellij-session-manager/internal/logging"

type FilterTracer struct{}

var Filter = FilterTracer{}

func (FilterTracer) Cleared(screen string) {
	logging.Trace("filter.clear", map[string]interface{}{"screen": screen})
}

func (FilterTracer) WordBackspace(screen, query string) {
	logging.Trace("filter.word-backspace", map[string]interface{}{"screen": screen, "query": query})
}

func (FilterTracer) Cursor(screen string, pos int) {
	logging.Trace("filter.cursor", map[string]interface{}{"screen": screen, "cursor": pos})
}

func (FilterTracer) Append(screen, query string) {
	logging.Trace("filter.append", map[string]interface{}{"screen": screen, "query": query})
}

func (FilterTracer) Backspace(screen, query string) {
	logging.Trace("filter.backspace", map[string]interface{}{"screen": screen, "query": query})
}
