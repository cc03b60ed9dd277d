package grouped

import "log/slog"

var logger = slog.New(slog.DiscardHandler)

// SetLogger routes the engine's debug records to l. Passing nil silences them.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	logger = l
}
