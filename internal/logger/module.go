package logger

import "go.uber.org/fx"

// Module wires the slog logger and makes fx log through it.
var Module = fx.Options(
	fx.Provide(New),
	fx.WithLogger(NewEventLogger),
)
