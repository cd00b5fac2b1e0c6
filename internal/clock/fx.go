package clock

import "go.uber.org/fx"

// Module provides the database-backed clock.
var Module = fx.Module("clock",
	fx.Provide(NewDBClock),
)
