package idgen

import "go.uber.org/fx"

// Module provides the random-draw id generator.
var Module = fx.Module("idgen",
	fx.Provide(New),
)
