package query

import (
	"github.com/metermint/metermint/internal/query/service"
	"go.uber.org/fx"
)

var Module = fx.Module("query.service",
	fx.Provide(service.New),
)
