package accesskey

import (
	"github.com/metermint/metermint/internal/accesskey/repository"
	"github.com/metermint/metermint/internal/accesskey/service"
	"go.uber.org/fx"
)

var Module = fx.Module("accesskey.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
