package user

import (
	"github.com/metermint/metermint/internal/user/repository"
	"github.com/metermint/metermint/internal/user/service"
	"go.uber.org/fx"
)

var Module = fx.Module("user.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
