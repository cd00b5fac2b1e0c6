package organization

import (
	"github.com/metermint/metermint/internal/organization/repository"
	"github.com/metermint/metermint/internal/organization/service"
	"go.uber.org/fx"
)

var Module = fx.Module("organization.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
