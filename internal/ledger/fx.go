package ledger

import (
	"github.com/metermint/metermint/internal/ledger/repository"
	"github.com/metermint/metermint/internal/ledger/service"
	"go.uber.org/fx"
)

var Module = fx.Module("ledger.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.NewService),
)
