package keycodec

import (
	"github.com/metermint/metermint/internal/config"
	"go.uber.org/fx"
)

// NewFromConfig builds the codec with the configured signing secret.
func NewFromConfig(cfg config.Config) *Codec {
	return New(cfg.KeySecret)
}

// Module provides the access-key codec.
var Module = fx.Module("keycodec",
	fx.Provide(NewFromConfig),
)
