package dbfx

import (
	"go.uber.org/fx"

	"tripway/internal/infra"
)

var Module = fx.Provide(
	infra.LoadConfig,
	infra.InitLogger,
	infra.InitPostgresql,
)
