package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/metermint/metermint/internal/config"
	"github.com/metermint/metermint/internal/logger"
	"github.com/metermint/metermint/internal/migration"
	"github.com/metermint/metermint/internal/server"
	"github.com/metermint/metermint/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		// Core infrastructure
		config.Module,
		logger.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		migration.Module,

		// HTTP surface plus every domain module it serves
		server.Module,
	)
	app.Run()
}

func RegisterSnowflake(cfg config.Config) *snowflake.Node {
	node, err := snowflake.NewNode(cfg.SnowflakeNode)
	if err != nil {
		panic(err)
	}
	return node
}
