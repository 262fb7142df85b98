//go:build wireinject
// +build wireinject

package main

import (
	"SketchShare/config"
	"SketchShare/dao"
	"SketchShare/dao/cache"
	"SketchShare/handler"
	"SketchShare/pkg/client"
	"SketchShare/pkg/database"
	"SketchShare/pkg/server"
	"SketchShare/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(

		client.NewRedisClient,
		server.NewGinEngine,
		cache.ProviderSet,
		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.Post), "*"),
		wire.Struct(new(handler.Report), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,

		service.ProviderSet,
		database.NewDB,
	)
	return nil
}
