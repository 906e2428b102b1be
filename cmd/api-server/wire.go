//go:build wireinject
// +build wireinject

package main

import (
	"Landmark/config"
	"Landmark/dao"
	"Landmark/dao/cache"
	"Landmark/handler"
	"Landmark/pkg/client"
	"Landmark/pkg/database"
	"Landmark/pkg/rocketmq"
	"Landmark/pkg/server"
	"Landmark/service"

	"github.com/google/wire"
)

var infraSet = wire.NewSet(
	database.NewDB,
	client.NewRedisClient,
	config.ProvideRocketMQConfig,
	rocketmq.ProvidePublisher,
	cache.ProviderSet,
	dao.ProviderSet,
	service.ProviderSet,
)

func InitServer(cfg *config.Config) (*server.AppProvider, func()) {
	wire.Build(
		infraSet,
		server.NewGinEngine,

		wire.Struct(new(handler.Checkin), "*"),
		wire.Struct(new(handler.Reward), "*"),
		wire.Struct(new(handler.Place), "*"),
		wire.Struct(new(handler.Point), "*"),
		wire.Struct(new(handler.User), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),
	)
	return nil, nil
}

func InitPointService(cfg *config.Config) (*service.PointService, func()) {
	wire.Build(infraSet)
	return nil, nil
}
