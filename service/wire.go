package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	SystemClock,

	wire.Struct(new(PointService), "*"),
	wire.Bind(new(IPointService), new(*PointService)),

	wire.Struct(new(CheckinService), "*"),
	wire.Bind(new(ICheckinService), new(*CheckinService)),

	wire.Struct(new(RewardService), "*"),
	wire.Bind(new(IRewardService), new(*RewardService)),

	wire.Struct(new(PlaceService), "*"),
	wire.Bind(new(IPlaceService), new(*PlaceService)),

	wire.Struct(new(UserService), "*"),
	wire.Bind(new(IUserService), new(*UserService)),
)
