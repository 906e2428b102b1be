package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewUsers,
	NewPoint,
	NewPlace,
	NewReward,
	NewCheckin,
	NewRedemption,
)
