package models

// All 需要迁移的表
func All() []any {
	return []any{
		&Users{},
		&UserBookmark{},
		&UserRedeemedReward{},
		&Place{},
		&Reward{},
		&Checkin{},
		&PointsLog{},
	}
}
