package types

type UserProfile struct {
	ID              uint64           `json:"id"`
	Nickname        string           `json:"nickname"`
	PointsTotal     int64            `json:"pointsTotal"`
	Bookmarks       []uint64         `json:"bookmarks"`
	RedeemedRewards []RedeemedReward `json:"redeemedRewards"`
}
