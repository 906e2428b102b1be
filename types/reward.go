package types

import "time"

type RewardSummary struct {
	ID               uint64 `json:"id"`
	Name             string `json:"name"`
	ShortDescription string `json:"shortDescription"`
	Type             string `json:"type"`
	PointsCost       int64  `json:"pointsCost"`
}

type RewardDetail struct {
	RewardSummary
	Description string     `json:"description"`
	ValidUntil  *time.Time `json:"validUntil"`
}

type RedeemUser struct {
	RemainingPoints int64 `json:"remainingPoints"`
}

type RedeemRewardResp struct {
	Reward RewardSummary `json:"reward"`
	User   RedeemUser    `json:"user"`
}

// RedeemedReward 用户兑换快照
type RedeemedReward struct {
	ID               uint64     `json:"id"`
	RewardID         uint64     `json:"rewardId"`
	Name             string     `json:"name"`
	ShortDescription string     `json:"shortDescription"`
	PointsCost       int64      `json:"pointsCost"`
	RedeemedAt       time.Time  `json:"redeemedAt"`
	Used             bool       `json:"used"`
	UsedAt           *time.Time `json:"usedAt,omitempty"`
}
