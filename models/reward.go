package models

import "time"

const (
	RewardTypeDiscount   = "discount"
	RewardTypeFreeItem   = "free_item"
	RewardTypeVoucher    = "voucher"
	RewardTypeExperience = "experience"
)

var rewardTypes = map[string]struct{}{
	RewardTypeDiscount:   {},
	RewardTypeFreeItem:   {},
	RewardTypeVoucher:    {},
	RewardTypeExperience: {},
}

func ValidRewardType(t string) bool {
	_, ok := rewardTypes[t]
	return ok
}

// Reward 奖品目录
type Reward struct {
	ID               uint64     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name             string     `gorm:"size:128;not null;column:name" json:"name"`
	ShortDescription string     `gorm:"size:255;column:short_description" json:"short_description"`
	Description      string     `gorm:"type:text;column:description" json:"description"`
	PointsCost       int64      `gorm:"not null;column:points_cost" json:"points_cost"` // >= 1
	Type             string     `gorm:"size:32;not null;column:type" json:"type"`
	IsActive         bool       `gorm:"not null;index:idx_reward_active;column:is_active" json:"is_active"`
	ValidUntil       *time.Time `gorm:"column:valid_until" json:"valid_until"`
	CreatedAt        time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Reward) TableName() string {
	return "rewards"
}

// Expired 没有有效期视为永久有效
func (r *Reward) Expired(now time.Time) bool {
	return r.ValidUntil != nil && !r.ValidUntil.After(now)
}
