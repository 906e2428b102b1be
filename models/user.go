package models

import "time"

// Users 用户表；points_total 只能通过积分流水变更
type Users struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Nickname    string    `gorm:"size:64;column:nickname" json:"nickname"`
	Mobile      string    `gorm:"size:32;index:idx_users_mobile;column:mobile" json:"mobile"`
	Password    string    `gorm:"size:255;column:password" json:"-"`
	PointsTotal int64     `gorm:"not null;default:0;column:points_total" json:"points_total"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Users) TableName() string {
	return "users"
}

// UserBookmark 用户收藏的地点
type UserBookmark struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement;column:id"`
	UserID    uint64    `gorm:"not null;uniqueIndex:idx_bookmark_user_place;column:user_id"`
	PlaceID   uint64    `gorm:"not null;uniqueIndex:idx_bookmark_user_place;column:place_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (UserBookmark) TableName() string {
	return "user_bookmarks"
}

// UserRedeemedReward 兑换快照，奖品后续改名改价不影响已兑换记录
type UserRedeemedReward struct {
	ID               uint64     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	UserID           uint64     `gorm:"not null;index:idx_redeemed_user;column:user_id" json:"user_id"`
	RewardID         uint64     `gorm:"not null;column:reward_id" json:"reward_id"`
	Name             string     `gorm:"size:128;not null;column:name" json:"name"`
	ShortDescription string     `gorm:"size:255;column:short_description" json:"short_description"`
	PointsCost       int64      `gorm:"not null;column:points_cost" json:"points_cost"`
	SourceID         string     `gorm:"size:64;column:source_id" json:"source_id"`
	Used             bool       `gorm:"not null;default:false;column:used" json:"used"`
	UsedAt           *time.Time `gorm:"column:used_at" json:"used_at"`
	RedeemedAt       time.Time  `gorm:"not null;column:redeemed_at" json:"redeemed_at"`
}

func (UserRedeemedReward) TableName() string {
	return "user_redeemed_rewards"
}
