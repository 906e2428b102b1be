package models

import (
	"time"

	"gorm.io/datatypes"
)

// 积分变动类型常量定义
const (
	// 收入类
	TypeCheckinReward    = 1 // 打卡奖励
	TypePlaceRedeem      = 2 // 到店兑换
	TypeSystemCompensate = 4 // 系统/人工补偿

	// 支出类
	TypeRewardExchange = 10 // 奖品兑换
)

// PointsLog 积分流水，只追加不修改
type PointsLog struct {
	ID         uint64         `gorm:"primaryKey;column:id"`
	UserID     uint64         `gorm:"column:user_id;not null;index:idx_user_id"`
	Amount     int64          `gorm:"column:amount;not null"`  // 变动数额（正负）
	Balance    int64          `gorm:"column:balance;not null"` // 变动后余额
	ChangeType int8           `gorm:"column:change_type;not null"`
	SourceID   string         `gorm:"column:source_id;index:idx_source_id;size:64"`
	Remark     string         `gorm:"column:remark;size:255"`
	Meta       datatypes.JSON `gorm:"column:meta"`
	CreatedAt  time.Time      `gorm:"column:created_at;index:idx_created_at"`
}

func (PointsLog) TableName() string {
	return "point_logs"
}

var changeTypeNames = map[int8]string{
	TypeCheckinReward:    "checkin_reward",
	TypePlaceRedeem:      "place_redeem",
	TypeSystemCompensate: "system_compensate",
	TypeRewardExchange:   "reward_exchange",
}

func ChangeTypeName(t int8) string {
	if name, ok := changeTypeNames[t]; ok {
		return name
	}
	return "unknown"
}
