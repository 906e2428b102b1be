package models

import "time"

// CheckinDayLayout 签到自然日，按服务器时区切分
const CheckinDayLayout = "2006-01-02"

// Checkin 打卡记录，创建后不再修改
type Checkin struct {
	ID         int64     `gorm:"primaryKey;autoIncrement:false;column:id" json:"id"` // snowflake
	UserID     uint64    `gorm:"not null;uniqueIndex:idx_checkin_user_place_day,priority:1;index:idx_checkin_user;column:user_id" json:"user_id"`
	PlaceID    uint64    `gorm:"not null;uniqueIndex:idx_checkin_user_place_day,priority:2;column:place_id" json:"place_id"`
	CheckinDay string    `gorm:"size:10;not null;uniqueIndex:idx_checkin_user_place_day,priority:3;column:checkin_day" json:"checkin_day"`
	Longitude  float64   `gorm:"not null;column:longitude" json:"longitude"`
	Latitude   float64   `gorm:"not null;column:latitude" json:"latitude"`
	Distance   float64   `gorm:"not null;column:distance" json:"distance"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Checkin) TableName() string {
	return "checkins"
}
