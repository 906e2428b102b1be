package models

import (
	"Landmark/pkg/geo"
	"time"
)

// Place 地点；积分流程只读
type Place struct {
	ID          uint64  `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name        string  `gorm:"size:128;not null;column:name" json:"name"`
	Description string  `gorm:"type:text;column:description" json:"description"`
	Longitude   float64 `gorm:"not null;column:longitude" json:"longitude"`
	Latitude    float64 `gorm:"not null;column:latitude" json:"latitude"`
	// 到店兑换能力
	RedemptionEligible   bool      `gorm:"not null;default:false;column:redemption_eligible" json:"redemption_eligible"`
	RedemptionPointsCost int64     `gorm:"not null;default:0;column:redemption_points_cost" json:"redemption_points_cost"`
	CreatedAt            time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Place) TableName() string {
	return "places"
}

func (p *Place) Point() geo.Point {
	return geo.Point{Lng: p.Longitude, Lat: p.Latitude}
}
