package dao

import (
	"Landmark/models"
	"context"

	"gorm.io/gorm"
)

type Place struct {
	Repo[models.Place]
}

func NewPlace(db *gorm.DB) *Place {
	return &Place{
		Repo: NewRepo[models.Place](db),
	}
}

// ListInBox 经纬度矩形范围内的地点，精确距离由调用方计算
func (p *Place) ListInBox(ctx context.Context, minLng, maxLng, minLat, maxLat float64, limit int) ([]models.Place, error) {
	places := make([]models.Place, 0)
	err := p.Db.WithContext(ctx).
		Where("longitude BETWEEN ? AND ?", minLng, maxLng).
		Where("latitude BETWEEN ? AND ?", minLat, maxLat).
		Limit(limit).
		Find(&places).Error
	return places, err
}
