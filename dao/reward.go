package dao

import (
	"Landmark/models"
	"context"
	"time"

	"gorm.io/gorm"
)

type Reward struct {
	Repo[models.Reward]
}

func NewReward(db *gorm.DB) *Reward {
	return &Reward{
		Repo: NewRepo[models.Reward](db),
	}
}

// ListAvailable 上架且未过期的奖品，按积分从低到高
func (r *Reward) ListAvailable(ctx context.Context, now time.Time) ([]models.Reward, error) {
	rewards := make([]models.Reward, 0)
	err := r.Db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("valid_until IS NULL OR valid_until > ?", now).
		Order("points_cost ASC, id ASC").
		Find(&rewards).Error
	return rewards, err
}
