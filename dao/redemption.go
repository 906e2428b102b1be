package dao

import (
	"Landmark/models"
	"context"
	"time"

	"gorm.io/gorm"
)

// Redemption 用户已兑换奖品快照
type Redemption struct {
	Repo[models.UserRedeemedReward]
}

func NewRedemption(db *gorm.DB) *Redemption {
	return &Redemption{
		Repo: NewRepo[models.UserRedeemedReward](db),
	}
}

func (r *Redemption) WithDB(db *gorm.DB) *Redemption {
	return NewRedemption(db)
}

// ListByUser 按兑换顺序返回
func (r *Redemption) ListByUser(ctx context.Context, userID uint64) ([]models.UserRedeemedReward, error) {
	items := make([]models.UserRedeemedReward, 0)
	err := r.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("redeemed_at ASC, id ASC").
		Find(&items).Error
	return items, err
}

// MarkUsed 只有未使用的记录才会被更新
func (r *Redemption) MarkUsed(ctx context.Context, userID, id uint64, at time.Time) (*models.UserRedeemedReward, error) {
	db := r.Db.WithContext(ctx)
	var item models.UserRedeemedReward
	if err := db.Where("id = ? AND user_id = ?", id, userID).First(&item).Error; err != nil {
		return nil, err
	}
	if item.Used {
		return nil, ErrAlreadyUsed
	}

	result := db.Model(&models.UserRedeemedReward{}).
		Where("id = ? AND used = ?", id, false).
		Updates(map[string]any{"used": true, "used_at": at})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrAlreadyUsed
	}
	item.Used = true
	item.UsedAt = &at
	return &item, nil
}
