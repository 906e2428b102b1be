package dao

import (
	"Landmark/models"
	"context"

	"gorm.io/gorm"
)

type Checkin struct {
	Repo[models.Checkin]
}

func NewCheckin(db *gorm.DB) *Checkin {
	return &Checkin{
		Repo: NewRepo[models.Checkin](db),
	}
}

func (c *Checkin) WithDB(db *gorm.DB) *Checkin {
	return NewCheckin(db)
}

// ExistsOnDay 同一用户同一地点同一天是否已打卡
func (c *Checkin) ExistsOnDay(ctx context.Context, userID, placeID uint64, day string) (bool, error) {
	return c.IsExist(ctx, "user_id = ? AND place_id = ? AND checkin_day = ?", userID, placeID, day)
}

// ListByUser 游标分页，id 为 snowflake 按时间递增
func (c *Checkin) ListByUser(ctx context.Context, userID uint64, cursor int64, limit int) ([]models.Checkin, error) {
	items := make([]models.Checkin, 0)
	query := c.Db.WithContext(ctx).Where("user_id = ?", userID)
	if cursor > 0 {
		query = query.Where("id < ?", cursor)
	}
	err := query.Order("id DESC").Limit(limit).Find(&items).Error
	return items, err
}
