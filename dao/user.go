package dao

import (
	"Landmark/models"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Users struct {
	Repo[models.Users]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.Users](db),
	}
}

func (u *Users) WithDB(db *gorm.DB) *Users {
	return NewUsers(db)
}

// FindForUpdate 事务内读取并锁定用户行，sqlite 下忽略锁子句
func (u *Users) FindForUpdate(ctx context.Context, id uint64) (*models.Users, error) {
	var user models.Users
	db := u.Db.WithContext(ctx)
	if db.Dialector.Name() == "mysql" {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	if err := db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Batch 按主键分批遍历全部用户
func (u *Users) Batch(ctx context.Context, size int, fn func(users []models.Users) error) error {
	var batch []models.Users
	return u.Db.WithContext(ctx).Select("id", "points_total").
		FindInBatches(&batch, size, func(tx *gorm.DB, _ int) error {
			return fn(batch)
		}).Error
}

// Bookmarks 用户收藏
func (u *Users) Bookmarks(ctx context.Context, userID uint64) ([]uint64, error) {
	var ids []uint64
	err := u.Db.WithContext(ctx).Model(&models.UserBookmark{}).
		Where("user_id = ?", userID).
		Order("id ASC").
		Pluck("place_id", &ids).Error
	return ids, err
}

// AddBookmark 重复收藏不报错
func (u *Users) AddBookmark(ctx context.Context, userID, placeID uint64) error {
	return u.Db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.UserBookmark{UserID: userID, PlaceID: placeID}).Error
}

func (u *Users) RemoveBookmark(ctx context.Context, userID, placeID uint64) error {
	return u.Db.WithContext(ctx).
		Where("user_id = ? AND place_id = ?", userID, placeID).
		Delete(&models.UserBookmark{}).Error
}
