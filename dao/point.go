package dao

import (
	"Landmark/models"
	"context"
	"time"

	"gorm.io/gorm"
)

type Point struct {
	Repo[models.PointsLog]
}

func NewPoint(db *gorm.DB) *Point {
	return &Point{
		Repo: NewRepo[models.PointsLog](db),
	}
}

// WithDB 绑定到事务
func (p *Point) WithDB(db *gorm.DB) *Point {
	return NewPoint(db)
}

// ApplyDelta 原子地加减余额，扣减后余额不能为负。
// 影响行数为 0 时区分用户不存在与余额不足。
func (p *Point) ApplyDelta(ctx context.Context, userID uint64, delta int64) (int64, error) {
	db := p.Db.WithContext(ctx)
	result := db.Model(&models.Users{}).
		Where("id = ? AND points_total + ? >= 0", userID, delta).
		Update("points_total", gorm.Expr("points_total + ?", delta))
	if result.Error != nil {
		return 0, result.Error
	}

	var user models.Users
	if err := db.Select("id", "points_total").First(&user, userID).Error; err != nil {
		return 0, err
	}
	if result.RowsAffected == 0 {
		return user.PointsTotal, ErrInsufficientPoints
	}
	return user.PointsTotal, nil
}

func (p *Point) CreatePointLog(ctx context.Context, log *models.PointsLog) error {
	return p.Db.WithContext(ctx).Create(log).Error
}

// ListRecords 分页筛选查询
func (p *Point) ListRecords(ctx context.Context, userID uint64, action string, cursor uint64, limit int) ([]models.PointsLog, error) {
	var logs []models.PointsLog
	query := p.Db.WithContext(ctx).Where("user_id = ?", userID)

	switch action {
	case "income":
		query = query.Where("amount > ?", 0)
	case "expense":
		query = query.Where("amount < ?", 0)
	}

	if cursor > 0 {
		query = query.Where("id < ?", cursor)
	}

	err := query.Order("id DESC").Limit(limit).Find(&logs).Error
	return logs, err
}

// Totals 历史累计获得与使用
func (p *Point) Totals(ctx context.Context, userID uint64) (earned int64, used int64, err error) {
	var res struct {
		Earned int64
		Used   int64
	}
	err = p.Db.WithContext(ctx).Model(&models.PointsLog{}).
		Select("COALESCE(SUM(CASE WHEN amount > 0 THEN amount ELSE 0 END), 0) AS earned, "+
			"COALESCE(SUM(CASE WHEN amount < 0 THEN -amount ELSE 0 END), 0) AS used").
		Where("user_id = ?", userID).
		Scan(&res).Error
	return res.Earned, res.Used, err
}

type LedgerStats struct {
	Sum   int64
	Count int64
	First *time.Time
	Last  *time.Time
}

// Stats 统计时间范围内的流水，from/to 为零值时不限制
func (p *Point) Stats(ctx context.Context, userID uint64, from, to time.Time) (*LedgerStats, error) {
	scope := func(db *gorm.DB) *gorm.DB {
		db = db.Where("user_id = ?", userID)
		if !from.IsZero() {
			db = db.Where("created_at >= ?", from)
		}
		if !to.IsZero() {
			db = db.Where("created_at < ?", to)
		}
		return db
	}

	var agg struct {
		Sum   int64
		Count int64
	}
	db := p.Db.WithContext(ctx)
	err := db.Model(&models.PointsLog{}).Scopes(scope).
		Select("COALESCE(SUM(amount), 0) AS sum, COUNT(*) AS count").
		Scan(&agg).Error
	if err != nil {
		return nil, err
	}

	stats := &LedgerStats{Sum: agg.Sum, Count: agg.Count}
	if agg.Count == 0 {
		return stats, nil
	}

	var first, last models.PointsLog
	if err = db.Scopes(scope).Order("created_at ASC, id ASC").First(&first).Error; err != nil {
		return nil, err
	}
	if err = db.Scopes(scope).Order("created_at DESC, id DESC").First(&last).Error; err != nil {
		return nil, err
	}
	stats.First = &first.CreatedAt
	stats.Last = &last.CreatedAt
	return stats, nil
}

// SumByUser 流水合计，用于与 points_total 对账
func (p *Point) SumByUser(ctx context.Context, userID uint64) (int64, error) {
	var sum int64
	err := p.Db.WithContext(ctx).Model(&models.PointsLog{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ?", userID).
		Scan(&sum).Error
	return sum, err
}
