package service

import (
	"Landmark/dao"
	"Landmark/dao/cache"
	"Landmark/models"
	"Landmark/pkg/log"
	"Landmark/pkg/response"
	"Landmark/pkg/rocketmq"
	"Landmark/pkg/snowflake"
	"Landmark/types"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/sourcegraph/conc"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var errNonPositiveAmount = errors.New("points amount must be positive")

type PointService struct {
	DB        *gorm.DB
	PointDAO  *dao.Point
	UserDAO   *dao.Users
	Lock      cache.UserLock
	Publisher rocketmq.Publisher
	Clock     Clock
}

var _ IPointService = (*PointService)(nil)

type IPointService interface {
	Transact(ctx context.Context, userID uint64, fn func(tx *gorm.DB, ledger *Ledger) error) error
	Grant(ctx context.Context, userID uint64, amount int64, remark string) (*types.PointsAccount, error)

	// 查询
	GetAccountDashboard(ctx context.Context, userID uint64) (*types.PointsAccount, error)
	ListPointRecords(ctx context.Context, userID uint64, req *types.ListPointRecordsReq) (*types.ListPointsRecord, error)
	Stats(ctx context.Context, userID uint64, from, to time.Time) (*types.PointStats, error)

	// 对账
	Reconcile(ctx context.Context, userID uint64) (*types.Reconciliation, error)
	ReconcileAll(ctx context.Context, fn func(rec types.Reconciliation)) (checked int, drifted int, err error)
}

// Change 一次积分变动，Amount 恒为正，方向由 Credit/Debit 决定
type Change struct {
	UserID     uint64
	Amount     int64
	ChangeType int8
	SourceID   string
	Remark     string
	Meta       map[string]any
}

// Ledger 事务内修改余额的唯一入口：每次变动同时写余额和一条流水
type Ledger struct {
	dao     *dao.Point
	now     time.Time
	entries []*models.PointsLog
}

func (l *Ledger) Credit(ctx context.Context, c Change) (*models.PointsLog, error) {
	if c.Amount <= 0 {
		return nil, errNonPositiveAmount
	}
	return l.apply(ctx, c, c.Amount)
}

// Debit 余额不足时返回 dao.ErrInsufficientPoints，余额不会变成负数
func (l *Ledger) Debit(ctx context.Context, c Change) (*models.PointsLog, error) {
	if c.Amount <= 0 {
		return nil, errNonPositiveAmount
	}
	return l.apply(ctx, c, -c.Amount)
}

// Now 本次事务统一使用的时间
func (l *Ledger) Now() time.Time {
	return l.now
}

func (l *Ledger) apply(ctx context.Context, c Change, delta int64) (*models.PointsLog, error) {
	balance, err := l.dao.ApplyDelta(ctx, c.UserID, delta)
	if err != nil {
		return nil, err
	}

	var meta datatypes.JSON
	if len(c.Meta) > 0 {
		if meta, err = json.Marshal(c.Meta); err != nil {
			return nil, fmt.Errorf("marshal ledger meta: %w", err)
		}
	}

	entry := &models.PointsLog{
		UserID:     c.UserID,
		Amount:     delta,
		Balance:    balance,
		ChangeType: c.ChangeType,
		SourceID:   c.SourceID,
		Remark:     c.Remark,
		Meta:       meta,
		CreatedAt:  l.now,
	}
	if err = l.dao.CreatePointLog(ctx, entry); err != nil {
		return nil, fmt.Errorf("create point log: %w", err)
	}
	l.entries = append(l.entries, entry)
	return entry, nil
}

// Transact 持有用户锁执行事务，fn 内的所有积分变动随事务一起提交或回滚
func (p *PointService) Transact(ctx context.Context, userID uint64, fn func(tx *gorm.DB, ledger *Ledger) error) error {
	release, err := p.Lock.Acquire(ctx, userID)
	if err != nil {
		return fmt.Errorf("lock user %d: %w", userID, err)
	}
	defer release()

	ledger := &Ledger{now: p.Clock.now()}
	err = p.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ledger.dao = p.PointDAO.WithDB(tx)
		return fn(tx, ledger)
	})
	if err != nil {
		return err
	}

	p.afterCommit(ctx, ledger.entries)
	return nil
}

func (p *PointService) afterCommit(ctx context.Context, entries []*models.PointsLog) {
	for _, e := range entries {
		direction := "credit"
		if e.Amount < 0 {
			direction = "debit"
		}
		ledgerEntriesTotal.WithLabelValues(models.ChangeTypeName(e.ChangeType), direction).Inc()

		if p.Publisher == nil {
			continue
		}
		body, err := json.Marshal(types.LedgerEvent{
			ID:         e.ID,
			UserID:     e.UserID,
			Amount:     e.Amount,
			Balance:    e.Balance,
			ChangeType: int(e.ChangeType),
			SourceID:   e.SourceID,
			Remark:     e.Remark,
			CreatedAt:  e.CreatedAt,
		})
		if err != nil {
			log.L.Error("marshal ledger event", zap.Uint64("log_id", e.ID), zap.Error(err))
			continue
		}
		// 流水已提交，投递失败只记录日志
		if err = p.Publisher.Publish(ctx, strconv.FormatUint(e.ID, 10), body); err != nil {
			log.L.Warn("publish ledger event failed", zap.Uint64("log_id", e.ID), zap.Error(err))
		}
	}
}

// Grant 人工补偿积分
func (p *PointService) Grant(ctx context.Context, userID uint64, amount int64, remark string) (*types.PointsAccount, error) {
	if amount <= 0 {
		return nil, response.Validation("Grant amount must be positive")
	}
	if remark == "" {
		remark = "System compensation"
	}

	var balance int64
	err := p.Transact(ctx, userID, func(tx *gorm.DB, ledger *Ledger) error {
		entry, err := ledger.Credit(ctx, Change{
			UserID:     userID,
			Amount:     amount,
			ChangeType: models.TypeSystemCompensate,
			SourceID:   snowflake.GenSourceID("grant:"),
			Remark:     remark,
		})
		if err != nil {
			return err
		}
		balance = entry.Balance
		return nil
	})
	if dao.IsNotFound(err) {
		return nil, response.NotFound("User not found")
	}
	if err != nil {
		return nil, internalError("grant points", err, zap.Uint64("user_id", userID))
	}
	return &types.PointsAccount{Balance: balance}, nil
}

func (p *PointService) GetAccountDashboard(ctx context.Context, userID uint64) (*types.PointsAccount, error) {
	var (
		wg           conc.WaitGroup
		user         *models.Users
		userErr      error
		earned, used int64
		totalsErr    error
	)
	wg.Go(func() {
		user, userErr = p.UserDAO.FindById(ctx, userID)
	})
	wg.Go(func() {
		earned, used, totalsErr = p.PointDAO.Totals(ctx, userID)
	})
	wg.Wait()

	if dao.IsNotFound(userErr) {
		return nil, response.NotFound("User not found")
	}
	if userErr != nil {
		return nil, internalError("load points account", userErr, zap.Uint64("user_id", userID))
	}
	if totalsErr != nil {
		return nil, internalError("load points totals", totalsErr, zap.Uint64("user_id", userID))
	}

	return &types.PointsAccount{
		Balance:     user.PointsTotal,
		TotalEarned: earned,
		TotalUsed:   used,
	}, nil
}

func (p *PointService) ListPointRecords(ctx context.Context, userID uint64, req *types.ListPointRecordsReq) (*types.ListPointsRecord, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = 10
	}
	logs, err := p.PointDAO.ListRecords(ctx, userID, req.Action, req.Cursor, limit+1)
	if err != nil {
		return nil, internalError("list point records", err, zap.Uint64("user_id", userID))
	}

	resp := &types.ListPointsRecord{
		Records: make([]types.PointRecord, 0, len(logs)),
		HasMore: false,
	}

	if len(logs) > limit {
		resp.HasMore = true
		logs = logs[:limit]
		resp.NextCursor = logs[len(logs)-1].ID
	}

	for _, l := range logs {
		orderType := "INCOME"
		if l.Amount < 0 {
			orderType = "EXPENSE"
		}
		resp.Records = append(resp.Records, types.PointRecord{
			ID:          l.ID,
			Amount:      l.Amount,
			Balance:     l.Balance,
			Description: l.Remark,
			OrderType:   orderType,
			ChangeType:  int(l.ChangeType),
			CreatedAt:   l.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return resp, nil
}

func (p *PointService) Stats(ctx context.Context, userID uint64, from, to time.Time) (*types.PointStats, error) {
	if !from.IsZero() && !to.IsZero() && !from.Before(to) {
		return nil, response.Validation("Invalid time range")
	}
	stats, err := p.PointDAO.Stats(ctx, userID, from, to)
	if err != nil {
		return nil, internalError("point stats", err, zap.Uint64("user_id", userID))
	}
	return &types.PointStats{
		Sum:   stats.Sum,
		Count: stats.Count,
		First: stats.First,
		Last:  stats.Last,
	}, nil
}

// Reconcile 余额应等于全部流水之和
func (p *PointService) Reconcile(ctx context.Context, userID uint64) (*types.Reconciliation, error) {
	user, err := p.UserDAO.FindById(ctx, userID)
	if dao.IsNotFound(err) {
		return nil, response.NotFound("User not found")
	}
	if err != nil {
		return nil, internalError("reconcile load user", err, zap.Uint64("user_id", userID))
	}
	rec, err := p.reconcile(ctx, user.ID, user.PointsTotal)
	if err != nil {
		return nil, internalError("reconcile sum ledger", err, zap.Uint64("user_id", userID))
	}
	return rec, nil
}

func (p *PointService) reconcile(ctx context.Context, userID uint64, balance int64) (*types.Reconciliation, error) {
	sum, err := p.PointDAO.SumByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &types.Reconciliation{
		UserID:    userID,
		Balance:   balance,
		LedgerSum: sum,
		Drift:     balance - sum,
	}, nil
}

// ReconcileAll 遍历全部用户，fn 收到每个用户的对账结果
func (p *PointService) ReconcileAll(ctx context.Context, fn func(rec types.Reconciliation)) (int, int, error) {
	checked, drifted := 0, 0
	err := p.UserDAO.Batch(ctx, 200, func(users []models.Users) error {
		for _, u := range users {
			rec, err := p.reconcile(ctx, u.ID, u.PointsTotal)
			if err != nil {
				return err
			}
			checked++
			if !rec.Balanced() {
				drifted++
				log.L.Warn("points ledger drift",
					zap.Uint64("user_id", rec.UserID),
					zap.Int64("balance", rec.Balance),
					zap.Int64("ledger_sum", rec.LedgerSum),
				)
			}
			if fn != nil {
				fn(*rec)
			}
		}
		return nil
	})
	return checked, drifted, err
}
