package service

import (
	"Landmark/config"
	"Landmark/dao"
	"Landmark/dao/cache"
	"Landmark/internal/testdb"
	"Landmark/models"
	"Landmark/pkg/geo"
	"Landmark/pkg/response"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// 上海某地标，测试坐标都以它为基准
var origin = geo.Point{Lng: 121.4997, Lat: 31.2397}

type recordingPublisher struct {
	mu   sync.Mutex
	keys []string
	body [][]byte
}

func (p *recordingPublisher) Publish(_ context.Context, key string, body []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.keys = append(p.keys, key)
	p.body = append(p.body, body)
	return nil
}

func (p *recordingPublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.keys)
}

type testEnv struct {
	db        *gorm.DB
	mu        sync.Mutex
	now       time.Time
	publisher *recordingPublisher

	points   *PointService
	checkins *CheckinService
	rewards  *RewardService
	places   *PlaceService
	users    *UserService
}

func newTestEnv(t *testing.T) *testEnv {
	return newTestEnvWithLock(t, cache.NewLocalLock(5*time.Second))
}

func newTestEnvWithLock(t *testing.T, lock cache.UserLock) *testEnv {
	t.Helper()
	db := testdb.New(t)
	env := &testEnv{
		db:        db,
		now:       time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		publisher: &recordingPublisher{},
	}
	clock := Clock(env.clock)
	conf := &config.Config{App: &config.App{Timezone: "UTC"}}

	userDAO := dao.NewUsers(db)
	placeDAO := dao.NewPlace(db)
	redemptionDAO := dao.NewRedemption(db)

	env.points = &PointService{
		DB:        db,
		PointDAO:  dao.NewPoint(db),
		UserDAO:   userDAO,
		Lock:      lock,
		Publisher: env.publisher,
		Clock:     clock,
	}
	env.checkins = &CheckinService{
		Config:       conf,
		PlaceDAO:     placeDAO,
		CheckinDAO:   dao.NewCheckin(db),
		PointService: env.points,
		Clock:        clock,
	}
	env.rewards = &RewardService{
		RewardDAO:     dao.NewReward(db),
		UserDAO:       userDAO,
		RedemptionDAO: redemptionDAO,
		PointService:  env.points,
		Clock:         clock,
	}
	env.places = &PlaceService{
		PlaceDAO:     placeDAO,
		PointService: env.points,
	}
	env.users = &UserService{
		UserDAO:       userDAO,
		PlaceDAO:      placeDAO,
		RedemptionDAO: redemptionDAO,
	}
	return env
}

func (e *testEnv) clock() time.Time {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.now
}

func (e *testEnv) advance(d time.Duration) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.now = e.now.Add(d)
}

// createUser 初始积分也走流水，保证对账成立
func (e *testEnv) createUser(t *testing.T, balance int64) *models.Users {
	t.Helper()
	user := &models.Users{Nickname: "tester"}
	require.NoError(t, e.db.Create(user).Error)
	if balance > 0 {
		_, err := e.points.Grant(context.Background(), user.ID, balance, "seed")
		require.NoError(t, err)
	}
	return user
}

func (e *testEnv) createPlace(t *testing.T, name string, at geo.Point, eligible bool, cost int64) *models.Place {
	t.Helper()
	place := &models.Place{
		Name:                 name,
		Longitude:            at.Lng,
		Latitude:             at.Lat,
		RedemptionEligible:   eligible,
		RedemptionPointsCost: cost,
	}
	require.NoError(t, e.db.Create(place).Error)
	return place
}

func (e *testEnv) createReward(t *testing.T, name string, cost int64, active bool, validUntil *time.Time) *models.Reward {
	t.Helper()
	reward := &models.Reward{
		Name:             name,
		ShortDescription: name + " short",
		PointsCost:       cost,
		Type:             models.RewardTypeVoucher,
		IsActive:         active,
		ValidUntil:       validUntil,
	}
	require.NoError(t, e.db.Create(reward).Error)
	return reward
}

func (e *testEnv) balance(t *testing.T, userID uint64) int64 {
	t.Helper()
	var user models.Users
	require.NoError(t, e.db.First(&user, userID).Error)
	return user.PointsTotal
}

func (e *testEnv) ledger(t *testing.T, userID uint64) []models.PointsLog {
	t.Helper()
	var logs []models.PointsLog
	require.NoError(t, e.db.Where("user_id = ?", userID).Order("id ASC").Find(&logs).Error)
	return logs
}

func (e *testEnv) requireReconciled(t *testing.T, userID uint64) {
	t.Helper()
	rec, err := e.points.Reconcile(context.Background(), userID)
	require.NoError(t, err)
	require.Truef(t, rec.Balanced(), "balance %d != ledger sum %d", rec.Balance, rec.LedgerSum)
}

func requireBizCode(t *testing.T, err error, code int) {
	t.Helper()
	require.Error(t, err)
	require.Truef(t, response.IsCode(err, code), "expected biz error %d, got %v", code, err)
}
