package server

import (
	"Landmark/config"
	"Landmark/dao"
	"Landmark/dao/cache"
	"Landmark/handler"
	"Landmark/internal/testdb"
	"Landmark/models"
	"Landmark/pkg/geo"
	"Landmark/pkg/jwt"
	"Landmark/pkg/rocketmq"
	"Landmark/service"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type app struct {
	engine *gin.Engine
	db     *gorm.DB
	token  string
	user   *models.Users
}

func newApp(t *testing.T) *app {
	t.Helper()
	gin.SetMode(gin.TestMode)

	conf, err := config.Parse([]byte("app:\n  timezone: UTC\njwt:\n  secret: e2e-secret\n"))
	require.NoError(t, err)
	db := testdb.New(t)

	users := dao.NewUsers(db)
	places := dao.NewPlace(db)
	redemptions := dao.NewRedemption(db)
	points := &service.PointService{
		DB:        db,
		PointDAO:  dao.NewPoint(db),
		UserDAO:   users,
		Lock:      cache.NewLocalLock(time.Second),
		Publisher: rocketmq.NopPublisher{},
		Clock:     service.SystemClock(),
	}
	rewards := &service.RewardService{
		RewardDAO:     dao.NewReward(db),
		UserDAO:       users,
		RedemptionDAO: redemptions,
		PointService:  points,
	}
	h := &Handlers{
		Checkin: &handler.Checkin{CheckinService: &service.CheckinService{
			Config:       conf,
			PlaceDAO:     places,
			CheckinDAO:   dao.NewCheckin(db),
			PointService: points,
		}},
		Reward: &handler.Reward{RewardService: rewards},
		Place:  &handler.Place{PlaceService: &service.PlaceService{PlaceDAO: places, PointService: points}},
		Points: &handler.Point{PointService: points},
		User: &handler.User{
			UserService:   &service.UserService{UserDAO: users, PlaceDAO: places, RedemptionDAO: redemptions},
			RewardService: rewards,
		},
	}

	user := &models.Users{Nickname: "e2e"}
	require.NoError(t, db.Create(user).Error)
	token, err := jwt.GenerateToken([]byte(conf.Jwt.Secret), user.ID, jwt.TypeAccess, time.Hour)
	require.NoError(t, err)

	return &app{engine: NewGinEngine(h, conf), db: db, token: token, user: user}
}

func (a *app) do(t *testing.T, method, path, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+a.token)
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return w.Code, out
}

func TestEngine_CheckinThenRedeem(t *testing.T) {
	a := newApp(t)
	origin := geo.Point{Lng: 2.2945, Lat: 48.8584}
	place := &models.Place{Name: "Tower", Longitude: origin.Lng, Latitude: origin.Lat, RedemptionEligible: true, RedemptionPointsCost: 25}
	require.NoError(t, a.db.Create(place).Error)
	reward := &models.Reward{Name: "Postcard", ShortDescription: "A postcard", Type: models.RewardTypeFreeItem, PointsCost: 30, IsActive: true}
	require.NoError(t, a.db.Create(reward).Error)

	at := geo.OffsetNorth(origin, 15)
	body := fmt.Sprintf(`{"placeId":%d,"coordinates":[%v,%v]}`, place.ID, at.Lng, at.Lat)
	code, out := a.do(t, http.MethodPost, "/api/v1/checkins", body)
	require.Equal(t, http.StatusCreated, code, out)
	data := out["data"].(map[string]any)
	assert.Equal(t, float64(10), data["points"].(map[string]any)["total"])
	assert.Equal(t, float64(15), data["place"].(map[string]any)["distance"])

	code, _ = a.do(t, http.MethodPost, "/api/v1/checkins", body)
	assert.Equal(t, http.StatusConflict, code)

	code, out = a.do(t, http.MethodPost, fmt.Sprintf("/api/v1/rewards/%d/redeem", reward.ID), "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Insufficient points. You need 30 points but have 10.", out["msg"])

	code, out = a.do(t, http.MethodPost, fmt.Sprintf("/api/v1/places/%d/redeem", place.ID), "")
	require.Equal(t, http.StatusOK, code, out)
	assert.Equal(t, float64(35), out["data"].(map[string]any)["totalPoints"])

	code, out = a.do(t, http.MethodPost, fmt.Sprintf("/api/v1/rewards/%d/redeem", reward.ID), "")
	require.Equal(t, http.StatusOK, code, out)
	assert.Equal(t, float64(5), out["data"].(map[string]any)["user"].(map[string]any)["remainingPoints"])

	code, out = a.do(t, http.MethodGet, "/api/v1/points/balance", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, map[string]any{"balance": float64(5), "total_earned": float64(35), "total_used": float64(30)}, out["data"])

	code, out = a.do(t, http.MethodGet, "/api/v1/user/profile", "")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, out["data"].(map[string]any)["redeemedRewards"], 1)
}

func TestEngine_RejectsMissingToken(t *testing.T) {
	a := newApp(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/points/balance", nil)
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestEngine_Metrics(t *testing.T) {
	a := newApp(t)
	a.do(t, http.MethodGet, "/api/v1/points/balance", "")

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "landmark_http_requests_total")
}
