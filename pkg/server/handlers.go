package server

import (
	"Landmark/handler"
)

type Handlers struct {
	Checkin *handler.Checkin
	Reward  *handler.Reward
	Place   *handler.Place
	Points  *handler.Point
	User    *handler.User
}
