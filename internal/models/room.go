package models

import (
	"strings"
	"time"
)

// Room is a bookable teaching space.
type Room struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Capacity  int       `db:"capacity" json:"capacity"`
	RoomType  string    `db:"room_type" json:"room_type"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// IsLab reports whether the room is any kind of lab ("Lab", "Computer Lab", ...).
func (r Room) IsLab() bool {
	return strings.Contains(strings.ToLower(r.RoomType), "lab")
}
