package models

import "time"

// Booking is a scheduled appointment owned by exactly one user.
// A booking may have at most one payment made against it.
type Booking struct {
	ID        int64     `json:"id"`
	UID       string    `json:"uid"`
	UserID    int64     `json:"userId"`
	Title     string    `json:"title"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Status    string    `json:"status"`
}

// TableName returns the name of the database table
// associated with the Booking model.
func (b Booking) TableName() string {
	return "bookings"
}
