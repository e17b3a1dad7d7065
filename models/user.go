package models

import "time"

// User represents an account that owns bookings and API keys.
// Only identity attributes are loaded; credentials live elsewhere.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Email is the primary contact address of the user.
	Email string `json:"email"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserWithBookings is a user together with every booking the user owns.
// It is the result of a single lookup that includes the bookings relation.
type UserWithBookings struct {
	User

	// Bookings holds all bookings whose owner is User.
	// Empty, not nil, when the user owns no bookings, so it encodes as [].
	Bookings []Booking `json:"bookings"`
}

// BookingIDs returns the identifiers of all bookings owned by the user,
// in the order they were loaded.
func (u UserWithBookings) BookingIDs() []int64 {
	ids := make([]int64, 0, len(u.Bookings))
	for _, booking := range u.Bookings {
		ids = append(ids, booking.ID)
	}
	return ids
}

// OwnsBooking reports whether bookingID is among the user's bookings.
func (u UserWithBookings) OwnsBooking(bookingID int64) bool {
	for _, booking := range u.Bookings {
		if booking.ID == bookingID {
			return true
		}
	}
	return false
}
