package models

import "time"

// Notification is a message delivered to one user. Expired notifications
// are removed by the background purge worker.
type Notification struct {
	NotificationID int64     `json:"id"`
	UserID         int64     `json:"user_id"`
	Message        string    `json:"message"`
	ExpiresAt      time.Time `json:"expires_at"`
	CreatedAt      time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Notification model.
func (n Notification) TableName() string {
	return "notifications"
}
