package entity

import "time"

// Subscription marks a room that receives new menus.
type Subscription struct {
	RecipientID string
	CreatedAt   time.Time
}
