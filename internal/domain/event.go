package domain

import (
	"time"

	"github.com/google/uuid"
)

// Event 会议类型，访客可以按照其时长预约会议
type Event struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	Description       *string   `json:"description"`
	DurationInMinutes int32     `json:"durationInMinutes"`
	UserID            int64     `json:"userID"`
	IsActive          bool      `json:"isActive"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}
