package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

type DayOfWeek string

const (
	DayMonday    DayOfWeek = "monday"
	DayTuesday   DayOfWeek = "tuesday"
	DayWednesday DayOfWeek = "wednesday"
	DayThursday  DayOfWeek = "thursday"
	DayFriday    DayOfWeek = "friday"
	DaySaturday  DayOfWeek = "saturday"
	DaySunday    DayOfWeek = "sunday"
)

// DaysOfWeekInOrder 一周七天的顺序，和数据库中 day_of_week 枚举的定义顺序保持一致
var DaysOfWeekInOrder = []DayOfWeek{
	DayMonday,
	DayTuesday,
	DayWednesday,
	DayThursday,
	DayFriday,
	DaySaturday,
	DaySunday,
}

func (d DayOfWeek) IsValid() bool {
	return slices.Contains(DaysOfWeekInOrder, d)
}

// ScheduleAvailability 某一天中的一个可预约时间段，时间为 "HH:MM" 格式的挂钟时间，
// 区间为左闭右开，不支持跨午夜的时间段
type ScheduleAvailability struct {
	ID        uuid.UUID `json:"id"`
	DayOfWeek DayOfWeek `json:"dayOfWeek"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
}

// Schedule 每个用户唯一的每周可预约日程，保存时会整体替换其下所有的可预约时间段
type Schedule struct {
	ID             uuid.UUID              `json:"id"`
	UserID         int64                  `json:"userID"`
	Timezone       string                 `json:"timezone"`
	Availabilities []ScheduleAvailability `json:"availabilities"`
	CreatedAt      time.Time              `json:"createdAt"`
	UpdatedAt      time.Time              `json:"updatedAt"`
}
