package utils

import (
	"regexp"

	"github.com/sysu-ecnc-dev/booking-manager/backend/internal/domain"
)

const (
	ViolationOverlap     = "该时间段与其他时间段重叠"
	ViolationEndNotAfter = "结束时间必须晚于开始时间"
)

var hhmmRegexp = regexp.MustCompile(`^([0-9]|0[0-9]|1[0-9]|2[0-3]):[0-5][0-9]$`)

// IsValidHHMM 检查时间字符串是不是合法的 24 小时制 "HH:MM" 格式
func IsValidHHMM(t string) bool {
	return hhmmRegexp.MatchString(t)
}

// AvailabilityViolations 可用时间段的校验结果，key 为时间段在提交列表中的下标，
// value 为该时间段上的所有错误信息。同一个时间段可能同时存在多种错误
type AvailabilityViolations map[int][]string

// ValidateAvailabilities 校验一组可用时间段。
// 对于每一个时间段，检查它是否与同一天的其他时间段重叠（区间为左闭右开，
// 首尾相接不算重叠），以及结束时间是否严格晚于开始时间
func ValidateAvailabilities(availabilities []domain.ScheduleAvailability) AvailabilityViolations {
	violations := make(AvailabilityViolations)

	for i, availability := range availabilities {
		start := TimeToInt(availability.StartTime)
		end := TimeToInt(availability.EndTime)

		for j, other := range availabilities {
			// 同一个时间段不和自己比较，不同天的时间段永远不冲突
			if j == i || other.DayOfWeek != availability.DayOfWeek {
				continue
			}

			if TimeToInt(other.StartTime) < end && TimeToInt(other.EndTime) > start {
				violations[i] = append(violations[i], ViolationOverlap)
				break
			}
		}

		if start >= end {
			violations[i] = append(violations[i], ViolationEndNotAfter)
		}
	}

	return violations
}
