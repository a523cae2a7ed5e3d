package utils

import (
	"slices"
	"testing"

	"github.com/sysu-ecnc-dev/booking-manager/backend/internal/domain"
)

func TestValidateAvailabilities_EmptyList(t *testing.T) {
	violations := ValidateAvailabilities([]domain.ScheduleAvailability{})
	if len(violations) != 0 {
		t.Errorf("expected no violations for empty list, got %v", violations)
	}
}

func TestValidateAvailabilities_SingleEntry(t *testing.T) {
	availabilities := []domain.ScheduleAvailability{
		{DayOfWeek: domain.DayMonday, StartTime: "09:00", EndTime: "10:00"},
	}

	violations := ValidateAvailabilities(availabilities)
	if len(violations) != 0 {
		t.Errorf("single entry must never conflict with itself, got %v", violations)
	}
}

func TestValidateAvailabilities_TouchingBoundaries(t *testing.T) {
	// 首尾相接不算重叠
	availabilities := []domain.ScheduleAvailability{
		{DayOfWeek: domain.DayMonday, StartTime: "09:00", EndTime: "10:00"},
		{DayOfWeek: domain.DayMonday, StartTime: "10:00", EndTime: "11:00"},
	}

	violations := ValidateAvailabilities(availabilities)
	if len(violations) != 0 {
		t.Errorf("touching boundaries must not be flagged as overlapping, got %v", violations)
	}
}

func TestValidateAvailabilities_StrictOverlap(t *testing.T) {
	availabilities := []domain.ScheduleAvailability{
		{DayOfWeek: domain.DayMonday, StartTime: "09:00", EndTime: "10:30"},
		{DayOfWeek: domain.DayMonday, StartTime: "10:00", EndTime: "11:00"},
	}

	violations := ValidateAvailabilities(availabilities)
	for _, i := range []int{0, 1} {
		if !slices.Contains(violations[i], ViolationOverlap) {
			t.Errorf("expected overlap violation on index %d, got %v", i, violations[i])
		}
	}
}

func TestValidateAvailabilities_DifferentDays(t *testing.T) {
	// 不同天的时间段无论时间如何都不冲突
	availabilities := []domain.ScheduleAvailability{
		{DayOfWeek: domain.DayMonday, StartTime: "09:00", EndTime: "17:00"},
		{DayOfWeek: domain.DayTuesday, StartTime: "09:00", EndTime: "17:00"},
		{DayOfWeek: domain.DayWednesday, StartTime: "10:00", EndTime: "11:00"},
	}

	violations := ValidateAvailabilities(availabilities)
	if len(violations) != 0 {
		t.Errorf("entries on different days must never conflict, got %v", violations)
	}
}

func TestValidateAvailabilities_EndNotAfterStart(t *testing.T) {
	cases := []struct {
		name      string
		startTime string
		endTime   string
	}{
		{"equal", "10:00", "10:00"},
		{"inverted", "11:00", "10:00"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			availabilities := []domain.ScheduleAvailability{
				{DayOfWeek: domain.DayFriday, StartTime: c.startTime, EndTime: c.endTime},
			}

			violations := ValidateAvailabilities(availabilities)
			if !slices.Contains(violations[0], ViolationEndNotAfter) {
				t.Errorf("expected ordering violation, got %v", violations[0])
			}
		})
	}
}

func TestValidateAvailabilities_ZeroLengthDoesNotOverlapNeighbor(t *testing.T) {
	// 起止时间相同的时间段只违反时间顺序规则，
	// 不会和恰好以该时间为边界的相邻时间段判定为重叠
	availabilities := []domain.ScheduleAvailability{
		{DayOfWeek: domain.DayMonday, StartTime: "09:00", EndTime: "10:00"},
		{DayOfWeek: domain.DayMonday, StartTime: "10:00", EndTime: "10:00"},
	}

	violations := ValidateAvailabilities(availabilities)
	if len(violations[0]) != 0 {
		t.Errorf("expected no violations on index 0, got %v", violations[0])
	}
	if slices.Contains(violations[1], ViolationOverlap) {
		t.Errorf("zero length entry must not be flagged as overlapping, got %v", violations[1])
	}
	if !slices.Contains(violations[1], ViolationEndNotAfter) {
		t.Errorf("expected ordering violation on index 1, got %v", violations[1])
	}
}

func TestValidateAvailabilities_BothViolationsOnOneEntry(t *testing.T) {
	// 第一个时间段起止颠倒，同时又和第二个时间段相交，两种错误都要报告
	availabilities := []domain.ScheduleAvailability{
		{DayOfWeek: domain.DayMonday, StartTime: "12:00", EndTime: "10:00"},
		{DayOfWeek: domain.DayMonday, StartTime: "09:00", EndTime: "13:00"},
	}

	violations := ValidateAvailabilities(availabilities)
	if !slices.Contains(violations[0], ViolationOverlap) {
		t.Errorf("expected overlap violation on index 0, got %v", violations[0])
	}
	if !slices.Contains(violations[0], ViolationEndNotAfter) {
		t.Errorf("expected ordering violation on index 0, got %v", violations[0])
	}
}

func TestValidateAvailabilities_CollectsAllViolations(t *testing.T) {
	// 校验需要一次性收集所有时间段上的错误，而不是遇到第一个就停止
	availabilities := []domain.ScheduleAvailability{
		{DayOfWeek: domain.DayMonday, StartTime: "09:00", EndTime: "11:00"},
		{DayOfWeek: domain.DayMonday, StartTime: "10:00", EndTime: "12:00"},
		{DayOfWeek: domain.DayTuesday, StartTime: "15:00", EndTime: "14:00"},
	}

	violations := ValidateAvailabilities(availabilities)
	if len(violations) != 3 {
		t.Fatalf("expected violations on 3 indexes, got %v", violations)
	}
}

func TestIsValidHHMM(t *testing.T) {
	valid := []string{"0:00", "9:30", "09:30", "10:05", "19:59", "23:59"}
	for _, v := range valid {
		if !IsValidHHMM(v) {
			t.Errorf("IsValidHHMM(%q) = false, want true", v)
		}
	}

	invalid := []string{"", "24:00", "12:60", "12:5", "1230", "aa:bb", "9:30:00", "-1:00"}
	for _, v := range invalid {
		if IsValidHHMM(v) {
			t.Errorf("IsValidHHMM(%q) = true, want false", v)
		}
	}
}
