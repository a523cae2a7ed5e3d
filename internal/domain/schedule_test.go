package domain

import "testing"

func TestDayOfWeekIsValid(t *testing.T) {
	for _, day := range DaysOfWeekInOrder {
		if !day.IsValid() {
			t.Errorf("expected %q to be a valid day of week", day)
		}
	}

	for _, day := range []DayOfWeek{"", "funday", "Monday", "MONDAY"} {
		if day.IsValid() {
			t.Errorf("expected %q to be invalid", day)
		}
	}
}

func TestDaysOfWeekInOrder(t *testing.T) {
	if len(DaysOfWeekInOrder) != 7 {
		t.Fatalf("expected 7 days, got %d", len(DaysOfWeekInOrder))
	}
	if DaysOfWeekInOrder[0] != DayMonday || DaysOfWeekInOrder[6] != DaySunday {
		t.Errorf("expected week to start on monday and end on sunday, got %v", DaysOfWeekInOrder)
	}
}
