package utils

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestGenerateRandomUser(t *testing.T) {
	user, err := GenerateRandomUser("test-password", "example.com")
	if err != nil {
		t.Fatalf("GenerateRandomUser failed: %v", err)
	}

	if user.Username == "" || user.FullName == "" {
		t.Errorf("expected non-empty username and full name, got %q / %q", user.Username, user.FullName)
	}
	if !strings.HasSuffix(user.Email, "@example.com") {
		t.Errorf("expected email in example.com domain, got %q", user.Email)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("test-password")); err != nil {
		t.Errorf("password hash does not match the given password: %v", err)
	}
}

func TestGenerateRandomOTP(t *testing.T) {
	for i := 0; i < 100; i++ {
		otp := GenerateRandomOTP()
		if len(otp) != 6 {
			t.Fatalf("expected 6-digit OTP, got %q", otp)
		}
		for _, c := range otp {
			if c < '0' || c > '9' {
				t.Fatalf("expected only digits in OTP, got %q", otp)
			}
		}
	}
}

func TestGenerateRandomPassword(t *testing.T) {
	password := GenerateRandomPassword(12)
	if len([]rune(password)) != 12 {
		t.Errorf("expected password of length 12, got %q", password)
	}
}

func TestGenerateRandomEvent(t *testing.T) {
	event := GenerateRandomEvent(42)

	if event.Name == "" {
		t.Error("expected non-empty event name")
	}
	if event.DurationInMinutes <= 0 {
		t.Errorf("expected positive duration, got %d", event.DurationInMinutes)
	}
	if event.UserID != 42 {
		t.Errorf("expected user id 42, got %d", event.UserID)
	}
}

func TestGenerateRandomSchedule_AlwaysValid(t *testing.T) {
	// 随机生成的日程必须能通过可用时间段的校验
	for i := 0; i < 100; i++ {
		schedule := GenerateRandomSchedule(1)

		for _, availability := range schedule.Availabilities {
			if !IsValidHHMM(availability.StartTime) || !IsValidHHMM(availability.EndTime) {
				t.Fatalf("generated availability with malformed time: %+v", availability)
			}
		}

		if violations := ValidateAvailabilities(schedule.Availabilities); len(violations) != 0 {
			t.Fatalf("generated schedule with violations: %v (%+v)", violations, schedule.Availabilities)
		}
	}
}
