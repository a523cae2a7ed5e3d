package seed

import (
	"log/slog"

	"github.com/sysu-ecnc-dev/booking-manager/backend/internal/config"
	"github.com/sysu-ecnc-dev/booking-manager/backend/internal/domain"
	"github.com/sysu-ecnc-dev/booking-manager/backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

var demoEvents = []struct {
	Name              string
	Description       string
	DurationInMinutes int32
	IsActive          bool
}{
	{"15 分钟快速沟通", "适合简短的问题答疑", 15, true},
	{"30 分钟一对一咨询", "常规的一对一咨询会议", 30, true},
	{"60 分钟深入交流", "需要完整讨论的议题请选择这个类型", 60, true},
	{"90 分钟项目评审", "已停用的旧会议类型", 90, false},
}

// 工作日上午和下午各开放一个时间段
var demoAvailabilities = []domain.ScheduleAvailability{
	{DayOfWeek: domain.DayMonday, StartTime: "09:00", EndTime: "12:00"},
	{DayOfWeek: domain.DayMonday, StartTime: "14:00", EndTime: "18:00"},
	{DayOfWeek: domain.DayTuesday, StartTime: "09:00", EndTime: "12:00"},
	{DayOfWeek: domain.DayTuesday, StartTime: "14:00", EndTime: "18:00"},
	{DayOfWeek: domain.DayWednesday, StartTime: "09:00", EndTime: "12:00"},
	{DayOfWeek: domain.DayThursday, StartTime: "09:00", EndTime: "12:00"},
	{DayOfWeek: domain.DayThursday, StartTime: "14:00", EndTime: "18:00"},
	{DayOfWeek: domain.DayFriday, StartTime: "09:00", EndTime: "12:00"},
}

// SeedDemoData 插入一个演示用户，以及他的会议类型和每周日程
func SeedDemoData(r *repository.Repository, cfg *config.Config) {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(cfg.Seed.User.Password), bcrypt.DefaultCost)
	if err != nil {
		slog.Error("无法生成演示用户密码哈希", "error", err)
		return
	}

	demoUser := &domain.User{
		Username:     "demo",
		PasswordHash: string(passwordHash),
		FullName:     "演示用户",
		Email:        "demo@" + cfg.Email.UserDomain,
		Role:         domain.RoleMember,
	}
	if err := r.CreateUser(demoUser); err != nil {
		slog.Error("无法插入演示用户", "error", err)
		return
	}

	for _, e := range demoEvents {
		description := e.Description
		event := &domain.Event{
			Name:              e.Name,
			Description:       &description,
			DurationInMinutes: e.DurationInMinutes,
			UserID:            demoUser.ID,
			IsActive:          e.IsActive,
		}
		if err := r.CreateEvent(event); err != nil {
			slog.Error("无法插入演示会议类型", "error", err)
			return
		}
	}

	schedule := &domain.Schedule{
		UserID:         demoUser.ID,
		Timezone:       "Asia/Shanghai",
		Availabilities: demoAvailabilities,
	}
	if err := r.UpsertSchedule(schedule); err != nil {
		slog.Error("无法插入演示日程", "error", err)
		return
	}

	slog.Info("插入演示数据成功", "username", demoUser.Username)
}
