package utils

import (
	"fmt"
	"math/rand"

	"github.com/mozillazg/go-pinyin"
	"github.com/sysu-ecnc-dev/booking-manager/backend/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

var commonSurnames = []string{
	"王", "李", "张", "刘", "陈", "杨", "赵", "黄", "周", "吴",
	"徐", "孙", "胡", "朱", "高", "林", "何", "郭", "马", "罗",
}
var commonNameCharacters = []string{
	"伟", "强", "芳", "敏", "静", "丽", "刚", "杰", "娟", "勇",
	"艳", "涛", "明", "军", "磊", "洋", "勇", "霞", "飞", "玲",
	"超", "华", "平", "辉", "梅", "鑫", "龙", "鹏", "玉", "斌",
	"庆", "建", "丹", "彬", "凤", "旭", "宁", "乐", "成", "欣",
}

func GenerateRandomChineseName() string {
	surname := commonSurnames[rand.Intn(len(commonSurnames))]
	nameLength := rand.Intn(2) + 1
	name := ""

	for i := 0; i < nameLength; i++ {
		name += commonNameCharacters[rand.Intn(len(commonNameCharacters))]
	}
	return surname + name
}

var roles = []domain.Role{
	domain.RoleMember,
	domain.RoleMember,
	domain.RoleMember,
	domain.RoleAdmin,
}

func GenerateRandomRole() domain.Role {
	return roles[rand.Intn(len(roles))]
}

var digits = "0123456789"

func GenerateUsernameFromChineseName(chineseName string) string {
	pinyinArray := pinyin.LazyConvert(chineseName, nil)
	username := ""

	for _, pinyin := range pinyinArray {
		length := rand.Intn(len(pinyin)) + 1
		username += pinyin[:length]
	}

	digitsLength := rand.Intn(3) + 1
	for i := 0; i < digitsLength; i++ {
		username += string(digits[rand.Intn(len(digits))])
	}

	return username
}

func GenerateRandomUser(password string, emailDomainName string) (*domain.User, error) {
	fullName := GenerateRandomChineseName()
	username := GenerateUsernameFromChineseName(fullName)
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: string(passwordHash),
		FullName:     fullName,
		Email:        username + "@" + emailDomainName,
		Role:         GenerateRandomRole(),
	}

	return user, nil
}

func GenerateRandomOTP() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*")

func GenerateRandomPassword(length int) string {
	random_password := make([]rune, length)
	for i := range random_password {
		random_password[i] = letters[rand.Intn(len(letters))]
	}
	return string(random_password)
}

func GenerateRandomID(letterLength int, digitLength int) string {
	random_id := make([]rune, letterLength+digitLength)
	for i := range random_id {
		if i < letterLength {
			random_id[i] = letters[rand.Intn(len(letters))]
		} else {
			random_id[i] = rune(digits[rand.Intn(len(digits))])
		}
	}
	return string(random_id)
}

var eventNames = []string{"产品演示", "技术咨询", "面试沟通", "项目评审", "一对一辅导", "售后回访"}
var eventDurations = []int32{15, 30, 45, 60, 90}

// 随机生成一个会议类型
func GenerateRandomEvent(userID int64) *domain.Event {
	description := "会议描述" + GenerateRandomID(20, 10)

	return &domain.Event{
		Name:              eventNames[rand.Intn(len(eventNames))] + GenerateRandomID(3, 3),
		Description:       &description,
		DurationInMinutes: eventDurations[rand.Intn(len(eventDurations))],
		UserID:            userID,
		IsActive:          rand.Intn(4) != 0,
	}
}

var commonTimezones = []string{
	"Asia/Shanghai", "Asia/Hong_Kong", "Asia/Tokyo", "UTC",
	"America/New_York", "Europe/London",
}

// 随机生成一个每周日程，生成的时间段之间保证不重叠
func GenerateRandomSchedule(userID int64) *domain.Schedule {
	schedule := &domain.Schedule{
		UserID:         userID,
		Timezone:       commonTimezones[rand.Intn(len(commonTimezones))],
		Availabilities: make([]domain.ScheduleAvailability, 0),
	}

	for _, day := range domain.DaysOfWeekInOrder {
		// 一部分天不开放预约
		if rand.Intn(4) == 0 {
			continue
		}

		windowsNum := rand.Intn(3) + 1
		hoursPerWindow := 24 / windowsNum

		for i := 0; i < windowsNum; i++ {
			startHour := i * hoursPerWindow
			endHour := rand.Intn(hoursPerWindow) + startHour

			startMinute := rand.Intn(30)    // 0~29
			endMinute := rand.Intn(30) + 30 // 30~59

			schedule.Availabilities = append(schedule.Availabilities, domain.ScheduleAvailability{
				DayOfWeek: day,
				StartTime: fmt.Sprintf("%02d:%02d", startHour, startMinute),
				EndTime:   fmt.Sprintf("%02d:%02d", endHour, endMinute),
			})
		}
	}

	return schedule
}
