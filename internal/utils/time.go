package utils

import (
	"strconv"
	"strings"
)

// TimeToInt 把 "H:MM" 或 "HH:MM" 格式的挂钟时间转换为从零点开始的分钟数，方便比较。
// 这里不做时区换算，也不做格式校验，格式由上层的 hhmm 校验规则保证
func TimeToInt(t string) int {
	hourPart, minutePart, _ := strings.Cut(t, ":")
	hours, _ := strconv.Atoi(hourPart)
	minutes, _ := strconv.Atoi(minutePart)
	return hours*60 + minutes
}
