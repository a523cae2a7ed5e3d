package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/sysu-ecnc-dev/booking-manager/backend/internal/domain"
	"github.com/sysu-ecnc-dev/booking-manager/backend/internal/utils"
)

func (h *Handler) GetMySchedule(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	schedule, err := h.repository.GetScheduleByUserID(myInfo.ID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			// 还没保存过日程不算错误，返回空让前端展示空白的编辑表单
			h.successResponse(w, r, "尚未设置日程", nil)
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "获取日程成功", schedule)
}

func (h *Handler) SaveMySchedule(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	var req struct {
		Timezone       string `json:"timezone" validate:"required,timezone"`
		Availabilities []struct {
			DayOfWeek string `json:"dayOfWeek" validate:"required,oneof=monday tuesday wednesday thursday friday saturday sunday"`
			StartTime string `json:"startTime" validate:"required,hhmm"`
			EndTime   string `json:"endTime" validate:"required,hhmm"`
		} `json:"availabilities" validate:"dive"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	schedule := &domain.Schedule{
		UserID:         myInfo.ID,
		Timezone:       req.Timezone,
		Availabilities: make([]domain.ScheduleAvailability, 0, len(req.Availabilities)),
	}

	for _, availability := range req.Availabilities {
		schedule.Availabilities = append(schedule.Availabilities, domain.ScheduleAvailability{
			DayOfWeek: domain.DayOfWeek(availability.DayOfWeek),
			StartTime: availability.StartTime,
			EndTime:   availability.EndTime,
		})
	}

	// 校验各时间段是否重叠、结束时间是否晚于开始时间，把所有错误按下标一次性返回
	if violations := utils.ValidateAvailabilities(schedule.Availabilities); len(violations) > 0 {
		h.writeJSON(w, r, http.StatusOK, Response{
			Success: false,
			Message: "提交的可用时间段不合法",
			Data:    violations,
		})
		return
	}

	if err := h.repository.UpsertSchedule(schedule); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "保存日程成功", schedule)
}
