package handler

import (
	"net/http"

	"github.com/sysu-ecnc-dev/booking-manager/backend/internal/domain"
)

func (h *Handler) GetMyEvents(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	events, err := h.repository.GetEventsByUserID(myInfo.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取会议类型列表成功", events)
}

func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	var req struct {
		Name              string  `json:"name" validate:"required"`
		Description       *string `json:"description"`
		DurationInMinutes int32   `json:"durationInMinutes" validate:"required,gte=1,lte=720"`
		IsActive          *bool   `json:"isActive"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	event := &domain.Event{
		Name:              req.Name,
		Description:       req.Description,
		DurationInMinutes: req.DurationInMinutes,
		UserID:            myInfo.ID,
		IsActive:          true,
	}
	if req.IsActive != nil {
		event.IsActive = *req.IsActive
	}

	if err := h.repository.CreateEvent(event); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "创建会议类型成功", event)
}

func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	event := r.Context().Value(EventCtx).(*domain.Event)

	h.successResponse(w, r, "获取会议类型成功", event)
}

func (h *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	event := r.Context().Value(EventCtx).(*domain.Event)

	var req struct {
		Name              *string `json:"name"`
		Description       *string `json:"description"`
		DurationInMinutes *int32  `json:"durationInMinutes" validate:"omitempty,gte=1,lte=720"`
		IsActive          *bool   `json:"isActive"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.Name != nil {
		event.Name = *req.Name
	}
	if req.Description != nil {
		event.Description = req.Description
	}
	if req.DurationInMinutes != nil {
		event.DurationInMinutes = *req.DurationInMinutes
	}
	if req.IsActive != nil {
		event.IsActive = *req.IsActive
	}

	if err := h.repository.UpdateEvent(event); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "更新会议类型成功", event)
}

func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	event := r.Context().Value(EventCtx).(*domain.Event)

	if err := h.repository.DeleteEvent(event.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "删除会议类型成功", nil)
}
