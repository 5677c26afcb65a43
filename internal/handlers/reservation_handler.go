package handlers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/table-reservations/internal/domain/reservation"
	"github.com/BruksfildServices01/table-reservations/internal/dto"
	"github.com/BruksfildServices01/table-reservations/internal/httperr"
	"github.com/BruksfildServices01/table-reservations/internal/httpresp"
	ucReservation "github.com/BruksfildServices01/table-reservations/internal/usecase/reservation"
)

// ======================================================
// HANDLER
// ======================================================

type ReservationHandler struct {
	uc  ucReservation.UseCases
	loc *time.Location
}

func NewReservationHandler(uc ucReservation.UseCases, loc *time.Location) *ReservationHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &ReservationHandler{uc: uc, loc: loc}
}

// ======================================================
// WRITE
// ======================================================

func (h *ReservationHandler) Create(c *gin.Context) {
	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	day, err := domain.ParseDate(req.Date, h.loc)
	if err != nil {
		respondError(c, "create", err)
		return
	}

	r, err := h.uc.Create.Execute(c.Request.Context(), ucReservation.CreateReservationInput{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Date:        day,
		Time:        req.Time,
		Guests:      *req.Guests,
	})
	if err != nil {
		respondError(c, "create", err)
		return
	}

	httpresp.Created(c, r, "Reservation created successfully")
}

func (h *ReservationHandler) Update(c *gin.Context) {
	var p dto.IDParam
	if err := c.ShouldBindUri(&p); err != nil {
		bindFailed(c, err)
		return
	}

	var req dto.UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}
	if req.IsEmpty() {
		httperr.BadRequest(c, "empty_update", "No update data provided")
		return
	}

	patch := domain.Patch{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Time:        req.Time,
		Guests:      req.Guests,
	}
	if req.Date != nil {
		day, err := domain.ParseDate(*req.Date, h.loc)
		if err != nil {
			respondError(c, "update", err)
			return
		}
		patch.Date = &day
	}

	r, err := h.uc.Update.Execute(c.Request.Context(), p.ID, patch)
	if err != nil {
		respondError(c, "update", err)
		return
	}

	httpresp.OK(c, r, "Reservation updated successfully")
}

func (h *ReservationHandler) UpdateStatus(c *gin.Context) {
	var p dto.IDParam
	if err := c.ShouldBindUri(&p); err != nil {
		bindFailed(c, err)
		return
	}

	var req dto.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	r, err := h.uc.UpdateStatus.Execute(c.Request.Context(), p.ID, domain.Status(req.Status))
	if err != nil {
		respondError(c, "update status", err)
		return
	}

	httpresp.OK(c, r, "Reservation status updated successfully")
}

func (h *ReservationHandler) Delete(c *gin.Context) {
	var p dto.IDParam
	if err := c.ShouldBindUri(&p); err != nil {
		bindFailed(c, err)
		return
	}

	r, err := h.uc.Delete.Execute(c.Request.Context(), p.ID)
	if err != nil {
		respondError(c, "delete", err)
		return
	}

	httpresp.OK(c, r, "Reservation deleted successfully")
}

// ======================================================
// READ
// ======================================================

func (h *ReservationHandler) List(c *gin.Context) {
	rs, err := h.uc.List.Execute(c.Request.Context())
	if err != nil {
		respondError(c, "list", err)
		return
	}

	httpresp.List(c, rs, "Reservations retrieved successfully")
}

func (h *ReservationHandler) Get(c *gin.Context) {
	var p dto.IDParam
	if err := c.ShouldBindUri(&p); err != nil {
		bindFailed(c, err)
		return
	}

	r, err := h.uc.Get.Execute(c.Request.Context(), p.ID)
	if err != nil {
		respondError(c, "get", err)
		return
	}

	httpresp.OK(c, r, "Reservation retrieved successfully")
}

func (h *ReservationHandler) ListByDate(c *gin.Context) {
	var p dto.DateParam
	if err := c.ShouldBindUri(&p); err != nil {
		bindFailed(c, err)
		return
	}

	day, err := domain.ParseDate(p.Date, h.loc)
	if err != nil {
		respondError(c, "list by date", err)
		return
	}

	rs, err := h.uc.ListByDate.Execute(c.Request.Context(), day)
	if err != nil {
		respondError(c, "list by date", err)
		return
	}

	httpresp.List(c, rs, "Reservations retrieved successfully")
}

func (h *ReservationHandler) ListByStatus(c *gin.Context) {
	var p dto.StatusParam
	if err := c.ShouldBindUri(&p); err != nil {
		bindFailed(c, err)
		return
	}

	rs, err := h.uc.ListByStatus.Execute(c.Request.Context(), domain.Status(p.Status))
	if err != nil {
		respondError(c, "list by status", err)
		return
	}

	httpresp.List(c, rs, "Reservations retrieved successfully")
}

func (h *ReservationHandler) CheckAvailability(c *gin.Context) {
	var req dto.CheckAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	day, err := domain.ParseDate(req.Date, h.loc)
	if err != nil {
		respondError(c, "check availability", err)
		return
	}

	a, err := h.uc.CheckAvailability.Execute(c.Request.Context(), day, req.Time)
	if err != nil {
		respondError(c, "check availability", err)
		return
	}

	httpresp.OK(c, a, fmt.Sprintf("Time slot is available. %d slots remaining.", a.RemainingSlots))
}
