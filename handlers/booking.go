package handlers

import (
	"errors"
	"net/http"

	"barberbook/services/booking"
	"barberbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking wizard over HTTP.
type BookingHandler struct {
	Service booking.BookingFlowService
	Logger  *zap.Logger
}

func NewBookingHandler(service booking.BookingFlowService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: service, Logger: logger}
}

// respondFlowError translates service errors into HTTP responses.
func respondFlowError(c *gin.Context, err error) {
	var flowErr *booking.FlowError
	switch {
	case errors.Is(err, booking.ErrSessionNotFound):
		utils.JSONError(c, http.StatusNotFound, "booking session not found or expired", "")
	case errors.As(err, &flowErr):
		status := http.StatusBadRequest
		if flowErr.Code == booking.CodeSlotUnavailable {
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"error": flowErr.Message, "code": flowErr.Code})
	default:
		utils.JSONError(c, http.StatusInternalServerError, "booking flow error", err.Error())
	}
}

// ListServices returns the service catalogue.
func (h *BookingHandler) ListServices(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"services": booking.Services()})
}

// ListStaff returns the barber roster.
func (h *BookingHandler) ListStaff(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"staff": booking.StaffMembers()})
}

// InitiateSession starts a fresh wizard draft.
func (h *BookingHandler) InitiateSession(c *gin.Context) {
	session, err := h.Service.InitiateSession(c.Request.Context())
	if err != nil {
		respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// GetSession returns the current draft state.
func (h *BookingHandler) GetSession(c *gin.Context) {
	session, err := h.Service.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// SelectService records the service choice.
func (h *BookingHandler) SelectService(c *gin.Context) {
	var input struct {
		ServiceID string `json:"serviceId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Service.SelectService(c.Request.Context(), c.Param("sessionID"), input.ServiceID)
	if err != nil {
		respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// SelectStaff records the barber choice.
func (h *BookingHandler) SelectStaff(c *gin.Context) {
	var input struct {
		StaffID string `json:"staffId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Service.SelectStaff(c.Request.Context(), c.Param("sessionID"), input.StaffID)
	if err != nil {
		respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// SelectDateTime records the date and, optionally, the start time.
func (h *BookingHandler) SelectDateTime(c *gin.Context) {
	var input struct {
		Date string `json:"date" binding:"required"`
		Time string `json:"time"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Service.SelectDateTime(c.Request.Context(), c.Param("sessionID"), input.Date, input.Time)
	if err != nil {
		respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// SetContactDetails records the client contact fields.
func (h *BookingHandler) SetContactDetails(c *gin.Context) {
	var input struct {
		Name  string `json:"clientName" binding:"required"`
		Email string `json:"clientEmail" binding:"required"`
		Phone string `json:"clientPhone" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Service.SetContactDetails(c.Request.Context(), c.Param("sessionID"), input.Name, input.Email, input.Phone)
	if err != nil {
		respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// AdvanceSession moves the wizard forward one step.
func (h *BookingHandler) AdvanceSession(c *gin.Context) {
	session, err := h.Service.Advance(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// BackSession moves the wizard back one step.
func (h *BookingHandler) BackSession(c *gin.Context) {
	session, err := h.Service.Back(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// GetSlotGrid returns the day's slots with their rendering status.
func (h *BookingHandler) GetSlotGrid(c *gin.Context) {
	slots, err := h.Service.SlotGrid(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

// ConfirmBooking finalizes the draft. The outcome is carried in the
// session's terminal step rather than an HTTP error: a rejected booking
// is a valid flow result, not a transport failure.
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	session, err := h.Service.ConfirmBooking(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// AcknowledgeOutcome discards a finished draft.
func (h *BookingHandler) AcknowledgeOutcome(c *gin.Context) {
	if err := h.Service.AcknowledgeOutcome(c.Request.Context(), c.Param("sessionID")); err != nil {
		respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// CancelSession discards an in-progress draft.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	if err := h.Service.CancelSession(c.Request.Context(), c.Param("sessionID")); err != nil {
		respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
