package handlers

import (
	"errors"
	"net/http"

	"barberbook/middleware"
	"barberbook/services/staff"
	"barberbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StaffHandler exposes the staff login and dashboard.
type StaffHandler struct {
	Service staff.StaffService
	Logger  *zap.Logger
}

func NewStaffHandler(service staff.StaffService, logger *zap.Logger) *StaffHandler {
	return &StaffHandler{Service: service, Logger: logger}
}

// Login authenticates a barber and returns a bearer token.
func (h *StaffHandler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	token, member, err := h.Service.Authenticate(input.Email, input.Password)
	if errors.Is(err, staff.ErrInvalidCredentials) {
		utils.JSONError(c, http.StatusUnauthorized, "invalid email or password", "")
		return
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "login failed", err.Error())
		return
	}

	h.Logger.Info("staff login", zap.String("staffID", member.ID))
	c.JSON(http.StatusOK, gin.H{"token": token, "staff": member})
}

// Dashboard returns the authenticated barber's appointment book.
func (h *StaffHandler) Dashboard(c *gin.Context) {
	staffID := c.GetString(middleware.ContextStaffIDKey)
	if staffID == "" {
		utils.JSONError(c, http.StatusUnauthorized, "missing staff identity", "")
		return
	}

	dash, err := h.Service.Dashboard(c.Request.Context(), staffID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load dashboard", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"dashboard": dash})
}
