package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates every route handler the server exposes so
// route registration stays in one place.
type HandlerBundle struct {
	// Catalog endpoints.
	ListServicesHandler gin.HandlerFunc
	ListStaffHandler    gin.HandlerFunc

	// Booking flow endpoints.
	InitiateSession    gin.HandlerFunc
	GetSession         gin.HandlerFunc
	SelectService      gin.HandlerFunc
	SelectStaff        gin.HandlerFunc
	SelectDateTime     gin.HandlerFunc
	SetContactDetails  gin.HandlerFunc
	AdvanceSession     gin.HandlerFunc
	BackSession        gin.HandlerFunc
	GetSlotGrid        gin.HandlerFunc
	ConfirmBooking     gin.HandlerFunc
	AcknowledgeOutcome gin.HandlerFunc
	CancelSession      gin.HandlerFunc

	// Staff endpoints.
	StaffLoginHandler     gin.HandlerFunc
	StaffDashboardHandler gin.HandlerFunc
}
