package models

import "time"

// Appointment represents a confirmed booking record. Records are
// append-only; once committed they are never mutated.
type Appointment struct {
	ID              string    `bson:"id" json:"id"`                             // Unique appointment identifier (UUID)
	Date            string    `bson:"date" json:"date"`                         // Booking date in "YYYY-MM-DD" format
	Start           string    `bson:"start" json:"time"`                        // Starting slot in "HH:MM" format
	ServiceID       string    `bson:"service_id" json:"serviceId"`
	ServiceName     string    `bson:"service_name" json:"serviceName"`
	DurationMinutes int       `bson:"duration_minutes" json:"duration"`
	Price           string    `bson:"price" json:"price"`
	StaffID         string    `bson:"staff_id" json:"staffId"`
	StaffName       string    `bson:"staff_name" json:"staffName"`
	ClientName      string    `bson:"client_name" json:"clientName"`
	ClientEmail     string    `bson:"client_email" json:"clientEmail"`
	ClientPhone     string    `bson:"client_phone" json:"clientPhone"`
	CreatedAt       time.Time `bson:"created_at" json:"createdAt"`
}

// OccupancyRecord is the per-(date, staff) set of occupied slot strings.
// It grows monotonically as bookings are committed.
type OccupancyRecord struct {
	Date    string   `bson:"date" json:"date"`
	StaffID string   `bson:"staff_id" json:"staffId"`
	Slots   []string `bson:"slots" json:"slots"`
}
