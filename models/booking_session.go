package models

// WizardStep is one state of the booking flow state machine.
type WizardStep string

const (
	StepSelectService  WizardStep = "SelectService"
	StepSelectStaff    WizardStep = "SelectStaff"
	StepSelectDateTime WizardStep = "SelectDateTime"
	StepConfirmDetails WizardStep = "ConfirmDetails"
	StepCommitted      WizardStep = "Committed"
	StepRejected       WizardStep = "Rejected"
)

// Terminal reports whether the step ends the flow.
func (s WizardStep) Terminal() bool {
	return s == StepCommitted || s == StepRejected
}

// BookingSession is the in-progress draft held across wizard steps.
// It lives in the session store until the flow reaches a terminal
// state and the client acknowledges the outcome; it is never written
// to the ledger.
type BookingSession struct {
	SessionID string     `json:"sessionId"`
	Step      WizardStep `json:"step"`

	Service *Service `json:"service,omitempty"`
	Staff   *Staff   `json:"staff,omitempty"`
	Date    string   `json:"date,omitempty"`  // "YYYY-MM-DD"
	Start   string   `json:"start,omitempty"` // "HH:MM"

	ClientName  string `json:"clientName,omitempty"`
	ClientEmail string `json:"clientEmail,omitempty"`
	ClientPhone string `json:"clientPhone,omitempty"`

	// Outcome of the terminal step.
	Appointment  *Appointment `json:"appointment,omitempty"`
	RejectReason string       `json:"rejectReason,omitempty"`
}

// SlotStatus drives the rendering of one slot button.
type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotSelected  SlotStatus = "selected"
	SlotOccupied  SlotStatus = "occupied"
)

// SlotView pairs a slot time with its rendering status.
type SlotView struct {
	Time   string     `json:"time"`
	Status SlotStatus `json:"status"`
}

// ReminderPayload is the queued reminder task body.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	StaffID       string `json:"staffId"`
	ClientName    string `json:"clientName"`
	ClientEmail   string `json:"clientEmail"`
	Date          string `json:"date"`
	Start         string `json:"start"`
	ServiceName   string `json:"serviceName"`
}
