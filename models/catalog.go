package models

// Duration labels recognized by the service catalogue.
const (
	DurationHalfHour   = "30min"
	DurationOneHour    = "1h"
	DurationNinetyMins = "1h30min"
)

// SlotBlockMinutes is the length of one bookable block.
const SlotBlockMinutes = 30

// Service is an immutable catalogue entry.
type Service struct {
	ID       string `bson:"id" json:"id"`
	Name     string `bson:"name" json:"name"`
	Duration string `bson:"duration" json:"duration"` // one of the duration labels above
	Price    string `bson:"price" json:"price"`       // display price, e.g. "R$ 25"
}

// DurationBlocks maps the service's duration label to a count of
// 30-minute blocks. This is the only place the mapping lives;
// unrecognized labels fall back to a single block.
func (s Service) DurationBlocks() int {
	switch s.Duration {
	case DurationHalfHour:
		return 1
	case DurationOneHour:
		return 2
	case DurationNinetyMins:
		return 3
	}
	return 1
}

// DurationMinutes returns the service length in minutes.
func (s Service) DurationMinutes() int {
	return s.DurationBlocks() * SlotBlockMinutes
}

// Staff is an immutable roster entry for one barber.
type Staff struct {
	ID        string `bson:"id" json:"id"`
	Name      string `bson:"name" json:"name"`
	Specialty string `bson:"specialty" json:"specialty"`
}
