package booking

import (
	"fmt"

	"barberbook/models"
)

// Static reference data for the single shop. The catalogue and roster
// are immutable; everything else in the flow consumes them read-only.
var serviceCatalogue = []models.Service{
	{ID: "service1", Name: "Serviço 1", Duration: models.DurationHalfHour, Price: "R$ 25"},
	{ID: "service2", Name: "Serviço 2", Duration: models.DurationOneHour, Price: "R$ 50"},
	{ID: "service3", Name: "Serviço 3", Duration: models.DurationNinetyMins, Price: "R$ 75"},
}

var staffRoster = []models.Staff{
	{ID: "barber1", Name: "Barbeiro 1", Specialty: "Barbas, Cortes Clássicos"},
	{ID: "barber2", Name: "Barbeiro 2", Specialty: "Cortes Modernos"},
	{ID: "barber3", Name: "Barbeiro 3", Specialty: "Barbas, Cortes Clássicos, Cortes Modernos"},
}

// Services returns the full service catalogue.
func Services() []models.Service {
	out := make([]models.Service, len(serviceCatalogue))
	copy(out, serviceCatalogue)
	return out
}

// StaffMembers returns the full barber roster.
func StaffMembers() []models.Staff {
	out := make([]models.Staff, len(staffRoster))
	copy(out, staffRoster)
	return out
}

// ServiceByID looks up a catalogue entry.
func ServiceByID(serviceID string) (*models.Service, error) {
	for _, svc := range serviceCatalogue {
		if svc.ID == serviceID {
			s := svc
			return &s, nil
		}
	}
	return nil, fmt.Errorf("service with ID %s not found", serviceID)
}

// StaffByID looks up a roster entry.
func StaffByID(staffID string) (*models.Staff, error) {
	for _, stf := range staffRoster {
		if stf.ID == staffID {
			s := stf
			return &s, nil
		}
	}
	return nil, fmt.Errorf("staff member with ID %s not found", staffID)
}
