package staff

import (
	"errors"
	"log"
	"time"

	"barberbook/models"
	"barberbook/services/booking"
	"barberbook/utils"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for any unknown email or wrong
// password; the two cases are deliberately indistinguishable.
var ErrInvalidCredentials = errors.New("invalid email or password")

const tokenDuration = 12 * time.Hour

// Stand-in credential table. This login is a gate for the dashboard,
// not a security boundary; each barber gets a fixed development
// password hashed at startup.
type credential struct {
	staffID      string
	passwordHash []byte
}

var staffCredentials = map[string]credential{
	"barbeiro1@barberbook.app": {staffID: "barber1", passwordHash: mustHash("barber1")},
	"barbeiro2@barberbook.app": {staffID: "barber2", passwordHash: mustHash("barber2")},
	"barbeiro3@barberbook.app": {staffID: "barber3", passwordHash: mustHash("barber3")},
}

func mustHash(password string) []byte {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash staff credential: %v", err)
	}
	return hash
}

// Authenticate checks the stand-in credentials and issues a signed
// token carrying the staff ID.
func (svc *DefaultStaffService) Authenticate(email, password string) (string, *models.Staff, error) {
	cred, ok := staffCredentials[email]
	if !ok {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(cred.passwordHash, []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	member, err := booking.StaffByID(cred.staffID)
	if err != nil {
		return "", nil, err
	}

	token, err := utils.GenerateToken(member.ID, email, tokenDuration)
	if err != nil {
		return "", nil, err
	}
	return token, member, nil
}
