package forms

import (
	"strings"

	"github.com/mmynk/splitdesk/internal/models"
)

type userForm struct {
	Name      string `label:"Name" validate:"required,max=50"`
	Email     string `label:"Email" validate:"required,email,max=100"`
	ContactNo string `label:"Contact number" validate:"max=20"`
}

// ValidateUser checks a user update: name required (at most 50 characters),
// email required and well-formed (at most 100), contact number at most 20.
func ValidateUser(u models.UserUpdate) error {
	form := userForm{
		Name:  strings.TrimSpace(u.Name),
		Email: strings.TrimSpace(u.Email),
	}
	if u.ContactNo != nil {
		form.ContactNo = strings.TrimSpace(*u.ContactNo)
	}
	return check(form).errOrNil()
}
