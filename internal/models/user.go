package models

// User is a registered member of the expense-split application.
type User struct {
	// UserID is the backend-assigned identifier.
	UserID int64 `json:"userId"`

	// Name is the display name (at most 50 characters).
	Name string `json:"name"`

	// Email is the unique email address (at most 100 characters).
	Email string `json:"email"`

	// ContactNo is an optional phone number (at most 20 characters).
	ContactNo *string `json:"contactNo"`

	// JoinDate is when the user was created.
	JoinDate Timestamp `json:"joinDate"`
}

// Contact returns the contact number or an empty string when unset.
func (u *User) Contact() string {
	if u.ContactNo == nil {
		return ""
	}
	return *u.ContactNo
}

// UserUpdate is the body of PUT /api/users/{id}.
type UserUpdate struct {
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	ContactNo *string `json:"contactNo"`
}
