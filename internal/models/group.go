package models

// Group is a set of users sharing expenses.
type Group struct {
	// GroupID is the backend-assigned identifier.
	GroupID int64 `json:"groupId"`

	// Name is the display name of the group (e.g., "Roommates").
	Name string `json:"name"`

	// CreatedAt is when the group was created.
	CreatedAt Timestamp `json:"createdAt"`

	// Members are the users currently in the group.
	Members []User `json:"members"`
}

// Member returns the member with the given id, or nil.
func (g *Group) Member(userID int64) *User {
	for i := range g.Members {
		if g.Members[i].UserID == userID {
			return &g.Members[i]
		}
	}
	return nil
}
