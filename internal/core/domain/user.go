package domain

import "time"

// User models a registered platform account.
type User struct {
	ID           string    `json:"_id"`
	UserName     string    `json:"userName"`
	Email        string    `json:"email"`
	PhoneNumber  string    `json:"phoneNumber"`
	EmployeeID   string    `json:"employeeId"`
	CreatorName  string    `json:"creatorName"`
	Profession   string    `json:"profession"`
	Biography    string    `json:"biography"`
	PasswordHash string    `json:"-"`
	RefreshToken string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Sanitized returns a copy without credential material.
func (u *User) Sanitized() *User {
	if u == nil {
		return nil
	}
	clean := *u
	clean.PasswordHash = ""
	clean.RefreshToken = ""
	return &clean
}
