package models

import "strings"

const UsersKey = "users"

// User is a borrower. StudentID is unique across users; the repository does not enforce it.
type User struct {
	ID        string `json:"id"`
	FullName  string `json:"full_name"`
	StudentID string `json:"student_id"`
	Phone     string `json:"phone"`
}

func (User) StoreKey() string { return UsersKey }

func (u User) GetID() string { return u.ID }

// NewUser trims the text fields and checks the required ones. The id is left to the caller.
func NewUser(fullName, studentID, phone string) (User, error) {
	u := User{
		FullName:  strings.TrimSpace(fullName),
		StudentID: strings.TrimSpace(studentID),
		Phone:     strings.TrimSpace(phone),
	}
	if u.FullName == "" {
		return User{}, Invalid(CodeMissingField, "full_name", "full name is required")
	}
	if u.StudentID == "" {
		return User{}, Invalid(CodeMissingField, "student_id", "student id is required")
	}
	return u, nil
}

// Matches reports whether q (already lower-cased) occurs in the name, student id or phone.
func (u User) Matches(q string) bool {
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(u.FullName), q) ||
		strings.Contains(strings.ToLower(u.StudentID), q) ||
		strings.Contains(strings.ToLower(u.Phone), q)
}
