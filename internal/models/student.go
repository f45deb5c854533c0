package models

import "time"

// StudentRole is the coarse permission tier attached to an account.
type StudentRole string

const (
	RoleStudent StudentRole = "student"
	RoleAdmin   StudentRole = "admin"
)

// Student represents a portal account and its academic standing.
type Student struct {
	ID           string      `db:"id"`
	Name         string      `db:"name"`
	Email        string      `db:"email"`
	StudentID    string      `db:"student_id"`
	Major        string      `db:"major"`
	Status       string      `db:"status"`
	GPA          float64     `db:"gpa"`
	Semester     string      `db:"semester"`
	PasswordHash string      `db:"password"`
	Role         StudentRole `db:"role"`
	CreatedAt    time.Time   `db:"created_at"`
}
