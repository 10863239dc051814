package models

import "time"

type Teacher struct {
	ID            int        `json:"id"`
	Name          string     `json:"name"`
	Contact       string     `json:"contact"`
	CNIC          string     `json:"cnic"`
	Qualification string     `json:"qualification"`
	Pay           float64    `json:"pay"`
	JoiningDate   *time.Time `json:"joining_date,omitempty"`
	Enrolled      bool       `json:"enrolled"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// CreateTeacherRequest represents the request body for hiring a teacher
type CreateTeacherRequest struct {
	Name          string  `json:"name" validate:"required"`
	Contact       string  `json:"contact"`
	CNIC          string  `json:"cnic"`
	Qualification string  `json:"qualification"`
	Pay           float64 `json:"pay" validate:"gte=0"`
	JoiningDate   string  `json:"joining_date,omitempty"` // YYYY-MM-DD
}

// UpdateTeacherRequest represents the request body for updating a teacher
type UpdateTeacherRequest struct {
	Name          string  `json:"name" validate:"required"`
	Contact       string  `json:"contact"`
	CNIC          string  `json:"cnic"`
	Qualification string  `json:"qualification"`
	Pay           float64 `json:"pay" validate:"gte=0"`
	Enrolled      bool    `json:"enrolled"`
}
