package models

import "time"

// Alumni is an archived student record created when a student graduates.
// Graduation removes the student row (and, by cascade, its fee history).
type Alumni struct {
	RollNo        int        `json:"roll_no"`
	Name          string     `json:"name"`
	Grade         int        `json:"grade"`
	FatherName    string     `json:"father_name"`
	Contact       string     `json:"contact"`
	DOB           *time.Time `json:"dob,omitempty"`
	AdmissionDate *time.Time `json:"admission_date,omitempty"`
	Address       string     `json:"address"`
	GraduatedOn   time.Time  `json:"graduated_on"`
}
