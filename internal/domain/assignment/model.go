package assignment

// DoctorAssignment links a patient to a treating doctor. The listing view
// carries the joined names so the caller does not need extra lookups.
type DoctorAssignment struct {
	ID             int64  `db:"id" json:"id"`
	PatientID      int64  `db:"patient_id" json:"patient_id"`
	DoctorID       int64  `db:"doctor_id" json:"doctor_id"`
	AssignmentDate string `db:"assignment_date" json:"assignment_date"`
	Reason         string `db:"reason" json:"reason"`
	PatientName    string `db:"patient_name" json:"patient_name,omitempty"`
	DoctorName     string `db:"doctor_name" json:"doctor_name,omitempty"`
}

// NurseAssignment links a patient to a nurse for a shift.
type NurseAssignment struct {
	ID               int64  `db:"id" json:"id"`
	PatientID        int64  `db:"patient_id" json:"patient_id"`
	NurseID          int64  `db:"nurse_id" json:"nurse_id"`
	AssignmentDate   string `db:"assignment_date" json:"assignment_date"`
	Shift            string `db:"shift" json:"shift"`
	Responsibilities string `db:"responsibilities" json:"responsibilities"`
	PatientName      string `db:"patient_name" json:"patient_name,omitempty"`
	NurseName        string `db:"nurse_name" json:"nurse_name,omitempty"`
}
