package clinical

// Diagnosis is a free-text clinical note attached to a patient. The date
// defaults to the day the row is written.
type Diagnosis struct {
	ID            int64  `db:"id" json:"id"`
	PatientID     int64  `db:"patient_id" json:"patient_id"`
	Diagnosis     string `db:"diagnosis" json:"diagnosis"`
	DiagnosisDate string `db:"diagnosis_date" json:"diagnosis_date"`
}
