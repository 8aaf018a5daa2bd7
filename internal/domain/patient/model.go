package patient

import "time"

// Patient maps to the patients table. The root entity: appointments,
// diagnoses, room and staff assignments, and surgeries all reference it.
type Patient struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Age       int       `db:"age" json:"age"`
	Gender    string    `db:"gender" json:"gender"`
	Phone     string    `db:"phone" json:"phone"`
	Email     string    `db:"email" json:"email"`
	Address   string    `db:"address" json:"address"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// DeleteCheck is the referential guard's verdict for a pending delete.
type DeleteCheck struct {
	Allowed        bool     `json:"allowed"`
	BlockingTables []string `json:"blocking_tables,omitempty"`
}
