package student

// Student is one enrolled student as recorded in the external store.
// Enrollment happens outside this system; students are read-only here.
type Student struct {
	ID        string `json:"id"` // external record id
	StudentID string `json:"studentId"`
	Name      string `json:"name"`
}
