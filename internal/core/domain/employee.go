package domain

// Employee is a staff member. ProjectID is the single optional project
// reference ("on bench" when empty) and is only ever mutated through the
// assign/release operations. UserID links the optional credential record.
type Employee struct {
	ID          string `json:"employeeId" bson:"_id,omitempty"`
	Name        string `json:"name" bson:"name"`
	Email       string `json:"email" bson:"email"`
	Phone       string `json:"phone" bson:"phone"`
	Department  string `json:"department" bson:"department"`
	JoiningDate Date   `json:"joiningDate" bson:"joining_date"`
	ProjectID   string `json:"projectId,omitempty" bson:"project_id,omitempty"`
	UserID      int64  `json:"-" bson:"user_id,omitempty"`
}

// OnBench reports whether the employee has no project assignment.
func (e *Employee) OnBench() bool { return e.ProjectID == "" }
