package domain

// Project always belongs to exactly one client. EndDate must be strictly
// after the save-time date; UpdatedDeadline, when set, must be strictly
// after the date it is set on. Employees reference the project from their
// side only.
type Project struct {
	ID              string `json:"projectId" bson:"_id,omitempty"`
	ProjectName     string `json:"projectName" bson:"project_name"`
	StartDate       Date   `json:"startDate" bson:"start_date"`
	EndDate         Date   `json:"endDate" bson:"end_date"`
	UpdatedDeadline *Date  `json:"updatedDeadline,omitempty" bson:"updated_deadline,omitempty"`
	ClientID        string `json:"clientId" bson:"client_id"`
}
