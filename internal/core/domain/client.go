package domain

// Client is a customer company. Contact persons and projects are owned
// records living in their own collections keyed by ClientID; deleting a
// client cascades to both. ContactPersons is assembled for responses and is
// never stored on the client document itself.
type Client struct {
	ID               string          `json:"clientId" bson:"_id,omitempty"`
	CompanyName      string          `json:"companyName" bson:"company_name"`
	RelationshipDate Date            `json:"relationshipDate" bson:"relationship_date"`
	ContactPersons   []ContactPerson `json:"contactPersons,omitempty" bson:"-"`
}

// ContactPerson belongs to exactly one client. Email is unique across all
// contact persons. UserID links the optional credential record, which is
// deleted with the contact.
type ContactPerson struct {
	ID          int64  `json:"id" bson:"_id,omitempty"`
	Name        string `json:"name" bson:"name"`
	Email       string `json:"email" bson:"email"`
	Designation string `json:"designation" bson:"designation"`
	ClientID    string `json:"clientId,omitempty" bson:"client_id"`
	UserID      int64  `json:"-" bson:"user_id,omitempty"`
}
