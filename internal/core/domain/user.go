package domain

// Roles recognised by the authorization layer. Stored verbatim on the user
// record and carried in the JWT role claim.
const (
	RoleAdmin    = "ADMIN"
	RoleEmployee = "EMPLOYEE"
	RoleClient   = "CLIENT"
)

// ValidRole reports whether r is one of the recognised roles.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleEmployee || r == RoleClient
}

// User binds a credential (email + bcrypt digest) to a role. A user is owned
// by at most one Employee or one ContactPerson and is deleted with its owner.
type User struct {
	ID           int64  `json:"id" bson:"_id,omitempty"`
	Email        string `json:"email" bson:"email"`
	PasswordHash string `json:"-" bson:"password_hash"`
	Role         string `json:"role" bson:"role"`
}
