package auth

// Staff roles. STAFF runs the ordering dashboard; ADMIN additionally
// manages the catalog, offers and announcements.
const (
	RoleStaff = "STAFF"
	RoleAdmin = "ADMIN"
)

// User is a staff account. Customers order anonymously and never
// appear here.
type User struct {
	ID       string
	Name     string
	Email    string
	Password string // bcrypt hash
	Role     string
}
