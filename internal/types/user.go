package types

// User is read-only from this service's point of view: rows are seeded
// directly in the database, there is no management endpoint.
type User struct {
	ID       int    `json:"id" db:"id"`
	Username string `json:"username" db:"username"`
	Password string `json:"-" db:"password"`
}
