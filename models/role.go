package models

// Role is the enumerated permission class assigned to every user account.
// It is embedded into issued tokens and checked by the role gate; it never
// changes after registration (no promotion endpoint exists).
type Role string

const (
	// RoleUser may read everything public and write comments.
	RoleUser Role = "USER"

	// RoleAuthor may additionally create and manage own posts.
	RoleAuthor Role = "AUTHOR"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAuthor
}

// OneOf reports whether r is a member of the given allowed set.
func (r Role) OneOf(allowed ...Role) bool {
	for _, a := range allowed {
		if r == a {
			return true
		}
	}
	return false
}
