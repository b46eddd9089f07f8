package constants

// Role yang dikenal aplikasi. Disimpan di kolom patron_role dan klaim JWT.
const (
	RolePatron    = "patron"
	RoleLibrarian = "librarian"
)

var AllowedRoles = map[string]bool{
	RolePatron:    true,
	RoleLibrarian: true,
}
