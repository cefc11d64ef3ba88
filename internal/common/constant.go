package common

// Logical keys used in the durable key-value store. The session manager is
// the sole writer of all of them.
const (
	// KeyUser holds the JSON of the current user, or is absent when
	// nobody is logged in.
	KeyUser = "user"

	// KeyUsers holds the JSON array of all registered users.
	KeyUsers = "users"

	// KeyPasswords holds a JSON object mapping lowercase email to the
	// encoded credential secret.
	KeyPasswords = "passwords"

	// KeySessionCount holds the login counter as a decimal string.
	KeySessionCount = "user_session_count"
)
