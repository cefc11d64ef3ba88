package session

// User is a registered account. Created on signup, immutable afterwards,
// never deleted. The JSON tags are load-bearing: they define the encoding
// of the `user` marker and the `users` collection in the store.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
