package loyalty

// Signup is one loyalty program member. ID is assigned by the service so
// every persisted record carries its own identifier.
type Signup struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}
