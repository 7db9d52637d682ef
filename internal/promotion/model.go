package promotion

// Promotion is one running promotion. ID comes from the record itself and is
// used by the client as DOM identity.
type Promotion struct {
	Name        string `json:"name"`
	OldPrice    string `json:"oldprice"`
	Price       string `json:"price"`
	Description string `json:"description"`
	ID          string `json:"id"`
}
