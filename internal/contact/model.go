package contact

// Message is a contact form submission. It is persisted as one appended
// plain-text line and never read back.
type Message struct {
	Email string
	Msg   string
}
