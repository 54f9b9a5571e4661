package domain

// MailMessage is one record of the write-only mail queue. An external
// dispatcher consumes the queue; the ledger only appends and never
// observes delivery.
type MailMessage struct {
	To      string
	Subject string
	HTML    string
	Text    string
}
