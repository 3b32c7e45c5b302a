package models

// Account is a registered user identity. The password travels on the
// wire in both directions; clients send it to register and login and
// get it echoed back on success.
type Account struct {
	ID       int    `json:"account_id" db:"account_id"`
	Username string `json:"username" db:"username"`
	Password string `json:"password" db:"password"`
}

// Message is a short text post attributed to an account. PostedAt is
// client-supplied epoch milliseconds, not a server timestamp.
type Message struct {
	ID       int    `json:"message_id" db:"message_id"`
	PostedBy int    `json:"posted_by" db:"posted_by"`
	Text     string `json:"message_text" db:"message_text"`
	PostedAt int64  `json:"time_posted_epoch" db:"time_posted_epoch"`
}
