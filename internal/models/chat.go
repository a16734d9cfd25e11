package models

// ChatSummary pairs a conversation partner with the text of the most recent
// message exchanged with them. Conversations are derived from the messages
// table per request; there is no persisted chat entity.
type ChatSummary struct {
	User        UserSummary `json:"user"`
	LastMessage string      `json:"last_message"`
}
