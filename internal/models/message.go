package models

import (
	"time"
)

// TimestampLayout is the stored timestamp format. Fixed-width fractional seconds
// keep lexicographic order in SQL equal to chronological order.
const TimestampLayout = "2006-01-02T15:04:05.000000000"

// Message is a directed text from one username to another. Sender and receiver
// are not validated against the users table.
type Message struct {
	ID        string `db:"id" json:"id"`
	Sender    string `db:"sender" json:"sender"`
	Receiver  string `db:"receiver" json:"receiver"`
	Text      string `db:"text" json:"text"`
	Timestamp string `db:"timestamp" json:"timestamp"`
}

// MessageView is the wire shape of a message in a conversation listing.
type MessageView struct {
	Sender   string `json:"sender"`
	Receiver string `json:"receiver"`
	Text     string `json:"text"`
	Time     string `json:"time"`
}

// View renders the message with its HH:MM display time.
func (m Message) View() MessageView {
	return MessageView{
		Sender:   m.Sender,
		Receiver: m.Receiver,
		Text:     m.Text,
		Time:     ClockTime(m.Timestamp),
	}
}

// NewTimestamp returns the current UTC time in the stored layout.
func NewTimestamp() string {
	return time.Now().UTC().Format(TimestampLayout)
}

var clockLayouts = []string{
	TimestampLayout,
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

// ClockTime formats the HH:MM display time of a stored timestamp. Rows written
// by older backends may carry variable-width fractions, so several layouts are
// tried before falling back to the raw character slice.
func ClockTime(ts string) string {
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, ts); err == nil {
			return t.Format("15:04")
		}
	}
	if len(ts) >= 16 {
		return ts[11:16]
	}
	return ""
}
