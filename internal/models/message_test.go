package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClockTime(t *testing.T) {
	cases := []struct {
		name string
		ts   string
		want string
	}{
		{"microsecond fraction", "2024-05-01T13:07:22.123456", "13:07"},
		{"stored layout", "2024-05-01T09:05:00.000000000", "09:05"},
		{"no fraction", "2024-05-01T23:59:59", "23:59"},
		{"with zone", "2024-05-01T13:07:22.123456789+03:00", "13:07"},
		{"garbage long enough", "XXXXXXXXXXX07:30XXXX", "07:30"},
		{"too short", "nope", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ClockTime(tc.ts))
		})
	}
}

func TestMessageView(t *testing.T) {
	m := Message{Sender: "alexey", Receiver: "maria", Text: "privet", Timestamp: "2024-05-01T13:07:22.123456"}
	view := m.View()
	assert.Equal(t, "alexey", view.Sender)
	assert.Equal(t, "maria", view.Receiver)
	assert.Equal(t, "privet", view.Text)
	assert.Equal(t, "13:07", view.Time)
}

func TestNewTimestampMatchesStoredLayout(t *testing.T) {
	ts := NewTimestamp()
	assert.Len(t, ts, len(TimestampLayout))
	assert.NotEmpty(t, ClockTime(ts))
}

func TestUserSummaryHidesPassword(t *testing.T) {
	u := User{ID: "1", Username: "alexey", Password: "123456"}
	s := u.Summary()
	assert.Equal(t, "alexey", s.Username)
	assert.Equal(t, DefaultAvatar, s.Avatar)
}
