package lesson

import (
	"encoding/base64"
	"net/mail"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTakenMessage(t *testing.T) {
	l := Lesson{
		ID:       "7",
		Date:     time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC),
		Subject:  "History",
		Students: []string{"Hannah Lee", "Ivan Teo"},
		Tutor:    "Sarah Tan",
		Status:   StatusConfirmed,
	}
	to := mail.Address{Name: "Sarah Tan", Address: "sarah@test.test"}

	msg := NewTakenMessage(l, to, CalendarOptions{})
	require.NoError(t, msg.Render())

	assert.Equal(t, []mail.Address{to}, msg.To)
	assert.Equal(t, "Lesson confirmed: History", msg.Subject)
	assert.True(t, msg.HasContent())
	assert.Contains(t, msg.TextContent, "Friday 1 March 2024, 10:00")
	assert.Contains(t, msg.TextContent, "Students: Hannah Lee, Ivan Teo")
	assert.Contains(t, msg.HTMLContent, "<strong>History</strong>")

	require.True(t, msg.HasAttachments())
	at := msg.Attachments[0]
	assert.Equal(t, "lesson-7.ics", at.Filename)
	assert.Equal(t, "text/calendar", at.ContentType)
	ics, err := base64.StdEncoding.DecodeString(at.Content.String())
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(ics), "UID:7@tutordesk"))
}
