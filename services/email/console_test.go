package emailsvc

import (
	"bytes"
	"log"
	"net/mail"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/tutordesk/core"
)

func TestConsoleService_SendMessages(t *testing.T) {
	out := new(bytes.Buffer)
	conf := &core.Config{AppName: "Tutordesk", DefaultFromEmail: mail.Address{Name: "Tutordesk", Address: "noreply@test.test"}}
	svc := NewConsoleService(log.New(out, "", 0), conf)

	withAttachment := &core.EmailMessage{
		To:      []mail.Address{{Name: "Sarah Tan", Address: "sarah@test.test"}},
		Subject: "Lesson confirmed",
		BodyStr: "See you there",
	}
	withAttachment.Attach([]byte("BEGIN:VCALENDAR"), "lesson.ics", "text/calendar")
	noRecipient := &core.EmailMessage{Subject: "Lost", BodyStr: "nobody"}

	svc.SendMessages(withAttachment, noRecipient)

	require.Eventually(t, func() bool { return len(svc.SentMessages()) == 1 }, time.Second, 10*time.Millisecond)
	sent := svc.SentMessages()[0]
	assert.Equal(t, "Lesson confirmed", sent.Subject)
	assert.Equal(t, "See you there", sent.TextContent)

	printed := out.String()
	assert.Contains(t, printed, "Subject: [Tutordesk] Lesson confirmed")
	assert.Contains(t, printed, `To: "Sarah Tan" <sarah@test.test>`)
	assert.Contains(t, printed, "filename=lesson.ics")
}

func TestNewService(t *testing.T) {
	_, ok := NewService(nil, nil, &core.Config{Debug: true, SendgridAPIKey: "key"}).(*consoleService)
	assert.True(t, ok)

	_, ok = NewService(nil, nil, &core.Config{}).(*consoleService)
	assert.True(t, ok)

	_, ok = NewService(nil, nil, &core.Config{SendgridAPIKey: "key"}).(*sendgridService)
	assert.True(t, ok)
}
