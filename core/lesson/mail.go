package lesson

import (
	htmltmpl "html/template"
	"net/mail"
	"strings"
	"time"

	"github.com/trezcool/tutordesk/core"
)

const mailDateLayout = "Monday 2 January 2006, 15:04"

var takenTemplate = htmltmpl.Must(htmltmpl.New("taken").Parse(`<p>Hi {{.Tutor}},</p>
<p>You are now confirmed for <strong>{{.Subject}}</strong> on {{.Date}}.</p>
{{if .Students}}<p>Students: {{.Students}}</p>{{end}}
<p>The attached invite adds the lesson to your calendar.</p>`))

type takenData struct {
	Tutor    string
	Subject  string
	Date     string
	Students string
}

// NewTakenMessage builds the confirmation sent to a tutor who claimed l.
// The lesson is attached as an iCalendar invite.
func NewTakenMessage(l Lesson, to mail.Address, opts CalendarOptions) *core.EmailMessage {
	data := takenData{
		Tutor:    l.Tutor,
		Subject:  l.Subject,
		Date:     l.Date.Format(mailDateLayout),
		Students: strings.Join(l.Students, ", "),
	}

	var body strings.Builder
	body.WriteString("Hi " + data.Tutor + ",\n\n")
	body.WriteString("You are now confirmed for " + data.Subject + " on " + data.Date + ".\n")
	if data.Students != "" {
		body.WriteString("Students: " + data.Students + "\n")
	}

	msg := &core.EmailMessage{
		To:           []mail.Address{to},
		Subject:      "Lesson confirmed: " + l.Subject,
		BodyStr:      body.String(),
		HTMLTemplate: takenTemplate,
		TemplateData: data,
	}
	msg.Attach([]byte(Calendar([]Lesson{l}, opts, time.Now())), "lesson-"+l.ID+".ics", "text/calendar")
	return msg
}
