package core

import (
	"bytes"
	"encoding/base64"
	htmltmpl "html/template"
	"net/mail"
)

type (
	Attachment struct {
		Content     *bytes.Buffer
		ContentType string
		Filename    string
	}

	EmailMessage struct {
		To          []mail.Address
		Cc          []mail.Address
		Bcc         []mail.Address
		Subject     string
		BodyStr     string // simple text/plain, non-templated content
		Attachments []Attachment

		// templated contents
		HTMLTemplate *htmltmpl.Template
		TemplateData interface{}
		TextContent  string
		HTMLContent  string
	}

	// EmailService is any service that can send emails
	EmailService interface {
		// SendMessages sends messages concurrently
		SendMessages(messages ...*EmailMessage)
	}
)

func (m *EmailMessage) Render() error {
	m.TextContent = m.BodyStr
	if m.HTMLTemplate == nil {
		return nil
	}

	var buff bytes.Buffer
	if err := m.HTMLTemplate.Execute(&buff, m.TemplateData); err != nil {
		return err
	}
	m.HTMLContent = buff.String()
	return nil
}

// Attach adds content as an attachment, base64 encoded as mail transports expect.
func (m *EmailMessage) Attach(content []byte, filename, contentType string) {
	buff := new(bytes.Buffer)
	enc := base64.NewEncoder(base64.StdEncoding, buff)
	_, _ = enc.Write(content)
	_ = enc.Close()
	m.Attachments = append(m.Attachments, Attachment{Content: buff, ContentType: contentType, Filename: filename})
}

func (m *EmailMessage) HasRecipients() bool  { return len(m.To) > 0 }
func (m *EmailMessage) HasContent() bool     { return (m.TextContent != "") || (m.HTMLContent != "") }
func (m *EmailMessage) HasAttachments() bool { return len(m.Attachments) > 0 }
