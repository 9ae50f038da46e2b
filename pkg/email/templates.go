package email

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"
)

//go:embed templates/*
var templateFiles embed.FS

const (
	TemplateVerification = "verification"
	TemplateWelcome      = "welcome"
)

var subjects = map[string]string{
	TemplateVerification: "🌲 Verify Your Email - Join Our Waiting List",
	TemplateWelcome:      "🎉 Welcome! You're Now on Our Waiting List",
}

var (
	htmlTemplates = htmltemplate.Must(htmltemplate.ParseFS(templateFiles, "templates/*.html"))
	textTemplates = texttemplate.Must(texttemplate.ParseFS(templateFiles, "templates/*.txt"))
)

// TemplateData is the set of values the email templates may reference.
type TemplateData struct {
	Email            string
	VerificationLink string
	Position         int
}

// Render builds a complete message for the named template.
func Render(name string, to string, data TemplateData) (SendEmailInput, error) {
	subject, ok := subjects[name]
	if !ok {
		return SendEmailInput{}, fmt.Errorf("unknown email template %q", name)
	}

	input := SendEmailInput{To: to, Subject: subject}

	var buf bytes.Buffer
	if err := htmlTemplates.ExecuteTemplate(&buf, name+".html", data); err != nil {
		return SendEmailInput{}, fmt.Errorf("email html data injection failed: %w", err)
	}
	input.HTMLBody = buf.String()

	buf.Reset()
	if err := textTemplates.ExecuteTemplate(&buf, name+".txt", data); err != nil {
		return SendEmailInput{}, fmt.Errorf("email text data injection failed: %w", err)
	}
	input.TextBody = buf.String()

	return input, nil
}
