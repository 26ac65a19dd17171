// Package templates renders the celebration emails.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"
)

//go:embed *.html *.txt
var templateFS embed.FS

const goalCompleted = "goal_completed"

// GoalCompletedData fills the goal completed email. Accent and Background
// come from the selected theme palette.
type GoalCompletedData struct {
	Title       string
	Emoji       string
	Saved       string
	Target      string
	Celebration string
	Accent      string
	Background  string
}

// Message is an email body in both formats.
type Message struct {
	HTML string
	Text string
}

// Renderer renders the embedded email templates. Every template exists as
// an .html and a .txt file with the same name.
type Renderer struct {
	html *htmltemplate.Template
	text *texttemplate.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	html, err := htmltemplate.ParseFS(templateFS, "*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML templates: %w", err)
	}

	text, err := texttemplate.ParseFS(templateFS, "*.txt")
	if err != nil {
		return nil, fmt.Errorf("failed to parse text templates: %w", err)
	}

	return &Renderer{html: html, text: text}, nil
}

// GoalCompleted renders the celebration for a reached goal.
func (r *Renderer) GoalCompleted(data GoalCompletedData) (Message, error) {
	return r.render(goalCompleted, data)
}

func (r *Renderer) render(name string, data any) (Message, error) {
	var html, text bytes.Buffer

	if err := r.html.ExecuteTemplate(&html, name+".html", data); err != nil {
		return Message{}, fmt.Errorf("failed to render %s.html: %w", name, err)
	}
	if err := r.text.ExecuteTemplate(&text, name+".txt", data); err != nil {
		return Message{}, fmt.Errorf("failed to render %s.txt: %w", name, err)
	}

	return Message{HTML: html.String(), Text: text.String()}, nil
}
