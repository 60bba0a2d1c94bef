// Package templates renders outbox emails from the embedded templates.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"

	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
)

//go:embed *.html *.txt
var templateFS embed.FS

// Renderer holds the parsed HTML and plain text templates. Each kind has a
// <kind>.html and <kind>.txt pair.
type Renderer struct {
	html *htmltemplate.Template
	text *texttemplate.Template
}

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

// Render decodes the job payload for its kind and executes both templates.
func (r *Renderer) Render(job *entity.EmailJob) (html, text string, err error) {
	var data any
	switch job.Kind {
	case entity.EmailPasswordReset:
		var p entity.PasswordResetEmail
		err = job.Decode(&p)
		data = p
	case entity.EmailThresholdAlert:
		var p entity.ThresholdAlertEmail
		err = job.Decode(&p)
		data = p
	default:
		return "", "", fmt.Errorf("%w: %q", domainerror.ErrUnknownEmailKind, job.Kind)
	}
	if err != nil {
		return "", "", err
	}

	var hb, tb bytes.Buffer
	if err := r.html.ExecuteTemplate(&hb, string(job.Kind)+".html", data); err != nil {
		return "", "", fmt.Errorf("failed to render %s.html: %w", job.Kind, err)
	}
	if err := r.text.ExecuteTemplate(&tb, string(job.Kind)+".txt", data); err != nil {
		return "", "", fmt.Errorf("failed to render %s.txt: %w", job.Kind, err)
	}
	return hb.String(), tb.String(), nil
}
