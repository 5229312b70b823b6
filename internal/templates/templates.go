package templates

import (
	"embed"
	"fmt"
	"html/template"
	"strings"
	text_template "text/template"
	"time"
)

//go:embed emails/*.html
var htmlTemplates embed.FS

//go:embed emails/*.txt
var textTemplates embed.FS

// TemplateRenderer manages loading and rendering of email templates
type TemplateRenderer struct {
	htmlTemplates *template.Template
	textTemplates *text_template.Template
}

// UserDeletedData holds data for the user deleted email template
type UserDeletedData struct {
	UserID             string
	DeletedAtFormatted string
}

// NewTemplateRenderer creates a new template renderer
func NewTemplateRenderer() (*TemplateRenderer, error) {
	htmlTmpl, err := template.ParseFS(htmlTemplates, "emails/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to load HTML templates: %w", err)
	}

	textTmpl, err := text_template.ParseFS(textTemplates, "emails/*.txt")
	if err != nil {
		return nil, fmt.Errorf("failed to load text templates: %w", err)
	}

	return &TemplateRenderer{
		htmlTemplates: htmlTmpl,
		textTemplates: textTmpl,
	}, nil
}

func newUserDeletedData(userID string, deletedAt time.Time) UserDeletedData {
	return UserDeletedData{
		UserID:             userID,
		DeletedAtFormatted: deletedAt.UTC().Format("2006-01-02 15:04:05 MST"),
	}
}

// RenderUserDeletedHTML renders the HTML email for a deleted user
func (t *TemplateRenderer) RenderUserDeletedHTML(userID string, deletedAt time.Time) (string, error) {
	var buf strings.Builder
	if err := t.htmlTemplates.ExecuteTemplate(&buf, "user_deleted.html", newUserDeletedData(userID, deletedAt)); err != nil {
		return "", fmt.Errorf("failed to render HTML template: %w", err)
	}

	return buf.String(), nil
}

// RenderUserDeletedText renders the text email for a deleted user
func (t *TemplateRenderer) RenderUserDeletedText(userID string, deletedAt time.Time) (string, error) {
	var buf strings.Builder
	if err := t.textTemplates.ExecuteTemplate(&buf, "user_deleted.txt", newUserDeletedData(userID, deletedAt)); err != nil {
		return "", fmt.Errorf("failed to render text template: %w", err)
	}

	return buf.String(), nil
}
