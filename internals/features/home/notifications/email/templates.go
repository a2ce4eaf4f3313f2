package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	TemplateApproved = "approved"
	TemplateRejected = "rejected"
)

// DecisionData fills the decision templates; every field is HTML-escaped.
type DecisionData struct {
	StudentName string
	Reason      string
	Comment     string
	From        string
}

var decisionTemplates = map[string]*template.Template{
	TemplateApproved: template.Must(template.ParseFS(templateFS, "templates/base.html", "templates/approved.html")),
	TemplateRejected: template.Must(template.ParseFS(templateFS, "templates/base.html", "templates/rejected.html")),
}

func Render(name string, data DecisionData) (string, error) {
	tmpl, ok := decisionTemplates[name]
	if !ok {
		return "", fmt.Errorf("unknown email template %q", name)
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base", data); err != nil {
		return "", fmt.Errorf("execute email template: %w", err)
	}
	return buf.String(), nil
}
