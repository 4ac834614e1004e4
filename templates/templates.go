package templates

import (
	"embed"
	"fmt"
	"html/template"
)

//go:embed *.html.tmpl
var templateFS embed.FS

// GetHTMLTemplate returns the embedded HTML template for the specified
// name, with the shared template functions attached.
func GetHTMLTemplate(name string) (*template.Template, error) {
	tmpl, err := template.New(name).Funcs(GetTemplateFunc()).ParseFS(templateFS, name)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %q: %w", name, err)
	}
	return tmpl, nil
}
