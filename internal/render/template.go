// Package render turns invoice data into HTML and HTML into PDF. Both steps
// sit behind small interfaces so the workflow can run in tests without a
// template file or a browser on the machine.
package render

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
)

// TemplateRenderer produces the invoice HTML document for one run.
type TemplateRenderer interface {
	Render(ctx context.Context, data map[string]string) (string, error)
}

// HTMLTemplateRenderer executes the user-editable template file with
// html/template, so every interpolated value is autoescaped. Template
// placeholders use the .env key names directly, e.g. {{.COMPANY_NAME}}.
type HTMLTemplateRenderer struct {
	Path string
}

func (r *HTMLTemplateRenderer) Render(_ context.Context, data map[string]string) (string, error) {
	// Parsed per run: the template is a document the operator edits between
	// invocations, not an asset compiled into the binary.
	tpl, err := template.ParseFiles(r.Path)
	if err != nil {
		return "", fmt.Errorf("parse template %s: %w", r.Path, err)
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render template: %w", err)
	}
	return buf.String(), nil
}
