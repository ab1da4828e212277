// Package render renders the RPM spec and consul templates.
package render

import (
	"bytes"
	"embed"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"text/template"

	"go.trai.ch/rollout/internal/core/domain"
	"go.trai.ch/rollout/internal/core/ports"
	"go.trai.ch/zerr"
)

//go:embed templates/*.tmpl
var builtin embed.FS

var _ ports.TemplateRenderer = (*Renderer)(nil)

// Renderer implements ports.TemplateRenderer with text/template.
type Renderer struct{}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render executes the template at path, or the built-in template named
// fallback when path does not exist. Unknown keys are an error.
func (r *Renderer) Render(path, fallback string, data any) (string, error) {
	text, name, err := load(path, fallback)
	if err != nil {
		return "", err
	}

	tmpl, err := template.New(name).Option("missingkey=error").Parse(text)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrTemplateRenderFailed.Error()), "template", name)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrTemplateRenderFailed.Error()), "template", name)
	}
	return buf.String(), nil
}

func load(path, fallback string) (text, name string, err error) {
	if path != "" {
		data, readErr := os.ReadFile(path) //nolint:gosec // template paths come from the project configuration
		switch {
		case readErr == nil:
			return string(data), filepath.Base(path), nil
		case !errors.Is(readErr, fs.ErrNotExist):
			return "", "", zerr.With(zerr.Wrap(readErr, domain.ErrTemplateMissing.Error()), "path", path)
		}
	}

	if fallback == "" {
		return "", "", zerr.With(domain.ErrTemplateMissing, "path", path)
	}

	data, err := builtin.ReadFile("templates/" + fallback)
	if err != nil {
		return "", "", zerr.With(zerr.With(domain.ErrTemplateMissing, "path", path), "builtin", fallback)
	}
	return string(data), fallback, nil
}
