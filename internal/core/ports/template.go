package ports

// TemplateRenderer renders text templates.
//
//go:generate mockgen -source=template.go -destination=mocks/mock_template.go -package=mocks
type TemplateRenderer interface {
	// Render renders the template at path. When path does not exist the
	// built-in template named fallback is used instead; an empty fallback
	// makes a missing file an error.
	Render(path, fallback string, data any) (string, error)
}
