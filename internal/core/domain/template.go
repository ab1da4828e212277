package domain

// Built-in template names used when the project has no template file.
const (
	DefaultSpecTemplate   = "spec.tmpl"
	DefaultConsulTemplate = "consul.json.tmpl"
)

// SpecData is passed to the RPM spec template.
type SpecData struct {
	Name     string
	Version  string
	Release  string
	Dist     string
	Arch     string
	Manifest string
}

// ConsulData is passed to the consul service definition template.
type ConsulData struct {
	Name     string
	Hostname string
	Site     string
}
