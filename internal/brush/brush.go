package brush

import (
	"fmt"
	"strings"
)

// Theme keys recognized in brush definitions. Every brush carries one
// value per theme.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// NamePrefix is the leading namespace prefix shared by every brush name.
const NamePrefix = "MaterialDesign."

// Brush is one named brush definition from the definitions file. Brushes
// are immutable after loading; the pipeline only sorts the loaded slice
// once by name.
type Brush struct {
	Name          string            `yaml:"name"`
	ThemeValues   map[string]string `yaml:"themeValues"`
	AlternateKeys []string          `yaml:"alternateKeys,omitempty"`
	ObsoleteKeys  []string          `yaml:"obsoleteKeys,omitempty"`
}

// ThemeValue resolves the value of this brush for the given theme key.
// The value is either a literal color code (starting with '#') or the
// name of another resource.
func (b Brush) ThemeValue(theme string) (string, error) {
	value, ok := b.ThemeValues[theme]
	if !ok {
		return "", fmt.Errorf("brush %s has no value for theme %q", b.Name, theme)
	}
	return value, nil
}

// PropertyName returns the final segment of the brush name, e.g.
// "Background" for "MaterialDesign.Brush.Button.Background".
func (b Brush) PropertyName() string {
	segments := strings.Split(b.Name, ".")
	return segments[len(segments)-1]
}

// NameWithoutPrefix returns the brush name with the shared namespace
// prefix stripped.
func (b Brush) NameWithoutPrefix() string {
	return strings.TrimPrefix(b.Name, NamePrefix)
}

// ContainerParts returns the segments strictly between the
// namespace+category tokens and the trailing property token, e.g.
// ["Button"] for "MaterialDesign.Brush.Button.Background". Names with
// fewer than three segments are a caller error; the loader rejects them
// up front.
func (b Brush) ContainerParts() []string {
	segments := strings.Split(b.Name, ".")
	return segments[2 : len(segments)-1]
}

// ContainerTypeName returns the container parts rejoined with dots.
func (b Brush) ContainerTypeName() string {
	return strings.Join(b.ContainerParts(), ".")
}

// IsLiteralColor reports whether a theme value is a literal color code
// rather than a reference to another resource.
func IsLiteralColor(value string) bool {
	return strings.HasPrefix(value, "#")
}
