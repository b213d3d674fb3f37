package generator

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/WolfzTech/MaterialDesignInXamlToolkit/internal/brush"
)

// insertMarkerPattern matches the template line the generated alias
// entries replace. Only the first matching line is spliced.
var insertMarkerPattern = regexp.MustCompile(`^\s*<!-- INSERT HERE -->`)

// GenerateObsoleteDictionary renders the obsolete-brushes dictionary by
// splicing alias entries into the template at its insertion marker line.
// Each obsolete key aliases its brush's canonical name, never the raw
// theme value. Every other template line is preserved byte for byte.
func GenerateObsoleteDictionary(brushes []brush.Brush, template string) string {
	var entries []string
	for _, b := range brushes {
		for _, obsolete := range b.ObsoleteKeys {
			entries = append(entries, fmt.Sprintf("  <StaticResource x:Key=\"%s\" ResourceKey=\"%s\" />", obsolete, b.Name))
		}
	}
	block := strings.Join(entries, "\n")

	lines := strings.Split(template, "\n")
	for i, line := range lines {
		if !insertMarkerPattern.MatchString(line) {
			continue
		}
		if block == "" {
			lines = append(lines[:i], lines[i+1:]...)
		} else {
			lines[i] = block
		}
		break
	}
	return strings.Join(lines, "\n")
}
