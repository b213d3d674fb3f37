package brush

import (
	"fmt"
	"os"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/WolfzTech/MaterialDesignInXamlToolkit/pkg/logging"
)

// Load reads the brush definitions file and returns the brushes in file
// order. An unreadable file, an empty definition list, or a brush whose
// shape cannot support name derivation is a hard failure.
func Load(path string) ([]Brush, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading brush definitions from %s: %w", path, err)
	}

	var brushes []Brush
	if err := yaml.Unmarshal(data, &brushes); err != nil {
		return nil, fmt.Errorf("parsing brush definitions from %s: %w", path, err)
	}
	if len(brushes) == 0 {
		return nil, fmt.Errorf("no brush definitions found in %s", path)
	}

	for _, b := range brushes {
		if err := validate(b); err != nil {
			return nil, fmt.Errorf("invalid brush definition in %s: %w", path, err)
		}
	}

	logging.Debug("BrushLoader", "Loaded %d brush definitions from %s", len(brushes), path)
	return brushes, nil
}

// validate performs the minimal shape checks the rest of the pipeline
// relies on: a name with enough segments to derive container parts, and a
// value per known theme. Literal color values that fail to parse are
// only warned about, since the generator copies them through verbatim.
func validate(b Brush) error {
	if b.Name == "" {
		return fmt.Errorf("brush name is required")
	}
	if strings.Count(b.Name, ".") < 2 {
		return fmt.Errorf("brush name %q must have at least 3 dot-separated segments", b.Name)
	}
	for _, theme := range []string{ThemeLight, ThemeDark} {
		value, ok := b.ThemeValues[theme]
		if !ok {
			return fmt.Errorf("brush %s is missing a %s theme value", b.Name, theme)
		}
		if IsLiteralColor(value) && !parsesAsColor(value) {
			logging.Warn("BrushLoader", "Brush %s has unparseable %s color %q", b.Name, theme, value)
		}
	}
	return nil
}

// parsesAsColor checks a literal color code. XAML colors may carry a
// leading alpha channel (#AARRGGBB), which is dropped before parsing
// since go-colorful only understands #RGB and #RRGGBB.
func parsesAsColor(value string) bool {
	hex := value
	if len(hex) == 9 {
		hex = "#" + hex[3:]
	}
	_, err := colorful.Hex(hex)
	return err == nil
}
