package generator

import (
	"fmt"
	"strings"

	"github.com/WolfzTech/MaterialDesignInXamlToolkit/internal/brush"
)

// themeDictionaryHeader opens every generated theme dictionary. The
// merged dictionary pulls in the base color definitions the brush values
// reference by name.
const themeDictionaryHeader = `<ResourceDictionary xmlns="http://schemas.microsoft.com/winfx/2006/xaml/presentation"
                    xmlns:x="http://schemas.microsoft.com/winfx/2006/xaml"
                    xmlns:po="http://schemas.microsoft.com/winfx/2006/xaml/presentation/options">
  <ResourceDictionary.MergedDictionaries>
    <ResourceDictionary Source="MaterialDesignColors.xaml" />
  </ResourceDictionary.MergedDictionaries>
`

// GenerateThemeDictionary renders the resource dictionary for one theme.
// It takes the full sorted brush list, ignored sentinel included: the
// ignored brush keeps its theme dictionary entries even though it
// appears nowhere else. Each brush contributes one entry for its own
// name and one per alternate key, all with the same resolved value.
func GenerateThemeDictionary(theme string, brushes []brush.Brush) (string, error) {
	var sb strings.Builder
	sb.WriteString(themeDictionaryHeader)

	for _, b := range brushes {
		value, err := b.ThemeValue(theme)
		if err != nil {
			return "", err
		}
		sb.WriteString(themeEntry(b.Name, value))
		for _, alt := range b.AlternateKeys {
			sb.WriteString(themeEntry(alt, value))
		}
	}

	sb.WriteString("\n</ResourceDictionary>\n")
	return sb.String(), nil
}

// themeEntry renders one dictionary entry. Literal color values become
// frozen brushes; anything else is an alias to the named resource.
func themeEntry(key, value string) string {
	if brush.IsLiteralColor(value) {
		return fmt.Sprintf("  <SolidColorBrush x:Key=\"%s\" Color=\"%s\" po:Freeze=\"True\" />\n", key, value)
	}
	return fmt.Sprintf("  <StaticResource x:Key=\"%s\" ResourceKey=\"%s\" />\n", key, value)
}
