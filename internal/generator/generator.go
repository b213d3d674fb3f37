package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/WolfzTech/MaterialDesignInXamlToolkit/internal/brush"
	"github.com/WolfzTech/MaterialDesignInXamlToolkit/internal/config"
	"github.com/WolfzTech/MaterialDesignInXamlToolkit/internal/tree"
	"github.com/WolfzTech/MaterialDesignInXamlToolkit/pkg/logging"
)

// Generator runs the full regeneration pipeline against one repository.
type Generator struct {
	settings config.Settings
	repoRoot string
}

// New creates a Generator for the given settings and repository root.
func New(settings config.Settings, repoRoot string) *Generator {
	return &Generator{
		settings: settings,
		repoRoot: repoRoot,
	}
}

// Run regenerates all four artifacts from the brush definitions file.
// Artifacts are written one at a time in a fixed order; any failure
// aborts the run immediately.
func (g *Generator) Run() error {
	brushes, err := brush.Load(filepath.Join(g.repoRoot, g.settings.DefinitionsPath))
	if err != nil {
		return err
	}

	sort.SliceStable(brushes, func(i, j int) bool {
		return brushes[i].Name < brushes[j].Name
	})

	// The ignored brush stays in the theme dictionaries but is left out
	// of the tree and the obsolete aliases.
	included := make([]brush.Brush, 0, len(brushes))
	for _, b := range brushes {
		if b.Name != g.settings.IgnoredName {
			included = append(included, b)
		}
	}

	root := tree.Build(included, func(b brush.Brush) []string {
		return b.ContainerParts()
	})

	for _, theme := range []struct {
		key    string
		suffix string
	}{
		{brush.ThemeLight, "Light"},
		{brush.ThemeDark, "Dark"},
	} {
		doc, err := GenerateThemeDictionary(theme.key, brushes)
		if err != nil {
			return err
		}
		name := fmt.Sprintf("%s.%s.xaml", g.settings.ThemeName, theme.suffix)
		if err := g.writeArtifact(filepath.Join(g.settings.ThemesDir, name), doc); err != nil {
			return err
		}
	}

	templatePath := filepath.Join(g.repoRoot, g.settings.TemplatePath)
	template, err := os.ReadFile(templatePath)
	if err != nil {
		return fmt.Errorf("reading obsolete-brushes template from %s: %w", templatePath, err)
	}
	obsoleteName := fmt.Sprintf("%s.ObsoleteBrushes.xaml", g.settings.ThemeName)
	if err := g.writeArtifact(filepath.Join(g.settings.ThemesDir, obsoleteName), GenerateObsoleteDictionary(included, string(template))); err != nil {
		return err
	}

	return g.writeArtifact(g.settings.AccessorPath, GenerateAccessorClass(root))
}

// writeArtifact writes one output document, relative to the repository
// root. The file is fully written and closed before the caller moves on
// to the next artifact.
func (g *Generator) writeArtifact(relPath, content string) error {
	path := filepath.Join(g.repoRoot, relPath)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	logging.Info("Generator", "Wrote %s", relPath)
	return nil
}
