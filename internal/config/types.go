package config

// Settings holds everything the generator needs to locate its input and
// place its output. All paths are relative to the repository root.
type Settings struct {
	// DefinitionsPath is the brush definitions file.
	DefinitionsPath string `yaml:"definitionsPath"`

	// ThemeName is the base name of the generated theme dictionaries,
	// e.g. "MaterialDesignTheme" yields MaterialDesignTheme.Light.xaml.
	ThemeName string `yaml:"themeName"`

	// ThemesDir is the directory the theme and obsolete-brush
	// dictionaries are written to.
	ThemesDir string `yaml:"themesDir"`

	// TemplatePath is the obsolete-brushes dictionary template carrying
	// the insertion marker line.
	TemplatePath string `yaml:"templatePath"`

	// AccessorPath is the generated accessor class source file.
	AccessorPath string `yaml:"accessorPath"`

	// IgnoredName marks a brush that still receives theme dictionary
	// entries but is excluded from the accessor class and the
	// obsolete-brushes dictionary.
	IgnoredName string `yaml:"ignoredName"`
}
