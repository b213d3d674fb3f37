package config

// GetDefaultSettings returns the compiled-in settings matching the
// toolkit's repository layout. A brushgen.yaml at the repository root
// can override any of them.
func GetDefaultSettings() Settings {
	return Settings{
		DefinitionsPath: "MaterialDesignThemes.Wpf/Themes/Brushes.yaml",
		ThemeName:       "MaterialDesignTheme",
		ThemesDir:       "MaterialDesignThemes.Wpf/Themes",
		TemplatePath:    "MaterialDesignThemes.Wpf/Themes/MaterialDesignTheme.ObsoleteBrushes.template.xaml",
		AccessorPath:    "MaterialDesignThemes.Wpf/Theme.g.cs",
		IgnoredName:     "MaterialDesign.Brush.Ignored",
	}
}
