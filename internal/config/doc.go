// Package config provides configuration management for brushgen.
//
// The generator ships with compiled-in defaults matching the toolkit's
// repository layout, so it works with no configuration at all. A
// brushgen.yaml file at the repository root can override individual
// settings; settings it leaves out keep their defaults.
//
// # Settings File
//
// The settings file uses YAML format:
//
//	definitionsPath: MaterialDesignThemes.Wpf/Themes/Brushes.yaml
//	themeName: MaterialDesignTheme
//	themesDir: MaterialDesignThemes.Wpf/Themes
//	templatePath: MaterialDesignThemes.Wpf/Themes/MaterialDesignTheme.ObsoleteBrushes.template.xaml
//	accessorPath: MaterialDesignThemes.Wpf/Theme.g.cs
//	ignoredName: MaterialDesign.Brush.Ignored
//
// All paths are relative to the repository root, which is discovered by
// walking parent directories upward from the working directory until one
// containing a .git directory is found.
package config
