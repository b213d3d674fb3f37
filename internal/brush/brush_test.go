package brush

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNameDerivation(t *testing.T) {
	tests := []struct {
		name              string
		propertyName      string
		containerParts    []string
		containerTypeName string
		withoutPrefix     string
	}{
		{
			name:              "MaterialDesign.Brush.Button.Background",
			propertyName:      "Background",
			containerParts:    []string{"Button"},
			containerTypeName: "Button",
			withoutPrefix:     "Brush.Button.Background",
		},
		{
			name:              "MaterialDesign.Brush.Button.Flat.Foreground",
			propertyName:      "Foreground",
			containerParts:    []string{"Button", "Flat"},
			containerTypeName: "Button.Flat",
			withoutPrefix:     "Brush.Button.Flat.Foreground",
		},
		{
			name:              "MaterialDesign.Brush.Foreground",
			propertyName:      "Foreground",
			containerParts:    []string{},
			containerTypeName: "",
			withoutPrefix:     "Brush.Foreground",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := Brush{Name: tc.name}
			assert.Equal(t, tc.propertyName, b.PropertyName())
			assert.Equal(t, tc.containerParts, b.ContainerParts())
			assert.Equal(t, tc.containerTypeName, b.ContainerTypeName())
			assert.Equal(t, tc.withoutPrefix, b.NameWithoutPrefix())
		})
	}
}

func TestThemeValue(t *testing.T) {
	b := Brush{
		Name: "MaterialDesign.Brush.Button.Background",
		ThemeValues: map[string]string{
			ThemeLight: "#FF6200EE",
			ThemeDark:  "MaterialDesign.Color.Primary",
		},
	}

	light, err := b.ThemeValue(ThemeLight)
	require.NoError(t, err)
	assert.Equal(t, "#FF6200EE", light)

	dark, err := b.ThemeValue(ThemeDark)
	require.NoError(t, err)
	assert.Equal(t, "MaterialDesign.Color.Primary", dark)
}

func TestThemeValue_UnknownThemeKey(t *testing.T) {
	b := Brush{
		Name:        "MaterialDesign.Brush.Button.Background",
		ThemeValues: map[string]string{ThemeLight: "#FFFFFF", ThemeDark: "#000000"},
	}

	_, err := b.ThemeValue("sepia")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sepia")
	assert.Contains(t, err.Error(), b.Name)
}

func TestIsLiteralColor(t *testing.T) {
	assert.True(t, IsLiteralColor("#112233"))
	assert.True(t, IsLiteralColor("#FF112233"))
	assert.False(t, IsLiteralColor("SomeOtherBrush"))
	assert.False(t, IsLiteralColor("MaterialDesign.Color.Primary"))
}
