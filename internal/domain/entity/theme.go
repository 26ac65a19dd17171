// Package entity defines the core business entities for the domain layer.
package entity

import "fmt"

// ThemeKey identifies a visual theme.
type ThemeKey string

const (
	ThemeCleanGirl    ThemeKey = "Clean Girl"
	ThemeY2K          ThemeKey = "Y2K"
	ThemeDarkAcademia ThemeKey = "Dark Academia"
)

// DefaultTheme is used when no theme is selected.
const DefaultTheme = ThemeCleanGirl

// ThemePalette holds the hex colors a surface needs to render a theme.
type ThemePalette struct {
	Background string
	Surface    string
	Text       string
	Accent     string
}

// ThemeDescriptor bundles everything theme dependent: colors and copy.
type ThemeDescriptor struct {
	Key               ThemeKey
	Palette           ThemePalette
	ChartColors       []string
	Greeting          string
	CelebrationFormat string // fmt verb receives the goal title
}

// Celebration returns the theme's goal reached message for a goal title.
func (d ThemeDescriptor) Celebration(goalTitle string) string {
	return fmt.Sprintf(d.CelebrationFormat, goalTitle)
}

// ChartColor returns the chart color for the i-th series, wrapping around.
func (d ThemeDescriptor) ChartColor(i int) string {
	if len(d.ChartColors) == 0 {
		return ""
	}
	return d.ChartColors[i%len(d.ChartColors)]
}

var themes = []ThemeDescriptor{
	{
		Key: ThemeCleanGirl,
		Palette: ThemePalette{
			Background: "#FAFAF9",
			Surface:    "#FFFFFF",
			Text:       "#44403C",
			Accent:     "#A3B18A",
		},
		ChartColors:       []string{"#A3B18A", "#D4A373", "#E9EDC9", "#CCD5AE"},
		Greeting:          "Hey gorgeous, slow and steady glow up.",
		CelebrationFormat: "✨ Goal Reached: %s! So proud of you! ✨",
	},
	{
		Key: ThemeY2K,
		Palette: ThemePalette{
			Background: "#FAE8FF",
			Surface:    "#FFFFFF",
			Text:       "#1E3A8A",
			Accent:     "#FF00FF",
		},
		ChartColors:       []string{"#FF00FF", "#00FFFF", "#FFFF00", "#0000FF"},
		Greeting:          "OMG hiii! Ur wallet is giving main character.",
		CelebrationFormat: "💖 OMG you did it: %s is SO yours now! 💖",
	},
	{
		Key: ThemeDarkAcademia,
		Palette: ThemePalette{
			Background: "#1A1612",
			Surface:    "#2C241B",
			Text:       "#E5E0D8",
			Accent:     "#C5A059",
		},
		ChartColors:       []string{"#C5A059", "#4A3B2A", "#8B7355", "#2C241B"},
		Greeting:          "Welcome back, scholar. The ledger awaits.",
		CelebrationFormat: "📜 A triumph most worthy: %s has been attained.",
	},
}

// Themes returns all theme descriptors in display order.
func Themes() []ThemeDescriptor {
	out := make([]ThemeDescriptor, len(themes))
	copy(out, themes)
	return out
}

// LookupTheme returns the descriptor for key. The second value is false for
// unknown keys.
func LookupTheme(key ThemeKey) (ThemeDescriptor, bool) {
	for _, t := range themes {
		if t.Key == key {
			return t, true
		}
	}
	return ThemeDescriptor{}, false
}
