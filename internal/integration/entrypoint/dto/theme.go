package dto

import "github.com/glowup-wallet/backend/internal/domain/entity"

// ThemePaletteResponse represents the colors of a theme.
type ThemePaletteResponse struct {
	Background string `json:"background"`
	Surface    string `json:"surface"`
	Text       string `json:"text"`
	Accent     string `json:"accent"`
}

// ThemeResponse represents a theme descriptor in API responses.
type ThemeResponse struct {
	Key         string               `json:"key"`
	Palette     ThemePaletteResponse `json:"palette"`
	ChartColors []string             `json:"chart_colors"`
	Greeting    string               `json:"greeting"`
}

// ThemeListResponse represents the response for listing themes.
type ThemeListResponse struct {
	Themes  []ThemeResponse `json:"themes"`
	Default string          `json:"default"`
}

// ToThemeResponse converts a ThemeDescriptor to a ThemeResponse DTO.
func ToThemeResponse(d entity.ThemeDescriptor) ThemeResponse {
	return ThemeResponse{
		Key: string(d.Key),
		Palette: ThemePaletteResponse{
			Background: d.Palette.Background,
			Surface:    d.Palette.Surface,
			Text:       d.Palette.Text,
			Accent:     d.Palette.Accent,
		},
		ChartColors: d.ChartColors,
		Greeting:    d.Greeting,
	}
}

// ToThemeListResponse converts all themes to a ThemeListResponse DTO.
func ToThemeListResponse(themes []entity.ThemeDescriptor) ThemeListResponse {
	response := ThemeListResponse{
		Themes:  make([]ThemeResponse, len(themes)),
		Default: string(entity.DefaultTheme),
	}
	for i, t := range themes {
		response.Themes[i] = ToThemeResponse(t)
	}
	return response
}
