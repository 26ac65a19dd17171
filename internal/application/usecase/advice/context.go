package advice

import (
	"fmt"
	"strings"

	"github.com/glowup-wallet/backend/internal/domain/entity"
)

// BuildAdviceContext describes the user to the model: their goal titles and
// the selected theme.
func BuildAdviceContext(goals []*entity.Goal, theme entity.ThemeKey) string {
	titles := make([]string, 0, len(goals))
	for _, goal := range goals {
		titles = append(titles, goal.Title)
	}
	return fmt.Sprintf("User Goals: %s. Theme Preference: %s", strings.Join(titles, ", "), theme)
}
