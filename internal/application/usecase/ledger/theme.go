package ledger

import (
	"github.com/glowup-wallet/backend/internal/domain/entity"
	domainerror "github.com/glowup-wallet/backend/internal/domain/error"
)

// ResolveTheme maps a theme key to its descriptor. An empty key selects the
// default theme.
func ResolveTheme(key string) (entity.ThemeDescriptor, error) {
	if key == "" {
		key = string(entity.DefaultTheme)
	}

	theme, ok := entity.LookupTheme(entity.ThemeKey(key))
	if !ok {
		return entity.ThemeDescriptor{}, domainerror.NewLedgerError(
			domainerror.ErrCodeUnknownTheme,
			"theme must be 'Clean Girl', 'Y2K', or 'Dark Academia'",
			domainerror.ErrUnknownTheme,
		)
	}
	return theme, nil
}
