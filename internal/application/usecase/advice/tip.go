package advice

import (
	"context"

	"github.com/glowup-wallet/backend/internal/application/usecase/ledger"
)

// GetTipInput represents the input for a daily tip.
type GetTipInput struct {
	Theme string
}

// GetTipOutput represents a daily tip.
type GetTipOutput struct {
	Theme string
	Tip   string
}

// GetTipUseCase produces the themed daily tip.
type GetTipUseCase struct {
	gateway *Gateway
}

// NewGetTipUseCase creates a new GetTipUseCase instance.
func NewGetTipUseCase(gateway *Gateway) *GetTipUseCase {
	return &GetTipUseCase{
		gateway: gateway,
	}
}

// Execute resolves the theme and asks for a tip.
func (uc *GetTipUseCase) Execute(ctx context.Context, input GetTipInput) (*GetTipOutput, error) {
	theme, err := ledger.ResolveTheme(input.Theme)
	if err != nil {
		return nil, err
	}

	return &GetTipOutput{
		Theme: string(theme.Key),
		Tip:   uc.gateway.GetDailyTip(ctx, string(theme.Key)),
	}, nil
}
