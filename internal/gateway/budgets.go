package gateway

import (
	"context"

	"github.com/google/uuid"

	"github.com/voyagedesk/voyagedesk/internal/apiclient"
	"github.com/voyagedesk/voyagedesk/internal/domain"
)

type Budgets struct {
	client *apiclient.Client
}

func NewBudgets(client *apiclient.Client) *Budgets {
	return &Budgets{client: client}
}

func (g *Budgets) GetForUser(ctx context.Context, userID uuid.UUID) (*domain.Budget, error) {
	var out domain.Budget
	if err := g.client.Get(ctx, "/api/budget/user/"+userID.String(), &out, "Failed to fetch budget"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *Budgets) Upsert(ctx context.Context, budget domain.Budget) (*domain.Budget, error) {
	var out domain.Budget
	if err := g.client.Put(ctx, "/api/budget/user/"+budget.UserID.String(), budget, &out, "Failed to save budget"); err != nil {
		return nil, err
	}
	return &out, nil
}
