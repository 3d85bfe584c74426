package resource

import (
	"context"

	"github.com/google/uuid"

	"github.com/voyagedesk/voyagedesk/internal/domain"
	"github.com/voyagedesk/voyagedesk/internal/validate"
)

type BudgetGateway interface {
	GetForUser(ctx context.Context, userID uuid.UUID) (*domain.Budget, error)
	Upsert(ctx context.Context, budget domain.Budget) (*domain.Budget, error)
}

type Budgets struct {
	gw BudgetGateway

	Detail   *Query[*domain.Budget]
	Mutation *Mutation[*domain.Budget]
}

func NewBudgets(gw BudgetGateway) *Budgets {
	return &Budgets{
		gw:       gw,
		Detail:   NewQuery[*domain.Budget](),
		Mutation: NewMutation[*domain.Budget](),
	}
}

func (r *Budgets) FetchForUser(ctx context.Context, userID uuid.UUID) (*domain.Budget, error) {
	return r.Detail.Fetch(ctx, func(ctx context.Context) (*domain.Budget, error) {
		return r.gw.GetForUser(ctx, userID)
	})
}

func (r *Budgets) Save(ctx context.Context, budget domain.Budget) (*domain.Budget, error) {
	if err := validate.Budget(budget); err != nil {
		return nil, err
	}
	return r.Mutation.Run(ctx, func(ctx context.Context) (*domain.Budget, error) {
		return r.gw.Upsert(ctx, budget)
	})
}
