package commands

import (
	"context"

	"github.com/felixgeelhaar/serendip/internal/preferences/domain"
	"github.com/felixgeelhaar/serendip/internal/shared/infrastructure/eventbus"
)

// ResetLearningCommand wipes the user's selection history.
type ResetLearningCommand struct {
	UserID string
}

// ResetLearningHandler handles the ResetLearningCommand.
type ResetLearningHandler struct {
	repo      domain.Repository
	publisher eventbus.Publisher
}

// NewResetLearningHandler creates a new ResetLearningHandler.
func NewResetLearningHandler(repo domain.Repository, publisher eventbus.Publisher) *ResetLearningHandler {
	return &ResetLearningHandler{repo: repo, publisher: publisher}
}

// Handle executes the ResetLearningCommand.
func (h *ResetLearningHandler) Handle(ctx context.Context, cmd ResetLearningCommand) error {
	model, err := LoadOrCreate(ctx, h.repo, cmd.UserID)
	if err != nil {
		return err
	}

	model.ResetLearning()
	if err := h.repo.Save(ctx, model); err != nil {
		return err
	}

	if err := eventbus.PublishEvents(ctx, h.publisher, model.DomainEvents()...); err != nil {
		return err
	}
	model.ClearDomainEvents()
	return nil
}
