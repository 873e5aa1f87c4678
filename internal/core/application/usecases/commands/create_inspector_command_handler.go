package commands

import (
	"context"

	"inspection/internal/core/domain/model/inspector"
	"inspection/internal/core/domain/model/kernel"
)

// InspectorView is the write-model result of inspector creation.
type InspectorView struct {
	ID       int64
	Name     string
	Timezone string
	Email    *string
}

// CreateInspectorCommandHandler registers new inspectors.
type CreateInspectorCommandHandler struct {
	uowFactory InspectorUoWFactory
}

// NewCreateInspectorCommandHandler creates a handler for inspector
// registration. Requires an InspectorUoWFactory for transactional persistence.
func NewCreateInspectorCommandHandler(uowFactory InspectorUoWFactory) CreateInspectorCommandHandler {
	return CreateInspectorCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates an inspector and persists it. A duplicate email surfaces
// from the storage layer as a conflict.
func (h CreateInspectorCommandHandler) Handle(ctx context.Context, cmd CreateInspectorCommand) (InspectorView, error) {
	if err := cmd.Validate(); err != nil {
		return InspectorView{}, err
	}

	timezone, err := kernel.NewTimezone(cmd.Timezone())
	if err != nil {
		return InspectorView{}, err
	}

	newInspector, err := inspector.NewInspector(cmd.Name(), timezone, cmd.Email())
	if err != nil {
		return InspectorView{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return InspectorView{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.InspectorRepository().Add(ctx, newInspector); err != nil {
		return InspectorView{}, err
	}

	if err := uow.Commit(ctx); err != nil {
		return InspectorView{}, err
	}

	return InspectorView{
		ID:       newInspector.ID().Value(),
		Name:     newInspector.Name(),
		Timezone: newInspector.Timezone().Name(),
		Email:    newInspector.Email(),
	}, nil
}
