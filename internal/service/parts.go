package service

import (
	"context"

	"github.com/deanmoses/flipfix/internal/events"
	"github.com/deanmoses/flipfix/internal/links"
	"github.com/deanmoses/flipfix/internal/model"
	"github.com/deanmoses/flipfix/internal/store"
)

// NewPartService creates a new PartService.
func NewPartService(st store.Store, engine *links.Engine, pub events.Publisher) *PartService {
	return &PartService{
		store:  st,
		engine: engine,
		events: pub,
	}
}

// PartService manages part requests and their progress notes.
type PartService struct {
	store  store.Store
	engine *links.Engine
	events events.Publisher
}

// CreateRequest files a part request for a machine.
func (p *PartService) CreateRequest(ctx context.Context, machineID uint, authored string) (*model.PartRequest, error) {
	if machineID == 0 {
		return nil, ErrMissingMachine
	}
	if authored == "" {
		return nil, ErrMissingText
	}

	storageText, err := p.engine.ToStorage(ctx, authored)
	if err != nil {
		return nil, err
	}
	if _, err := p.store.GetMachine(ctx, machineID); err != nil {
		return nil, err
	}

	req := &model.PartRequest{MachineID: machineID, Text: storageText}
	if err := p.store.CreatePartRequest(ctx, req); err != nil {
		return nil, err
	}

	source := links.Ref{Kind: links.KindPartRequest, ID: req.ID}
	if err := syncReferences(ctx, p.store, p.engine, source, storageText); err != nil {
		return nil, err
	}
	publishChange(ctx, p.events, source, "saved")

	return req, nil
}

// AddUpdate appends a progress note to a part request.
func (p *PartService) AddUpdate(ctx context.Context, requestID uint, authored string) (*model.PartRequestUpdate, error) {
	if authored == "" {
		return nil, ErrMissingText
	}
	storageText, err := p.engine.ToStorage(ctx, authored)
	if err != nil {
		return nil, err
	}
	if _, err := p.store.GetPartRequest(ctx, requestID); err != nil {
		return nil, err
	}

	update := &model.PartRequestUpdate{PartRequestID: requestID, Text: storageText}
	if err := p.store.CreatePartRequestUpdate(ctx, update); err != nil {
		return nil, err
	}

	source := links.Ref{Kind: links.KindPartRequestUpdate, ID: update.ID}
	if err := syncReferences(ctx, p.store, p.engine, source, storageText); err != nil {
		return nil, err
	}
	publishChange(ctx, p.events, source, "saved")

	return update, nil
}

// SetStatus moves a request through the requested/ordered/received/
// installed lifecycle.
func (p *PartService) SetStatus(ctx context.Context, id uint, status string) (*model.PartRequest, error) {
	req, err := p.store.GetPartRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	req.Status = status
	if err := p.store.UpdatePartRequest(ctx, req); err != nil {
		return nil, err
	}
	publishChange(ctx, p.events, links.Ref{Kind: links.KindPartRequest, ID: req.ID}, "saved")
	return req, nil
}

// GetRequest retrieves a part request by ID.
func (p *PartService) GetRequest(ctx context.Context, id uint) (*model.PartRequest, error) {
	return p.store.GetPartRequest(ctx, id)
}

// ListUpdates retrieves the progress notes on a request.
func (p *PartService) ListUpdates(ctx context.Context, requestID uint) ([]*model.PartRequestUpdate, error) {
	return p.store.ListPartRequestUpdates(ctx, requestID)
}

// Render expands the stored request text for display.
func (p *PartService) Render(ctx context.Context, id uint, opts links.RenderOptions) (string, error) {
	req, err := p.store.GetPartRequest(ctx, id)
	if err != nil {
		return "", err
	}
	return p.engine.Render(ctx, req.Text, opts)
}

// DeleteRequest removes a request, its progress notes, and the outgoing
// reference edges of all of them.
func (p *PartService) DeleteRequest(ctx context.Context, id uint) error {
	updates, err := p.store.ListPartRequestUpdates(ctx, id)
	if err != nil {
		return err
	}

	err = p.store.Transaction(ctx, func(tx store.Store) error {
		for _, update := range updates {
			if err := tx.DeletePartRequestUpdate(ctx, update.ID); err != nil {
				return err
			}
		}
		return tx.DeletePartRequest(ctx, id)
	})
	if err != nil {
		return err
	}

	for _, update := range updates {
		source := links.Ref{Kind: links.KindPartRequestUpdate, ID: update.ID}
		if err := syncReferences(ctx, p.store, p.engine, source, ""); err != nil {
			return err
		}
	}
	source := links.Ref{Kind: links.KindPartRequest, ID: id}
	if err := syncReferences(ctx, p.store, p.engine, source, ""); err != nil {
		return err
	}
	publishChange(ctx, p.events, source, "deleted")
	return nil
}
