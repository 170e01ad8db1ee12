package service

import (
	"context"

	"github.com/deanmoses/flipfix/internal/events"
	"github.com/deanmoses/flipfix/internal/links"
	"github.com/deanmoses/flipfix/internal/model"
	"github.com/deanmoses/flipfix/internal/store"
	"github.com/google/uuid"
)

// NewProblemService creates a new ProblemService.
func NewProblemService(st store.Store, engine *links.Engine, pub events.Publisher) *ProblemService {
	return &ProblemService{
		store:  st,
		engine: engine,
		events: pub,
	}
}

// ProblemService manages problem reports.
type ProblemService struct {
	store  store.Store
	engine *links.Engine
	events events.Publisher
}

// Report files a problem against a machine. The description is authored
// text and is gated through the link converter before it is persisted;
// each report gets a fresh key so chat-captured reports stay correlated
// with their source message.
func (p *ProblemService) Report(ctx context.Context, machineID uint, reportedBy, authored string) (*model.Problem, error) {
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

	problem := &model.Problem{
		MachineID:   machineID,
		Description: storageText,
		ReportedBy:  reportedBy,
		ReportKey:   uuid.NewString(),
	}
	if err := p.store.CreateProblem(ctx, problem); err != nil {
		return nil, err
	}

	source := links.Ref{Kind: links.KindProblem, ID: problem.ID}
	if err := syncReferences(ctx, p.store, p.engine, source, storageText); err != nil {
		return nil, err
	}
	publishChange(ctx, p.events, source, "saved")

	return problem, nil
}

// UpdateDescription replaces the description, re-running the save gate
// and the reference sync.
func (p *ProblemService) UpdateDescription(ctx context.Context, id uint, authored string) (*model.Problem, error) {
	if authored == "" {
		return nil, ErrMissingText
	}
	storageText, err := p.engine.ToStorage(ctx, authored)
	if err != nil {
		return nil, err
	}

	problem, err := p.store.GetProblem(ctx, id)
	if err != nil {
		return nil, err
	}
	problem.Description = storageText
	if err := p.store.UpdateProblem(ctx, problem); err != nil {
		return nil, err
	}

	source := links.Ref{Kind: links.KindProblem, ID: problem.ID}
	if err := syncReferences(ctx, p.store, p.engine, source, storageText); err != nil {
		return nil, err
	}
	publishChange(ctx, p.events, source, "saved")

	return problem, nil
}

// SetStatus moves a problem between open, fixed and not-a-problem.
// Status changes do not touch the tracked text, so no sync runs.
func (p *ProblemService) SetStatus(ctx context.Context, id uint, status string) (*model.Problem, error) {
	problem, err := p.store.GetProblem(ctx, id)
	if err != nil {
		return nil, err
	}
	problem.Status = status
	if err := p.store.UpdateProblem(ctx, problem); err != nil {
		return nil, err
	}
	publishChange(ctx, p.events, links.Ref{Kind: links.KindProblem, ID: problem.ID}, "saved")
	return problem, nil
}

// Get retrieves a problem by ID.
func (p *ProblemService) Get(ctx context.Context, id uint) (*model.Problem, error) {
	return p.store.GetProblem(ctx, id)
}

// Render expands the stored description for display.
func (p *ProblemService) Render(ctx context.Context, id uint, opts links.RenderOptions) (string, error) {
	problem, err := p.store.GetProblem(ctx, id)
	if err != nil {
		return "", err
	}
	return p.engine.Render(ctx, problem.Description, opts)
}

// Delete removes a problem and its outgoing reference edges.
func (p *ProblemService) Delete(ctx context.Context, id uint) error {
	if err := p.store.DeleteProblem(ctx, id); err != nil {
		return err
	}
	source := links.Ref{Kind: links.KindProblem, ID: id}
	if err := syncReferences(ctx, p.store, p.engine, source, ""); err != nil {
		return err
	}
	publishChange(ctx, p.events, source, "deleted")
	return nil
}
