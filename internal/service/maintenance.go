package service

import (
	"context"

	"github.com/deanmoses/flipfix/internal/events"
	"github.com/deanmoses/flipfix/internal/links"
	"github.com/deanmoses/flipfix/internal/model"
	"github.com/deanmoses/flipfix/internal/store"
)

// NewLogService creates a new LogService.
func NewLogService(st store.Store, engine *links.Engine, pub events.Publisher) *LogService {
	return &LogService{
		store:  st,
		engine: engine,
		events: pub,
	}
}

// LogService manages maintenance log entries.
type LogService struct {
	store  store.Store
	engine *links.Engine
	events events.Publisher
}

// AddEntry records maintenance work on a machine, optionally against the
// problem it addressed.
func (l *LogService) AddEntry(ctx context.Context, machineID uint, problemID *uint, author, authored string) (*model.LogEntry, error) {
	if machineID == 0 {
		return nil, ErrMissingMachine
	}
	if authored == "" {
		return nil, ErrMissingText
	}

	storageText, err := l.engine.ToStorage(ctx, authored)
	if err != nil {
		return nil, err
	}
	if _, err := l.store.GetMachine(ctx, machineID); err != nil {
		return nil, err
	}

	entry := &model.LogEntry{
		MachineID: machineID,
		ProblemID: problemID,
		Author:    author,
		Text:      storageText,
	}
	if err := l.store.CreateLogEntry(ctx, entry); err != nil {
		return nil, err
	}

	source := links.Ref{Kind: links.KindLog, ID: entry.ID}
	if err := syncReferences(ctx, l.store, l.engine, source, storageText); err != nil {
		return nil, err
	}
	publishChange(ctx, l.events, source, "saved")

	return entry, nil
}

// UpdateEntry replaces the entry text, re-running the gate and the sync.
func (l *LogService) UpdateEntry(ctx context.Context, id uint, authored string) (*model.LogEntry, error) {
	if authored == "" {
		return nil, ErrMissingText
	}
	storageText, err := l.engine.ToStorage(ctx, authored)
	if err != nil {
		return nil, err
	}

	entry, err := l.store.GetLogEntry(ctx, id)
	if err != nil {
		return nil, err
	}
	entry.Text = storageText
	if err := l.store.UpdateLogEntry(ctx, entry); err != nil {
		return nil, err
	}

	source := links.Ref{Kind: links.KindLog, ID: entry.ID}
	if err := syncReferences(ctx, l.store, l.engine, source, storageText); err != nil {
		return nil, err
	}
	publishChange(ctx, l.events, source, "saved")

	return entry, nil
}

// Get retrieves a log entry by ID.
func (l *LogService) Get(ctx context.Context, id uint) (*model.LogEntry, error) {
	return l.store.GetLogEntry(ctx, id)
}

// Render expands the stored entry text for display.
func (l *LogService) Render(ctx context.Context, id uint, opts links.RenderOptions) (string, error) {
	entry, err := l.store.GetLogEntry(ctx, id)
	if err != nil {
		return "", err
	}
	return l.engine.Render(ctx, entry.Text, opts)
}

// DeleteEntry removes an entry and its outgoing reference edges.
func (l *LogService) DeleteEntry(ctx context.Context, id uint) error {
	if err := l.store.DeleteLogEntry(ctx, id); err != nil {
		return err
	}
	source := links.Ref{Kind: links.KindLog, ID: id}
	if err := syncReferences(ctx, l.store, l.engine, source, ""); err != nil {
		return err
	}
	publishChange(ctx, l.events, source, "deleted")
	return nil
}
