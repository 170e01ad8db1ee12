package store

import (
	"context"

	"github.com/deanmoses/flipfix/internal/model"
)

type Store interface {
	MachineStore
	ProblemStore
	MaintenanceStore
	PartStore
	WikiStore
	ReferenceStore
	Transaction(ctx context.Context, f func(tx Store) error) error
	Migrate() error
}

type MachineStore interface {
	// CreateMachine creates a new machine.
	CreateMachine(ctx context.Context, machine *model.Machine) error
	// GetMachine retrieves a machine by ID.
	GetMachine(ctx context.Context, id uint) (*model.Machine, error)
	// GetMachineBySlug retrieves a machine by slug.
	GetMachineBySlug(ctx context.Context, slug string) (*model.Machine, error)
	// ListMachines retrieves all machines.
	ListMachines(ctx context.Context) ([]*model.Machine, error)
	// UpdateMachine updates a machine.
	UpdateMachine(ctx context.Context, machine *model.Machine) error
	// DeleteMachine deletes a machine by ID.
	DeleteMachine(ctx context.Context, id uint) error
	// CreateMachineModel creates a new catalog entry.
	CreateMachineModel(ctx context.Context, mm *model.MachineModel) error
	// GetMachineModel retrieves a catalog entry by ID.
	GetMachineModel(ctx context.Context, id uint) (*model.MachineModel, error)
	// GetMachineModelBySlug retrieves a catalog entry by slug.
	GetMachineModelBySlug(ctx context.Context, slug string) (*model.MachineModel, error)
	// ListMachineModels retrieves all catalog entries.
	ListMachineModels(ctx context.Context) ([]*model.MachineModel, error)
}

type ProblemStore interface {
	// CreateProblem creates a new problem report.
	CreateProblem(ctx context.Context, problem *model.Problem) error
	// GetProblem retrieves a problem by ID.
	GetProblem(ctx context.Context, id uint) (*model.Problem, error)
	// ListProblems retrieves all problems.
	ListProblems(ctx context.Context) ([]*model.Problem, error)
	// ListMachineProblems retrieves the problems reported for a machine.
	ListMachineProblems(ctx context.Context, machineID uint) ([]*model.Problem, error)
	// UpdateProblem updates a problem.
	UpdateProblem(ctx context.Context, problem *model.Problem) error
	// DeleteProblem deletes a problem by ID.
	DeleteProblem(ctx context.Context, id uint) error
}

type MaintenanceStore interface {
	// CreateLogEntry creates a new maintenance log entry.
	CreateLogEntry(ctx context.Context, entry *model.LogEntry) error
	// GetLogEntry retrieves a log entry by ID.
	GetLogEntry(ctx context.Context, id uint) (*model.LogEntry, error)
	// ListLogEntries retrieves all log entries.
	ListLogEntries(ctx context.Context) ([]*model.LogEntry, error)
	// ListMachineLogEntries retrieves the log entries for a machine.
	ListMachineLogEntries(ctx context.Context, machineID uint) ([]*model.LogEntry, error)
	// UpdateLogEntry updates a log entry.
	UpdateLogEntry(ctx context.Context, entry *model.LogEntry) error
	// DeleteLogEntry deletes a log entry by ID.
	DeleteLogEntry(ctx context.Context, id uint) error
}

type PartStore interface {
	// CreatePartRequest creates a new part request.
	CreatePartRequest(ctx context.Context, req *model.PartRequest) error
	// GetPartRequest retrieves a part request by ID.
	GetPartRequest(ctx context.Context, id uint) (*model.PartRequest, error)
	// ListPartRequests retrieves all part requests.
	ListPartRequests(ctx context.Context) ([]*model.PartRequest, error)
	// UpdatePartRequest updates a part request.
	UpdatePartRequest(ctx context.Context, req *model.PartRequest) error
	// DeletePartRequest deletes a part request by ID.
	DeletePartRequest(ctx context.Context, id uint) error
	// CreatePartRequestUpdate creates a progress note on a part request.
	CreatePartRequestUpdate(ctx context.Context, update *model.PartRequestUpdate) error
	// GetPartRequestUpdate retrieves a progress note by ID.
	GetPartRequestUpdate(ctx context.Context, id uint) (*model.PartRequestUpdate, error)
	// ListPartRequestUpdates retrieves the progress notes on a part request.
	ListPartRequestUpdates(ctx context.Context, requestID uint) ([]*model.PartRequestUpdate, error)
	// ListAllPartRequestUpdates retrieves every progress note.
	ListAllPartRequestUpdates(ctx context.Context) ([]*model.PartRequestUpdate, error)
	// DeletePartRequestUpdate deletes a progress note by ID.
	DeletePartRequestUpdate(ctx context.Context, id uint) error
}

type WikiStore interface {
	// CreateWikiPage creates a new wiki page.
	CreateWikiPage(ctx context.Context, page *model.WikiPage) error
	// GetWikiPage retrieves a wiki page by ID.
	GetWikiPage(ctx context.Context, id uint) (*model.WikiPage, error)
	// GetWikiPageBySlug retrieves a wiki page by slug.
	GetWikiPageBySlug(ctx context.Context, slug string) (*model.WikiPage, error)
	// ListWikiPages retrieves all wiki pages.
	ListWikiPages(ctx context.Context) ([]*model.WikiPage, error)
	// UpdateWikiPage updates a wiki page.
	UpdateWikiPage(ctx context.Context, page *model.WikiPage) error
	// DeleteWikiPage deletes a wiki page by ID.
	DeleteWikiPage(ctx context.Context, id uint) error
	// CreateWikiRevision stores a compressed page snapshot.
	CreateWikiRevision(ctx context.Context, rev *model.WikiRevision) error
	// ListWikiRevisions retrieves the revisions of a page, newest first.
	ListWikiRevisions(ctx context.Context, pageID uint) ([]*model.WikiRevision, error)
	// GetWikiRevision retrieves one revision of a page.
	GetWikiRevision(ctx context.Context, pageID uint, version int64) (*model.WikiRevision, error)
}

type ReferenceStore interface {
	// ListReferences retrieves the outgoing edges of a source record.
	ListReferences(ctx context.Context, sourceType string, sourceID uint) ([]*model.RecordReference, error)
	// ListBacklinks retrieves the incoming edges of a target record.
	ListBacklinks(ctx context.Context, targetType string, targetID uint) ([]*model.RecordReference, error)
	// AddReference inserts one edge.
	AddReference(ctx context.Context, ref *model.RecordReference) error
	// RemoveReference deletes one edge.
	RemoveReference(ctx context.Context, sourceType string, sourceID uint, targetType string, targetID uint) error
}
