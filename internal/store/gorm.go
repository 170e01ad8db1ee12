package store

import (
	"context"

	"github.com/deanmoses/flipfix/internal/model"
	"gorm.io/gorm"
)

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{
		db: db,
	}
}

var _ Store = (*GormStore)(nil)

type GormStore struct {
	db *gorm.DB
}

func (g *GormStore) CreateMachine(ctx context.Context, machine *model.Machine) error {
	return g.db.WithContext(ctx).Create(machine).Error
}

func (g *GormStore) GetMachine(ctx context.Context, id uint) (*model.Machine, error) {
	var machine model.Machine
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&machine).Error
	return &machine, err
}

func (g *GormStore) GetMachineBySlug(ctx context.Context, slug string) (*model.Machine, error) {
	var machine model.Machine
	err := g.db.WithContext(ctx).Where("slug = ?", slug).First(&machine).Error
	return &machine, err
}

func (g *GormStore) ListMachines(ctx context.Context) ([]*model.Machine, error) {
	var machines []*model.Machine
	err := g.db.WithContext(ctx).Order("name").Find(&machines).Error
	return machines, err
}

func (g *GormStore) UpdateMachine(ctx context.Context, machine *model.Machine) error {
	return g.db.WithContext(ctx).Save(machine).Error
}

func (g *GormStore) DeleteMachine(ctx context.Context, id uint) error {
	return g.db.WithContext(ctx).Delete(&model.Machine{}, id).Error
}

func (g *GormStore) CreateMachineModel(ctx context.Context, mm *model.MachineModel) error {
	return g.db.WithContext(ctx).Create(mm).Error
}

func (g *GormStore) GetMachineModel(ctx context.Context, id uint) (*model.MachineModel, error) {
	var mm model.MachineModel
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&mm).Error
	return &mm, err
}

func (g *GormStore) GetMachineModelBySlug(ctx context.Context, slug string) (*model.MachineModel, error) {
	var mm model.MachineModel
	err := g.db.WithContext(ctx).Where("slug = ?", slug).First(&mm).Error
	return &mm, err
}

func (g *GormStore) ListMachineModels(ctx context.Context) ([]*model.MachineModel, error) {
	var mms []*model.MachineModel
	err := g.db.WithContext(ctx).Order("name").Find(&mms).Error
	return mms, err
}

func (g *GormStore) CreateProblem(ctx context.Context, problem *model.Problem) error {
	return g.db.WithContext(ctx).Create(problem).Error
}

func (g *GormStore) GetProblem(ctx context.Context, id uint) (*model.Problem, error) {
	var problem model.Problem
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&problem).Error
	return &problem, err
}

func (g *GormStore) ListProblems(ctx context.Context) ([]*model.Problem, error) {
	var problems []*model.Problem
	err := g.db.WithContext(ctx).Find(&problems).Error
	return problems, err
}

func (g *GormStore) ListMachineProblems(ctx context.Context, machineID uint) ([]*model.Problem, error) {
	var problems []*model.Problem
	err := g.db.WithContext(ctx).Where("machine_id = ?", machineID).Order("created_at desc").Find(&problems).Error
	return problems, err
}

func (g *GormStore) UpdateProblem(ctx context.Context, problem *model.Problem) error {
	return g.db.WithContext(ctx).Save(problem).Error
}

func (g *GormStore) DeleteProblem(ctx context.Context, id uint) error {
	return g.db.WithContext(ctx).Delete(&model.Problem{}, id).Error
}

func (g *GormStore) CreateLogEntry(ctx context.Context, entry *model.LogEntry) error {
	return g.db.WithContext(ctx).Create(entry).Error
}

func (g *GormStore) GetLogEntry(ctx context.Context, id uint) (*model.LogEntry, error) {
	var entry model.LogEntry
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&entry).Error
	return &entry, err
}

func (g *GormStore) ListLogEntries(ctx context.Context) ([]*model.LogEntry, error) {
	var entries []*model.LogEntry
	err := g.db.WithContext(ctx).Find(&entries).Error
	return entries, err
}

func (g *GormStore) ListMachineLogEntries(ctx context.Context, machineID uint) ([]*model.LogEntry, error) {
	var entries []*model.LogEntry
	err := g.db.WithContext(ctx).Where("machine_id = ?", machineID).Order("created_at desc").Find(&entries).Error
	return entries, err
}

func (g *GormStore) UpdateLogEntry(ctx context.Context, entry *model.LogEntry) error {
	return g.db.WithContext(ctx).Save(entry).Error
}

func (g *GormStore) DeleteLogEntry(ctx context.Context, id uint) error {
	return g.db.WithContext(ctx).Delete(&model.LogEntry{}, id).Error
}

func (g *GormStore) CreatePartRequest(ctx context.Context, req *model.PartRequest) error {
	return g.db.WithContext(ctx).Create(req).Error
}

func (g *GormStore) GetPartRequest(ctx context.Context, id uint) (*model.PartRequest, error) {
	var req model.PartRequest
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&req).Error
	return &req, err
}

func (g *GormStore) ListPartRequests(ctx context.Context) ([]*model.PartRequest, error) {
	var reqs []*model.PartRequest
	err := g.db.WithContext(ctx).Find(&reqs).Error
	return reqs, err
}

func (g *GormStore) UpdatePartRequest(ctx context.Context, req *model.PartRequest) error {
	return g.db.WithContext(ctx).Save(req).Error
}

func (g *GormStore) DeletePartRequest(ctx context.Context, id uint) error {
	return g.db.WithContext(ctx).Delete(&model.PartRequest{}, id).Error
}

func (g *GormStore) CreatePartRequestUpdate(ctx context.Context, update *model.PartRequestUpdate) error {
	return g.db.WithContext(ctx).Create(update).Error
}

func (g *GormStore) GetPartRequestUpdate(ctx context.Context, id uint) (*model.PartRequestUpdate, error) {
	var update model.PartRequestUpdate
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&update).Error
	return &update, err
}

func (g *GormStore) ListPartRequestUpdates(ctx context.Context, requestID uint) ([]*model.PartRequestUpdate, error) {
	var updates []*model.PartRequestUpdate
	err := g.db.WithContext(ctx).Where("part_request_id = ?", requestID).Order("created_at").Find(&updates).Error
	return updates, err
}

func (g *GormStore) ListAllPartRequestUpdates(ctx context.Context) ([]*model.PartRequestUpdate, error) {
	var updates []*model.PartRequestUpdate
	err := g.db.WithContext(ctx).Find(&updates).Error
	return updates, err
}

func (g *GormStore) DeletePartRequestUpdate(ctx context.Context, id uint) error {
	return g.db.WithContext(ctx).Delete(&model.PartRequestUpdate{}, id).Error
}

func (g *GormStore) CreateWikiPage(ctx context.Context, page *model.WikiPage) error {
	return g.db.WithContext(ctx).Create(page).Error
}

func (g *GormStore) GetWikiPage(ctx context.Context, id uint) (*model.WikiPage, error) {
	var page model.WikiPage
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&page).Error
	return &page, err
}

func (g *GormStore) GetWikiPageBySlug(ctx context.Context, slug string) (*model.WikiPage, error) {
	var page model.WikiPage
	err := g.db.WithContext(ctx).Where("slug = ?", slug).First(&page).Error
	return &page, err
}

func (g *GormStore) ListWikiPages(ctx context.Context) ([]*model.WikiPage, error) {
	var pages []*model.WikiPage
	err := g.db.WithContext(ctx).Order("title").Find(&pages).Error
	return pages, err
}

func (g *GormStore) UpdateWikiPage(ctx context.Context, page *model.WikiPage) error {
	return g.db.WithContext(ctx).Save(page).Error
}

func (g *GormStore) DeleteWikiPage(ctx context.Context, id uint) error {
	return g.db.WithContext(ctx).Delete(&model.WikiPage{}, id).Error
}

func (g *GormStore) CreateWikiRevision(ctx context.Context, rev *model.WikiRevision) error {
	return g.db.WithContext(ctx).Create(rev).Error
}

func (g *GormStore) ListWikiRevisions(ctx context.Context, pageID uint) ([]*model.WikiRevision, error) {
	var revs []*model.WikiRevision
	err := g.db.WithContext(ctx).Where("page_id = ?", pageID).Order("version desc").Find(&revs).Error
	return revs, err
}

func (g *GormStore) GetWikiRevision(ctx context.Context, pageID uint, version int64) (*model.WikiRevision, error) {
	var rev model.WikiRevision
	err := g.db.WithContext(ctx).Where("page_id = ? AND version = ?", pageID, version).First(&rev).Error
	return &rev, err
}

func (g *GormStore) ListReferences(ctx context.Context, sourceType string, sourceID uint) ([]*model.RecordReference, error) {
	var refs []*model.RecordReference
	err := g.db.WithContext(ctx).Where("source_type = ? AND source_id = ?", sourceType, sourceID).Find(&refs).Error
	return refs, err
}

func (g *GormStore) ListBacklinks(ctx context.Context, targetType string, targetID uint) ([]*model.RecordReference, error) {
	var refs []*model.RecordReference
	err := g.db.WithContext(ctx).Where("target_type = ? AND target_id = ?", targetType, targetID).Order("created_at").Find(&refs).Error
	return refs, err
}

func (g *GormStore) AddReference(ctx context.Context, ref *model.RecordReference) error {
	return g.db.WithContext(ctx).Create(ref).Error
}

func (g *GormStore) RemoveReference(ctx context.Context, sourceType string, sourceID uint, targetType string, targetID uint) error {
	return g.db.WithContext(ctx).
		Where("source_type = ? AND source_id = ? AND target_type = ? AND target_id = ?", sourceType, sourceID, targetType, targetID).
		Delete(&model.RecordReference{}).Error
}

func (g *GormStore) Migrate() error {
	return model.Migrate(g.db)
}

func (g *GormStore) Transaction(ctx context.Context, f func(tx Store) error) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return f(&GormStore{db: tx})
	})
}
