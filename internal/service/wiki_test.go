package service

import (
	"context"
	"testing"

	"github.com/deanmoses/flipfix/internal/compress"
	"github.com/deanmoses/flipfix/internal/events"
	"github.com/deanmoses/flipfix/internal/links"
	"github.com/deanmoses/flipfix/internal/model"
	"github.com/deanmoses/flipfix/internal/store"
	"github.com/deanmoses/flipfix/internal/tester"
	"github.com/stretchr/testify/assert"
)

type fixture struct {
	store     store.Store
	engine    *links.Engine
	registry  *links.Registry
	wiki      *WikiService
	problems  *ProblemService
	logs      *LogService
	parts     *PartService
	backlinks *BacklinkService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	tester.Setup("service")

	st := store.NewGormStore(tester.TestDB())
	registry := links.DefaultRegistry()
	engine := links.NewEngine(registry, store.NewLinkResolver(st))
	pub := events.NewNop()

	return &fixture{
		store:     st,
		engine:    engine,
		registry:  registry,
		wiki:      NewWikiService(st, engine, nil, compress.NewGZip(), pub),
		problems:  NewProblemService(st, engine, pub),
		logs:      NewLogService(st, engine, pub),
		parts:     NewPartService(st, engine, pub),
		backlinks: NewBacklinkService(st, engine, registry),
	}
}

func (f *fixture) addMachine(t *testing.T, name, slug string) *model.Machine {
	t.Helper()
	machine := &model.Machine{Name: name, Slug: slug, Location: "floor"}
	assert.NoError(t, f.store.CreateMachine(context.TODO(), machine))
	return machine
}

func TestWikiService_SavePage(t *testing.T) {
	f := newFixture(t)
	ctx := context.TODO()
	machine := f.addMachine(t, "Blackout", "blackout")

	page, err := f.wiki.SavePage(ctx, "flipper-rebuilds", "Flipper Rebuilds", "See [[machine:blackout]] for the worst case.")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), page.Version)
	assert.Equal(t, "See [[machine:id:1]] for the worst case.", page.Content)

	// the save synced one edge to the machine
	backlinks, err := f.backlinks.ListBacklinks(ctx, links.KindMachine, machine.ID)
	assert.NoError(t, err)
	assert.Len(t, backlinks, 1)
	assert.Equal(t, "wiki", backlinks[0].SourceKind)
	assert.Equal(t, page.ID, backlinks[0].SourceID)
	assert.Equal(t, "Flipper Rebuilds", backlinks[0].Label)
	assert.Equal(t, "/wiki/flipper-rebuilds/", backlinks[0].URL)

	// a compressed revision snapshot exists
	content, err := f.wiki.RevisionContent(ctx, page.ID, 1)
	assert.NoError(t, err)
	assert.Equal(t, page.Content, content)
}

func TestWikiService_SavePageBrokenReferenceBlocksSave(t *testing.T) {
	f := newFixture(t)
	ctx := context.TODO()

	_, err := f.wiki.SavePage(ctx, "notes", "Notes", "See [[machine:nope]].")
	assert.Error(t, err)

	var notFound *links.NotFoundError
	assert.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Machine not found: nope", notFound.Error())

	// nothing was persisted
	_, err = f.wiki.GetPage(ctx, "notes")
	assert.Error(t, err)
}

func TestWikiService_ResaveRemovesStaleEdges(t *testing.T) {
	f := newFixture(t)
	ctx := context.TODO()
	machine := f.addMachine(t, "Blackout", "blackout")

	page, err := f.wiki.SavePage(ctx, "notes", "Notes", "[[machine:blackout]]")
	assert.NoError(t, err)

	// the second save no longer mentions the machine
	page, err = f.wiki.SavePage(ctx, "notes", "Notes", "nothing linked anymore")
	assert.NoError(t, err)
	assert.Equal(t, int64(2), page.Version)

	backlinks, err := f.backlinks.ListBacklinks(ctx, links.KindMachine, machine.ID)
	assert.NoError(t, err)
	assert.Empty(t, backlinks)
}

func TestWikiService_EditPageRoundTrip(t *testing.T) {
	f := newFixture(t)
	ctx := context.TODO()
	f.addMachine(t, "Blackout", "blackout")

	authored := "See [[machine:blackout]]."
	_, err := f.wiki.SavePage(ctx, "notes", "Notes", authored)
	assert.NoError(t, err)

	_, editable, err := f.wiki.EditPage(ctx, "notes")
	assert.NoError(t, err)
	assert.Equal(t, authored, editable)
}

func TestWikiService_RenderPage(t *testing.T) {
	f := newFixture(t)
	ctx := context.TODO()
	f.addMachine(t, "Blackout", "blackout")

	_, err := f.wiki.SavePage(ctx, "notes", "Notes", "See [[machine:blackout]].")
	assert.NoError(t, err)

	rendered, err := f.wiki.RenderPage(ctx, "notes", links.RenderOptions{BaseURL: "https://x.test"})
	assert.NoError(t, err)
	assert.Contains(t, rendered, "[Blackout](https://x.test/machines/blackout/)")

	plain, err := f.wiki.RenderPage(ctx, "notes", links.RenderOptions{PlainText: true})
	assert.NoError(t, err)
	assert.Equal(t, "See Blackout.", plain)
}

func TestWikiService_DeletePageClearsEdges(t *testing.T) {
	f := newFixture(t)
	ctx := context.TODO()
	machine := f.addMachine(t, "Blackout", "blackout")

	_, err := f.wiki.SavePage(ctx, "notes", "Notes", "[[machine:blackout]]")
	assert.NoError(t, err)

	assert.NoError(t, f.wiki.DeletePage(ctx, "notes"))

	backlinks, err := f.backlinks.ListBacklinks(ctx, links.KindMachine, machine.ID)
	assert.NoError(t, err)
	assert.Empty(t, backlinks)
}
