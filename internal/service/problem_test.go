package service

import (
	"context"
	"testing"

	"github.com/deanmoses/flipfix/internal/links"
	"github.com/stretchr/testify/assert"
)

func TestProblemService_Report(t *testing.T) {
	f := newFixture(t)
	ctx := context.TODO()
	machine := f.addMachine(t, "Blackout", "blackout")
	other := f.addMachine(t, "Firepower", "firepower")

	problem, err := f.problems.Report(ctx, machine.ID, "moses", "Same fault as on [[machine:firepower]].")
	assert.NoError(t, err)
	assert.Equal(t, "open", problem.Status)
	assert.Len(t, problem.ReportKey, 36)
	assert.Contains(t, problem.Description, "[[machine:id:2]]")

	backlinks, err := f.backlinks.ListBacklinks(ctx, links.KindMachine, other.ID)
	assert.NoError(t, err)
	assert.Len(t, backlinks, 1)
	assert.Equal(t, "problem", backlinks[0].SourceKind)
	assert.Equal(t, "/problems/1/", backlinks[0].URL)
}

func TestProblemService_ReportValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.TODO()
	machine := f.addMachine(t, "Blackout", "blackout")

	_, err := f.problems.Report(ctx, 0, "moses", "text")
	assert.ErrorIs(t, err, ErrMissingMachine)

	_, err = f.problems.Report(ctx, machine.ID, "moses", "")
	assert.ErrorIs(t, err, ErrMissingText)

	// an unknown machine id fails the existence check
	_, err = f.problems.Report(ctx, 999999, "moses", "text")
	assert.Error(t, err)

	// an unresolvable slug blocks the save
	_, err = f.problems.Report(ctx, machine.ID, "moses", "see [[machine:nope]]")
	var notFound *links.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestProblemService_UpdateDescriptionResyncs(t *testing.T) {
	f := newFixture(t)
	ctx := context.TODO()
	machine := f.addMachine(t, "Blackout", "blackout")
	other := f.addMachine(t, "Firepower", "firepower")

	problem, err := f.problems.Report(ctx, machine.ID, "moses", "mentions [[machine:firepower]]")
	assert.NoError(t, err)

	_, err = f.problems.UpdateDescription(ctx, problem.ID, "no mentions anymore")
	assert.NoError(t, err)

	backlinks, err := f.backlinks.ListBacklinks(ctx, links.KindMachine, other.ID)
	assert.NoError(t, err)
	assert.Empty(t, backlinks)
}

func TestProblemService_SetStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.TODO()
	machine := f.addMachine(t, "Blackout", "blackout")

	problem, err := f.problems.Report(ctx, machine.ID, "moses", "Flipper stuck on left side")
	assert.NoError(t, err)

	problem, err = f.problems.SetStatus(ctx, problem.ID, "fixed")
	assert.NoError(t, err)
	assert.Equal(t, "fixed", problem.Status)
}

func TestLogService_AddEntry(t *testing.T) {
	f := newFixture(t)
	ctx := context.TODO()
	machine := f.addMachine(t, "Blackout", "blackout")

	problem, err := f.problems.Report(ctx, machine.ID, "moses", "Flipper stuck on left side")
	assert.NoError(t, err)

	entry, err := f.logs.AddEntry(ctx, machine.ID, &problem.ID, "moses", "Rebuilt the flipper, see [[problem:1]].")
	assert.NoError(t, err)
	assert.Equal(t, problem.ID, *entry.ProblemID)

	backlinks, err := f.backlinks.ListBacklinks(ctx, links.KindProblem, problem.ID)
	assert.NoError(t, err)
	assert.Len(t, backlinks, 1)
	assert.Equal(t, "log", backlinks[0].SourceKind)

	rendered, err := f.logs.Render(ctx, entry.ID, links.RenderOptions{})
	assert.NoError(t, err)
	assert.Contains(t, rendered, "[Problem #1: Flipper stuck on lef…]")
}

func TestPartService_RequestAndUpdates(t *testing.T) {
	f := newFixture(t)
	ctx := context.TODO()
	machine := f.addMachine(t, "Blackout", "blackout")

	req, err := f.parts.CreateRequest(ctx, machine.ID, "Need a flipper coil for [[machine:blackout]]")
	assert.NoError(t, err)
	assert.Equal(t, "requested", req.Status)

	update, err := f.parts.AddUpdate(ctx, req.ID, "Ordered from Marco")
	assert.NoError(t, err)

	updates, err := f.parts.ListUpdates(ctx, req.ID)
	assert.NoError(t, err)
	assert.Len(t, updates, 1)
	assert.Equal(t, update.ID, updates[0].ID)

	req, err = f.parts.SetStatus(ctx, req.ID, "ordered")
	assert.NoError(t, err)
	assert.Equal(t, "ordered", req.Status)

	// an update on a missing request fails the existence check
	_, err = f.parts.AddUpdate(ctx, 999999, "text")
	assert.Error(t, err)
}

func TestPartService_DeleteRequestClearsEdges(t *testing.T) {
	f := newFixture(t)
	ctx := context.TODO()
	machine := f.addMachine(t, "Blackout", "blackout")

	req, err := f.parts.CreateRequest(ctx, machine.ID, "coil for [[machine:blackout]]")
	assert.NoError(t, err)

	_, err = f.parts.AddUpdate(ctx, req.ID, "still waiting on [[machine:blackout]]")
	assert.NoError(t, err)

	backlinks, err := f.backlinks.ListBacklinks(ctx, links.KindMachine, machine.ID)
	assert.NoError(t, err)
	assert.Len(t, backlinks, 2)

	assert.NoError(t, f.parts.DeleteRequest(ctx, req.ID))

	backlinks, err = f.backlinks.ListBacklinks(ctx, links.KindMachine, machine.ID)
	assert.NoError(t, err)
	assert.Empty(t, backlinks)
}

func TestBacklinkService_UnknownKind(t *testing.T) {
	f := newFixture(t)

	_, err := f.backlinks.ListBacklinks(context.TODO(), links.Kind("video"), 1)
	assert.ErrorIs(t, err, ErrUnknownKind)
}
