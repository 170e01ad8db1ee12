package links

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReferencesDedup(t *testing.T) {
	engine := blackoutEngine()

	refs, err := engine.References(context.TODO(), "[[machine:id:42]] twice [[machine:id:42]]")
	assert.NoError(t, err)
	assert.Equal(t, []Ref{{Kind: KindMachine, ID: 42}}, refs)
}

func TestReferencesSkipMissingTargets(t *testing.T) {
	engine := blackoutEngine()

	refs, err := engine.References(context.TODO(), "[[machine:id:999999]] and [[problem:7]]")
	assert.NoError(t, err)
	assert.Equal(t, []Ref{{Kind: KindProblem, ID: 7}}, refs)
}

func TestSyncReferences(t *testing.T) {
	engine := blackoutEngine()
	edges := newFakeEdges()
	ctx := context.TODO()
	source := Ref{Kind: KindWiki, ID: 1}

	// first sync inserts both edges
	err := engine.SyncReferences(ctx, edges, source, "[[machine:id:42]] [[problem:7]]")
	assert.NoError(t, err)
	assert.Len(t, edges.edges[source], 2)

	// re-sync with the same text touches nothing
	edges.added, edges.removed = nil, nil
	err = engine.SyncReferences(ctx, edges, source, "[[machine:id:42]] [[problem:7]]")
	assert.NoError(t, err)
	assert.Empty(t, edges.added)
	assert.Empty(t, edges.removed)

	// dropping one mention removes only its edge
	err = engine.SyncReferences(ctx, edges, source, "[[problem:7]]")
	assert.NoError(t, err)
	assert.Len(t, edges.edges[source], 1)
	assert.True(t, edges.edges[source][Ref{Kind: KindProblem, ID: 7}])
}

func TestSyncReferencesDedup(t *testing.T) {
	engine := blackoutEngine()
	edges := newFakeEdges()
	source := Ref{Kind: KindWiki, ID: 1}

	err := engine.SyncReferences(context.TODO(), edges, source, "[[machine:id:42]] and again [[machine:id:42]]")
	assert.NoError(t, err)
	assert.Len(t, edges.edges[source], 1)
	assert.Len(t, edges.added, 1)
}

func TestSyncReferencesEmptyText(t *testing.T) {
	engine := blackoutEngine()
	edges := newFakeEdges()
	ctx := context.TODO()
	source := Ref{Kind: KindProblem, ID: 3}

	err := engine.SyncReferences(ctx, edges, source, "[[machine:id:42]]")
	assert.NoError(t, err)
	assert.Len(t, edges.edges[source], 1)

	// a delete syncs with empty text, clearing every outgoing edge
	err = engine.SyncReferences(ctx, edges, source, "")
	assert.NoError(t, err)
	assert.Empty(t, edges.edges[source])
}

func TestSyncReferencesIgnoresMalformedTokens(t *testing.T) {
	engine := blackoutEngine()
	edges := newFakeEdges()
	source := Ref{Kind: KindWiki, ID: 1}

	err := engine.SyncReferences(context.TODO(), edges, source, "[[machine:id:abc]] [[video:intro]] [[problem:]]")
	assert.NoError(t, err)
	assert.Empty(t, edges.edges[source])
}
