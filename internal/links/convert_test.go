package links

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func blackoutEngine() *Engine {
	return testEngine(
		&Target{Kind: KindMachine, ID: 42, Slug: "blackout", Label: "Blackout"},
		&Target{Kind: KindModel, ID: 3, Slug: "firepower", Label: "Firepower"},
		&Target{Kind: KindProblem, ID: 7, Preview: "Flipper stuck on left side"},
	)
}

func TestToStorage(t *testing.T) {
	engine := blackoutEngine()
	ctx := context.TODO()

	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "slug reference rewritten to id",
			text: "See [[machine:blackout]].",
			want: "See [[machine:id:42]].",
		},
		{
			name: "storage form passes through",
			text: "See [[machine:id:42]].",
			want: "See [[machine:id:42]].",
		},
		{
			name: "id addressed kind passes through",
			text: "Fixed [[problem:7]] today",
			want: "Fixed [[problem:7]] today",
		},
		{
			name: "mixed tokens",
			text: "[[machine:blackout]] and [[model:firepower]] and [[problem:7]]",
			want: "[[machine:id:42]] and [[model:id:3]] and [[problem:7]]",
		},
		{
			name: "unknown kind untouched",
			text: "[[video:intro]] stays",
			want: "[[video:intro]] stays",
		},
		{
			name: "empty input",
			text: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.ToStorage(ctx, tt.text)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)

			// storage conversion is idempotent
			again, err := engine.ToStorage(ctx, got)
			assert.NoError(t, err)
			assert.Equal(t, got, again)
		})
	}
}

func TestToStorageNotFound(t *testing.T) {
	engine := blackoutEngine()

	_, err := engine.ToStorage(context.TODO(), "[[machine:nope]]")
	assert.Error(t, err)

	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
	assert.Equal(t, KindMachine, notFound.Kind)
	assert.Equal(t, "nope", notFound.Slug)
	assert.Equal(t, "Machine not found: nope", notFound.Error())
}

func TestToAuthoring(t *testing.T) {
	engine := blackoutEngine()
	ctx := context.TODO()

	got, err := engine.ToAuthoring(ctx, "See [[machine:id:42]].")
	assert.NoError(t, err)
	assert.Equal(t, "See [[machine:blackout]].", got)

	// broken storage tokens are preserved verbatim, never stripped
	got, err = engine.ToAuthoring(ctx, "See [[machine:id:999999]].")
	assert.NoError(t, err)
	assert.Equal(t, "See [[machine:id:999999]].", got)

	// id addressed kinds are already canonical
	got, err = engine.ToAuthoring(ctx, "[[problem:7]]")
	assert.NoError(t, err)
	assert.Equal(t, "[[problem:7]]", got)
}

func TestRoundTrip(t *testing.T) {
	engine := blackoutEngine()
	ctx := context.TODO()

	authored := "See [[machine:blackout]] and [[model:firepower]], also [[problem:7]]."

	stored, err := engine.ToStorage(ctx, authored)
	assert.NoError(t, err)

	back, err := engine.ToAuthoring(ctx, stored)
	assert.NoError(t, err)
	assert.Equal(t, authored, back)

	stored2, err := engine.ToStorage(ctx, back)
	assert.NoError(t, err)
	assert.Equal(t, stored, stored2)
}
