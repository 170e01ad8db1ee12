package links

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	reg := DefaultRegistry()

	tests := []struct {
		name string
		text string
		want []Token
	}{
		{
			name: "authoring slug token",
			text: "See [[machine:blackout]].",
			want: []Token{{Kind: KindMachine, Slug: "blackout"}},
		},
		{
			name: "storage form token",
			text: "See [[machine:id:42]].",
			want: []Token{{Kind: KindMachine, ID: 42, Storage: true}},
		},
		{
			name: "id addressed token",
			text: "Fixed in [[problem:7]]",
			want: []Token{{Kind: KindProblem, ID: 7, Storage: true}},
		},
		{
			name: "multiple tokens in order",
			text: "[[machine:blackout]] vs [[model:firepower]]",
			want: []Token{{Kind: KindMachine, Slug: "blackout"}, {Kind: KindModel, Slug: "firepower"}},
		},
		{
			name: "unknown kind is literal",
			text: "not a link: [[video:intro]]",
			want: nil,
		},
		{
			name: "malformed numeric id is literal",
			text: "[[machine:id:abc]] [[problem:seven]]",
			want: nil,
		},
		{
			name: "empty payload is literal",
			text: "[[machine:]] [[machine]]",
			want: nil,
		},
		{
			name: "bare id prefix is literal",
			text: "[[machine:id]]",
			want: nil,
		},
		{
			name: "nested opener rescans from inner bracket",
			text: "[[junk [[machine:blackout]]",
			want: []Token{{Kind: KindMachine, Slug: "blackout"}},
		},
		{
			name: "unclosed bracket",
			text: "dangling [[machine:blackout",
			want: nil,
		},
		{
			name: "no tokens",
			text: "plain text only",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(reg, tt.text)
			assert.Len(t, got, len(tt.want))
			for i, want := range tt.want {
				assert.Equal(t, want.Kind, got[i].Kind)
				assert.Equal(t, want.Slug, got[i].Slug)
				assert.Equal(t, want.ID, got[i].ID)
				assert.Equal(t, want.Storage, got[i].Storage)
			}
		})
	}
}

func TestParseOffsets(t *testing.T) {
	text := "a [[problem:7]] b"
	tokens := Parse(DefaultRegistry(), text)

	assert.Len(t, tokens, 1)
	assert.Equal(t, "[[problem:7]]", tokens[0].Raw)
	assert.Equal(t, tokens[0].Raw, text[tokens[0].Start:tokens[0].End])
}
