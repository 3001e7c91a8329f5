package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromptGroups_KeepsEncounterOrder(t *testing.T) {
	groups := NewPromptGroups()

	groups.Add(Prompt{Mutator: "B", Text: "b1"})
	groups.Add(Prompt{Mutator: "A", Text: "a1"})
	groups.Add(Prompt{Mutator: "B", Text: "b2"})
	groups.Add(Prompt{Mutator: "A", Text: "a2"})
	groups.Add(Prompt{Mutator: "B", Text: "b3"})

	require.Equal(t, 2, groups.Len())
	assert.Equal(t, 5, groups.Total())

	all := groups.Groups()
	assert.Equal(t, "B", all[0].Mutator)
	assert.Equal(t, []string{"b1", "b2", "b3"}, all[0].Texts())
	assert.Equal(t, "A", all[1].Mutator)
	assert.Equal(t, []string{"a1", "a2"}, all[1].Texts())

	group, ok := groups.Get("A")
	require.True(t, ok)
	assert.Len(t, group.Prompts, 2)

	_, ok = groups.Get("C")
	assert.False(t, ok)
}

func TestPromptGroups_ZeroValueAndNil(t *testing.T) {
	var zero PromptGroups
	zero.Add(Prompt{Mutator: "X", Text: "x"})
	assert.Equal(t, 1, zero.Len())

	var nilGroups *PromptGroups
	assert.Equal(t, 0, nilGroups.Len())
	assert.Equal(t, 0, nilGroups.Total())
	assert.Nil(t, nilGroups.Groups())

	_, ok := nilGroups.Get("X")
	assert.False(t, ok)
}

func TestPromptGroups_GroupsReturnsCopy(t *testing.T) {
	groups := NewPromptGroups()
	groups.Add(Prompt{Mutator: "X", Text: "x"})

	snapshot := groups.Groups()
	snapshot[0].Mutator = "changed"

	assert.Equal(t, "X", groups.Groups()[0].Mutator)
}

func TestPromptGroups_GroupsSnapshot(t *testing.T) {
	groups := NewPromptGroups()
	groups.Add(Prompt{File: "a.js", Line: 1, Mutator: "Foo", Original: "x", Mutated: "y", Text: "t1"})
	groups.Add(Prompt{File: "b.js", Line: 2, Mutator: "Bar", Original: "N/A", Mutated: "N/A", Text: "t2"})
	groups.Add(Prompt{File: "c.js", Line: 3, Mutator: "Foo", Original: "z", Mutated: "N/A", Text: "t3"})

	want := []PromptGroup{
		{Mutator: "Foo", Prompts: []Prompt{
			{File: "a.js", Line: 1, Mutator: "Foo", Original: "x", Mutated: "y", Text: "t1"},
			{File: "c.js", Line: 3, Mutator: "Foo", Original: "z", Mutated: "N/A", Text: "t3"},
		}},
		{Mutator: "Bar", Prompts: []Prompt{
			{File: "b.js", Line: 2, Mutator: "Bar", Original: "N/A", Mutated: "N/A", Text: "t2"},
		}},
	}

	if diff := cmp.Diff(want, groups.Groups()); diff != "" {
		t.Errorf("groups mismatch (-want +got):\n%s", diff)
	}
}
