package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFiles_UnmarshalKeepsDocumentOrder(t *testing.T) {
	data := `{"files": {"z.js": {"mutants": []}, "a.js": {"mutants": []}, "m.js": {"mutants": []}}}`

	var report Report
	require.NoError(t, json.Unmarshal([]byte(data), &report))

	paths := make([]string, 0, len(report.Files))
	for _, f := range report.Files {
		paths = append(paths, f.Path)
	}

	assert.Equal(t, []string{"z.js", "a.js", "m.js"}, paths)
}

func TestFiles_UnmarshalRejectsNonObject(t *testing.T) {
	var files Files
	require.Error(t, json.Unmarshal([]byte(`["a.js"]`), &files))
	require.Error(t, files.UnmarshalJSON([]byte(`null`)))
}

func TestFiles_MarshalKeepsOrder(t *testing.T) {
	src := "x"
	files := Files{
		{Path: "b.js", Entry: FileEntry{Source: &src, Mutants: []Mutant{}}},
		{Path: "a.js", Entry: FileEntry{Mutants: []Mutant{}}},
	}

	data, err := json.Marshal(files)
	require.NoError(t, err)
	assert.Equal(t, `{"b.js":{"source":"x","mutants":[]},"a.js":{"mutants":[]}}`, string(data))
}

func TestMutantAccessors(t *testing.T) {
	line := 4
	name := "ConditionalExpression"
	replacement := "true"

	full := Mutant{
		Status:      Survived,
		Location:    &Location{Start: &Position{Line: &line}},
		Replacement: &replacement,
		MutatorName: &name,
	}

	assert.True(t, full.IsSurvived())

	got, ok := full.StartLine()
	assert.True(t, ok)
	assert.Equal(t, 4, got)

	mutator, ok := full.Mutator()
	assert.True(t, ok)
	assert.Equal(t, name, mutator)
	assert.Equal(t, "true", full.MutatedCode())

	empty := Mutant{Status: Killed}
	assert.False(t, empty.IsSurvived())

	_, ok = empty.StartLine()
	assert.False(t, ok)

	_, ok = Mutant{Location: &Location{}}.StartLine()
	assert.False(t, ok)

	_, ok = empty.Mutator()
	assert.False(t, ok)
	assert.Equal(t, NotAvailable, empty.MutatedCode())
}

func TestMutant_StatusIsCaseSensitive(t *testing.T) {
	assert.False(t, Mutant{Status: "survived"}.IsSurvived())
	assert.False(t, Mutant{Status: "SURVIVED"}.IsSurvived())
	assert.True(t, Mutant{Status: "Survived"}.IsSurvived())
}

func TestMutant_EmptyReplacementIsKept(t *testing.T) {
	empty := ""
	assert.Equal(t, "", Mutant{Replacement: &empty}.MutatedCode())
}

func TestMutant_UnmarshalSkipsFieldsOfNonSurvivors(t *testing.T) {
	var killed Mutant
	require.NoError(t, json.Unmarshal([]byte(`{"status":"Killed","location":{"start":{"line":"x"}},"mutatorName":5,"replacement":7}`), &killed))
	assert.Equal(t, Mutant{Status: Killed}, killed)

	var odd Mutant
	require.NoError(t, json.Unmarshal([]byte(`{"status":42}`), &odd))
	assert.Equal(t, "42", odd.Status)
	assert.False(t, odd.IsSurvived())

	var missing Mutant
	require.NoError(t, json.Unmarshal([]byte(`{"mutatorName":"X"}`), &missing))
	assert.Empty(t, missing.Status)
}

func TestMutant_UnmarshalSurvivor(t *testing.T) {
	var survivor Mutant
	require.NoError(t, json.Unmarshal([]byte(`{"id":9,"status":"Survived","location":{"start":{"line":3,"column":2.5}},"mutatorName":"Foo","replacement":"bar"}`), &survivor))

	line, ok := survivor.StartLine()
	require.True(t, ok)
	assert.Equal(t, 3, line)
	assert.Equal(t, "bar", survivor.MutatedCode())

	var bad Mutant
	err := json.Unmarshal([]byte(`{"status":"Survived","mutatorName":["Foo"]}`), &bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutatorName")
}

func TestFiles_UnmarshalRepeatedKeyKeepsFirstPosition(t *testing.T) {
	var files Files
	require.NoError(t, json.Unmarshal([]byte(`{"a.js":{"source":"1"},"b.js":{},"a.js":{"source":"2"}}`), &files))

	require.Len(t, files, 2)
	assert.Equal(t, "a.js", files[0].Path)
	assert.Equal(t, "2", files[0].Entry.SourceText())
	assert.Equal(t, "b.js", files[1].Path)
}
