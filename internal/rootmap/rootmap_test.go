package rootmap

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dlcarv/keycomp/internal/models"
)

func TestRootOf(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "dot separated", path: "ETQ806.assignments.name", want: "ETQ806"},
		{name: "bracket inside first segment", path: "ETQ806[0].name", want: "ETQ806"},
		{name: "dot then bracket later", path: "root.child[2].leaf", want: "root"},
		{name: "bare root", path: "root", want: "root"},
		{name: "bare index", path: "[0]", want: ""},
		{name: "index then key", path: "[0].name", want: ""},
		{name: "empty string", path: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RootOf(tt.path))
		})
	}
}

func TestGroupRoots(t *testing.T) {
	tests := []struct {
		name  string
		paths []string
		want  []string
	}{
		{
			name:  "shared root collapses",
			paths: []string{"R.a", "R.b"},
			want:  []string{"R"},
		},
		{
			name:  "single member keeps full path",
			paths: []string{"R.a"},
			want:  []string{"R.a"},
		},
		{
			name:  "distinct roots pass through ordered by root",
			paths: []string{"zeta.x", "alpha.y", "mid"},
			want:  []string{"alpha.y", "mid", "zeta.x"},
		},
		{
			name:  "mixed grouping",
			paths: []string{"CA.x", "CA.y", "ET.only", "AL[0]", "AL[1]"},
			want:  []string{"AL", "CA", "ET.only"},
		},
		{
			name:  "bracket suffix shares root with dotted path",
			paths: []string{"R[0]", "R.a"},
			want:  []string{"R"},
		},
		{
			name:  "empty input",
			paths: nil,
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GroupRoots(tt.paths))
		})
	}
}

func TestMapRootNames(t *testing.T) {
	table := Table{"CA": "ECA", "ET": "EET"}

	tests := []struct {
		name  string
		paths []string
		want  []string
	}{
		{
			name:  "root with bracket suffix",
			paths: []string{"CA.x[0].y"},
			want:  []string{"ECA.x[0].y"},
		},
		{
			name:  "bracket directly on root",
			paths: []string{"CA[2].x"},
			want:  []string{"ECA[2].x"},
		},
		{
			name:  "bare root",
			paths: []string{"CA"},
			want:  []string{"ECA"},
		},
		{
			name:  "root absent from table",
			paths: []string{"OTHER.x"},
			want:  []string{"OTHER.x"},
		},
		{
			name:  "prefix match is not enough",
			paths: []string{"CAX.y"},
			want:  []string{"CAX.y"},
		},
		{
			name:  "empty path passes through",
			paths: []string{""},
			want:  []string{""},
		},
		{
			name:  "order preserved one output per input",
			paths: []string{"ET.a", "plain", "CA.b"},
			want:  []string{"EET.a", "plain", "ECA.b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapRootNames(tt.paths, table))
		})
	}
}

func TestApplyToKeys(t *testing.T) {
	table := Table{"CA": "ECA"}

	input := models.JSONObject{
		"CA":    models.JSONObject{"v": "1"},
		"other": models.JSONObject{"CA": "2"},
	}
	got := ApplyToKeys(input, table)

	want := models.JSONObject{
		"ECA": models.JSONObject{"v": "1"},
		// Nested dictionary keys are matched too; only strings that
		// appear as values stay untouched.
		"other": models.JSONObject{"ECA": "2"},
	}
	assert.Equal(t, want, got)
}

func TestApplyToKeys_ValueStringsNotRewritten(t *testing.T) {
	table := Table{"CA": "ECA"}

	input := models.JSONObject{
		"name": "CA",
		"tags": models.JSONArray{"CA", "other"},
	}
	got := ApplyToKeys(input, table)
	assert.Equal(t, input, got, "strings in value position must never be renamed")
}

func TestApplyToKeys_SubstringKeysNotRewritten(t *testing.T) {
	table := Table{"ET": "EET"}

	input := models.JSONObject{
		"ET":     "a",
		"ETQ801": "b",
	}
	got := ApplyToKeys(input, table).(models.JSONObject)
	assert.Contains(t, got, "EET")
	assert.Contains(t, got, "ETQ801")
	assert.NotContains(t, got, "ET")
}

func TestApplyToKeys_ArraysRecursePreservingOrder(t *testing.T) {
	table := Table{"AL": "EAL"}

	input := models.JSONArray{
		models.JSONObject{"AL": "first"},
		"AL",
		models.JSONObject{"keep": models.JSONObject{"AL": nil}},
	}
	got := ApplyToKeys(input, table)

	want := models.JSONArray{
		models.JSONObject{"EAL": "first"},
		"AL",
		models.JSONObject{"keep": models.JSONObject{"EAL": nil}},
	}
	assert.Equal(t, want, got)
}

func TestApplyToKeys_DoesNotMutateInput(t *testing.T) {
	table := Table{"CA": "ECA"}

	input := models.JSONObject{"CA": models.JSONArray{"x"}}
	_ = ApplyToKeys(input, table)

	assert.Contains(t, input, "CA")
	assert.NotContains(t, input, "ECA")
}

func TestApplyToKeys_Idempotent(t *testing.T) {
	// Range disjoint from domain: no mapped key is itself remappable.
	table := Table{"CA": "ECA", "ET": "EET"}

	input := models.JSONObject{
		"CA":   models.JSONObject{"ET": "v"},
		"keep": models.JSONArray{models.JSONObject{"CA": "x"}},
	}
	once := ApplyToKeys(input, table)
	twice := ApplyToKeys(once, table)
	assert.Equal(t, once, twice)
}

func TestDefaultTable(t *testing.T) {
	// Spot-check the legacy mapping, including identity entries.
	assert.Equal(t, "ECA", DefaultTable["CA"])
	assert.Equal(t, "ETC", DefaultTable["CV"])
	assert.Equal(t, "RIT", DefaultTable["RI"])
	assert.Equal(t, "ADM", DefaultTable["ADM"])
	assert.Len(t, DefaultTable, 16)
}
