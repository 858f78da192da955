package flatten

import (
	"testing"

	"github.com/keboola/go-utils/pkg/orderedmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kobotools/kobotab/internal/pkg/encoding/json"
	"github.com/kobotools/kobotab/internal/pkg/model"
)

func parseSubmission(t *testing.T, doc string) model.Submission {
	t.Helper()
	m := orderedmap.New()
	require.NoError(t, json.DecodeString(doc, m))
	return m
}

func TestFlattenNestedGroups(t *testing.T) {
	t.Parallel()
	f := NewFlattener(DefaultConfig())
	err := f.Flatten(parseSubmission(t, `{"age": 30, "children": [{"name": "Ana"}, {"name": "Leo"}]}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"root", "root_children"}, f.TableOrder())

	rootRows := f.Rows("root")
	require.Len(t, rootRows, 1)
	assert.Equal(t, 0, model.RowIndex(rootRows[0]))
	assert.Equal(t, float64(30), rootRows[0].GetOrNil("age"))
	_, found := rootRows[0].Get("children")
	assert.False(t, found)

	// Root rows carry no linkage
	_, _, hasParent := model.RowParent(rootRows[0])
	assert.False(t, hasParent)

	childRows := f.Rows("root_children")
	require.Len(t, childRows, 2)
	for i, name := range []string{"Ana", "Leo"} {
		assert.Equal(t, i, model.RowIndex(childRows[i]))
		parentTable, parentIndex, ok := model.RowParent(childRows[i])
		require.True(t, ok)
		assert.Equal(t, "root", parentTable)
		assert.Equal(t, 0, parentIndex)
		assert.Equal(t, name, childRows[i].GetOrNil("name"))
	}
}

func TestFlattenFlatSubmission(t *testing.T) {
	t.Parallel()
	f := NewFlattener(DefaultConfig())
	err := f.Flatten(parseSubmission(t, `{"age": 30, "name": "Ana"}`))
	require.NoError(t, err)

	// No nested lists -> exactly one table, no linkage columns
	assert.Equal(t, []string{"root"}, f.TableOrder())
	rows := f.Rows("root")
	require.Len(t, rows, 1)
	assert.Equal(t, []string{model.IndexColumn, "age", "name"}, rows[0].Keys())
}

func TestFlattenCountersSharedAcrossSubmissions(t *testing.T) {
	t.Parallel()
	f := NewFlattener(DefaultConfig())
	require.NoError(t, f.Flatten(parseSubmission(t, `{"children": [{"name": "Ana"}, {"name": "Leo"}]}`)))
	require.NoError(t, f.Flatten(parseSubmission(t, `{"children": [{"name": "Mia"}]}`)))

	rootRows := f.Rows("root")
	require.Len(t, rootRows, 2)
	assert.Equal(t, 0, rootRows[0].GetOrNil(model.IndexColumn))
	assert.Equal(t, 1, rootRows[1].GetOrNil(model.IndexColumn))

	// Child indexes continue across submissions, parents differ
	childRows := f.Rows("root_children")
	require.Len(t, childRows, 3)
	for i, parent := range []int{0, 0, 1} {
		assert.Equal(t, i, model.RowIndex(childRows[i]))
		_, parentIndex, ok := model.RowParent(childRows[i])
		require.True(t, ok)
		assert.Equal(t, parent, parentIndex)
	}
}

func TestFlattenDeepNesting(t *testing.T) {
	t.Parallel()
	f := NewFlattener(DefaultConfig())
	doc := `{
		"members": [
			{"name": "Ana", "expenses": [{"item": "rent"}, {"item": "food"}]},
			{"name": "Leo", "expenses": [{"item": "books"}]}
		]
	}`
	require.NoError(t, f.Flatten(parseSubmission(t, doc)))

	assert.Equal(t, []string{"root", "root_members", "root_members_expenses"}, f.TableOrder())

	expenses := f.Rows("root_members_expenses")
	require.Len(t, expenses, 3)
	assert.Equal(t, "root_members", expenses[0].GetOrNil(model.ParentTableColumn))
	assert.Equal(t, 0, expenses[0].GetOrNil(model.ParentIndexColumn))
	assert.Equal(t, 0, expenses[1].GetOrNil(model.ParentIndexColumn))
	assert.Equal(t, 1, expenses[2].GetOrNil(model.ParentIndexColumn))
}

func TestFlattenScalarList(t *testing.T) {
	t.Parallel()
	f := NewFlattener(DefaultConfig())
	require.NoError(t, f.Flatten(parseSubmission(t, `{"colors": ["red", "green", "blue"]}`)))

	// A list without sub-records is one serialized column, not a child table
	assert.Equal(t, []string{"root"}, f.TableOrder())
	assert.Equal(t, "red, green, blue", f.Rows("root")[0].GetOrNil("colors"))
}

func TestFlattenMixedListDegradesToString(t *testing.T) {
	t.Parallel()
	f := NewFlattener(DefaultConfig())
	require.NoError(t, f.Flatten(parseSubmission(t, `{"junk": [1, {"a": 2}]}`)))

	assert.Equal(t, []string{"root"}, f.TableOrder())
	assert.Equal(t, `1, {"a":2}`, f.Rows("root")[0].GetOrNil("junk"))
}

func TestFlattenNilValuePreserved(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	cfg.NullValue = "n/a"
	f := NewFlattener(cfg)
	require.NoError(t, f.Flatten(parseSubmission(t, `{"note": null, "age": 30}`)))

	row := f.Rows("root")[0]
	assert.Equal(t, "n/a", row.GetOrNil("note"))
	assert.Equal(t, float64(30), row.GetOrNil("age"))
}

func TestFlattenExcludedFields(t *testing.T) {
	t.Parallel()
	f := NewFlattener(DefaultConfig())
	require.NoError(t, f.Flatten(parseSubmission(t, `{"_xform_id_string": "abc", "formhub/uuid": "x", "age": 30}`)))

	row := f.Rows("root")[0]
	assert.Equal(t, []string{model.IndexColumn, "age"}, row.Keys())
}

func TestFlattenColumnNameCleaning(t *testing.T) {
	t.Parallel()
	f := NewFlattener(DefaultConfig())
	require.NoError(t, f.Flatten(parseSubmission(t, `{"household/head/age": 41, "_submission_time": "2024-01-01"}`)))

	row := f.Rows("root")[0]
	assert.Equal(t, float64(41), row.GetOrNil("age"))
	// Underscore-prefixed bookkeeping columns are kept as-is
	assert.Equal(t, "2024-01-01", row.GetOrNil("_submission_time"))
}

func TestFlattenColumnNameCleaningDisabled(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	cfg.CleanColumnNames = false
	f := NewFlattener(cfg)
	require.NoError(t, f.Flatten(parseSubmission(t, `{"household/head/age": 41}`)))

	assert.Equal(t, float64(41), f.Rows("root")[0].GetOrNil("household/head/age"))
}

func TestFlattenNestedObjectAsSingleElementGroup(t *testing.T) {
	t.Parallel()
	f := NewFlattener(DefaultConfig())
	require.NoError(t, f.Flatten(parseSubmission(t, `{"geo": {"lat": 1.5, "lon": 2.5}}`)))

	assert.Equal(t, []string{"root", "root_geo"}, f.TableOrder())
	geo := f.Rows("root_geo")
	require.Len(t, geo, 1)
	assert.Equal(t, float64(1.5), geo[0].GetOrNil("lat"))
	assert.Equal(t, "root", geo[0].GetOrNil(model.ParentTableColumn))
}

func TestFlattenEmptyGroup(t *testing.T) {
	t.Parallel()
	f := NewFlattener(DefaultConfig())
	require.NoError(t, f.Flatten(parseSubmission(t, `{"children": []}`)))
	require.NoError(t, f.Flatten(parseSubmission(t, `{"children": [{"name": "Ana"}]}`)))

	// The empty occurrence produced no child rows and no collision
	assert.Equal(t, []string{"root", "root_children"}, f.TableOrder())
	assert.Len(t, f.Rows("root_children"), 1)
}

func TestFlattenNameCollision(t *testing.T) {
	t.Parallel()
	f := NewFlattener(DefaultConfig())
	require.NoError(t, f.Flatten(parseSubmission(t, `{"children": "none"}`)))

	err := f.Flatten(parseSubmission(t, `{"children": [{"name": "Ana"}]}`))
	require.Error(t, err)
	collision := &NameCollisionError{}
	require.ErrorAs(t, err, &collision)
	assert.Equal(t, "root", collision.Table)
	assert.Equal(t, "children", collision.Field)
}

func TestFlattenDeterministic(t *testing.T) {
	t.Parallel()
	doc := `{"age": 30, "children": [{"name": "Ana", "pets": [{"kind": "cat"}]}, {"name": "Leo"}]}`

	run := func() ([]string, map[string][]string) {
		f := NewFlattener(DefaultConfig())
		require.NoError(t, f.Flatten(parseSubmission(t, doc)))
		columns := map[string][]string{}
		for _, table := range f.TableOrder() {
			for _, row := range f.Rows(table) {
				columns[table] = append(columns[table], row.Keys()...)
			}
		}
		return f.TableOrder(), columns
	}

	order1, columns1 := run()
	order2, columns2 := run()
	assert.Equal(t, order1, order2)
	assert.Equal(t, columns1, columns2)
}

func TestFlattenCustomSeparator(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	cfg.Separator = "."
	f := NewFlattener(cfg)
	require.NoError(t, f.Flatten(parseSubmission(t, `{"children": [{"name": "Ana"}]}`)))

	assert.Equal(t, []string{"root", "root.children"}, f.TableOrder())
}
