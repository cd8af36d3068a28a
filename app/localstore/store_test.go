package localstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siconitcc/app/models"
)

func TestSaveAndLoad(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	in := []*models.Student{
		{ID: "s1", FirstName: "Laura", LastName: "Gomez", Status: models.StudentActive},
		{ID: "s2", FirstName: "Andres", LastName: "Rojas", Status: models.StudentWithdrawn},
	}
	require.NoError(t, store.Save(KeyStudents, in))
	assert.True(t, store.Has(KeyStudents))

	var out []*models.Student
	require.NoError(t, store.Load(KeyStudents, &out))
	require.Len(t, out, 2)
	assert.Equal(t, "Laura", out[0].FirstName)
	assert.Equal(t, models.StudentWithdrawn, out[1].Status)
}

func TestLoadMissingKeyIsEmpty(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	var out []*models.Annotation
	require.NoError(t, store.Load(KeyAnnotations, &out))
	assert.Empty(t, out)
	assert.False(t, store.Has(KeyAnnotations))
}

func TestUnknownKeyRejected(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	assert.Error(t, store.Save("grades", []string{}))
	var dest []string
	assert.Error(t, store.Load("grades", &dest))
}
