package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openabit/advisor/internal/common"
	"github.com/openabit/advisor/internal/model"
)

func newTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()
	store, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "advisor.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func testPrograms() []model.Program {
	return []model.Program{
		{
			Name:           "Магистратура 'Искусственный интеллект'",
			URL:            "https://abit.itmo.ru/program/master/ai",
			Description:    "Описание программы",
			Institute:      "Институт прикладных компьютерных наук",
			Form:           "очная",
			Language:       "русский",
			Cost:           "599 000 ₽",
			Duration:       4,
			Dormitory:      true,
			MilitaryCenter: true,
			Accreditation:  true,
			Courses: []model.Course{
				{Name: "Машинное обучение", Category: model.CourseRequired, Credits: 6, Semester: 2},
				{Name: "Компьютерное зрение", Category: model.CourseElective, Credits: 4, Semester: 2},
				{Name: "Этика искусственного интеллекта", Category: model.CourseOptional, Credits: 2, Semester: 3},
			},
		},
		{
			Name:     "Магистратура 'AI Product Management'",
			Duration: 4,
			Courses: []model.Course{
				{Name: "Управление продуктами", Category: model.CourseRequired, Credits: 4, Semester: 1},
			},
		},
	}
}

func TestNewSQLiteStorageRejectsEmptyPath(t *testing.T) {
	_, err := NewSQLiteStorage("")
	require.ErrorIs(t, err, common.ErrInvalidConfig)
}

func TestNewSQLiteStorageCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "advisor.db")
	store, err := NewSQLiteStorage(path)
	require.NoError(t, err)
	require.NoError(t, store.Close())
}

func TestSaveAndLoadCatalog(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SaveCatalog(ctx, testPrograms()))

	loaded, err := store.LoadCatalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, testPrograms(), loaded)
}

func TestLoadCatalogPreservesCourseOrder(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SaveCatalog(ctx, testPrograms()))
	loaded, err := store.LoadCatalog(ctx)
	require.NoError(t, err)

	names := make([]string, 0, len(loaded[0].Courses))
	for _, c := range loaded[0].Courses {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{
		"Машинное обучение",
		"Компьютерное зрение",
		"Этика искусственного интеллекта",
	}, names)
}

func TestLoadCatalogEmpty(t *testing.T) {
	store := newTestStorage(t)

	_, err := store.LoadCatalog(context.Background())
	require.ErrorIs(t, err, common.ErrEmptyCatalog)
}

func TestSaveCatalogRejectsEmpty(t *testing.T) {
	store := newTestStorage(t)

	err := store.SaveCatalog(context.Background(), nil)
	require.ErrorIs(t, err, common.ErrEmptyCatalog)
}

func TestSaveCatalogReplacesPrevious(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SaveCatalog(ctx, testPrograms()))

	replacement := []model.Program{{
		Name:     "Новая программа",
		Duration: 2,
		Courses: []model.Course{
			{Name: "Единственный курс", Category: model.CourseRequired, Credits: 3, Semester: 1},
		},
	}}
	require.NoError(t, store.SaveCatalog(ctx, replacement))

	loaded, err := store.LoadCatalog(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "Новая программа", loaded[0].Name)
}

func TestFetchedAt(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	_, err := store.FetchedAt(ctx)
	require.ErrorIs(t, err, common.ErrEmptyCatalog)

	require.NoError(t, store.SaveCatalog(ctx, testPrograms()))

	ts, err := store.FetchedAt(ctx)
	require.NoError(t, err)
	assert.False(t, ts.IsZero())
}
