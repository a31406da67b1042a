package capture

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"coursecatalog-backend/lib/scrapers/registrar"
	"coursecatalog-backend/lib/telemetry"
)

func TestStoreIndexRoundtrip(t *testing.T) {
	cleanup := telemetry.SetupForTesting("test:services/capture")
	defer cleanup()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	// no index yet means first run, not an error
	index, err := store.ReadIndex()
	require.NoError(t, err)
	require.Nil(t, index)

	err = store.WriteIndex(Index{Terms: []string{"Fall 2025", "Fall 2026"}})
	require.NoError(t, err)

	index, err = store.ReadIndex()
	require.NoError(t, err)
	require.NotNil(t, index)
	require.Equal(t, []string{"Fall 2025", "Fall 2026"}, index.Terms)
}

func TestStoreTermRoundtrip(t *testing.T) {
	cleanup := telemetry.SetupForTesting("test:services/capture")
	defer cleanup()

	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	units := 3
	courses := []registrar.Course{
		{
			Id:            "2026-CSDS-132",
			School:        "School of Engineering",
			Department:    "Computer Science",
			Title:         "Introduction to Programming",
			CatalogNumber: "CSDS 132",
			Units:         &units,
			Sections: registrar.SectionGroups{
				Lecture: []registrar.Section{
					{
						Id:         "1411",
						Number:     "01",
						Term:       "Fall 2026",
						Instructor: []string{"Hopper, Grace"},
						Time:       []int{600, 650},
						Seats:      []int{10, 20},
					},
				},
			},
		},
	}

	before := time.Now().UnixMilli()
	err = store.WriteTerm("Fall 2026", courses)
	require.NoError(t, err)

	dataset, err := store.ReadTerm("Fall 2026")
	require.NoError(t, err)
	require.Equal(t, courses, dataset.Courses)
	require.GreaterOrEqual(t, dataset.LastUpdated, before)

	contents, err := os.ReadFile(filepath.Join(dir, "Fall 2026.json"))
	require.NoError(t, err)
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(contents, &raw))
	require.Contains(t, raw, "courses")
	require.Contains(t, raw, "lastUpdated")
}

func TestStoreTermWithoutCourses(t *testing.T) {
	cleanup := telemetry.SetupForTesting("test:services/capture")
	defer cleanup()

	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	err = store.WriteTerm("Summer 2026", nil)
	require.NoError(t, err)

	// an empty capture is still a list, not null
	contents, err := os.ReadFile(filepath.Join(dir, "Summer 2026.json"))
	require.NoError(t, err)
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(contents, &raw))
	require.Equal(t, "[]", string(raw["courses"]))
}
