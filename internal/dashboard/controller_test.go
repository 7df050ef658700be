// internal/dashboard/controller_test.go
package dashboard

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"krishi-dashboard/internal/common/logger"
	"krishi-dashboard/internal/i18n"
	"krishi-dashboard/internal/query"
	"krishi-dashboard/internal/records"
)

// ==========================
// Test Helper Functions
// ==========================

func loadCatalog(t *testing.T) *i18n.Catalog {
	t.Helper()
	catalog, err := i18n.Load(logger.NewTestLogger(t))
	require.NoError(t, err)
	return catalog
}

func rawFarmer(id, name, district, village, status string) map[string]interface{} {
	return map[string]interface{}{
		"id":       id,
		"name":     name,
		"district": district,
		"village":  village,
		"status":   status,
	}
}

func rawFarmers() []map[string]interface{} {
	return []map[string]interface{}{
		rawFarmer("F001", "Ramesh Kumar", "cuttack", "choudwar", "active"),
		rawFarmer("F002", "Sita Devi", "puri", "sakhigopal", "active"),
		rawFarmer("F003", "Prakash Behera", "khordha", "jatni", "pending"),
		rawFarmer("F004", "Anita Sahoo", "cuttack", "banki", "inactive"),
		rawFarmer("F005", "Gopal Pradhan", "cuttack", "banki", "active"),
		rawFarmer("F006", "Laxmi Mohanty", "puri", "nimapara", "active"),
		rawFarmer("F007", "Debraj Nayak", "ganjam", "banki", "pending"),
	}
}

func staticLoad(raws []map[string]interface{}) LoadFunc {
	return func(ctx context.Context) ([]map[string]interface{}, error) {
		return raws, nil
	}
}

func createTestController(t *testing.T, raws []map[string]interface{}) *Controller {
	t.Helper()
	c := NewController(records.TypeFarmer, staticLoad(raws), loadCatalog(t), 5, logger.NewTestLogger(t))
	require.NoError(t, c.Load(context.Background()))
	return c
}

// ==========================
// Load Tests
// ==========================

func TestController_LoadNormalizesCollection(t *testing.T) {
	c := createTestController(t, rawFarmers())
	assert.Len(t, c.Records(), 7)
	assert.NoError(t, c.Err())
	assert.False(t, c.Loading())
}

func TestController_LoadExcludesInvalidRecords(t *testing.T) {
	raws := rawFarmers()
	raws = append(raws, map[string]interface{}{"id": "F999", "name": "No Village"})

	c := createTestController(t, raws)
	assert.Len(t, c.Records(), 7)
}

func TestController_LoadFailureKeepsCollection(t *testing.T) {
	fail := false
	load := func(ctx context.Context) ([]map[string]interface{}, error) {
		if fail {
			return nil, errors.New("backend down")
		}
		return rawFarmers(), nil
	}
	c := NewController(records.TypeFarmer, load, loadCatalog(t), 5, logger.NewTestLogger(t))
	require.NoError(t, c.Load(context.Background()))

	fail = true
	require.Error(t, c.Load(context.Background()))

	assert.Len(t, c.Records(), 7)
	assert.Error(t, c.Err())
}

func TestController_StaleResponseDiscarded(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})

	var mu sync.Mutex
	call := 0
	load := func(ctx context.Context) ([]map[string]interface{}, error) {
		mu.Lock()
		call++
		n := call
		mu.Unlock()
		if n == 1 {
			close(started)
			<-release
			// Slow early fetch: a single stale farmer.
			return []map[string]interface{}{
				rawFarmer("F-STALE", "Stale Farmer", "puri", "jatni", "active"),
			}, nil
		}
		return rawFarmers(), nil
	}

	c := NewController(records.TypeFarmer, load, loadCatalog(t), 5, logger.NewTestLogger(t))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = c.Load(context.Background())
	}()
	<-started

	// Second fetch starts and finishes while the first is still in flight.
	require.NoError(t, c.Load(context.Background()))
	close(release)
	wg.Wait()

	recs := c.Records()
	require.Len(t, recs, 7)
	for _, rec := range recs {
		assert.NotEqual(t, "F-STALE", rec.ID)
	}
}

// ==========================
// Filter / Pagination Tests
// ==========================

func TestController_FilterAndPaginate(t *testing.T) {
	c := createTestController(t, rawFarmers())

	view := c.Visible("en")
	assert.Equal(t, 1, view.CurrentPage)
	assert.Equal(t, 2, view.TotalPages)
	assert.Equal(t, 7, view.FilteredCount)
	assert.Len(t, view.Rows, 5)

	c.SetStatus("active")
	view = c.Visible("en")
	assert.Equal(t, 4, view.FilteredCount)
	assert.Equal(t, 1, view.TotalPages)

	c.SetSearch("cutt")
	view = c.Visible("en")
	assert.Equal(t, 2, view.FilteredCount)

	c.Reset()
	view = c.Visible("en")
	assert.Equal(t, 7, view.FilteredCount)
	assert.Equal(t, 1, view.CurrentPage)
	assert.True(t, c.Filter().IsDefault())
}

func TestController_PageNavigation(t *testing.T) {
	c := createTestController(t, rawFarmers())

	c.NextPage()
	assert.Equal(t, 2, c.Visible("en").CurrentPage)

	// Already on the last page; clamp holds.
	c.NextPage()
	assert.Equal(t, 2, c.Visible("en").CurrentPage)

	c.PrevPage()
	assert.Equal(t, 1, c.Visible("en").CurrentPage)
	c.PrevPage()
	assert.Equal(t, 1, c.Visible("en").CurrentPage)

	c.SetPage(9999)
	assert.Equal(t, 2, c.Visible("en").CurrentPage)
}

func TestController_FilterChangeReclampsPage(t *testing.T) {
	c := createTestController(t, rawFarmers())
	c.SetPage(2)

	// Narrowing the filter shrinks the page count; the cursor clamps back.
	c.SetCategory("ganjam")
	view := c.Visible("en")
	assert.Equal(t, 1, view.CurrentPage)
	assert.Equal(t, 1, view.FilteredCount)
}

// ==========================
// Language Resolution Tests
// ==========================

func TestController_LanguageSwitchWithoutReload(t *testing.T) {
	loads := 0
	load := func(ctx context.Context) ([]map[string]interface{}, error) {
		loads++
		return rawFarmers(), nil
	}
	c := NewController(records.TypeFarmer, load, loadCatalog(t), 5, logger.NewTestLogger(t))
	require.NoError(t, c.Load(context.Background()))

	en := c.Visible("en")
	hi := c.Visible("hi")

	require.NotEmpty(t, en.Rows)
	assert.Equal(t, "Cuttack", en.Rows[0].Fields["district"])
	assert.Equal(t, "कटक", hi.Rows[0].Fields["district"])
	// Literal names render identically in every language.
	assert.Equal(t, en.Rows[0].Fields["name"], hi.Rows[0].Fields["name"])

	assert.Equal(t, 1, loads)
}

// ==========================
// Merge Tests
// ==========================

func TestController_Merge(t *testing.T) {
	c := createTestController(t, rawFarmers())

	rec, err := records.Normalize(rawFarmer("F100", "New Farmer", "puri", "jatni", "pending"), records.TypeFarmer)
	require.NoError(t, err)

	c.Merge(rec)
	assert.Len(t, c.Records(), 8)

	state := query.NewFilterState()
	state.Search = "F100"
	assert.Len(t, query.Apply(c.Records(), state), 1)
}

func TestController_MergeReplacesDuplicateID(t *testing.T) {
	c := createTestController(t, rawFarmers())

	// Backend echoes an id the collection already holds; the record is
	// replaced in place, never duplicated.
	rec, err := records.Normalize(rawFarmer("F003", "Prakash Behera", "khordha", "jatni", "active"), records.TypeFarmer)
	require.NoError(t, err)
	c.Merge(rec)

	recs := c.Records()
	require.Len(t, recs, 7)

	count := 0
	for _, r := range recs {
		if r.ID == "F003" {
			count++
			assert.Equal(t, "active", r.Status)
		}
	}
	assert.Equal(t, 1, count)
}
