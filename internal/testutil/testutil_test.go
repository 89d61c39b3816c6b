package testutil_test

import (
	"testing"

	"github.com/paveg/zebras/internal/dataset"
	"github.com/paveg/zebras/internal/testutil"
	"github.com/paveg/zebras/internal/value"
	"github.com/stretchr/testify/assert"
)

func TestDaysDataset(t *testing.T) {
	ds := testutil.DaysDataset()

	assert.Equal(t, 3, ds.Len())
	testutil.AssertColumnKeys(t, ds, "day", "Mon", "Tue", "Mon")
	testutil.AssertColumnKeys(t, ds, "v", "10", "5", "7")
	testutil.AssertUniformColumns(t, ds)
}

func TestEmployeesDataset(t *testing.T) {
	t.Run("default configuration", func(t *testing.T) {
		ds := testutil.EmployeesDataset()

		assert.Equal(t, 4, ds.Len())
		assert.Equal(t, []string{"name", "department", "age", "salary"}, ds.Columns())
		assert.True(t, ds[0].Value("age").Equal(value.Number(25)))
	})

	t.Run("options", func(t *testing.T) {
		ds := testutil.EmployeesDataset(testutil.WithRowCount(6), testutil.WithMissing(), testutil.AsText())

		assert.Equal(t, 6, ds.Len())
		assert.True(t, ds[2].Value("salary").IsMissing())
		assert.True(t, ds[5].Value("salary").IsMissing())
		assert.True(t, ds[0].Value("salary").Equal(value.Text("50000")))
		testutil.AssertUniformColumns(t, ds)
	})
}

// recordingTB captures failures instead of failing the running test.
type recordingTB struct {
	testing.TB
	failed bool
}

func (r *recordingTB) Helper()               {}
func (r *recordingTB) Name() string          { return "recording" }
func (r *recordingTB) Errorf(string, ...any) { r.failed = true }

func TestAssertions(t *testing.T) {
	mock := &recordingTB{}

	assert.True(t, testutil.AssertDatasetEqual(t, testutil.DaysDataset(), testutil.DaysDataset()))
	assert.False(t, testutil.AssertDatasetEqual(mock, testutil.DaysDataset(), testutil.DaysDataset()[:2]))
	assert.False(t, testutil.AssertUniformColumns(mock, dataset.New(
		testutil.Rec("a", 1),
		testutil.Rec("b", 1),
	)))
	assert.True(t, testutil.AssertUniformColumns(t, nil))
	assert.True(t, mock.failed)
}
