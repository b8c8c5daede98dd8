package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func voucherFixture() []Record {
	return []Record{
		{"id": "v-1", "rep": map[string]any{"id": "rep-a"}, "voucher_date": "2024-01-10", "amount": float64(100)},
		{"id": "v-2", "rep": map[string]any{"id": "rep-b"}, "voucher_date": "2024-02-15", "amount": float64(250)},
		{"id": "v-3", "rep": map[string]any{"id": "rep-a"}, "voucher_date": "2024-03-20", "amount": float64(75)},
		{"id": "v-4", "rep": map[string]any{"id": "rep-a"}, "voucher_date": "bad-date", "amount": float64(10)},
	}
}

func voucherFields() FieldMap {
	return FieldMap{
		"rep":   {Path: "rep.id", Kind: MatchExact},
		"dates": {Path: "voucher_date", Kind: MatchDateRange},
	}
}

func idsOf(records []Record) []string {
	ids := make([]string, len(records))
	for i, r := range records {
		ids[i] = Stringify(r["id"])
	}
	return ids
}

func TestIsUnset(t *testing.T) {
	assert.True(t, IsUnset(nil))
	assert.True(t, IsUnset(""))
	assert.True(t, IsUnset(AllValue))
	assert.False(t, IsUnset("rep-a"))
	assert.False(t, IsUnset(float64(0)))
}

func TestFilterRecords(t *testing.T) {
	t.Run("empty state passes everything in order", func(t *testing.T) {
		out := FilterRecords(voucherFixture(), FilterState{}, voucherFields())
		assert.Equal(t, []string{"v-1", "v-2", "v-3", "v-4"}, idsOf(out))
	})

	t.Run("exact filter on rep", func(t *testing.T) {
		out := FilterRecords(voucherFixture(), FilterState{"rep": "rep-a"}, voucherFields())
		assert.Equal(t, []string{"v-1", "v-3", "v-4"}, idsOf(out))
	})

	t.Run("all value places no constraint", func(t *testing.T) {
		out := FilterRecords(voucherFixture(), FilterState{"rep": "all"}, voucherFields())
		assert.Len(t, out, 4)
	})

	t.Run("date range is inclusive and drops unparseable dates", func(t *testing.T) {
		state := FilterState{
			SlotFromDate: "2024-02-15",
			SlotToDate:   "2024-03-20",
		}
		out := FilterRecords(voucherFixture(), state, voucherFields())
		assert.Equal(t, []string{"v-2", "v-3"}, idsOf(out))
	})

	t.Run("open ended lower bound", func(t *testing.T) {
		out := FilterRecords(voucherFixture(), FilterState{SlotToDate: "2024-01-31"}, voucherFields())
		assert.Equal(t, []string{"v-1"}, idsOf(out))
	})

	t.Run("open ended upper bound", func(t *testing.T) {
		out := FilterRecords(voucherFixture(), FilterState{SlotFromDate: "2024-02-01"}, voucherFields())
		assert.Equal(t, []string{"v-2", "v-3"}, idsOf(out))
	})

	t.Run("no active bounds keeps unparseable dates", func(t *testing.T) {
		out := FilterRecords(voucherFixture(), FilterState{"rep": "rep-a"}, voucherFields())
		assert.Contains(t, idsOf(out), "v-4")
	})

	t.Run("predicates combine with and", func(t *testing.T) {
		state := FilterState{
			"rep":        "rep-a",
			SlotFromDate: "2024-02-01",
			SlotToDate:   "2024-12-31",
		}
		out := FilterRecords(voucherFixture(), state, voucherFields())
		assert.Equal(t, []string{"v-3"}, idsOf(out))
	})

	t.Run("numeric selection matches json number field", func(t *testing.T) {
		records := []Record{
			{"id": "a", "warehouse_id": float64(3)},
			{"id": "b", "warehouse_id": float64(4)},
		}
		fields := FieldMap{"warehouse": {Path: "warehouse_id", Kind: MatchExact}}

		out := FilterRecords(records, FilterState{"warehouse": "3"}, fields)
		require.Len(t, out, 1)
		assert.Equal(t, "a", out[0]["id"])
	})

	t.Run("mismatched exact value filters all", func(t *testing.T) {
		out := FilterRecords(voucherFixture(), FilterState{"rep": "rep-z"}, voucherFields())
		assert.Empty(t, out)
	})

	t.Run("input slice is untouched", func(t *testing.T) {
		records := voucherFixture()
		FilterRecords(records, FilterState{"rep": "rep-a"}, voucherFields())
		assert.Len(t, records, 4)
		assert.Equal(t, "v-2", records[1]["id"])
	})

	t.Run("nil input yields empty non-nil slice", func(t *testing.T) {
		out := FilterRecords(nil, FilterState{"rep": "rep-a"}, voucherFields())
		assert.NotNil(t, out)
		assert.Empty(t, out)
	})
}
