package view

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tirtatarum/spk/internal/domain/record"
	"github.com/tirtatarum/spk/internal/types"
)

func TestSortRecordsByName(t *testing.T) {
	records := []record.Record{
		sealRec(1, "budi", 10),
		sealRec(2, "Agus", 20),
		sealRec(3, "Citra", 30),
	}

	SortRecords(records, types.SortNameAsc)
	assert.Equal(t, "Agus", records[0].DisplayName())
	assert.Equal(t, "budi", records[1].DisplayName())
	assert.Equal(t, "Citra", records[2].DisplayName())

	SortRecords(records, types.SortNameDesc)
	assert.Equal(t, "Citra", records[0].DisplayName())
	assert.Equal(t, "Agus", records[2].DisplayName())
}

func TestSortRecordsByAmount(t *testing.T) {
	records := []record.Record{
		sealRec(1, "Agus", 100),
		sealRec(2, "Budi", 50),
		sealRec(3, "Citra", 200),
	}

	SortRecords(records, types.SortAmountDesc)
	assert.Equal(t, int64(3), records[0].RecordID())
	assert.Equal(t, int64(2), records[2].RecordID())

	SortRecords(records, types.SortAmountAsc)
	assert.Equal(t, int64(2), records[0].RecordID())
	assert.Equal(t, int64(3), records[2].RecordID())
}

// Equal keys keep their relative order, so ties are deterministic across
// repeated sorts.
func TestSortRecordsStableOnTies(t *testing.T) {
	records := []record.Record{
		sealRec(1, "Agus", 100),
		sealRec(2, "Budi", 100),
		sealRec(3, "Citra", 100),
	}

	SortRecords(records, types.SortAmountDesc)
	assert.Equal(t, int64(1), records[0].RecordID())
	assert.Equal(t, int64(2), records[1].RecordID())
	assert.Equal(t, int64(3), records[2].RecordID())

	SortRecords(records, types.SortAmountDesc)
	assert.Equal(t, int64(1), records[0].RecordID())
}
