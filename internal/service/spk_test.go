package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/tirtatarum/spk/internal/api/dto"
	"github.com/tirtatarum/spk/internal/domain/record"
	ierr "github.com/tirtatarum/spk/internal/errors"
	"github.com/tirtatarum/spk/internal/testutil"
	"github.com/tirtatarum/spk/internal/types"
)

type SPKServiceSuite struct {
	suite.Suite
	ctx             context.Context
	sealStore       *testutil.InMemorySealStore
	revocationStore *testutil.InMemoryRevocationStore
	service         SPKService
}

func TestSPKServiceSuite(t *testing.T) {
	suite.Run(t, new(SPKServiceSuite))
}

func (s *SPKServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.sealStore = testutil.NewInMemorySealStore()
	s.revocationStore = testutil.NewInMemoryRevocationStore()

	cfg, log := testutil.Setup()
	params := ServiceParams{
		Logger:         log,
		Config:         cfg,
		SealRepo:       s.sealStore,
		RevocationRepo: s.revocationStore,
		Cache:          testutil.NewTestCache(cfg),
		Compiler:       testutil.NewFakeCompiler(),
	}
	s.service = NewSPKService(params)
}

func (s *SPKServiceSuite) seedSeals() {
	for i, amount := range []int64{100, 50, 200} {
		id := int64(i + 1)
		s.Require().NoError(s.sealStore.Create(s.ctx, id, &record.SealRecord{
			ID:       id,
			Name:     "Pelanggan",
			TotalDue: decimal.NewFromInt(amount),
			Ket:      types.KetBelumLunas,
		}))
	}
}

func (s *SPKServiceSuite) TestGenerateWorkOrdersNumbering() {
	now := time.Date(2026, time.March, 9, 10, 30, 0, 0, time.UTC)
	records := []record.Record{
		&record.SealRecord{ID: 1, Name: "Agus"},
		&record.SealRecord{ID: 2, Name: "Budi"},
		&record.SealRecord{ID: 3, Name: "Citra"},
	}

	orders := GenerateWorkOrders(records, now)

	s.Require().Len(orders, 3)
	s.Equal("SPK/03/2026/0001", orders[0].Number)
	s.Equal("SPK/03/2026/0002", orders[1].Number)
	s.Equal("SPK/03/2026/0003", orders[2].Number)
	for _, o := range orders {
		s.Equal(types.RecordKindPenyegelan, o.Kind)
		s.Equal(now, o.GeneratedAt)
	}
	s.Equal("2026-03-09 10:30:00", orders[0].GeneratedAtString())
}

func (s *SPKServiceSuite) TestGenerateWorkOrdersEmpty() {
	s.Empty(GenerateWorkOrders(nil, time.Now()))
}

func (s *SPKServiceSuite) TestNumberingRestartsPerBatch() {
	now := time.Date(2026, time.December, 1, 0, 0, 0, 0, time.UTC)
	records := []record.Record{&record.SealRecord{ID: 7}}

	first := GenerateWorkOrders(records, now)
	second := GenerateWorkOrders(records, now)

	s.Equal("SPK/12/2026/0001", first[0].Number)
	s.Equal(first[0].Number, second[0].Number)
}

func (s *SPKServiceSuite) TestAggregate() {
	s.Equal(0, Aggregate(nil).Count)
	s.True(Aggregate(nil).TotalAmount.IsZero())

	records := []record.Record{
		&record.SealRecord{ID: 1, TotalDue: decimal.NewFromInt(100)},
		&record.SealRecord{ID: 2, TotalDue: decimal.NewFromInt(50)},
		&record.SealRecord{ID: 3, TotalDue: decimal.NewFromInt(200)},
	}
	summary := Aggregate(records)
	s.Equal(3, summary.Count)
	s.True(summary.TotalAmount.Equal(decimal.NewFromInt(350)))
}

func (s *SPKServiceSuite) TestGenerateBatch() {
	s.seedSeals()

	resp, err := s.service.Generate(s.ctx, &dto.GenerateSPKRequest{
		Type: types.RecordKindPenyegelan,
		IDs:  []int64{3, 1},
	})

	s.Require().NoError(err)
	s.Equal(2, resp.Total)
	s.Require().Len(resp.SPKList, 2)

	// Records come back in ascending id order regardless of request order.
	first := resp.SPKList[0].Data.(*record.SealRecord)
	second := resp.SPKList[1].Data.(*record.SealRecord)
	s.Equal(int64(1), first.ID)
	s.Equal(int64(3), second.ID)

	now := time.Now()
	prefix := "SPK/" + now.Format("01") + "/" + now.Format("2006")
	s.Equal(prefix+"/0001", resp.SPKList[0].SPKNumber)
	s.Equal(prefix+"/0002", resp.SPKList[1].SPKNumber)
	s.Equal(types.RecordKindPenyegelan, resp.SPKList[0].Type)
	s.NotEmpty(resp.SPKList[0].GeneratedAt)
}

func (s *SPKServiceSuite) TestGenerateSkipsMissingIDs() {
	s.seedSeals()

	resp, err := s.service.Generate(s.ctx, &dto.GenerateSPKRequest{
		Type: types.RecordKindPenyegelan,
		IDs:  []int64{1, 99},
	})

	s.Require().NoError(err)
	s.Equal(1, resp.Total)
}

func (s *SPKServiceSuite) TestGenerateAllMissing() {
	_, err := s.service.Generate(s.ctx, &dto.GenerateSPKRequest{
		Type: types.RecordKindPenyegelan,
		IDs:  []int64{98, 99},
	})

	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *SPKServiceSuite) TestGenerateValidation() {
	_, err := s.service.Generate(s.ctx, &dto.GenerateSPKRequest{
		Type: "unknown",
		IDs:  []int64{1},
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))

	_, err = s.service.Generate(s.ctx, &dto.GenerateSPKRequest{
		Type: types.RecordKindPenyegelan,
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *SPKServiceSuite) TestGenerateRevocationBatch() {
	s.Require().NoError(s.revocationStore.Create(s.ctx, 5, &record.RevocationRecord{
		ID:            5,
		SeqNo:         1,
		Name:          "Dewi",
		OverdueAmount: decimal.NewFromInt(75000),
		Ket:           types.KetCabut,
	}))

	orders, err := s.service.GenerateOrders(s.ctx, types.RecordKindPencabutan, []int64{5})

	s.Require().NoError(err)
	s.Require().Len(orders, 1)
	s.Equal(types.RecordKindPencabutan, orders[0].Kind)
	s.Equal("Dewi", orders[0].Record.DisplayName())
}

// A user filters, selects two rows, and generates: the batch numbers follow
// the working-set order and the summary matches the selection.
func (s *SPKServiceSuite) TestSelectionToBatchFlow() {
	records := []record.Record{
		&record.SealRecord{ID: 1, Name: "Agus", TotalDue: decimal.NewFromInt(100)},
		&record.SealRecord{ID: 2, Name: "Budi", TotalDue: decimal.NewFromInt(50)},
		&record.SealRecord{ID: 3, Name: "Citra", TotalDue: decimal.NewFromInt(200)},
	}
	selected := []record.Record{records[0], records[2]}

	summary := Aggregate(selected)
	s.Equal(2, summary.Count)
	s.True(summary.TotalAmount.Equal(decimal.NewFromInt(300)))

	now := time.Date(2026, time.January, 15, 8, 0, 0, 0, time.UTC)
	orders := GenerateWorkOrders(selected, now)
	s.Equal("SPK/01/2026/0001", orders[0].Number)
	s.Equal("SPK/01/2026/0002", orders[1].Number)
	s.Equal("Agus", orders[0].Record.DisplayName())
	s.Equal("Citra", orders[1].Record.DisplayName())
}
