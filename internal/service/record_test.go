package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/tirtatarum/spk/internal/domain/record"
	ierr "github.com/tirtatarum/spk/internal/errors"
	"github.com/tirtatarum/spk/internal/testutil"
	"github.com/tirtatarum/spk/internal/types"
)

type RecordServiceSuite struct {
	suite.Suite
	ctx             context.Context
	sealStore       *testutil.InMemorySealStore
	revocationStore *testutil.InMemoryRevocationStore
	service         RecordService
}

func TestRecordServiceSuite(t *testing.T) {
	suite.Run(t, new(RecordServiceSuite))
}

func (s *RecordServiceSuite) SetupTest() {
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
	s.service = NewRecordService(params)
}

func (s *RecordServiceSuite) seed() {
	seals := []*record.SealRecord{
		{ID: 1, Date: "2026-01-10", CustomerNo: "PL-001", Name: "Agus Salim", TotalDue: decimal.NewFromInt(150000), Ket: types.KetBelumLunas},
		{ID: 2, Date: "2026-02-20", CustomerNo: "PL-002", Name: "Budi Santoso", TotalDue: decimal.NewFromInt(90000), Ket: types.KetLunas},
		{ID: 3, Date: "2026-02-05", CustomerNo: "PL-003", Name: "Citra Dewi", TotalDue: decimal.NewFromInt(200000), Ket: types.KetBelumLunas},
	}
	for _, r := range seals {
		s.Require().NoError(s.sealStore.Create(s.ctx, r.ID, r))
	}

	s.Require().NoError(s.revocationStore.Create(s.ctx, 10, &record.RevocationRecord{
		ID: 10, SeqNo: 1, ConnectionNo: "SB-010", Name: "Dewi Lestari",
		OverdueAmount: decimal.NewFromInt(320000), Ket: types.KetCabut,
	}))
}

func (s *RecordServiceSuite) TestListDefaultOrder() {
	s.seed()

	records, err := s.service.List(s.ctx, types.RecordKindPenyegelan, record.ListFilter{})

	s.Require().NoError(err)
	s.Require().Len(records, 3)
	// Newest date first.
	s.Equal(int64(2), records[0].RecordID())
	s.Equal(int64(3), records[1].RecordID())
	s.Equal(int64(1), records[2].RecordID())
}

func (s *RecordServiceSuite) TestListSearchMatchesNameAndNumber() {
	s.seed()

	byName, err := s.service.List(s.ctx, types.RecordKindPenyegelan, record.ListFilter{Search: "budi"})
	s.Require().NoError(err)
	s.Require().Len(byName, 1)
	s.Equal("Budi Santoso", byName[0].DisplayName())

	byNumber, err := s.service.List(s.ctx, types.RecordKindPenyegelan, record.ListFilter{Search: "pl-003"})
	s.Require().NoError(err)
	s.Require().Len(byNumber, 1)
	s.Equal(int64(3), byNumber[0].RecordID())
}

func (s *RecordServiceSuite) TestListKetFilterIsExact() {
	s.seed()

	records, err := s.service.List(s.ctx, types.RecordKindPenyegelan, record.ListFilter{Ket: types.KetBelumLunas})
	s.Require().NoError(err)
	s.Len(records, 2)

	// "LUNAS" must not match "BELUM LUNAS" rows.
	records, err = s.service.List(s.ctx, types.RecordKindPenyegelan, record.ListFilter{Ket: types.KetLunas})
	s.Require().NoError(err)
	s.Require().Len(records, 1)
	s.Equal(int64(2), records[0].RecordID())
}

func (s *RecordServiceSuite) TestListRejectsUnknownKind() {
	_, err := s.service.List(s.ctx, "meteran", record.ListFilter{})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *RecordServiceSuite) TestGet() {
	s.seed()

	rec, err := s.service.Get(s.ctx, types.RecordKindPencabutan, 10)
	s.Require().NoError(err)
	s.Equal("Dewi Lestari", rec.DisplayName())

	_, err = s.service.Get(s.ctx, types.RecordKindPencabutan, 404)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *RecordServiceSuite) TestUpdate() {
	s.seed()

	err := s.service.Update(s.ctx, types.RecordKindPenyegelan, 1, map[string]any{
		"ket":    types.KetLunas,
		"jumlah": decimal.NewFromInt(0),
	})
	s.Require().NoError(err)

	rec, err := s.sealStore.Get(s.ctx, 1)
	s.Require().NoError(err)
	s.Equal(types.KetLunas, rec.Ket)
	s.True(rec.TotalDue.IsZero())
}

func (s *RecordServiceSuite) TestUpdateNoFields() {
	s.seed()

	err := s.service.Update(s.ctx, types.RecordKindPenyegelan, 1, map[string]any{})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *RecordServiceSuite) TestUpdateMissingRecord() {
	err := s.service.Update(s.ctx, types.RecordKindPencabutan, 404, map[string]any{
		"ket": types.KetProses,
	})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}
