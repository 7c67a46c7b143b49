package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/tirtatarum/spk/internal/cache"
	"github.com/tirtatarum/spk/internal/domain/record"
	"github.com/tirtatarum/spk/internal/testutil"
	"github.com/tirtatarum/spk/internal/types"
)

type StatsServiceSuite struct {
	suite.Suite
	ctx             context.Context
	sealStore       *testutil.InMemorySealStore
	revocationStore *testutil.InMemoryRevocationStore
	cache           cache.Cache
	service         StatsService
	recordService   RecordService
}

func TestStatsServiceSuite(t *testing.T) {
	suite.Run(t, new(StatsServiceSuite))
}

func (s *StatsServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.sealStore = testutil.NewInMemorySealStore()
	s.revocationStore = testutil.NewInMemoryRevocationStore()

	cfg, log := testutil.Setup()
	s.cache = testutil.NewTestCache(cfg)
	params := ServiceParams{
		Logger:         log,
		Config:         cfg,
		SealRepo:       s.sealStore,
		RevocationRepo: s.revocationStore,
		Cache:          s.cache,
		Compiler:       testutil.NewFakeCompiler(),
	}
	s.service = NewStatsService(params)
	s.recordService = NewRecordService(params)
}

func (s *StatsServiceSuite) seed() {
	seals := []*record.SealRecord{
		{ID: 1, Name: "Agus", TotalDue: decimal.NewFromInt(100000), Ket: types.KetBelumLunas},
		{ID: 2, Name: "Budi", TotalDue: decimal.NewFromInt(50000), Ket: types.KetBelumLunas},
		{ID: 3, Name: "Citra", TotalDue: decimal.NewFromInt(75000), Ket: types.KetLunas},
	}
	for _, r := range seals {
		s.Require().NoError(s.sealStore.Create(s.ctx, r.ID, r))
	}

	s.Require().NoError(s.revocationStore.Create(s.ctx, 10, &record.RevocationRecord{
		ID: 10, Name: "Dewi", OverdueAmount: decimal.NewFromInt(200000), Ket: types.KetCabut,
	}))
}

func (s *StatsServiceSuite) TestGetStats() {
	s.seed()

	stats, err := s.service.GetStats(s.ctx)

	s.Require().NoError(err)
	s.Equal(int64(3), stats.TotalPenyegelan)
	s.Equal(int64(1), stats.TotalPencabutan)
	s.Equal(int64(4), stats.TotalAll)

	s.Require().Len(stats.PenyegelanByKet, 2)
	byKet := make(map[string]int)
	for _, group := range stats.PenyegelanByKet {
		byKet[group.Ket] = group.Count
	}
	s.Equal(2, byKet[types.KetBelumLunas])
	s.Equal(1, byKet[types.KetLunas])

	s.True(stats.TotalTunggakanPenyegelan.Equal(decimal.NewFromInt(225000)))
	s.True(stats.TotalTunggakanPencabutan.Equal(decimal.NewFromInt(200000)))
	s.True(stats.TotalTunggakanAll.Equal(decimal.NewFromInt(425000)))
}

func (s *StatsServiceSuite) TestGetStatsEmptyStores() {
	stats, err := s.service.GetStats(s.ctx)

	s.Require().NoError(err)
	s.Zero(stats.TotalAll)
	s.Empty(stats.PenyegelanByKet)
	s.True(stats.TotalTunggakanAll.IsZero())
}

func (s *StatsServiceSuite) TestGetStatsIsCached() {
	s.seed()

	first, err := s.service.GetStats(s.ctx)
	s.Require().NoError(err)

	// A direct store write does not show up until the cache expires.
	s.Require().NoError(s.sealStore.Create(s.ctx, 4, &record.SealRecord{
		ID: 4, Name: "Eka", TotalDue: decimal.NewFromInt(10000), Ket: types.KetProses,
	}))

	second, err := s.service.GetStats(s.ctx)
	s.Require().NoError(err)
	s.Equal(first.TotalPenyegelan, second.TotalPenyegelan)
}

func (s *StatsServiceSuite) TestUpdateInvalidatesStatsCache() {
	s.seed()

	stats, err := s.service.GetStats(s.ctx)
	s.Require().NoError(err)
	s.True(stats.TotalTunggakanPenyegelan.Equal(decimal.NewFromInt(225000)))

	err = s.recordService.Update(s.ctx, types.RecordKindPenyegelan, 1, map[string]any{
		"jumlah": decimal.NewFromInt(0),
		"ket":    types.KetLunas,
	})
	s.Require().NoError(err)

	stats, err = s.service.GetStats(s.ctx)
	s.Require().NoError(err)
	s.True(stats.TotalTunggakanPenyegelan.Equal(decimal.NewFromInt(125000)))
}
