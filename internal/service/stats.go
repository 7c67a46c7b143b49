package service

import (
	"context"
	"time"

	"github.com/tirtatarum/spk/internal/api/dto"
	"github.com/tirtatarum/spk/internal/cache"
)

const statsCacheTTL = 60 * time.Second

// StatsService produces the dashboard aggregates.
type StatsService interface {
	GetStats(ctx context.Context) (*dto.StatsResponse, error)
}

type statsService struct {
	ServiceParams
}

func NewStatsService(params ServiceParams) StatsService {
	return &statsService{ServiceParams: params}
}

func (s *statsService) GetStats(ctx context.Context) (*dto.StatsResponse, error) {
	key := cache.GenerateKey(cache.PrefixStats, "dashboard")
	if cached, found := s.Cache.Get(ctx, key); found {
		if stats, ok := cached.(*dto.StatsResponse); ok {
			return stats, nil
		}
	}

	sealCount, err := s.SealRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	revocationCount, err := s.RevocationRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	sealByKet, err := s.SealRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	revocationByKet, err := s.RevocationRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	sealSum, err := s.SealRepo.SumAmount(ctx)
	if err != nil {
		return nil, err
	}
	revocationSum, err := s.RevocationRepo.SumAmount(ctx)
	if err != nil {
		return nil, err
	}

	stats := &dto.StatsResponse{
		TotalPenyegelan:          int64(sealCount),
		TotalPencabutan:          int64(revocationCount),
		TotalAll:                 int64(sealCount + revocationCount),
		PenyegelanByKet:          sealByKet,
		PencabutanByKet:          revocationByKet,
		TotalTunggakanPenyegelan: sealSum,
		TotalTunggakanPencabutan: revocationSum,
		TotalTunggakanAll:        sealSum.Add(revocationSum),
	}

	s.Cache.Set(ctx, key, stats, statsCacheTTL)
	return stats, nil
}
