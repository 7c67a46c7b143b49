package service

import (
	"github.com/tirtatarum/spk/internal/cache"
	"github.com/tirtatarum/spk/internal/config"
	"github.com/tirtatarum/spk/internal/domain/record"
	"github.com/tirtatarum/spk/internal/logger"
	"github.com/tirtatarum/spk/internal/typst"
)

// ServiceParams bundles the dependencies shared by all services.
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration

	SealRepo       record.SealRepository
	RevocationRepo record.RevocationRepository

	Cache    cache.Cache
	Compiler typst.Compiler
}
