package testutil

import (
	"github.com/tirtatarum/spk/internal/cache"
	"github.com/tirtatarum/spk/internal/config"
	"github.com/tirtatarum/spk/internal/logger"
	"github.com/tirtatarum/spk/internal/typst"
)

// Setup returns the shared fixtures for service tests.
func Setup() (*config.Configuration, *logger.Logger) {
	return config.GetDefaultConfig(), logger.L
}

// NewTestCache returns an enabled in-memory cache.
func NewTestCache(cfg *config.Configuration) cache.Cache {
	cfg.Cache.Enabled = true
	return cache.NewInMemoryCache(cfg)
}

// FakeCompiler implements typst.Compiler without shelling out. It records
// the last template data it was handed so tests can assert on the payload.
type FakeCompiler struct {
	Output   []byte
	Err      error
	LastData []byte
}

func NewFakeCompiler() *FakeCompiler {
	return &FakeCompiler{Output: []byte("%PDF-1.7 fake")}
}

func (f *FakeCompiler) Compile(opts typst.CompileOpts) (string, error) {
	if f.Err != nil {
		return "", f.Err
	}
	return opts.OutputFile, nil
}

func (f *FakeCompiler) CompileToBytes(opts typst.CompileOpts) ([]byte, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Output, nil
}

func (f *FakeCompiler) CompileTemplate(templateName string, data []byte, opts ...typst.CompileOptsBuilder) ([]byte, error) {
	f.LastData = data
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Output, nil
}
