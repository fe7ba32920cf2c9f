package internallogger

import (
	"os"
	"sync"

	"github.com/fftrace/fftrace/pkg/logschema"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggerOption mutates the zap configuration, minimum level, and caller depth
// before the adapter is built.
type LoggerOption func(*zap.Config, *zapcore.Level, *int)

// ZapLoggerAdapter implements types.Logger on top of zap. The default core
// writes JSON to stdout; additional sinks can be attached at runtime.
type ZapLoggerAdapter struct {
	mu          sync.Mutex
	logger      *zap.Logger
	atomicLevel zap.AtomicLevel
	callerDepth int
	callerOn    bool
	encConfig   zapcore.EncoderConfig
	baseCore    zapcore.Core
	baseFields  []zap.Field
	sinks       map[string]sinkEntry
}

// NewLogger initializes a new ZapLoggerAdapter with configurable options.
func NewLogger(options ...LoggerOption) *ZapLoggerAdapter {
	cfg := zap.NewProductionConfig()
	level := zapcore.InfoLevel
	callerDepth := 2

	for _, option := range options {
		option(&cfg, &level, &callerDepth)
	}

	if cfg.InitialFields == nil {
		cfg.InitialFields = map[string]interface{}{}
	}
	if _, ok := cfg.InitialFields[logschema.FieldSchema]; !ok {
		cfg.InitialFields[logschema.FieldSchema] = logschema.SchemaID
	}

	z := &ZapLoggerAdapter{
		atomicLevel: zap.NewAtomicLevelAt(level),
		callerDepth: callerDepth,
		callerOn:    true,
		encConfig:   standardEncoderConfig(),
		baseFields:  fieldsFromMap(cfg.InitialFields),
		sinks:       make(map[string]sinkEntry),
	}
	z.baseCore = zapcore.NewCore(zapcore.NewJSONEncoder(z.encConfig), zapcore.Lock(os.Stdout), z.atomicLevel)

	z.mu.Lock()
	z.rebuildLoggerLocked()
	z.mu.Unlock()

	return z
}
