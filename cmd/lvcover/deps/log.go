package deps

import (
	"io"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/lvcover/cmd/lvcover/rootcmd"
)

func ProvideLogOptions() *rootcmd.LogOptions {
	return &rootcmd.LogOptions{}
}

func ProvideLogFactory(streams rootcmd.IOStreams, opts *rootcmd.LogOptions) LogFactory {
	return &ZapLogFactory{
		out:  streams.ErrOut,
		opts: opts,
	}
}

type LogFactory interface {
	Logger() logr.Logger
}

// ZapLogFactory builds a zap-backed logr.Logger writing to the error stream.
// logr V(n) maps to zap level -n, so --verbosity=n enables V(0)..V(n).
type ZapLogFactory struct {
	out  io.Writer
	opts *rootcmd.LogOptions
}

func (f *ZapLogFactory) Logger() logr.Logger {
	encoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	if f.opts.Development {
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	}
	level := zap.NewAtomicLevelAt(zapcore.Level(-f.opts.Verbosity))
	core := zapcore.NewCore(encoder, zapcore.AddSync(f.out), level)

	return zapr.NewLogger(zap.New(core))
}
