package clipboard

import (
	"context"

	"github.com/atotto/clipboard"
	"github.com/cockroachdb/errors"
)

// Sink — куда пишем скопированный код
type Sink interface {
	Write(ctx context.Context, text string) error
}

type SinkFunc func(ctx context.Context, text string) error

func (f SinkFunc) Write(ctx context.Context, text string) error { return f(ctx, text) }

// SystemSink — буфер обмена ОС (xclip/xsel/wl-copy, pbcopy, Windows API)
type SystemSink struct{}

func (SystemSink) Write(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if clipboard.Unsupported {
		return errors.New("system clipboard is not available")
	}
	return errors.Wrap(clipboard.WriteAll(text), "write system clipboard")
}
