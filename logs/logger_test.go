package logs

import (
	"context"
	"testing"

	"github.com/reusee/bf/modes"
	"github.com/reusee/dscope"
)

func TestHandler(t *testing.T) {
	dscope.New(new(Module), modes.ForTest(t)).Call(func(
		logger Logger,
	) {
		logger.Info("test", "hello", "world!")
	})
}

func TestNewSpan(t *testing.T) {
	dscope.New(new(Module), modes.ForTest(t)).Call(func(
		logger Logger,
		newSpan NewSpan,
	) {
		ctx, span := newSpan(context.Background(), "")
		if span == "" {
			t.Fatal("expecting span")
		}
		logger.InfoContext(ctx, "in span")

		ctx2, span2 := newSpan(ctx, span)
		if span2 == span {
			t.Fatal("spans should differ")
		}
		if v := ctx2.Value(SpanKey); v.(Span) != span2 {
			t.Fatalf("got %v", v)
		}

		err := WrapSpan(ctx2, context.Canceled)
		if err == nil {
			t.Fatal("expecting error")
		}
	})
}
