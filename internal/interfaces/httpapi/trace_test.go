package httpapi

import (
	"context"
	"testing"
)

func TestStartSpanWithoutParentIsNoop(t *testing.T) {
	ctx := context.Background()

	outCtx, span := startSpan(ctx, "httpapi.Handler.GetScoreboard")
	defer span.End()

	if outCtx != ctx {
		t.Fatal("expected context to pass through unchanged without a parent span")
	}
	if span.SpanContext().IsValid() {
		t.Fatal("expected noop span without a parent span")
	}
}

func TestShouldCreateHTTPAPISpan(t *testing.T) {
	if !shouldCreateHTTPAPISpan("httpapi.Handler.GetMatch") {
		t.Fatal("expected handler spans to be created")
	}
	if shouldCreateHTTPAPISpan("httpapi.writeJSON") {
		t.Fatal("expected helper spans to be skipped")
	}
}
