package logger

import (
	"context"
	"log/slog"
)

type operationKey struct{}

// ContextWithOperation returns a copy of ctx carrying an operation name.
// Records logged with that context get an "op" attribute.
func ContextWithOperation(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, operationKey{}, name)
}

// OperationFromContext returns the operation name stored by ContextWithOperation.
func OperationFromContext(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(operationKey{}).(string)
	return name, ok && name != ""
}

// Operation records an operation name under the key "op".
func Operation(name string) slog.Attr {
	return slog.String("op", name)
}

// ContextExtractor pulls an attribute out of a record's context.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

func operationExtractor(ctx context.Context) (slog.Attr, bool) {
	name, ok := OperationFromContext(ctx)
	if !ok {
		return slog.Attr{}, false
	}
	return Operation(name), true
}

// contextHandler adds the operation name and extractor attributes to every
// emitted record. Disabled records never reach the extractors.
type contextHandler struct {
	next       slog.Handler
	extractors []ContextExtractor
}

func newContextHandler(next slog.Handler, extractors []ContextExtractor) *contextHandler {
	return &contextHandler{
		next:       next,
		extractors: append([]ContextExtractor{operationExtractor}, extractors...),
	}
}

func (h *contextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *contextHandler) Handle(ctx context.Context, rec slog.Record) error {
	for _, extract := range h.extractors {
		if attr, ok := extract(ctx); ok {
			rec.AddAttrs(attr)
		}
	}
	return h.next.Handle(ctx, rec)
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &contextHandler{next: h.next.WithAttrs(attrs), extractors: h.extractors}
}

func (h *contextHandler) WithGroup(name string) slog.Handler {
	return &contextHandler{next: h.next.WithGroup(name), extractors: h.extractors}
}
