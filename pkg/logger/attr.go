package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Key records a cache key under the key "key".
func Key(key any) slog.Attr {
	return slog.Any("key", key)
}

// Capacity records a cache capacity under the key "capacity".
func Capacity(n int) slog.Attr {
	return slog.Int("capacity", n)
}

// Tier records which cache tier served or failed a request.
func Tier(name string) slog.Attr {
	return slog.String("tier", name)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}
