package datapath

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for datapath events.
var (
	SignalHas        = capitan.NewSignal("datapath.has", "Existence check finished")
	SignalGet        = capitan.NewSignal("datapath.get", "Read finished")
	SignalGetDefault = capitan.NewSignal("datapath.get.default", "Read missed and fell back to the default")
	SignalSet        = capitan.NewSignal("datapath.set", "Write finished")
	SignalForget     = capitan.NewSignal("datapath.forget", "Delete finished")
	SignalUpdate     = capitan.NewSignal("datapath.update", "In-place transform finished")
	SignalLoad       = capitan.NewSignal("datapath.load", "Document decoded")
	SignalDump       = capitan.NewSignal("datapath.dump", "Document encoded")
)

// Keys for typed event data.
var (
	KeyPath        = capitan.NewStringKey("path")
	KeySeparator   = capitan.NewStringKey("separator")
	KeySegments    = capitan.NewIntKey("segments")
	KeyDuration    = capitan.NewDurationKey("duration")
	KeyCount       = capitan.NewIntKey("count")
	KeyContentType = capitan.NewStringKey("content_type")
	KeySize        = capitan.NewIntKey("size")
	KeyError       = capitan.NewErrorKey("error")
)

// pathFields returns the fields shared by every path operation event.
func pathFields(path any, separator string, segs int, duration time.Duration) []capitan.Field {
	return []capitan.Field{
		KeyPath.Field(pathString(path, separator)),
		KeySeparator.Field(separator),
		KeySegments.Field(segs),
		KeyDuration.Field(duration),
	}
}

// emitHas emits an event when an existence check finishes.
func emitHas(ctx context.Context, path any, separator string, segs int, duration time.Duration, found bool) {
	n := 0
	if found {
		n = 1
	}
	fields := append(pathFields(path, separator, segs, duration), KeyCount.Field(n))
	capitan.Emit(ctx, SignalHas, fields...)
}

// emitGet emits an event when a read finishes. Misses are reported on
// their own signal so they can be hooked separately.
func emitGet(ctx context.Context, path any, separator string, segs int, duration time.Duration, hit bool) {
	fields := pathFields(path, separator, segs, duration)
	if hit {
		capitan.Emit(ctx, SignalGet, fields...)
	} else {
		capitan.Emit(ctx, SignalGetDefault, fields...)
	}
}

// emitSet emits an event when a write finishes.
func emitSet(ctx context.Context, path any, separator string, segs int, duration time.Duration) {
	capitan.Emit(ctx, SignalSet, pathFields(path, separator, segs, duration)...)
}

// emitForget emits an event when a delete finishes.
func emitForget(ctx context.Context, path any, separator string, segs int, duration time.Duration) {
	capitan.Emit(ctx, SignalForget, pathFields(path, separator, segs, duration)...)
}

// emitUpdate emits an event when an in-place transform finishes.
func emitUpdate(ctx context.Context, path any, separator string, segs int, duration time.Duration, count int, err error) {
	fields := append(pathFields(path, separator, segs, duration), KeyCount.Field(count))
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalUpdate, fields...)
	} else {
		capitan.Emit(ctx, SignalUpdate, fields...)
	}
}

// emitLoad emits an event when a document is decoded.
func emitLoad(ctx context.Context, contentType string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalLoad, fields...)
	} else {
		capitan.Emit(ctx, SignalLoad, fields...)
	}
}

// emitDump emits an event when a document is encoded.
func emitDump(ctx context.Context, contentType string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalDump, fields...)
	} else {
		capitan.Emit(ctx, SignalDump, fields...)
	}
}
