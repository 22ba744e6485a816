package folio

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for serializer events.
var (
	SignalSerializerCreated = capitan.NewSignal("folio.serializer.created", "Serializer instantiated")
	SignalDecodeStart       = capitan.NewSignal("folio.decode.start", "Decode operation beginning")
	SignalDecodeComplete    = capitan.NewSignal("folio.decode.complete", "Decode operation finished")
	SignalDecodeFallback    = capitan.NewSignal("folio.decode.fallback", "Malformed input replaced by an empty notebook")
	SignalEncodeStart       = capitan.NewSignal("folio.encode.start", "Encode operation beginning")
	SignalEncodeComplete    = capitan.NewSignal("folio.encode.complete", "Encode operation finished")
)

// Keys for typed event data.
var (
	KeyContentType = capitan.NewStringKey("content_type")
	KeySize        = capitan.NewIntKey("size")
	KeyCellCount   = capitan.NewIntKey("cell_count")
	KeyOutputCount = capitan.NewIntKey("output_count")
	KeyDuration    = capitan.NewDurationKey("duration")
	KeyError       = capitan.NewErrorKey("error")
)

func emitSerializerCreated(ctx context.Context, contentType string) {
	capitan.Emit(ctx, SignalSerializerCreated,
		KeyContentType.Field(contentType),
	)
}

func emitDecodeStart(ctx context.Context, contentType string, size int) {
	capitan.Emit(ctx, SignalDecodeStart,
		KeyContentType.Field(contentType),
		KeySize.Field(size),
	)
}

// emitDecodeFallback reports the error a fail-soft decode swallowed.
func emitDecodeFallback(ctx context.Context, contentType string, size int, err error) {
	capitan.Error(ctx, SignalDecodeFallback,
		KeyContentType.Field(contentType),
		KeySize.Field(size),
		KeyError.Field(err),
	)
}

func emitDecodeComplete(ctx context.Context, contentType string, cells, outputs int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyCellCount.Field(cells),
		KeyOutputCount.Field(outputs),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalDecodeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalDecodeComplete, fields...)
	}
}

func emitEncodeStart(ctx context.Context, contentType string, cells int) {
	capitan.Emit(ctx, SignalEncodeStart,
		KeyContentType.Field(contentType),
		KeyCellCount.Field(cells),
	)
}

func emitEncodeComplete(ctx context.Context, contentType string, cells, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyCellCount.Field(cells),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalEncodeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalEncodeComplete, fields...)
	}
}
