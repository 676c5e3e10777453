package log

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type correlationIDType int

const (
	sessionIDKey correlationIDType = iota
	sessionFieldsKey
)

// WithSessionID returns a context which knows its session ID.
// A session covers everything done on behalf of one selected element, from the selection until the
// element is deselected. Fields are printed next to the id by ZContext.
func WithSessionID(ctx context.Context, sessionID string, fields ...zap.Field) context.Context {
	ctx = context.WithValue(ctx, sessionIDKey, sessionID)
	if len(fields) > 0 {
		ctx = context.WithValue(ctx, sessionFieldsKey, fields)
	}
	return ctx
}

// WithNewSessionID does the same thing as WithSessionID but generates a new, random session id.
func WithNewSessionID(ctx context.Context, fields ...zap.Field) context.Context {
	return WithSessionID(ctx, uuid.NewString(), fields...)
}

// ExtractSessionID extracts the session id from a context object.
func ExtractSessionID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(sessionIDKey).(string)
	return id, ok
}

// ZContext returns a field with the session id and session fields of ctx, if there are any.
func ZContext(ctx context.Context) zap.Field {
	id, ok := ExtractSessionID(ctx)
	if !ok {
		return zap.Skip()
	}
	fields, _ := ctx.Value(sessionFieldsKey).([]zap.Field)
	return zap.Inline(sessionObject{id: id, fields: fields})
}

type sessionObject struct {
	id     string
	fields []zap.Field
}

func (s sessionObject) MarshalLogObject(encoder zapcore.ObjectEncoder) error {
	encoder.AddString("session_id", s.id)
	for _, f := range s.fields {
		f.AddTo(encoder)
	}
	return nil
}
