package drafts

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
)

type DraftStore interface {
	Create(ctx context.Context, data json.RawMessage) (uuid.UUID, error)
	Get(ctx context.Context, id uuid.UUID) (json.RawMessage, error)
	Update(ctx context.Context, id uuid.UUID, data json.RawMessage) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
