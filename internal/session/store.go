// Package session holds uploaded datasets and their view options between
// requests. A session is the server-side stand-in for the UI's rerun state:
// nothing else persists, and every view is recomputed from it. The default
// backend is an in-process TTL map; Redis can back it instead when the
// dashboard runs with more than one replica.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/aayush1982/universal-timeline-viewer/internal/model"
)

// ErrNotFound is returned for unknown or expired session ids.
var ErrNotFound = errors.New("session not found")

// Session is one upload plus its current view configuration.
type Session struct {
	ID        string            `json:"id"`
	Dataset   *model.Dataset    `json:"dataset"`
	Options   model.ViewOptions `json:"options"`
	CreatedAt time.Time         `json:"created_at"`
}

// Store is the session backend.
type Store interface {
	Create(ctx context.Context, ds *model.Dataset, opts model.ViewOptions) (*Session, error)
	Get(ctx context.Context, id string) (*Session, error)
	SetOptions(ctx context.Context, id string, opts model.ViewOptions) error
	Delete(ctx context.Context, id string) error
	Close() error
}

func newID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b)
}
