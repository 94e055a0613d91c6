package vault

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/rohits-web03/passvault/internal/apperr"
	"github.com/rohits-web03/passvault/internal/models"
	"github.com/rohits-web03/passvault/internal/repositories"
)

const ExportLinkTTL = 15 * time.Minute

// ObjectStore is the bucket exports are written to.
type ObjectStore interface {
	Put(ctx context.Context, key string, body []byte, contentType string) error
	PresignGet(ctx context.Context, key string, expires time.Duration) (string, error)
}

type ExportResult struct {
	URL       string `json:"url"`
	ExpiresIn int    `json:"expiresIn"`
}

type exportDocument struct {
	ExportedAt time.Time              `json:"exportedAt"`
	Protection Protection             `json:"protection"`
	Entries    []models.PasswordEntry `json:"entries"`
}

// Exporter writes a user's entries to object storage and hands back a
// short-lived download link.
type Exporter struct {
	passwords *PasswordService
	store     ObjectStore
	now       func() time.Time
}

func NewExporter(passwords *PasswordService, store ObjectStore) *Exporter {
	return &Exporter{passwords: passwords, store: store, now: time.Now}
}

func (e *Exporter) Export(ctx context.Context, userID uuid.UUID) (ExportResult, error) {
	entries, err := e.passwords.List(ctx, userID, repositories.ListFilter{})
	if err != nil {
		return ExportResult{}, err
	}

	now := e.now().UTC()
	body, err := json.MarshalIndent(exportDocument{
		ExportedAt: now,
		Protection: ProtectionReversible,
		Entries:    entries,
	}, "", "  ")
	if err != nil {
		return ExportResult{}, fmt.Errorf("%w: encode export: %v", apperr.ErrInternal, err)
	}

	key := fmt.Sprintf("exports/%s/%d.json", userID, now.Unix())
	if err := e.store.Put(ctx, key, body, "application/json"); err != nil {
		return ExportResult{}, fmt.Errorf("%w: %v", apperr.ErrInternal, err)
	}
	url, err := e.store.PresignGet(ctx, key, ExportLinkTTL)
	if err != nil {
		return ExportResult{}, fmt.Errorf("%w: %v", apperr.ErrInternal, err)
	}

	slog.InfoContext(ctx, "vault exported", "user_id", userID, "entries", len(entries), "key", key)
	return ExportResult{URL: url, ExpiresIn: int(ExportLinkTTL.Seconds())}, nil
}

var _ ObjectStore = (*repositories.ObjectStore)(nil)
