package mysql

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"microloan-backend/internal/domain/audit"
)

// AuditSink appends audit entries best-effort: a failed write is logged,
// never returned, so audit problems cannot fail the mutation they trace.
type AuditSink struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewAuditSink(db *gorm.DB, log *zap.Logger) *AuditSink {
	return &AuditSink{db: db, log: log}
}

func (s *AuditSink) Record(ctx context.Context, action, actorID string, payload any) {
	raw, err := json.Marshal(payload)
	if err != nil {
		s.log.Error("audit payload marshal failed", zap.String("action", action), zap.Error(err))
		raw = []byte("{}")
	}
	e := &audit.Entry{Action: action, ActorID: actorID, Payload: string(raw)}
	if err := s.db.WithContext(ctx).Create(e).Error; err != nil {
		s.log.Error("audit write failed", zap.String("action", action), zap.Error(err))
	}
}

// ListRecent returns the newest entries, for the admin activity feed.
func (s *AuditSink) ListRecent(ctx context.Context, limit int) ([]audit.Entry, error) {
	var out []audit.Entry
	err := s.db.WithContext(ctx).Order("created_at DESC, id DESC").Limit(limit).Find(&out).Error
	return out, err
}
