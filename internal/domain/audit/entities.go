package audit

import (
	"context"
	"time"
)

// Entry is append-only: rows are never updated or deleted.
type Entry struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	Action    string    `gorm:"size:64;not null;index:idx_audit_action" json:"action"`
	ActorID   string    `gorm:"size:64" json:"actor_id,omitempty"`
	Payload   string    `gorm:"type:text" json:"payload"`
	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_audit_created" json:"created_at"`
}

func (Entry) TableName() string { return "audit_logs" }

// Sink records one entry per mutating operation. Implementations are
// fire-and-forget: a failed write is logged by the sink, never surfaced
// to the caller.
type Sink interface {
	Record(ctx context.Context, action, actorID string, payload any)
}
