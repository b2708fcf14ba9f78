// Package audit records who changed what, when and why. Storage of the
// trail is an external collaborator; the core only emits entries.
package audit

import (
	"context"
	"log/slog"

	"github.com/FDCTax/fdctax-core-api-sub002/internal/workpaper"
)

// Action names an audited operation.
type Action string

const (
	ActionModuleFreeze   Action = "workpaper.module.freeze"
	ActionModuleReopen   Action = "workpaper.module.reopen"
	ActionJobFreeze      Action = "workpaper.job.freeze"
	ActionJobReopen      Action = "workpaper.job.reopen"
	ActionOverrideCreate Action = "workpaper.override.create"
	ActionQueryCreate    Action = "workpaper.query.create"
	ActionQuerySend      Action = "workpaper.query.send"
	ActionQueryRespond   Action = "workpaper.query.respond"
	ActionQueryResolve   Action = "workpaper.query.resolve"
	ActionQueryClose     Action = "workpaper.query.close"
)

// ResourceType names the entity kind an entry refers to.
type ResourceType string

const (
	ResourceJob         ResourceType = "workpaper_job"
	ResourceModule      ResourceType = "workpaper_module"
	ResourceTransaction ResourceType = "transaction"
	ResourceOverride    ResourceType = "override"
	ResourceQuery       ResourceType = "query"
)

// Entry is one audit record.
type Entry struct {
	Action       Action
	ResourceType ResourceType
	ResourceID   string
	Actor        workpaper.Actor
	Details      map[string]any
}

// Sink receives audit entries. Implementations must be fire-and-forget:
// a failing sink never fails the operation being audited.
type Sink interface {
	Log(ctx context.Context, e Entry)
}

// SlogSink writes entries to structured logs.
type SlogSink struct {
	log *slog.Logger
}

func NewSlogSink(log *slog.Logger) *SlogSink {
	if log == nil {
		log = slog.Default()
	}

	return &SlogSink{log: log}
}

func (s *SlogSink) Log(ctx context.Context, e Entry) {
	s.log.InfoContext(ctx, "audit",
		"action", string(e.Action),
		"resource_type", string(e.ResourceType),
		"resource_id", e.ResourceID,
		"actor_id", e.Actor.ID,
		"actor_email", e.Actor.Email,
		"details", e.Details,
	)
}

// Nop discards entries. Used in tests.
type Nop struct{}

func (Nop) Log(context.Context, Entry) {}
