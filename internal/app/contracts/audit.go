package contracts

import "context"

// AuditMessage records a sensitive scheduling action for the audit trail.
type AuditMessage struct {
	Action    string `json:"action"`
	EventID   string `json:"event_id,omitempty"`
	StaffID   string `json:"staff_id,omitempty"`
	BranchID  string `json:"branch_id,omitempty"`
	Actor     string `json:"actor,omitempty"`
	Detail    string `json:"detail,omitempty"`
	Timestamp string `json:"timestamp"`
}

// AuditQueueService publishes audit messages to the audit exchange. Conflict
// check bypasses and status settlements must always be published; delivery
// failures are logged but never abort the scheduling operation itself.
type AuditQueueService interface {
	Publish(ctx context.Context, message AuditMessage) error
}
