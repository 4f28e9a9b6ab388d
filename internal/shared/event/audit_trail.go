package event

import "time"

const AuditTrailDestination string = "audit_trail"
const AuditTrailConsumerAudit string = "audit_trail_recorder"

type AuditTrailMessage struct {
	Actor      int64     `json:"actor"`
	Action     string    `json:"action"`
	Entity     string    `json:"entity"`
	EntityID   string    `json:"entity_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
