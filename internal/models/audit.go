package models

import "time"

// Audit action tags. Free-form but kept consistent for filtering.
const (
	AuditActionRegister        = "register"
	AuditActionRegisterCourses = "register_courses"
	AuditActionApproved        = "approved"
	AuditActionRejected        = "rejected"
	AuditActionDeleteReg       = "delete_registration"
	AuditActionConfigUpdate    = "config_update"
	AuditActionTokenGenerated  = "token_generated"
	AuditActionTokenUsed       = "token_used"
	AuditActionSignatureUpdate = "signature_update"
	AuditActionSignatureDelete = "signature_delete"
	AuditActionAdminCreated    = "admin_created"
)

// AuditEntry is one line of the append-only portal audit trail. Entries are
// never mutated or pruned; unbounded growth is accepted.
type AuditEntry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"`
	Actor     string    `json:"user"`
	Detail    string    `json:"details,omitempty"`
}
