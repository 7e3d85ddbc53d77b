package models

// AuditLog records every change made to the family ledger. Deleted
// transactions are gone for good, so this is the only trace of them.
type AuditLog struct {
	Base
	Action       string `gorm:"type:text;not null;index" json:"action"`
	ResourceType string `gorm:"type:text;not null" json:"resource_type"`
	ResourceID   string `gorm:"type:text" json:"resource_id"`
	IPAddress    string `gorm:"type:text" json:"ip_address"`
	RequestID    string `gorm:"type:text" json:"request_id,omitempty"`
	Changes      string `gorm:"type:text" json:"changes,omitempty"`
}

// Audit actions.
const (
	AuditCreateTransaction   = "CREATE_TRANSACTION"
	AuditCreateInstallments  = "CREATE_INSTALLMENTS"
	AuditUpdateTransaction   = "UPDATE_TRANSACTION"
	AuditDeleteTransaction   = "DELETE_TRANSACTION"
	AuditResourceTransaction = "transaction"
)
