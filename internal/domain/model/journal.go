package model

import "time"

// Journal streams.
const (
	JournalStreamOrder     = "order"
	JournalStreamAffiliate = "affiliate"
	JournalStreamCoupon    = "coupon"
	JournalStreamCatalog   = "catalog"
	JournalStreamUser      = "user"
)

// JournalEntry mirrors a single ledger or audit append for external storage.
type JournalEntry struct {
	ID          string
	Stream      string
	AggregateID string
	Kind        string
	Payload     map[string]any
	RecordedAt  time.Time
}
