package grouped

import "github.com/google/uuid"

// RecordID identifies the message or media record a part renders. Two parts
// are the same part exactly when their records match.
type RecordID uuid.UUID

// NoRecord is the zero identity.
var NoRecord RecordID

// NewRecordID returns a fresh random identity.
func NewRecordID() RecordID {
	return RecordID(uuid.New())
}

// ParseRecordID parses the canonical UUID text form.
func ParseRecordID(s string) (RecordID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return NoRecord, err
	}
	return RecordID(id), nil
}

// IsZero reports whether id is NoRecord.
func (id RecordID) IsZero() bool {
	return id == NoRecord
}

func (id RecordID) String() string {
	return uuid.UUID(id).String()
}
