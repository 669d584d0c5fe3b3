package common

import "github.com/google/uuid"

// UUID is the identifier type shared by all entities. Kept as a string so it
// serializes and scans without adapters.
type UUID string

func NewUUID() UUID {
	return UUID(uuid.NewString())
}

// ParseUUID validates a client-supplied identifier. Malformed ids are rejected
// here so repositories never see them.
func ParseUUID(value string) (UUID, error) {
	parsed, err := uuid.Parse(value)
	if err != nil {
		return "", NewError(CodeInvalidID, "invalid identifier", err)
	}
	return UUID(parsed.String()), nil
}

func (u UUID) String() string {
	return string(u)
}
