package helpers

import "github.com/google/uuid"

// IsUUID reports whether s is a UUID in any of the forms uuid.Parse accepts.
func IsUUID(s string) bool {
	return uuid.Validate(s) == nil
}
