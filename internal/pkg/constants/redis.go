package constants

import "fmt"

// Redis key prefixes
const (
	dispatchViewKeyPrefix = "dispatch:view:"
)

// DispatchViewKey returns the cache key for an assembled dispatch
// detail view.
func DispatchViewKey(dispatchID string) string {
	return fmt.Sprintf("%s%s", dispatchViewKeyPrefix, dispatchID)
}
