package newsapi

import "fmt"

// UnavailableError はNewsAPIが200以外のステータスを返したことを表します。
type UnavailableError struct {
	StatusCode int
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("newsapi http %d", e.StatusCode)
}

// Unavailable reports that the provider answered but has no news for the caller.
func (e *UnavailableError) Unavailable() bool { return true }
