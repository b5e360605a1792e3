package session

import (
	"fmt"
	"time"
)

// FormatElapsed renders d as MM:SS. Minutes are not capped.
func FormatElapsed(d time.Duration) string {
	ms := max(d.Milliseconds(), 0)
	return fmt.Sprintf("%02d:%02d", ms/60000, (ms/1000)%60)
}
