package utils

import (
	"log"
	"strings"
)

// LogEvent prints one structured line per domain event (booking created,
// status changed, PDF generated). Guest contact details never go in message.
func LogEvent(requestID, module, action, message string) {
	log.Printf("[%s] %s request_id=%s %s",
		strings.ToUpper(module), action, strings.TrimSpace(requestID), message)
}
