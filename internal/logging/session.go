package logging

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// GenerateSessionID returns a sortable session identifier such as
// "20260830_101502_b4e1": timestamp plus a short random suffix so two
// windows started in the same second stay distinct.
func GenerateSessionID() string {
	now := time.Now()
	random := make([]byte, 2)
	_, _ = rand.Read(random)
	return now.Format("20060102_150405") + "_" + hex.EncodeToString(random)
}

// ShortSessionID extracts the random suffix from a full session ID,
// e.g. "20260830_101502_b4e1" -> "b4e1".
func ShortSessionID(sessionID string) string {
	if len(sessionID) < 4 {
		return sessionID
	}
	return sessionID[len(sessionID)-4:]
}
