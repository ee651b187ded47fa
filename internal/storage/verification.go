package storage

import (
	"crypto/sha256"
	"encoding/base64"
	"strings"
)

const (
	verificationSalt = "NPC_EMOTION_GAME_2024"
	verificationLen  = 6
)

// VerificationCode derives the survey code a participant reports after
// finishing a session. The code is stable for a given participant,
// version and condition, so the survey side can re-derive and check it.
func VerificationCode(participantID, version, condition string) string {
	if participantID == "" || version == "" || condition == "" {
		return "INVALID"
	}

	sum := sha256.Sum256([]byte(verificationSalt + ":" + participantID + ":" + version + ":" + condition))
	encoded := base64.StdEncoding.EncodeToString(sum[:])

	var b strings.Builder
	for _, c := range encoded {
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			b.WriteRune(c)
			if b.Len() == verificationLen {
				break
			}
		}
	}
	return strings.ToUpper(b.String())
}
