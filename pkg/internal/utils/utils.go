package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

func GenerateSha256Hash[T any](data T) string {
	// Stable enough for identity purposes; structs fall back to their %v form.
	dataString := fmt.Sprintf("%v", data)

	hash := sha256.Sum256([]byte(dataString))

	return hex.EncodeToString(hash[:])
}

func GenerateUniqueHash() string {
	// Combine the current time and random data for the hash input
	currentTime := time.Now().UnixNano()
	randomBytes := make([]byte, 16) // 128 bits of random data
	_, err := rand.Read(randomBytes)
	if err != nil {
		panic("random number generator failed")
	}

	hashInput := append([]byte(fmt.Sprintf("%d", currentTime)), randomBytes...)

	hash := sha256.Sum256(hashInput)

	return hex.EncodeToString(hash[:])
}
