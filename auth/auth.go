// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strings"
)

var ErrInvalidExportKey = errors.New("invalid export key")

// exportSubject is the fixed HMAC input for export keys. The key only
// varies with the salt, so rotating the salt revokes issued keys.
const exportSubject = "ship-check/export"

// GenerateExportKey derives the export key for a salt.
// This is deterministic and verifiable.
func GenerateExportKey(salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(exportSubject))
	sum := h.Sum(nil)
	// Use URL-safe base64 and trim padding for cleaner keys
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// ValidateExportKey checks the provided key against the configured salt.
func ValidateExportKey(key, salt string) error {
	expected := GenerateExportKey(salt)
	if !hmac.Equal([]byte(key), []byte(expected)) {
		return ErrInvalidExportKey
	}
	return nil
}
