// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"testing"
)

func TestExportKeyRoundTrip(t *testing.T) {
	key := GenerateExportKey("salt-1")

	if key == "" {
		t.Fatal("Expected a non-empty key")
	}
	if err := ValidateExportKey(key, "salt-1"); err != nil {
		t.Errorf("Expected derived key to validate: %v", err)
	}
}

func TestExportKeyDeterministic(t *testing.T) {
	if GenerateExportKey("salt-1") != GenerateExportKey("salt-1") {
		t.Error("Expected the same salt to derive the same key")
	}
}

func TestExportKeyRejectsWrongKey(t *testing.T) {
	err := ValidateExportKey("bogus", "salt-1")
	if !errors.Is(err, ErrInvalidExportKey) {
		t.Errorf("Expected ErrInvalidExportKey, got %v", err)
	}
}

func TestExportKeySaltRotationRevokes(t *testing.T) {
	old := GenerateExportKey("salt-1")

	if err := ValidateExportKey(old, "salt-2"); err == nil {
		t.Error("Expected key derived from old salt to be rejected")
	}
}
