// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"strings"
	"testing"
)

func TestGenerateAdminKey(t *testing.T) {
	tests := []struct {
		name string
		salt string
	}{
		{"standard", "secret-salt"},
		{"empty salt", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := GenerateAdminKey(tt.salt)

			// Should not be empty
			if key == "" {
				t.Error("GenerateAdminKey() returned empty string")
			}

			// Should be deterministic
			if key != GenerateAdminKey(tt.salt) {
				t.Error("GenerateAdminKey() is not deterministic")
			}

			// Should be URL-safe without padding
			if strings.ContainsAny(key, "+/=") {
				t.Errorf("GenerateAdminKey() = %q is not URL-safe", key)
			}
		})
	}

	if GenerateAdminKey("salt-a") == GenerateAdminKey("salt-b") {
		t.Error("GenerateAdminKey() produced same key for different salts")
	}
}

func TestValidateAdminKey(t *testing.T) {
	salt := "test-salt"
	validKey := GenerateAdminKey(salt)

	tests := []struct {
		name    string
		key     string
		salt    string
		wantErr bool
	}{
		{"valid key", validKey, salt, false},
		{"wrong key", "invalid-key", salt, true},
		{"wrong salt", validKey, "other-salt", true},
		{"empty key", "", salt, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAdminKey(tt.key, tt.salt)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAdminKey() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidAdminKey) {
				t.Errorf("ValidateAdminKey() error = %v, want ErrInvalidAdminKey", err)
			}
		})
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("admin123")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if hash == "admin123" {
		t.Fatal("HashPassword() returned the plaintext")
	}

	if err := CheckPassword(hash, "admin123"); err != nil {
		t.Errorf("CheckPassword() with correct password error = %v", err)
	}

	if err := CheckPassword(hash, "wrong"); !errors.Is(err, ErrInvalidPassword) {
		t.Errorf("CheckPassword() with wrong password error = %v, want ErrInvalidPassword", err)
	}

	if err := CheckPassword("not-a-bcrypt-hash", "admin123"); !errors.Is(err, ErrInvalidPassword) {
		t.Errorf("CheckPassword() with malformed hash error = %v, want ErrInvalidPassword", err)
	}
}

func TestHashIP(t *testing.T) {
	tests := []struct {
		name string
		ip   string
		salt string
	}{
		{"IPv4", "192.168.1.1", "ip-salt"},
		{"IPv6", "2001:0db8:85a3::8a2e:0370:7334", "ip-salt"},
		{"localhost", "127.0.0.1", "ip-salt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash := HashIP(tt.ip, tt.salt)

			// Should be 16 hex characters (8 bytes * 2)
			if len(hash) != 16 {
				t.Errorf("HashIP() length = %d, want 16", len(hash))
			}

			// Should be valid hex
			for _, c := range hash {
				if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
					t.Errorf("HashIP() contains invalid hex char: %c", c)
				}
			}

			// Should be deterministic
			if hash != HashIP(tt.ip, tt.salt) {
				t.Error("HashIP() is not deterministic")
			}
		})
	}

	// Different salts should produce different hashes
	if HashIP("192.168.1.1", "salt1") == HashIP("192.168.1.1", "salt2") {
		t.Error("HashIP() produced same hash for different salts")
	}
}

func BenchmarkGenerateAdminKey(b *testing.B) {
	salt := "test-salt"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		GenerateAdminKey(salt)
	}
}
