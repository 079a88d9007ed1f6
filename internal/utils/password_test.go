// SPDX-License-Identifier: Apache-2.0

package utils

import "testing"

func TestHashPassword_RoundTrip(t *testing.T) {
	digest, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if digest == "" || digest == "password123" {
		t.Fatal("expected non-empty digest distinct from plaintext")
	}

	if !VerifyPassword("password123", digest) {
		t.Error("expected matching password to verify")
	}
	if VerifyPassword("wrong-password", digest) {
		t.Error("expected non-matching password to fail verification")
	}
}

func TestHashPassword_SaltedDigestsDiffer(t *testing.T) {
	first, err := HashPassword("same-input")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := HashPassword("same-input")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first == second {
		t.Error("expected salted digests of the same input to differ")
	}
}

func TestVerifyPassword_GarbageDigest(t *testing.T) {
	if VerifyPassword("anything", "not-a-bcrypt-digest") {
		t.Error("expected verification against a garbage digest to fail")
	}
}
