package crypto

import (
	"bytes"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCompareRoundtrip(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	hash, err := h.Hash("longenough1")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if !h.Compare(hash, "longenough1") {
		t.Fatal("expected matching password to verify")
	}
	if h.Compare(hash, "longenough2") {
		t.Fatal("expected mismatching password to fail")
	}
}

func TestHashEmbedsUniqueSalt(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	first, err := h.Hash("longenough1")
	if err != nil {
		t.Fatalf("first Hash returned error: %v", err)
	}
	second, err := h.Hash("longenough1")
	if err != nil {
		t.Fatalf("second Hash returned error: %v", err)
	}
	if bytes.Equal(first, second) {
		t.Fatal("expected two hashes of the same secret to differ")
	}
	if !h.Compare(first, "longenough1") || !h.Compare(second, "longenough1") {
		t.Fatal("expected both hashes to verify against the original secret")
	}
}

func TestHashRejectsShortSecret(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	if _, err := h.Hash("short"); !errors.Is(err, ErrSecretTooShort) {
		t.Fatalf("expected ErrSecretTooShort, got %v", err)
	}
}

func TestCompareMalformedHashReturnsFalse(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	if h.Compare([]byte("not-a-bcrypt-blob"), "longenough1") {
		t.Fatal("expected malformed hash to compare as false")
	}
	if h.Compare(nil, "longenough1") {
		t.Fatal("expected nil hash to compare as false")
	}
}

func TestNewHasherClampsCost(t *testing.T) {
	h := NewHasher(99)
	if h.cost != bcrypt.DefaultCost {
		t.Fatalf("expected default cost fallback, got %d", h.cost)
	}
	h = NewHasher(-1)
	if h.cost != bcrypt.DefaultCost {
		t.Fatalf("expected default cost fallback, got %d", h.cost)
	}
}
