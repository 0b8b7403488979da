package password

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHash_SaltedPerCall(t *testing.T) {
	t.Parallel()

	h := NewHasher(MinCost)

	first, err := h.Hash("secret1")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	second, err := h.Hash("secret1")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	if first == second {
		t.Fatalf("two hashes of the same plaintext must differ, both were %q", first)
	}
	if !h.Verify("secret1", first) || !h.Verify("secret1", second) {
		t.Fatalf("both hash records must verify against the original plaintext")
	}
}

func TestVerify_WrongPassword(t *testing.T) {
	t.Parallel()

	h := NewHasher(MinCost)

	record, err := h.Hash("secret1")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	if h.Verify("wrong", record) {
		t.Fatalf("wrong password must not verify")
	}
}

func TestVerify_MalformedRecord(t *testing.T) {
	t.Parallel()

	h := NewHasher(MinCost)

	if h.Verify("anything", "not-a-bcrypt-record") {
		t.Fatalf("malformed record must not verify")
	}
	if h.Verify("anything", "") {
		t.Fatalf("empty record must not verify")
	}
}

func TestNewHasher_CostFloor(t *testing.T) {
	t.Parallel()

	h := NewHasher(4)

	record, err := h.Hash("secret1")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	cost, err := bcrypt.Cost([]byte(record))
	if err != nil {
		t.Fatalf("Cost error: %v", err)
	}
	if cost < MinCost {
		t.Fatalf("cost %d below floor %d", cost, MinCost)
	}
}
