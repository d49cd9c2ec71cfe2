package crypto

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

// Tests use bcrypt.MinCost; DefaultCost makes each hash take ~100ms.

func TestBcrypt_HashProducesDistinctOutputs(t *testing.T) {
	h := NewBcrypt(bcrypt.MinCost)

	first, err := h.Hash("correct horse battery staple")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	second, err := h.Hash("correct horse battery staple")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	if first == second {
		t.Error("two hashes of the same password are identical, salt is not randomized")
	}
}

func TestBcrypt_Verify(t *testing.T) {
	h := NewBcrypt(bcrypt.MinCost)

	hash, err := h.Hash("password123")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	tests := []struct {
		name     string
		password string
		hash     string
		want     bool
	}{
		{name: "correct password", password: "password123", hash: hash, want: true},
		{name: "wrong password", password: "password124", hash: hash, want: false},
		{name: "empty password", password: "", hash: hash, want: false},
		{name: "malformed hash returns false", password: "password123", hash: "not-a-bcrypt-hash", want: false},
		{name: "empty hash returns false", password: "password123", hash: "", want: false},
		{name: "truncated hash returns false", password: "password123", hash: hash[:20], want: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := h.Verify(test.password, test.hash); got != test.want {
				t.Errorf("Verify() = %v, want %v", got, test.want)
			}
		})
	}
}

func TestBcrypt_HashUsesConfiguredCost(t *testing.T) {
	h := NewBcrypt(bcrypt.MinCost)

	hash, err := h.Hash("secret")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("bcrypt.Cost() error = %v", err)
	}
	if cost != bcrypt.MinCost {
		t.Errorf("hash cost = %d, want %d", cost, bcrypt.MinCost)
	}
}

func TestNewBcrypt_CostOutOfRange(t *testing.T) {
	tests := []struct {
		name string
		cost int
		want int
	}{
		{name: "zero falls back to default", cost: 0, want: DefaultCost},
		{name: "negative falls back to default", cost: -1, want: DefaultCost},
		{name: "above max falls back to default", cost: bcrypt.MaxCost + 1, want: DefaultCost},
		{name: "valid cost kept", cost: 12, want: 12},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := NewBcrypt(test.cost).Cost; got != test.want {
				t.Errorf("NewBcrypt(%d).Cost = %d, want %d", test.cost, got, test.want)
			}
		})
	}
}

func TestBcrypt_HashFormat(t *testing.T) {
	h := NewBcrypt(bcrypt.MinCost)
	hash, err := h.Hash("secret")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Errorf("hash %q is not in bcrypt modular crypt format", hash)
	}
}
