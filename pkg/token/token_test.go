package token

import (
	"errors"
	"strings"
	"testing"
	"time"
)

const testSecret = "secretshouldbeatleast32charslong"

func testCodec(t *testing.T) *Codec {
	t.Helper()
	c, err := New(testSecret, time.Hour)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return c
}

func TestNew_SecretValidation(t *testing.T) {
	tests := []struct {
		name    string
		secret  string
		wantErr error
	}{
		{name: "empty secret rejected", secret: "", wantErr: ErrSecretRequired},
		{name: "short secret rejected", secret: "tooshort", wantErr: ErrSecretTooShort},
		{name: "valid secret accepted", secret: testSecret, wantErr: nil},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := New(test.secret, time.Hour)
			if !errors.Is(err, test.wantErr) {
				t.Errorf("New() error = %v, want %v", err, test.wantErr)
			}
		})
	}
}

func TestNew_ZeroTTLUsesDefault(t *testing.T) {
	c, err := New(testSecret, 0)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if c.TTL() != DefaultTTL {
		t.Errorf("TTL() = %v, want %v", c.TTL(), DefaultTTL)
	}
}

func TestCodec_RoundTrip(t *testing.T) {
	c := testCodec(t)

	tok, err := c.Issue("user-123")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	userID, err := c.Verify(tok)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if userID != "user-123" {
		t.Errorf("Verify() = %q, want %q", userID, "user-123")
	}
}

func TestCodec_Expired(t *testing.T) {
	c := testCodec(t)

	// Issue in the past so the token is expired by the time it is checked.
	issued := time.Now().Add(-2 * time.Hour)
	c.now = func() time.Time { return issued }
	tok, err := c.Issue("user-123")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	c.now = time.Now
	if _, err := c.Verify(tok); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("Verify() error = %v, want ErrTokenExpired", err)
	}
}

func TestCodec_TamperedSignature(t *testing.T) {
	c := testCodec(t)

	tok, err := c.Issue("user-123")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	// Flip one character of the signature segment.
	i := strings.LastIndex(tok, ".") + 1
	flipped := byte('A')
	if tok[i] == 'A' {
		flipped = 'B'
	}
	tampered := tok[:i] + string(flipped) + tok[i+1:]

	if _, err := c.Verify(tampered); !errors.Is(err, ErrBadSignature) {
		t.Errorf("Verify() error = %v, want ErrBadSignature", err)
	}
}

func TestCodec_WrongSecret(t *testing.T) {
	c := testCodec(t)
	other, err := New("anothersecretthatisalso32charslng", time.Hour)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	tok, err := c.Issue("user-123")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	if _, err := other.Verify(tok); !errors.Is(err, ErrBadSignature) {
		t.Errorf("Verify() error = %v, want ErrBadSignature", err)
	}
}

func TestCodec_Malformed(t *testing.T) {
	c := testCodec(t)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty string", token: ""},
		{name: "not a jwt", token: "not.a.jwt"},
		{name: "garbage", token: "aaaaaaaa"},
		{name: "missing segments", token: "eyJhbGciOiJIUzI1NiJ9"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := c.Verify(test.token); !errors.Is(err, ErrTokenMalformed) {
				t.Errorf("Verify(%q) error = %v, want ErrTokenMalformed", test.token, err)
			}
		})
	}
}

func TestCodec_NoneAlgorithmRejected(t *testing.T) {
	c := testCodec(t)

	// Unsigned token: header {"alg":"none","typ":"JWT"}, a userId claim,
	// empty signature segment.
	unsigned := "eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0." +
		"eyJ1c2VySWQiOiJ1c2VyLTEyMyJ9."

	if _, err := c.Verify(unsigned); err == nil {
		t.Error("Verify() accepted an unsigned token")
	}
}

func TestCodec_EmptyUserIDRejected(t *testing.T) {
	c := testCodec(t)

	tok, err := c.Issue("")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if _, err := c.Verify(tok); !errors.Is(err, ErrTokenMalformed) {
		t.Errorf("Verify() error = %v, want ErrTokenMalformed", err)
	}
}
