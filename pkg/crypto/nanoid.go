package crypto

import "crypto/rand"

const (
	// 64 characters, so a masked random byte maps uniformly onto the
	// alphabet with no rejection step.
	idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789_-"
	idMask     = 63
	idSize     = 22 // 22 * 6 = 132 bits (uuid is 128 bits) of entropy
)

// NewID generates a URL-safe random identifier for users, posts, and
// replies.
func NewID() (string, error) {
	buf := make([]byte, idSize)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	id := make([]byte, idSize)
	for i, b := range buf {
		id[i] = idAlphabet[b&idMask]
	}
	return string(id), nil
}
