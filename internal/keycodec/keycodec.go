// Package keycodec derives the three artifacts of an access key: the secret
// itself, a one-way lookup hash, and a short display thumbnail. The secret is
// only ever observable at generation time; storage sees the hash and thumbnail.
package keycodec

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// SecretPrefix marks generated key material so keys are recognizable in
	// caller configuration without decoding them.
	SecretPrefix = "mk."

	nonceBytes    = 16
	thumbnailEdge = 7
)

var ErrInvalidOrganization = errors.New("invalid_organization")

// Codec generates access-key secrets bound to an organization.
type Codec struct {
	secret []byte
}

func New(secret string) *Codec {
	return &Codec{secret: []byte(secret)}
}

// Generate produces an opaque signed token carrying the organization id and a
// fresh nonce. The jti plus nonce contribute well over 128 bits of entropy.
func (c *Codec) Generate(orgID int64) (string, error) {
	if orgID <= 0 {
		return "", ErrInvalidOrganization
	}

	nonce := make([]byte, nonceBytes)
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"org_id": orgID,
		"jti":    uuid.NewString(),
		"nonce":  hex.EncodeToString(nonce),
	})
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", err
	}
	return SecretPrefix + signed, nil
}

// Hash returns the one-way digest stored and compared in place of the secret.
func Hash(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}

// Thumbnail returns a recognizable fragment of the secret for display. Short
// inputs are returned whole; generated secrets are always long enough that
// the thumbnail reveals only 14 characters.
func Thumbnail(secret string) string {
	if len(secret) <= 2*thumbnailEdge {
		return secret
	}
	return secret[:thumbnailEdge] + "..." + secret[len(secret)-thumbnailEdge:]
}
