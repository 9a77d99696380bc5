// Package token implements the session token: a base64 encoding of the
// JSON object {id, email} for the signed-in user.
//
// This is obfuscated identity, not a security mechanism. The encoding
// is reversible, carries no signature and never expires. Replace it
// with a signed or opaque session token before exposing auth outside a
// trusted demo environment.
package token

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// Claims is the decoded token payload.
type Claims struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
}

// Encode derives the token for a user identity.
func Encode(id int, email string) string {
	buf, _ := json.Marshal(Claims{ID: id, Email: email})
	return base64.StdEncoding.EncodeToString(buf)
}

// Decode recovers the identity a token was derived from.
func Decode(tok string) (Claims, error) {
	buf, err := base64.StdEncoding.DecodeString(tok)
	if err != nil {
		return Claims{}, fmt.Errorf("decode token: %w", err)
	}
	var c Claims
	if err := json.Unmarshal(buf, &c); err != nil {
		return Claims{}, fmt.Errorf("decode token: %w", err)
	}
	return c, nil
}
