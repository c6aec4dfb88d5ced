package conversation

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the cookie the conversation rides in between webhooks.
const CookieName = "convo"

type carrierClaims struct {
	Messages []Message `json:"messages"`
	jwt.RegisteredClaims
}

// Carrier signs the conversation into an opaque string the caller presents
// back on the next webhook. Nothing is kept server-side; a lost or tampered
// cookie simply resets the conversation.
type Carrier struct {
	secret []byte
}

func NewCarrier(secret string) *Carrier {
	return &Carrier{secret: []byte(secret)}
}

// Encode signs the conversation into its wire form.
func (c *Carrier) Encode(convo Conversation) (string, error) {
	claims := carrierClaims{
		Messages: convo.Messages,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign conversation: %w", err)
	}
	return signed, nil
}

// Decode recovers a conversation from its wire form. Any parse or signature
// failure yields an empty conversation; a turn webhook must never fail on a
// bad cookie.
func (c *Carrier) Decode(raw string) Conversation {
	if raw == "" {
		return Conversation{}
	}

	var claims carrierClaims
	token, err := jwt.ParseWithClaims(raw, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return c.secret, nil
	})
	if err != nil || !token.Valid {
		return Conversation{}
	}
	return Conversation{Messages: claims.Messages}
}
