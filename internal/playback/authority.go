package playback

import (
	"call-server/internal/observability"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrUnauthorized = errors.New("unauthorized playback token")

// tokenAudience scopes a playback token to the audio-fetch endpoint only.
const tokenAudience = "text-to-speech"

// TokenTTL bounds how long an issued playback token can be redeemed. Tokens
// are never persisted; expiry is the only cleanup.
const TokenTTL = time.Minute

type playbackClaims struct {
	CallSID string `json:"call_sid"`
	Text    string `json:"text"`
	jwt.RegisteredClaims
}

// Authority issues and verifies capability tokens binding one call to one
// piece of text to speak. Holding a valid token is the entire authorization
// for fetching synthesized audio.
type Authority struct {
	secret []byte
	logger *observability.Logger
	now    func() time.Time
}

type Option func(*Authority)

// WithTimeFunc overrides the clock used for issuing and verifying tokens.
func WithTimeFunc(now func() time.Time) Option {
	return func(a *Authority) {
		a.now = now
	}
}

func New(secret string, logger *observability.Logger, opts ...Option) *Authority {
	a := &Authority{
		secret: []byte(secret),
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// IssueToken signs a token authorizing exactly one (call, text) playback.
func (a *Authority) IssueToken(callSID, text string) (string, error) {
	now := a.now()
	claims := playbackClaims{
		CallSID: callSID,
		Text:    text,
		RegisteredClaims: jwt.RegisteredClaims{
			Audience:  jwt.ClaimStrings{tokenAudience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign playback token: %w", err)
	}
	return signed, nil
}

// Verify checks signature, expiry, audience, and that the token was issued
// for the supplied call. It returns the text the token authorizes speaking.
// Any mismatch is ErrUnauthorized; there is no partial trust.
func (a *Authority) Verify(ctx context.Context, callSID, token string) (string, error) {
	var claims playbackClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.secret, nil
	},
		jwt.WithAudience(tokenAudience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(a.now),
	)
	if err != nil || !parsed.Valid {
		a.logger.Warn(observability.WithFields(ctx,
			observability.Field{Key: "call_sid", Value: callSID},
		), "rejected playback token")
		return "", ErrUnauthorized
	}

	if claims.CallSID != callSID {
		a.logger.Warn(observability.WithFields(ctx,
			observability.Field{Key: "call_sid", Value: callSID},
			observability.Field{Key: "token_call_sid", Value: claims.CallSID},
		), "playback token call mismatch")
		return "", ErrUnauthorized
	}

	return claims.Text, nil
}
