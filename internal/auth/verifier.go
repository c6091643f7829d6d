package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"mojocode_server/internal/types"
)

var tracer = otel.Tracer("auth-verifier")

// Claims are the parts of the hosted auth provider's access token we rely on.
// The subject is the user id.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Verifier validates HS256 access tokens signed with the auth provider's secret.
type Verifier struct {
	secret []byte
	issuer string
	tracer trace.Tracer
}

// NewVerifier returns a verifier for tokens signed with secret. An empty issuer
// accepts tokens from any issuer.
func NewVerifier(secret, issuer string) (*Verifier, error) {
	if secret == "" {
		return nil, errors.New("auth secret is required")
	}
	return &Verifier{secret: []byte(secret), issuer: issuer, tracer: tracer}, nil
}

// Verify parses and validates tokenString and returns the user it identifies.
// Every failure wraps types.ErrAuthFailure.
func (v *Verifier) Verify(ctx context.Context, tokenString string) (types.User, error) {
	_, span := v.tracer.Start(ctx, "auth.verify_token")
	defer span.End()

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid token")
		return types.User{}, fmt.Errorf("%w: %w", types.ErrAuthFailure, err)
	}
	if claims.Subject == "" {
		span.SetStatus(codes.Error, "missing subject")
		return types.User{}, fmt.Errorf("%w: token has no subject", types.ErrAuthFailure)
	}

	span.SetAttributes(attribute.String("user.id", claims.Subject))

	user := types.User{ID: claims.Subject, Email: claims.Email}
	if claims.IssuedAt != nil {
		user.CreatedAt = claims.IssuedAt.Time.UTC()
	}
	return user, nil
}

// IssueToken signs a token for user that expires after ttl. The hosted provider
// issues real tokens; this one serves local development and tests.
func (v *Verifier) IssueToken(user types.User, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			Issuer:    v.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}
