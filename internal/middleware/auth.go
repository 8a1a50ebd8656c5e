package middleware

import (
	"context"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/godutch/internal/auth"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const (
	// SheetIDKey is the context key for the sheet an edit token authorizes.
	SheetIDKey contextKey = "sheet_id"
)

// GetSheetID extracts the authorized sheet ID from the context.
// Returns empty string if the request carried no valid edit token.
func GetSheetID(ctx context.Context) string {
	sheetID, _ := ctx.Value(SheetIDKey).(string)
	return sheetID
}

// SheetAuth returns an interceptor that validates edit tokens if present, but
// allows requests without one. Services decide which calls need a token by
// comparing GetSheetID with the sheet they touch.
func SheetAuth(jwtManager *auth.JWTManager) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if tokenString, ok := bearerToken(req.Header().Get("Authorization")); ok {
				// Validate token (ignore errors - optional auth)
				claims, err := jwtManager.Validate(tokenString)
				if err == nil {
					ctx = context.WithValue(ctx, SheetIDKey, claims.SheetID)
				}
			}

			return next(ctx, req)
		}
	}
}

// bearerToken parses an "Authorization: Bearer <token>" header value.
func bearerToken(header string) (string, bool) {
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
