package session

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// UserID extracts the subject claim from an API token without verifying the
// signature. Verification belongs to the API; the client only needs the id to
// address profile routes, and expiry is discovered reactively on a failed
// call, never preemptively.
func UserID(token string) (string, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return "", fmt.Errorf("failed to decode token: %w", err)
	}
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", fmt.Errorf("token carries no subject claim")
	}
	return sub, nil
}
