package auth

import "context"

type ctxKey string

const userIDKey ctxKey = "userID"

// ContextWithUserID returns a child context carrying the verified user id.
func ContextWithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext extracts the verified user id placed by the auth
// middleware. The second value is false when no identity was attached.
func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok && userID != ""
}
