package utils

import (
	"context"
)

type contextKey string

const ContextOriginKey contextKey = "origin"
const ContextModeratorKey contextKey = "moderator"

func GetOriginFromContext(ctx context.Context) (string, bool) {
	origin := ctx.Value(ContextOriginKey)
	originStr, ok := origin.(string)
	return originStr, ok
}

func GetModeratorFromContext(ctx context.Context) (string, bool) {
	moderator := ctx.Value(ContextModeratorKey)
	moderatorStr, ok := moderator.(string)
	return moderatorStr, ok
}
