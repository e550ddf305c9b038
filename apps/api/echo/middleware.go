package echoapi

import (
	"github.com/labstack/echo/v4"

	"github.com/trezcool/tutordesk/core/lesson"
)

const contextStoreKey = "lessonStore"

// sessionMiddleware loads the lesson.Store of the token's session into the context.
// A new session fetches its lessons before the handler runs.
func sessionMiddleware(sessions *lesson.Sessions) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			claims, err := getContextClaims(ctx)
			if err != nil {
				return err
			}
			if claims.Id == "" {
				return errUnauthorized
			}
			store, created := sessions.Get(claims.Id, claims.Name)
			if created {
				// a failed fetch is recorded on the store and shown by the dashboard
				_ = store.FetchLessons(ctx.Request().Context())
			}
			ctx.Set(contextStoreKey, store)
			return next(ctx)
		}
	}
}

func getContextStore(ctx echo.Context) (*lesson.Store, error) {
	if store, ok := ctx.Get(contextStoreKey).(*lesson.Store); ok {
		return store, nil
	}
	return nil, errUnauthorized
}
