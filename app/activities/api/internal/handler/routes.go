// ============================================================================
// Route registration
// ============================================================================
//
// Middleware execution order:
//   CORS -> RequestID -> RateLimit -> Handler
//
// ============================================================================

package handler

import (
	"net/http"

	activitieshandler "mergington-hub/app/activities/api/internal/handler/activities"
	"mergington-hub/app/activities/api/internal/svc"

	"github.com/zeromicro/go-zero/rest"
)

// RegisterHandlers registers all routes and global middleware.
func RegisterHandlers(server *rest.Server, ctx *svc.ServiceContext) {
	// ==================== global middleware ====================
	// Execution order: CORS -> RequestID -> RateLimit
	server.Use(ctx.CorsMiddleware)
	server.Use(ctx.RequestIDMiddleware)
	server.Use(ctx.RateLimitMiddleware)

	// ==================== frontend ====================
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodGet,
				Path:    "/",
				Handler: HomeHandler(ctx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/static/:file",
				Handler: StaticHandler(ctx),
			},
		},
	)

	// ==================== activities ====================
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodGet,
				Path:    "/activities",
				Handler: activitieshandler.ListActivitiesHandler(ctx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/activities/:name/signup",
				Handler: activitieshandler.SignupActivityHandler(ctx),
			},
			{
				Method:  http.MethodDelete,
				Path:    "/activities/:name/unregister",
				Handler: activitieshandler.UnregisterActivityHandler(ctx),
			},
		},
	)
}
