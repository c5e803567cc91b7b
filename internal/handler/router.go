package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"benefit-desk/internal/domain/user"
	"benefit-desk/internal/handler/api"
	"benefit-desk/internal/handler/middleware"
	"benefit-desk/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	offeringHandler *api.OfferingHandler,
	benefitHandler *api.BenefitHandler,
	modificationHandler *api.ModificationHandler,
	householdHandler *api.HouseholdHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, offeringHandler, benefitHandler, modificationHandler, householdHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	offeringHandler *api.OfferingHandler,
	benefitHandler *api.BenefitHandler,
	modificationHandler *api.ModificationHandler,
	householdHandler *api.HouseholdHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireStaff := authMiddleware.RequireRoleAtLeast(user.RoleStaff)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		offerings := apiGroup.Group("/offerings")
		offerings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(offerings, []route{
				{Method: http.MethodGet, Path: "", Handler: offeringHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: offeringHandler.Get},
				{Method: http.MethodPost, Path: "", Handler: offeringHandler.Create, Mw: []gin.HandlerFunc{requireStaff}},
				{Method: http.MethodPut, Path: "/:id", Handler: offeringHandler.Update, Mw: []gin.HandlerFunc{requireStaff}},
				{Method: http.MethodPatch, Path: "/:id/open", Handler: offeringHandler.SetOpen, Mw: []gin.HandlerFunc{requireStaff}},
				{Method: http.MethodGet, Path: "/:id/stats", Handler: offeringHandler.Stats, Mw: []gin.HandlerFunc{requireStaff}},
				{Method: http.MethodGet, Path: "/:id/requests", Handler: offeringHandler.ListRequests, Mw: []gin.HandlerFunc{requireStaff}},
			})
		}

		requests := apiGroup.Group("/requests")
		requests.Use(authMiddleware.RequireAuth())
		{
			addRoutes(requests, []route{
				{Method: http.MethodPost, Path: "", Handler: benefitHandler.Submit},
				{Method: http.MethodGet, Path: "/mine", Handler: benefitHandler.ListMine},
				{Method: http.MethodGet, Path: "/:id", Handler: benefitHandler.Get},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: benefitHandler.SetStatus, Mw: []gin.HandlerFunc{requireStaff}},
			})
		}

		proposals := apiGroup.Group("/proposals")
		proposals.Use(authMiddleware.RequireAuth())
		{
			addRoutes(proposals, []route{
				{Method: http.MethodPost, Path: "", Handler: modificationHandler.ProposeUpdate},
				{Method: http.MethodPost, Path: "/creations", Handler: modificationHandler.ProposeCreation},
				{Method: http.MethodGet, Path: "/mine", Handler: modificationHandler.ListMine},
				{Method: http.MethodGet, Path: "/pending", Handler: modificationHandler.ListPending, Mw: []gin.HandlerFunc{requireStaff}},
				{Method: http.MethodGet, Path: "/pending/count", Handler: modificationHandler.PendingCount, Mw: []gin.HandlerFunc{requireStaff}},
				{Method: http.MethodGet, Path: "/:id", Handler: modificationHandler.Get},
				{Method: http.MethodGet, Path: "/:id/changes", Handler: modificationHandler.Changes},
				{Method: http.MethodPost, Path: "/:id/approve", Handler: modificationHandler.Approve, Mw: []gin.HandlerFunc{requireStaff}},
				{Method: http.MethodPost, Path: "/:id/reject", Handler: modificationHandler.Reject, Mw: []gin.HandlerFunc{requireStaff}},
			})
		}

		household := apiGroup.Group("/household")
		household.Use(authMiddleware.RequireAuth())
		{
			addRoutes(household, []route{
				{Method: http.MethodGet, Path: "/mine", Handler: householdHandler.GetMine},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
