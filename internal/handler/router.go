package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"calendar-booking/internal/handler/api"
	"calendar-booking/internal/handler/middleware"
	"calendar-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, bookingHandler *api.BookingHandler, scheduleHandler *api.ScheduleHandler) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, bookingHandler, scheduleHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, bookingHandler *api.BookingHandler, scheduleHandler *api.ScheduleHandler) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		bookings := apiGroup.Group("/bookings")
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.Get},
				{Method: http.MethodPatch, Path: "/:id", Handler: bookingHandler.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: bookingHandler.Delete},
			})
		}

		holidays := apiGroup.Group("/holidays")
		{
			addRoutes(holidays, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.CreateHoliday},
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.ListHolidays},
				{Method: http.MethodDelete, Path: "/:id", Handler: bookingHandler.DeleteHoliday},
			})
		}

		admin := apiGroup.Group("/admin")
		{
			hours := admin.Group("/operating-hours")
			addRoutes(hours, []route{
				{Method: http.MethodGet, Path: "", Handler: scheduleHandler.ListHours},
				{Method: http.MethodPut, Path: "", Handler: scheduleHandler.ReplaceHours},
				{Method: http.MethodPost, Path: "/unified", Handler: scheduleHandler.SetUnifiedHours},
				{Method: http.MethodGet, Path: "/:weekday", Handler: scheduleHandler.GetHours},
				{Method: http.MethodPut, Path: "/:weekday", Handler: scheduleHandler.UpsertHours},
			})

			closures := admin.Group("/closure-rules")
			addRoutes(closures, []route{
				{Method: http.MethodGet, Path: "", Handler: scheduleHandler.ListClosureRules},
				{Method: http.MethodPost, Path: "", Handler: scheduleHandler.CreateClosureRule},
				{Method: http.MethodGet, Path: "/occurrences", Handler: scheduleHandler.ClosureOccurrences},
				{Method: http.MethodDelete, Path: "/:id", Handler: scheduleHandler.DeactivateClosureRule},
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
