package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"reservation-demo/config"
	"reservation-demo/controllers"
	"reservation-demo/middleware"
	"reservation-demo/services"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the fixed pipeline: request log → identity resolution →
// chaos → route. Each business route additionally applies its latency
// category before the handler runs.
func SetupRouter(
	cfg *config.Runtime,
	ids *services.IdentityService,
	store *services.ReservationStore,
	catalog *services.CatalogService,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(middleware.Identity(ids, cfg))
	r.Use(middleware.Chaos(cfg))

	ac := controllers.NewAuthController(cfg, ids)
	rc := controllers.NewRoomController(catalog, ids, cfg.Snapshot().ImageDir)
	vc := controllers.NewReservationController(cfg, store, catalog, ids)
	cc := controllers.NewConfigController(cfg, ids, store)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/", middleware.Latency(cfg, config.CategoryLogin), ac.ShowLogin)
	r.POST("/login", middleware.Latency(cfg, config.CategoryLogin), ac.Login)
	r.GET("/logout", ac.Logout)
	r.GET("/menu", middleware.Latency(cfg, config.CategoryMenu), ac.Menu)

	r.GET("/rooms", middleware.Latency(cfg, config.CategoryRooms), rc.ListRooms)
	r.GET("/rooms/:id", middleware.Latency(cfg, config.CategoryRooms), rc.RoomDetail)
	r.GET("/img/:file", rc.RoomImage)

	r.GET("/reserve", middleware.Latency(cfg, config.CategoryReserve), vc.ShowForm)
	r.POST("/reserve", middleware.Latency(cfg, config.CategoryReserve), vc.Create)
	r.GET("/overview", middleware.Latency(cfg, config.CategoryOverview), vc.Overview)

	r.GET("/config", cc.Show)
	r.POST("/config", cc.Update)

	return r
}
