package webserver

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/whiskerworks/spycat/src/api/catapi"
	"github.com/whiskerworks/spycat/src/api/config"
	"github.com/whiskerworks/spycat/src/api/missions"
	"github.com/whiskerworks/spycat/src/api/registry"
)

func attachRoutes(r *gin.Engine, cfg config.Config, db *gorm.DB, rdb *redis.Client) {
	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: false,
	}))
	r.Use(RateLimitMiddleware(NewRateLimiter(100, time.Minute)))

	breeds := catapi.NewClient(cfg.CatAPIURL, cfg.CatAPIKey, rdb,
		time.Duration(cfg.BreedCacheTTL)*time.Second)
	catsH := NewCats(registry.New(db, breeds))
	missionsH := NewMissions(missions.New(db))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	cats := r.Group("/cats")
	{
		cats.POST("", catsH.Create)
		cats.GET("", catsH.List)
		cats.GET("/:id", catsH.Get)
		cats.PATCH("/:id", catsH.UpdateSalary)
		cats.DELETE("/:id", catsH.Delete)
	}

	m := r.Group("/missions")
	{
		m.POST("", missionsH.Create)
		m.GET("", missionsH.List)
		m.GET("/:id", missionsH.Get)
		m.DELETE("/:id", missionsH.Delete)
		m.PATCH("/:id/assign", missionsH.Assign)
		m.PATCH("/:id/targets/:target_id/completed", missionsH.SetTargetCompleted)
		m.PATCH("/:id/targets/:target_id/notes", missionsH.UpdateTargetNotes)
	}
}
