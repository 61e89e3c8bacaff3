package bootstrap

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	httpapi "github.com/robolog-viz/robolog-backend/internal/api/http"
	"github.com/robolog-viz/robolog-backend/internal/api/http/routes"
)

type RouterDeps struct {
	ServiceName   string
	Version       string
	Redis         *redis.Client
	DocTTL        time.Duration
	RatePerSec    float64
	RateBurst     int
	UploadMaxByte int64
	AllowOrigins  []string
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()

	corsCfg := cors.DefaultConfig()
	if len(dep.AllowOrigins) > 0 {
		corsCfg.AllowOrigins = dep.AllowOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	r.Use(cors.New(corsCfg))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Redis)
	healthHandler.RegisterRoutes(r)

	routes.RegisterV1(r, routes.V1Deps{
		Redis:         dep.Redis,
		DocTTL:        dep.DocTTL,
		RatePerSec:    dep.RatePerSec,
		RateBurst:     dep.RateBurst,
		UploadMaxByte: dep.UploadMaxByte,
	})

	return r
}
