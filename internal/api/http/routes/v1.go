package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/robolog-viz/robolog-backend/internal/api/http/middleware"
	eventloghttp "github.com/robolog-viz/robolog-backend/internal/eventlog/http"
	"github.com/robolog-viz/robolog-backend/internal/eventlog/repository"
	"github.com/robolog-viz/robolog-backend/internal/eventlog/service"
)

type V1Deps struct {
	Redis         *redis.Client
	DocTTL        time.Duration
	RatePerSec    float64
	RateBurst     int
	UploadMaxByte int64
}

func RegisterV1(r *gin.Engine, dep V1Deps) {
	api := r.Group("/api/v1")
	api.Use(middleware.RequestID())

	docRepo := repository.NewDocumentRepository(dep.Redis, dep.DocTTL)
	docService := service.NewDocumentService(docRepo)
	graphService := service.NewGraphService(docService)

	robolog := api.Group("/robolog")
	if dep.UploadMaxByte > 0 {
		r.MaxMultipartMemory = dep.UploadMaxByte
	}
	robolog.Use(middleware.RateLimit(dep.RatePerSec, dep.RateBurst))

	handler := eventloghttp.New(docService, graphService)
	handler.Register(robolog)
}
