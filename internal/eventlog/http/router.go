package http

import "github.com/gin-gonic/gin"

// Register registers the robot log routes.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/documents", h.UploadFile)
	rg.POST("/documents/raw", h.UploadRaw)
	rg.GET("/documents/:id", h.GetDocument)
	rg.DELETE("/documents/:id", h.DeleteDocument)

	rg.GET("/documents/:id/graph", h.GetGraph)
	rg.GET("/documents/:id/graph/dot", h.GetGraphDOT)
	rg.GET("/documents/:id/graph/path", h.GetPath)
	rg.GET("/documents/:id/graph/reachable", h.GetReachable)
	rg.GET("/documents/:id/graph/paths", h.GetAllPaths)

	rg.GET("/documents/:id/topics", h.GetTopics)
	rg.GET("/documents/:id/timeline", h.GetTimeline)
}
