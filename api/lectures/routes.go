package lectures

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/lecture-api/api/types"
)

// RegisterRoutes registers lecture session routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.POST("", CreateLecture(deps))
	router.GET("", ListLectures(deps))
	router.GET("/:id", GetLecture(deps))
	router.GET("/:id/status", GetLectureStatus(deps))
	router.POST("/:id/end", EndLecture(deps))
	router.POST("/:id/enhance", EnhanceLecture(deps))
	router.DELETE("/:id", DeleteLecture(deps))
	router.DELETE("/:id/chunks/:chunk", DeleteChunk(deps))
}
