package translate

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/lecture-api/api/types"
)

// RegisterRoutes registers translation routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.POST("", Post(deps))
}
