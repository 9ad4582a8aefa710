package middleware

import (
	"fmt"
	"net/http"

	"ai_manager_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// Recovery turns a panic into the usual 500 error envelope.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		utils.LogError(fmt.Errorf("panic: %v", recovered), "Recovered from panic in handler")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Something went wrong!", fmt.Sprint(recovered)))
	})
}
