package handlers

import (
	"net/http"

	"ai_manager_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// bindJSON decodes the request body into req, answering 400 on malformed input.
func bindJSON(c *gin.Context, req interface{}, action string) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		utils.LogError(err, action+": Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return false
	}
	return true
}

func respondNotFound(c *gin.Context, message string, err error) {
	utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, message, err.Error()))
}

func respondInternal(c *gin.Context, message string) {
	utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, message, "Internal error"))
}

func respondValidation(c *gin.Context, err error) {
	utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
}

// statusRequest is the body of the PUT /:id/status endpoints.
type statusRequest struct {
	Status string `json:"status"`
}
