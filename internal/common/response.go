// File: internal/common/response.go
package common

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RespondWithError sends a JSON error response. Anything that is not already
// an APIError is wrapped as a store-level failure, since the record store is
// the only collaborator whose raw errors can reach a handler.
func RespondWithError(c *gin.Context, err error) {
	apiErr, ok := IsAPIError(err)
	if !ok {
		if l, exists := c.Get("logger"); exists {
			if logger, ok := l.(*zap.Logger); ok {
				logger.Error("Unhandled internal error being wrapped", zap.Error(err))
			}
		}
		apiErr = ErrStore.WithDetails(err.Error())
	}
	c.AbortWithStatusJSON(apiErr.StatusCode, apiErr)
}

// RespondMessage sends a 200 body of the form {"message": ...}. Used for the
// informational outcomes the API reports without an error status.
func RespondMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"message": message})
}

// RespondData sends a 200 response with the given payload as the raw body.
func RespondData(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// RespondEmpty sends an empty 200 body.
func RespondEmpty(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{})
}
