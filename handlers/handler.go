package handlers

import (
	"github.com/Sridhar1233sri/consultancy/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getLogger retrieves a Zap logger from the Gin context or falls back to the
// global one.
func getLogger(c *gin.Context) *zap.Logger {
	if l, exists := c.Get("logger"); exists {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	return utils.GetLogger()
}

// respondError maps a domain error onto its HTTP status and writes the
// standard error body.
func respondError(c *gin.Context, err error) {
	utils.JSONError(c, utils.HTTPStatus(err), err.Error(), "")
}
