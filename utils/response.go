package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Success writes the 200 envelope used across the API: a human-readable
// message plus the payload under "data". A nil payload omits the key.
func Success(c *gin.Context, message string, data interface{}) {
	resp := gin.H{"message": message}
	if data != nil {
		resp["data"] = data
	}
	c.JSON(http.StatusOK, resp)
}

// Error writes the error envelope. detail carries the underlying error when
// it is safe to surface to the caller; internal failures pass nil and keep
// the real error in the server log.
func Error(c *gin.Context, status int, message string, detail error) {
	resp := gin.H{"error": message}
	if detail != nil {
		resp["detail"] = detail.Error()
	}
	c.JSON(status, resp)
}
