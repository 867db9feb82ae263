// Package response writes the JSON envelope every handler speaks:
// {"success":true,"data":...} on success, {"success":false,"error":{...}}
// otherwise. Error codes are short machine-readable strings such as
// "VALIDATION_ERROR" or "SLOT_UNAVAILABLE".
package response

import "github.com/gin-gonic/gin"

// Success writes data wrapped in the success envelope.
func Success(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}

// Error writes a failure envelope carrying a stable code and a
// human-readable message.
func Error(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}
