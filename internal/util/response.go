package util

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Success responses carry the serialized resource (or array) directly.
// Error responses carry {"error": message}; validation failures carry the
// full field-error map under "errors".

func ResponseJSON(ctx *gin.Context, code int, data any) {
	ctx.JSON(code, data)
	ctx.Abort()
}

func ResponseError(ctx *gin.Context, code int, message string) {
	ctx.JSON(code, gin.H{"error": message})
	ctx.Abort()
}

func ResponseValidation(ctx *gin.Context, fieldErrors map[string][]string) {
	ctx.JSON(http.StatusUnprocessableEntity, gin.H{
		"message": "The given data was invalid.",
		"errors":  fieldErrors,
	})
	ctx.Abort()
}
