package v1

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/proyectos-api/apperror"
)

func respond(ctx *gin.Context, status int, data interface{}) {
	ctx.JSON(status, gin.H{
		"status": "success",
		"data":   data,
	})
}

// respondError writes the error envelope for err
func respondError(ctx *gin.Context, err error) {
	status := apperror.HTTPStatus(err)
	body := gin.H{
		"status":  "error",
		"message": err.Error(),
	}

	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		body["message"] = appErr.Message
		if appErr.Kind == apperror.KindValidation {
			body["field"] = appErr.Field
			body["value"] = appErr.Value
		}
	}

	if status == http.StatusInternalServerError {
		// Logged by middleware.Logger
		_ = ctx.Error(err)
		body["message"] = "internal server error"
	}

	ctx.AbortWithStatusJSON(status, body)
}

// badRequest reports a malformed body, path or query value
func badRequest(ctx *gin.Context, format string, args ...any) {
	respondError(ctx, apperror.InvalidRequest(format, args...))
}

// idParam parses an unsigned integer path parameter.
// Zero is accepted and left to the lookup, which reports it as not found.
func idParam(ctx *gin.Context, name string) (uint, bool) {
	raw := ctx.Param(name)
	id, err := strconv.ParseUint(raw, 10, 0)
	if err != nil {
		badRequest(ctx, "invalid %s: %q", name, raw)
		return 0, false
	}
	return uint(id), true
}

// floatQuery parses an optional float query parameter, returning fallback when absent
func floatQuery(ctx *gin.Context, name string, fallback float64) (float64, bool) {
	raw, ok := ctx.GetQuery(name)
	if !ok || raw == "" {
		return fallback, true
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) {
		badRequest(ctx, "invalid %s: %q", name, raw)
		return 0, false
	}
	return v, true
}
