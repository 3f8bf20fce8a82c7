package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"video-uploader/domain/dto"
	"video-uploader/domain/repository"
)

// Auth gates the dashboard routes on the presence of a stored credential.
// The backend verifies the token itself; absence here means the user must go
// back through the login entry point, so the response carries the redirect.
func Auth(credentials repository.ICredential) gin.HandlerFunc {
	res := dto.Res{
		ResponseCode:    "401",
		ResponseMessage: "Unauthorized",
	}

	return func(ctx *gin.Context) {
		if _, ok := credentials.Get(); !ok {
			ctx.Header("X-Redirect", "/login")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, res)
			return
		}
		ctx.Next()
	}
}
