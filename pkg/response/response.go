package response

import (
	"context"
	"fmt"
	"net/http"

	"monitor-srv/pkg/discord"
	pkgErrors "monitor-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

// OK writes a 200 response with the standard envelope.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: codeSuccess,
		Message:   msgSuccess,
		Data:      data,
	})
}

// Error writes an error response. HTTPError values keep their status code;
// anything else becomes a 500 and is reported to Discord when configured.
func Error(c *gin.Context, err error, discordClient discord.IDiscord) {
	if httpErr, ok := err.(*pkgErrors.HTTPError); ok {
		c.JSON(httpErr.Code, Resp{
			ErrorCode: httpErr.Code,
			Message:   httpErr.Message,
		})
		if httpErr.Code >= http.StatusInternalServerError {
			alert(c, discordClient, httpErr)
		}
		return
	}

	alert(c, discordClient, err)
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   msgInternalServer,
	})
}

// ErrorWithMap maps a domain error through the mapping before writing it.
// Unmapped errors fall through to Error.
func ErrorWithMap(c *gin.Context, err error, mapping ErrorMapping, discordClient discord.IDiscord) {
	if httpErr, ok := mapping[err]; ok {
		Error(c, httpErr, discordClient)
		return
	}
	Error(c, err, discordClient)
}

// BadRequest writes a 400 response.
func BadRequest(c *gin.Context) {
	c.JSON(http.StatusBadRequest, Resp{
		ErrorCode: http.StatusBadRequest,
		Message:   msgBadRequest,
	})
}

// Unauthorized writes a 401 response.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Resp{
		ErrorCode: http.StatusUnauthorized,
		Message:   msgUnauthorized,
	})
}

// NotFound writes a 404 response.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, Resp{
		ErrorCode: http.StatusNotFound,
		Message:   msgNotFound,
	})
}

// PanicError writes a 500 response for a recovered panic and reports it.
func PanicError(c *gin.Context, recovered any, discordClient discord.IDiscord) {
	alert(c, discordClient, fmt.Errorf("panic: %v", recovered))
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   msgInternalServer,
	})
}

func alert(c *gin.Context, discordClient discord.IDiscord, err error) {
	if discordClient == nil {
		return
	}
	go func() {
		_ = discordClient.SendError(context.Background(),
			"Internal server error",
			fmt.Sprintf("%s %s", c.Request.Method, c.Request.URL.Path),
			err,
		)
	}()
}
