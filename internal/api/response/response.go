package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Success bool `json:"success"`
	Code    int  `json:"code"`
	Extras  any  `json:"extras"`
}

func NewResponse(success bool, code int, extras any) Response {
	return Response{
		Success: success,
		Code:    code,
		Extras:  extras,
	}
}

// SuccessResponseContent returns a JSON response with a success message and content
func SuccessResponseContent(c *gin.Context, content string) {
	c.JSON(
		http.StatusOK,
		NewResponse(
			true,
			http.StatusOK,
			map[string]interface{}{
				"content": content,
			},
		))
}

// SuccessResponse returns a JSON response with a success message with no type limitation
func SuccessResponse(c *gin.Context, extras any) {
	SuccessResponseWithCode(c, http.StatusOK, extras)
}

// SuccessResponseWithCode is SuccessResponse with a status other than 200, e.g. 201 Created.
func SuccessResponseWithCode(c *gin.Context, code int, extras any) {
	c.JSON(
		code,
		NewResponse(
			true,
			code,
			extras,
		))
}

func ErrorResponse(c *gin.Context, code int, message string) {
	c.JSON(
		code,
		NewResponse(
			false,
			code,
			map[string]interface{}{
				"message": message,
			},
		))
}

// AbortWithError writes e and stops the handler chain.
func AbortWithError(c *gin.Context, e Error) {
	ErrorResponse(c, e.Code, e.Extras)
	c.Abort()
}
