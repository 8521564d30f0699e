package handlers

import (
	"log"
	"net/http"

	"ignite_shop/internal/adapter/http/views"
	"ignite_shop/pkg"

	"github.com/gin-gonic/gin"
)

const htmlContentType = "text/html; charset=utf-8"

var pageErrorDescriptions = map[int]string{
	http.StatusBadRequest: "O endereço acessado está incompleto.",
	http.StatusNotFound:   "O que você procura não existe ou não está mais disponível.",
}

// renderErrorPage is the HTML counterpart of c.JSON(appErr.HTTPStatus, appErr.ToHTTPError()).
func renderErrorPage(c *gin.Context, v views.IRenderer, appErr *pkg.AppError) {
	description, ok := pageErrorDescriptions[appErr.HTTPStatus]
	if !ok {
		description = "Tente novamente em alguns instantes."
	}

	body, err := v.Error(appErr.Message, description)
	if err != nil {
		log.Printf("[page][handler] error page render failed code=%s err=%v", appErr.Code, err)
		c.String(appErr.HTTPStatus, appErr.Message)
		return
	}
	c.Data(appErr.HTTPStatus, htmlContentType, body)
}
