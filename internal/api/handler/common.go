package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"greenbook/pkg/utils"
)

func badRequest(c *gin.Context, err error) {
	utils.ErrorWithDetail(c, http.StatusBadRequest, "请求参数错误", utils.FormatValidationError(err))
}
