package handler

import (
	"errors"
	"net/http"

	"github.com/foundersdir/internal/service"
	"github.com/gin-gonic/gin"
)

// ConvertImage 把上传的本地图片转换为内联 data URI 返回给表单。
// 不在服务器上保存文件，图片最终随记录落库。
func (a *API) ConvertImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		respondError(c, http.StatusBadRequest, "No image uploaded")
		return
	}

	src, err := file.Open()
	if err != nil {
		respondError(c, http.StatusBadRequest, "Failed to read uploaded image")
		return
	}
	defer src.Close()

	data, err := a.images.FromReader(src, file.Header.Get("Content-Type"))
	if err != nil {
		if errors.Is(err, service.ErrImageNotImage) {
			respondError(c, http.StatusUnsupportedMediaType, "Only image uploads are allowed")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to process image")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"image":  data.DataURI,
		"width":  data.Width,
		"height": data.Height,
	})
}
