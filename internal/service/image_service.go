package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"io"
	"net/http"
	"strings"

	// 注册常见图片解码器，用于读取图片尺寸
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

var (
	// ErrImageNotImage 在上传内容不是图片时返回
	ErrImageNotImage = errors.New("content is not an image")
	// ErrImageFetchFailed 在远程图片拉取失败时返回，调用方应回退到原始 URL
	ErrImageFetchFailed = errors.New("remote image fetch failed")
)

// maxImageBytes 只是防御性读取上限，不是业务限制
const maxImageBytes = 32 << 20

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ImageData 是一次图片摄取的结果
// Width/Height 在图片可解码时记录，解码失败时为 0（不视为错误）

type ImageData struct {
	DataURI string
	Width   int
	Height  int
}

// ImageService 将本地上传或远程图片转换为内联 data URI

type ImageService struct {
	http httpDoer
}

// NewImageService 构造 ImageService
func NewImageService() *ImageService {
	// 出站请求不设超时，失败由用户手动重试
	return &ImageService{http: &http.Client{}}
}

// SetHTTPClient 替换底层 HTTP 客户端，便于测试注入
func (s *ImageService) SetHTTPClient(client httpDoer) {
	if client == nil {
		s.http = &http.Client{}
		return
	}
	s.http = client
}

// FromReader 读取完整图片字节并编码为 data URI。
// contentType 为空时根据内容嗅探；非图片内容返回 ErrImageNotImage。
func (s *ImageService) FromReader(r io.Reader, contentType string) (ImageData, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxImageBytes))
	if err != nil {
		return ImageData{}, fmt.Errorf("read image bytes: %w", err)
	}
	if len(data) == 0 {
		return ImageData{}, fmt.Errorf("%w: empty body", ErrImageNotImage)
	}

	contentType = strings.TrimSpace(contentType)
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	if !strings.HasPrefix(contentType, "image/") {
		return ImageData{}, fmt.Errorf("%w: %s", ErrImageNotImage, contentType)
	}

	result := ImageData{
		DataURI: fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data)),
	}

	// 尺寸仅供展示优化，解码失败时保持 0 值即可
	if cfg, _, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
		result.Width = cfg.Width
		result.Height = cfg.Height
	}

	return result, nil
}

// FromRemoteURL 拉取远程图片并重编码为 data URI。
// 任何网络或状态码失败都返回 ErrImageFetchFailed，
// 由调用方决定回退到原始 URL 还是留空。
func (s *ImageService) FromRemoteURL(ctx context.Context, rawURL string) (ImageData, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return ImageData{}, fmt.Errorf("%w: empty url", ErrImageFetchFailed)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return ImageData{}, fmt.Errorf("%w: %v", ErrImageFetchFailed, err)
	}

	client := s.http
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return ImageData{}, fmt.Errorf("%w: %v", ErrImageFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return ImageData{}, fmt.Errorf("%w: unexpected status %s", ErrImageFetchFailed, resp.Status)
	}

	data, err := s.FromReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return ImageData{}, fmt.Errorf("%w: %v", ErrImageFetchFailed, err)
	}
	return data, nil
}
