package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

var (
	// ErrEnrichmentUnavailable 在未配置外部查询服务时返回
	ErrEnrichmentUnavailable = errors.New("enrichment service is not configured")
	// ErrEnrichmentFailed 在外部查询失败时返回，不做自动重试
	ErrEnrichmentFailed = errors.New("enrichment lookup failed")
)

// profileLookupResponse 对应外部查询服务的响应体，任何字段都可能缺失
type profileLookupResponse struct {
	FirstName         string `json:"first_name"`
	LastName          string `json:"last_name"`
	Position          string `json:"position"`
	PhoneNumber       string `json:"phone_number"`
	Email             string `json:"email"`
	GitHub            string `json:"github"`
	XHandle           string `json:"x_handle"`
	Summary           string `json:"summary"`
	ProfilePictureURL string `json:"profile_picture_url"`
}

// EnrichedProfile 是一次查询的归一化结果，作为新建表单的预填草稿。
// 所有字段缺省为空字符串，Image 可能是 data URI、原始图片 URL 或空。

type EnrichedProfile struct {
	Name        string
	Position    string
	Summary     string
	LinkedIn    string
	Email       string
	GitHub      string
	X           string
	Phone       string
	Image       string
	ImageWidth  int
	ImageHeight int
}

// EnrichmentService 调用外部资料查询服务，把结果映射为记录草稿。
// 图片拉取失败不影响整体结果（部分成功策略）。

type EnrichmentService struct {
	http    httpDoer
	baseURL string
	images  *ImageService
}

// NewEnrichmentService 构造 EnrichmentService
func NewEnrichmentService(baseURL string, images *ImageService) *EnrichmentService {
	return &EnrichmentService{
		// 出站请求不设超时，悬挂的查询由用户放弃后重试
		http:    &http.Client{},
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		images:  images,
	}
}

// SetHTTPClient 替换底层 HTTP 客户端，便于测试注入
func (s *EnrichmentService) SetHTTPClient(client httpDoer) {
	if client == nil {
		s.http = &http.Client{}
		return
	}
	s.http = client
}

// SetBaseURL 覆盖外部服务地址
func (s *EnrichmentService) SetBaseURL(base string) {
	s.baseURL = strings.TrimRight(strings.TrimSpace(base), "/")
}

// Configured 返回是否已配置外部服务地址
func (s *EnrichmentService) Configured() bool {
	return s.baseURL != ""
}

// Lookup 查询外部服务并归一化为草稿。
// 第一阶段：调用查询接口，非 2xx 一律视为失败；
// 第二阶段：拼接姓名、逐字段映射，若带头像地址则转为内联图片，
// 头像失败只记录日志并回退到原始 URL。
func (s *EnrichmentService) Lookup(ctx context.Context, sourceURL string) (EnrichedProfile, error) {
	sourceURL = strings.TrimSpace(sourceURL)
	if sourceURL == "" {
		return EnrichedProfile{}, fmt.Errorf("%w: empty source url", ErrEnrichmentFailed)
	}
	if s.baseURL == "" {
		return EnrichedProfile{}, ErrEnrichmentUnavailable
	}

	endpoint := s.baseURL + "/profile?source_url=" + url.QueryEscape(sourceURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return EnrichedProfile{}, fmt.Errorf("%w: %v", ErrEnrichmentFailed, err)
	}
	// 查询服务经隧道暴露，需要带上跳过警告页的请求头
	req.Header.Set("ngrok-skip-browser-warning", "true")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())

	client := s.http
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return EnrichedProfile{}, fmt.Errorf("%w: %v", ErrEnrichmentFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return EnrichedProfile{}, fmt.Errorf("%w: read response: %v", ErrEnrichmentFailed, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		detail := strings.TrimSpace(string(body))
		if detail == "" {
			detail = resp.Status
		}
		return EnrichedProfile{}, fmt.Errorf("%w: %s", ErrEnrichmentFailed, detail)
	}

	var payload profileLookupResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return EnrichedProfile{}, fmt.Errorf("%w: parse response: %v", ErrEnrichmentFailed, err)
	}

	profile := EnrichedProfile{
		Name:     joinName(payload.FirstName, payload.LastName),
		Position: strings.TrimSpace(payload.Position),
		Summary:  strings.TrimSpace(payload.Summary),
		LinkedIn: sourceURL,
		Email:    strings.TrimSpace(payload.Email),
		GitHub:   strings.TrimSpace(payload.GitHub),
		X:        strings.TrimSpace(payload.XHandle),
		Phone:    strings.TrimSpace(payload.PhoneNumber),
	}

	if photoURL := strings.TrimSpace(payload.ProfilePictureURL); photoURL != "" {
		if s.images != nil {
			img, err := s.images.FromRemoteURL(ctx, photoURL)
			if err == nil {
				profile.Image = img.DataURI
				profile.ImageWidth = img.Width
				profile.ImageHeight = img.Height
				return profile, nil
			}
			log.Printf("enrichment: profile picture fetch failed, keeping raw url: %v", err)
		}
		profile.Image = photoURL
	}

	return profile, nil
}

func joinName(first, last string) string {
	return strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
}
