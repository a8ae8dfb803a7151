package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/foundersdir/internal/db"
)

func TestShowDirectoryRendersFounders(t *testing.T) {
	r, cleanup := setupTestEnv(t)
	defer cleanup()

	founders := []db.Founder{
		{Name: "Zach Nguyen", Position: "CTO @ Talys", LinkedIn: "https://www.linkedin.com/in/zach/"},
		{Name: "Nathaniel Angafor", Position: "CEO @ Talys"},
	}
	if err := db.DB.Create(&founders).Error; err != nil {
		t.Fatalf("failed to seed founders: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Zach Nguyen") || !strings.Contains(body, "Nathaniel Angafor") {
		t.Fatal("expected both founders rendered on the page")
	}
	if !strings.Contains(body, testPlaceholderImage) {
		t.Fatal("expected placeholder image for the founder without a photo")
	}
}

func TestShowDirectorySearchFilters(t *testing.T) {
	r, cleanup := setupTestEnv(t)
	defer cleanup()

	founders := []db.Founder{
		{Name: "Zach Nguyen", Position: "CTO @ Talys"},
		{Name: "Nathaniel Angafor", Position: "CEO @ Talys"},
	}
	if err := db.DB.Create(&founders).Error; err != nil {
		t.Fatalf("failed to seed founders: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/?search=cto", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Zach Nguyen") {
		t.Fatal("expected the matching founder rendered")
	}
	// 卡片区不应包含未命中的记录（嵌入的 JSON 同样被过滤）
	if strings.Contains(body, "Nathaniel Angafor") {
		t.Fatal("expected the non-matching founder filtered out")
	}
}

func TestShowDirectoryRendersSummaryMarkdown(t *testing.T) {
	r, cleanup := setupTestEnv(t)
	defer cleanup()

	founder := db.Founder{Name: "Zach", Position: "CTO", Summary: "Builds **things**."}
	if err := db.DB.Create(&founder).Error; err != nil {
		t.Fatalf("failed to seed founder: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "<strong>things</strong>") {
		t.Fatal("expected summary markdown rendered to HTML")
	}
}
