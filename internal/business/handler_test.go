package business

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
)

func loginRouter(repo *InMemoryRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/business/login", NewHandler(NewService(repo)).Login)
	return r
}

func postLogin(t *testing.T, r *gin.Engine, phone, license string) *httptest.ResponseRecorder {
	t.Helper()

	body, _ := json.Marshal(map[string]string{
		"phoneNumber":   phone,
		"licenseNumber": license,
	})
	req := httptest.NewRequest(http.MethodPost, "/business/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginEndpoint_Success(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret-key-12345")

	repo := NewInMemoryRepository()
	seedBusiness(t, repo)
	r := loginRouter(repo)

	w := postLogin(t, r, "+91 99309 16956", "FSSAI-2024-00042")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success  bool      `json:"success"`
		Token    string    `json:"token"`
		Business *Business `json:"business"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.Success || resp.Token == "" || resp.Business == nil {
		t.Fatalf("unexpected response: %s", w.Body.String())
	}
}

func TestLoginEndpoint_NotFoundVsMismatch(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret-key-12345")

	repo := NewInMemoryRepository()
	seedBusiness(t, repo)
	r := loginRouter(repo)

	// Unknown license: not found.
	if w := postLogin(t, r, "+91 99309 16956", "FSSAI-0000-00000"); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown license, got %d", w.Code)
	}

	// Known license, wrong phone: credential mismatch.
	if w := postLogin(t, r, "+91 11111 22222", "FSSAI-2024-00042"); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong phone, got %d", w.Code)
	}
}

func TestGetEndpoint_RejectsMalformedID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := NewInMemoryRepository()
	seedBusiness(t, repo)
	r := gin.New()
	r.GET("/business/:id", NewHandler(NewService(repo)).Get)

	// "1abc" matters most: a lenient scan would read the leading 1 and
	// serve another business's profile.
	for _, id := range []string{"abc", "1abc", "1.5"} {
		req := httptest.NewRequest(http.MethodGet, "/business/"+id, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("id %q: expected 400, got %d: %s", id, w.Code, w.Body.String())
		}
	}
}

func TestLoginEndpoint_InvalidBody(t *testing.T) {
	repo := NewInMemoryRepository()
	r := loginRouter(repo)

	req := httptest.NewRequest(http.MethodPost, "/business/login", bytes.NewBufferString("not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
