package controllers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/jaiohri/Portfolio/config"
	"github.com/jaiohri/Portfolio/models"
	"github.com/jaiohri/Portfolio/routes"
	"github.com/jaiohri/Portfolio/services"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBCounter int64

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestServer boots the full router against an isolated in-memory
// database
func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	n := atomic.AddInt64(&testDBCounter, 1)
	dsn := fmt.Sprintf("file:controllers_test_%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.Technology{},
		&models.Project{},
		&models.Skill{},
		&models.Experience{},
		&models.ContactMessage{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	cfg := &config.Config{
		TemplatesGlob: "../templates/*.html",
		MediaRoot:     t.TempDir(),
		SessionSecret: "test-secret",
	}
	return routes.SetupRouter(db, cfg), db
}

// get performs a GET request, optionally replaying session cookies
func get(r *gin.Engine, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// serveWithHeader runs a prepared request through the router
func serveWithHeader(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// postForm performs a form POST, optionally replaying session cookies
func postForm(r *gin.Engine, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// signInAdmin provisions an admin account and returns its session cookies
func signInAdmin(t *testing.T, r *gin.Engine) []*http.Cookie {
	t.Helper()

	w := postForm(r, "/login/", url.Values{
		"username": {"jai"},
		"password": {"s3cret"},
	})
	if w.Code != http.StatusFound {
		t.Fatalf("login returned status %d, want 302", w.Code)
	}
	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("login set no session cookie")
	}
	return cookies
}

// bootstrapAdmin creates the admin account the login tests sign in with
func bootstrapAdmin(t *testing.T, db *gorm.DB) {
	t.Helper()
	service := services.NewAuthService(db, &config.Config{})
	if err := service.EnsureAdminUser("jai", "s3cret"); err != nil {
		t.Fatalf("failed to bootstrap admin: %v", err)
	}
}
