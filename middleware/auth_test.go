package middleware_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/jaiohri/Portfolio/config"
	"github.com/jaiohri/Portfolio/middleware"
	"github.com/jaiohri/Portfolio/models"
	"github.com/jaiohri/Portfolio/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBCounter int64

func init() {
	gin.SetMode(gin.TestMode)
}

// newIdentityEngine wires the session and identity middleware around a
// probe handler that reports the resolved username
func newIdentityEngine(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	n := atomic.AddInt64(&testDBCounter, 1)
	dsn := fmt.Sprintf("file:middleware_test_%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	middleware.InitAuthMiddleware(services.NewAuthService(db, &config.Config{}))

	r := gin.New()
	r.Use(sessions.Sessions("portfolio_session", cookie.NewStore([]byte("test-secret"))))
	r.Use(middleware.ResolveIdentity())
	r.GET("/whoami", func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		if user == nil {
			c.String(http.StatusOK, "nobody")
			return
		}
		c.String(http.StatusOK, user.Username)
	})
	return r, db
}

func TestAnonymousVisitorBecomesGuest(t *testing.T) {
	r, db := newIdentityEngine(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))

	if w.Body.String() != models.GuestUsername {
		t.Errorf("identity = %q, want the guest account", w.Body.String())
	}

	var guest models.User
	if err := db.Where("username = ?", models.GuestUsername).First(&guest).Error; err != nil {
		t.Fatalf("guest account was not provisioned: %v", err)
	}
	if guest.Password != models.UnusablePassword {
		t.Errorf("guest password = %q, want the unusable marker", guest.Password)
	}
}

func TestGuestAccountIsShared(t *testing.T) {
	r, db := newIdentityEngine(t)

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	}

	var count int64
	db.Model(&models.User{}).Count(&count)
	if count != 1 {
		t.Errorf("user count after three visits = %d, want the one shared guest", count)
	}
}

func TestStaleSessionFallsBackToGuest(t *testing.T) {
	r, db := newIdentityEngine(t)

	admin := models.User{Username: "jai", Password: "x", IsStaff: true}
	db.Create(&admin)

	// First visit as guest to obtain a session cookie
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	cookies := w.Result().Cookies()

	// Remove the guest account so the stored id goes stale
	db.Where("username = ?", models.GuestUsername).Delete(&models.User{})

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Body.String() != models.GuestUsername {
		t.Errorf("identity = %q, want a fresh guest", w.Body.String())
	}
}

func TestIsAdminPredicate(t *testing.T) {
	staff := &models.User{Username: "jai", IsStaff: true}
	if !middleware.IsAdmin(staff) {
		t.Error("staff user should be admin")
	}

	superuser := &models.User{Username: "root", IsSuperuser: true}
	if !middleware.IsAdmin(superuser) {
		t.Error("superuser should be admin")
	}

	guest := &models.User{Username: models.GuestUsername, IsStaff: true, IsSuperuser: true}
	if middleware.IsAdmin(guest) {
		t.Error("the guest account is never admin, whatever its flags")
	}

	plain := &models.User{Username: "visitor"}
	if middleware.IsAdmin(plain) {
		t.Error("a user without staff or superuser flags is not admin")
	}

	if middleware.IsAdmin(nil) {
		t.Error("nil user is not admin")
	}
}
