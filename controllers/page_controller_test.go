package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/jaiohri/Portfolio/models"
)

func TestHomePage(t *testing.T) {
	r, _ := newTestServer(t)

	w := get(r, "/")
	if w.Code != http.StatusOK {
		t.Fatalf("GET / returned status %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Jai Ohri") {
		t.Error("home page should carry the site owner's name")
	}
}

func TestAboutPageFullAndFragment(t *testing.T) {
	r, db := newTestServer(t)

	db.Create(&models.Skill{Name: "Go", Category: models.CategoryLanguages, Level: 90})
	db.Create(&models.Experience{
		Title:       "Engineer",
		Company:     "Acme",
		StartDate:   time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC),
		Description: "**Led** the team",
	})

	w := get(r, "/about/")
	if w.Code != http.StatusOK {
		t.Fatalf("GET /about/ returned status %d, want 200", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "<nav>") {
		t.Error("full page render should include the navigation shell")
	}
	if !strings.Contains(body, "June 2023 - Present") {
		t.Error("about page should show the experience period")
	}
	if !strings.Contains(body, "<strong>Led</strong>") {
		t.Error("experience descriptions should render as markdown")
	}

	req := httptest.NewRequest(http.MethodGet, "/about/", nil)
	req.Header.Set("HX-Request", "true")
	w = serveWithHeader(r, req)
	if w.Code != http.StatusOK {
		t.Fatalf("fragment GET /about/ returned status %d, want 200", w.Code)
	}
	fragment := w.Body.String()
	if strings.Contains(fragment, "<nav>") {
		t.Error("fragment render should not include the navigation shell")
	}
	if !strings.Contains(fragment, "June 2023 - Present") {
		t.Error("fragment should still show the experience period")
	}
}

func TestPortfolioPage(t *testing.T) {
	r, db := newTestServer(t)

	db.Create(&models.Project{Title: "Star Project", Featured: true})
	db.Create(&models.Project{Title: "Plain Project"})

	w := get(r, "/portfolio/")
	if w.Code != http.StatusOK {
		t.Fatalf("GET /portfolio/ returned status %d, want 200", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Star Project") || !strings.Contains(body, "Plain Project") {
		t.Error("portfolio should list all projects")
	}
}

func TestContactSubmissionStoresMessage(t *testing.T) {
	r, db := newTestServer(t)

	w := postForm(r, "/contact/", url.Values{
		"name":    {"Ada"},
		"email":   {"ada@example.com"},
		"subject": {"Hello"},
		"message": {"Nice site!"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("POST /contact/ returned status %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Thank you Ada! Your message has been sent successfully.") {
		t.Error("submission should confirm with the sender's name")
	}

	var count int64
	db.Model(&models.ContactMessage{}).Count(&count)
	if count != 1 {
		t.Errorf("message count = %d, want 1", count)
	}
}

func TestContactSubmissionFragment(t *testing.T) {
	r, _ := newTestServer(t)

	form := url.Values{
		"name":    {"Ada"},
		"email":   {"ada@example.com"},
		"subject": {"Hello"},
		"message": {"Nice site!"},
	}
	req := httptest.NewRequest(http.MethodPost, "/contact/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	w := serveWithHeader(r, req)

	if w.Code != http.StatusOK {
		t.Fatalf("fragment POST /contact/ returned status %d, want 200", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Thank you Ada!") {
		t.Error("fragment should carry the confirmation")
	}
	if strings.Contains(body, "<nav>") {
		t.Error("fragment should not include the navigation shell")
	}
}

func TestContactSubmissionIgnoresPartialForm(t *testing.T) {
	r, db := newTestServer(t)

	w := postForm(r, "/contact/", url.Values{
		"name":  {"Ada"},
		"email": {"ada@example.com"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("POST /contact/ returned status %d, want 200", w.Code)
	}

	var count int64
	db.Model(&models.ContactMessage{}).Count(&count)
	if count != 0 {
		t.Errorf("partial submission stored %d messages, want 0", count)
	}
}

func TestFavicon(t *testing.T) {
	r, _ := newTestServer(t)

	w := get(r, "/favicon.ico")
	if w.Code != http.StatusNoContent {
		t.Errorf("GET /favicon.ico returned status %d, want 204", w.Code)
	}
}
