package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	profileRepo "iscort/database/repository/profile"
	"iscort/models"
	"iscort/utils"

	"github.com/gin-gonic/gin"
)

type fakeProfileRepo struct {
	profiles map[string]*models.Profile
}

func (f *fakeProfileRepo) GetByID(id string) (*models.Profile, error) {
	if p, ok := f.profiles[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, profileRepo.ErrNotFound
}

func (f *fakeProfileRepo) GetByEmail(email string) (*models.Profile, error) {
	return nil, profileRepo.ErrNotFound
}

func (f *fakeProfileRepo) GetByUsername(username string) (*models.Profile, error) {
	return nil, profileRepo.ErrNotFound
}

func (f *fakeProfileRepo) GetAll() ([]models.Profile, error) { return nil, nil }

func (f *fakeProfileRepo) Create(p *models.Profile) error { return nil }

func (f *fakeProfileRepo) Update(p *models.Profile) error { return nil }

func (f *fakeProfileRepo) Delete(id string) error { return nil }

func (f *fakeProfileRepo) UpdateRankingScore(id string, score float64) error { return nil }

func (f *fakeProfileRepo) UpdateRankingPosition(id string, position int) error { return nil }

func (f *fakeProfileRepo) SetVerificationFlag(id string, flag string, value bool) error { return nil }

func authRouter(repo profileRepo.ProfileRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(JWTAuthMiddleware(repo))
	r.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"profileId": c.GetString("profileID")})
	})
	return r
}

func TestJWTAuthMiddleware(t *testing.T) {
	repo := &fakeProfileRepo{profiles: map[string]*models.Profile{
		"p1": {ID: "p1", Email: "ana@example.com"},
	}}
	router := authRouter(repo)

	token, err := utils.GenerateToken("p1", "ana@example.com", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	goneToken, err := utils.GenerateToken("deleted", "gone@example.com", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-token", http.StatusUnauthorized},
		{"deleted account", "Bearer " + goneToken, http.StatusUnauthorized},
		{"valid token", "Bearer " + token, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestJWTAuthMiddlewareExpiredToken(t *testing.T) {
	repo := &fakeProfileRepo{profiles: map[string]*models.Profile{
		"p1": {ID: "p1"},
	}}
	router := authRouter(repo)

	expired, err := utils.GenerateToken("p1", "ana@example.com", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+expired)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}
