package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/kbhatta/quotify-api/internal/application/service"
	"github.com/kbhatta/quotify-api/internal/config"
	"github.com/kbhatta/quotify-api/internal/domain/entity"
	"github.com/kbhatta/quotify-api/internal/infrastructure/repository"
	"github.com/kbhatta/quotify-api/internal/presentation/http/handler"
	"github.com/kbhatta/quotify-api/pkg/utils"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&entity.Item{}, &entity.Customer{}, &entity.Document{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cfg := &config.Config{
		App:       config.AppConfig{Name: "quotify-api", Env: "test"},
		Auth:      config.AuthConfig{OwnerPIN: "897100", UserPIN: "995500"},
		RateLimit: config.RateLimitConfig{Requests: 100, Duration: 1},
	}
	jwtManager := utils.NewJWTManager("test-secret", time.Hour)

	itemRepo := repository.NewItemRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	documentRepo := repository.NewDocumentRepository(db)

	authService, err := service.NewAuthService(cfg.Auth.OwnerPIN, cfg.Auth.UserPIN, jwtManager)
	if err != nil {
		t.Fatalf("auth service: %v", err)
	}
	catalogService := service.NewCatalogService(itemRepo)
	customerService := service.NewCustomerService(customerRepo)
	documentService := service.NewDocumentService(documentRepo, itemRepo)
	dashboardService := service.NewDashboardService(itemRepo, customerRepo, documentRepo)

	handlers := &Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Item:      handler.NewItemHandler(catalogService),
		Customer:  handler.NewCustomerHandler(customerService),
		Document:  handler.NewDocumentHandler(documentService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
	}

	return Setup(handlers, &Deps{JWTManager: jwtManager, Cfg: cfg})
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func login(t *testing.T, router *gin.Engine, pin string) string {
	t.Helper()
	rr := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", `{"pin":"`+pin+`"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	var resp struct {
		Data struct {
			Token string `json:"token"`
			Role  string `json:"role"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if resp.Data.Token == "" {
		t.Fatal("login response carries no token")
	}
	return resp.Data.Token
}

func TestMeReportsSessionRole(t *testing.T) {
	router := setupRouter(t)
	userToken := login(t, router, "995500")

	rr := doJSON(t, router, http.MethodGet, "/api/v1/auth/me", userToken, "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"role":"user"`) || !strings.Contains(rr.Body.String(), `"owner":false`) {
		t.Fatalf("unexpected session payload: %s", rr.Body.String())
	}
}

func TestHealthEndpointIsPublic(t *testing.T) {
	router := setupRouter(t)

	rr := doJSON(t, router, http.MethodGet, "/health", "", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

func TestLoginRejectsWrongPIN(t *testing.T) {
	router := setupRouter(t)

	rr := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", `{"pin":"123456"}`)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
	if !strings.Contains(rr.Body.String(), "Incorrect PIN") {
		t.Fatalf("expected Incorrect PIN message, got %s", rr.Body.String())
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router := setupRouter(t)

	rr := doJSON(t, router, http.MethodGet, "/api/v1/items", "", "")
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}

	rr = doJSON(t, router, http.MethodGet, "/api/v1/items", "not-a-token", "")
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for garbage token, got %d", rr.Code)
	}
}

func TestOwnerCanManageCatalogUserCannot(t *testing.T) {
	router := setupRouter(t)
	ownerToken := login(t, router, "897100")
	userToken := login(t, router, "995500")

	// Owner creates an item; numeric JSON values are accepted too.
	rr := doJSON(t, router, http.MethodPost, "/api/v1/items", ownerToken,
		`{"name":"Cement Bag","rate":450,"stock":80}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("owner create: expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}

	// User is read-only on the catalog.
	rr = doJSON(t, router, http.MethodPost, "/api/v1/items", userToken,
		`{"name":"Steel Rod","rate":"620","stock":"35"}`)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("user create: expected 403, got %d", rr.Code)
	}

	// Both roles can read.
	for _, token := range []string{ownerToken, userToken} {
		rr = doJSON(t, router, http.MethodGet, "/api/v1/items", token, "")
		if rr.Code != http.StatusOK {
			t.Fatalf("list: expected 200, got %d", rr.Code)
		}
	}
}

func TestSuggestEndpoint(t *testing.T) {
	router := setupRouter(t)
	ownerToken := login(t, router, "897100")

	for _, body := range []string{
		`{"name":"Cement Bag","rate":"450","stock":"80"}`,
		`{"name":"Cement Sack","rate":"500","stock":"10"}`,
	} {
		rr := doJSON(t, router, http.MethodPost, "/api/v1/items", ownerToken, body)
		if rr.Code != http.StatusCreated {
			t.Fatalf("create: expected 201, got %d body=%s", rr.Code, rr.Body.String())
		}
	}

	rr := doJSON(t, router, http.MethodGet, "/api/v1/items/suggest?q=cement", ownerToken, "")
	if rr.Code != http.StatusOK {
		t.Fatalf("suggest: expected 200, got %d", rr.Code)
	}

	var resp struct {
		Data []struct {
			Name string `json:"name"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Data) != 2 {
		t.Fatalf("expected 2 suggestions, got %d", len(resp.Data))
	}
}

func TestBillFlowEndToEnd(t *testing.T) {
	router := setupRouter(t)
	ownerToken := login(t, router, "897100")
	userToken := login(t, router, "995500")

	rr := doJSON(t, router, http.MethodPost, "/api/v1/items", ownerToken,
		`{"name":"Cement Bag","rate":"450","stock":"80"}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("create item: expected 201, got %d", rr.Code)
	}

	// Staff user saves a bill with a flaky qty value.
	rr = doJSON(t, router, http.MethodPost, "/api/v1/documents", userToken,
		`{"kind":"bill","customer_name":"Asha Traders","lines":[{"item":"cement bag","qty":"10"},{"item":"Cement Bag","qty":"oops"}]}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("create bill: expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}

	var resp struct {
		Data struct {
			Total float64 `json:"total"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Data.Total != 11*450 {
		t.Fatalf("expected total %v, got %v", 11*450, resp.Data.Total)
	}

	// The dashboard reflects the billed revenue.
	rr = doJSON(t, router, http.MethodGet, "/api/v1/dashboard", userToken, "")
	if rr.Code != http.StatusOK {
		t.Fatalf("dashboard: expected 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"billed_revenue":4950`) {
		t.Fatalf("expected billed revenue in dashboard, got %s", rr.Body.String())
	}
}

func TestAdjustStockAcceptsZeroDelta(t *testing.T) {
	router := setupRouter(t)
	ownerToken := login(t, router, "897100")

	rr := doJSON(t, router, http.MethodPost, "/api/v1/items", ownerToken,
		`{"name":"Cement Bag","rate":"450","stock":"80"}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("create item: expected 201, got %d", rr.Code)
	}

	var created struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}

	rr = doJSON(t, router, http.MethodPatch, "/api/v1/items/"+created.Data.ID+"/stock", ownerToken, `{"delta":0}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("zero delta: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	if !strings.Contains(rr.Body.String(), `"stock":80`) {
		t.Fatalf("expected stock unchanged at 80, got %s", rr.Body.String())
	}

	rr = doJSON(t, router, http.MethodPatch, "/api/v1/items/"+created.Data.ID+"/stock", ownerToken, `{}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("missing delta: expected 400, got %d", rr.Code)
	}
}
