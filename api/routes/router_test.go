package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	authsvc "github.com/velora-commerce/velora-backend/internal/auth"
	cartsvc "github.com/velora-commerce/velora-backend/internal/cart"
	"github.com/velora-commerce/velora-backend/internal/products"
	wishlistsvc "github.com/velora-commerce/velora-backend/internal/wishlist"
	pkgAuth "github.com/velora-commerce/velora-backend/pkg/auth"
	"github.com/velora-commerce/velora-backend/pkg/auth/session"
	"github.com/velora-commerce/velora-backend/pkg/config"
	"github.com/velora-commerce/velora-backend/pkg/enums"
	pkgerrors "github.com/velora-commerce/velora-backend/pkg/errors"
)

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error {
	return nil
}

type stubAuthService struct{}

func (stubAuthService) Signup(ctx context.Context, req authsvc.SignupRequest) (*authsvc.AuthResponse, error) {
	return &authsvc.AuthResponse{AccessToken: "access", RefreshToken: "refresh"}, nil
}

func (stubAuthService) Login(ctx context.Context, req authsvc.LoginRequest) (*authsvc.AuthResponse, error) {
	return nil, pkgerrors.New(pkgerrors.CodeAuthentication, "invalid credentials")
}

func (stubAuthService) Refresh(ctx context.Context, expiredAccessToken, refreshToken string) (*authsvc.RefreshResponse, error) {
	return nil, pkgerrors.New(pkgerrors.CodeAuthentication, "invalid credentials")
}

func (stubAuthService) Logout(ctx context.Context, accessID string) error {
	return nil
}

type stubSessionChecker struct{}

func (stubSessionChecker) HasSession(ctx context.Context, accessID string) (bool, error) {
	return true, nil
}

type stubProductService struct{}

func (stubProductService) GetProduct(ctx context.Context, id uuid.UUID) (*products.ProductDTO, error) {
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Product not found")
}

func (stubProductService) ListProducts(ctx context.Context, params products.ListParams) (products.ProductListDTO, error) {
	return products.ProductListDTO{Products: []products.ProductDTO{}}, nil
}

type stubCartService struct{}

func (stubCartService) AddItem(ctx context.Context, userID, productID uuid.UUID) (*cartsvc.CartItemDTO, error) {
	return &cartsvc.CartItemDTO{ID: uuid.New(), ProductID: productID, Quantity: 1}, nil
}

func (stubCartService) RemoveItem(ctx context.Context, userID, itemID uuid.UUID) error {
	return nil
}

func (stubCartService) IncreaseQuantity(ctx context.Context, userID, itemID uuid.UUID) (*cartsvc.CartItemDTO, error) {
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Item not found in cart")
}

func (stubCartService) DecreaseQuantity(ctx context.Context, userID, itemID uuid.UUID) (*cartsvc.CartItemDTO, error) {
	return nil, nil
}

func (stubCartService) ListItems(ctx context.Context, userID uuid.UUID) ([]cartsvc.CartItemDetailDTO, error) {
	return nil, nil
}

type stubWishlistService struct{}

func (stubWishlistService) AddItem(ctx context.Context, userID, productID uuid.UUID) (*wishlistsvc.WishlistItemDTO, error) {
	return &wishlistsvc.WishlistItemDTO{ID: uuid.New(), ProductID: productID}, nil
}

func (stubWishlistService) RemoveItem(ctx context.Context, userID, itemID uuid.UUID) error {
	return nil
}

func (stubWishlistService) ListItems(ctx context.Context, userID uuid.UUID) ([]wishlistsvc.WishlistItemDetailDTO, error) {
	return nil, nil
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: "dev", Port: "8080"},
		JWT: config.JWTConfig{
			Secret:                 "router-test-secret",
			Issuer:                 "velora-test",
			ExpirationMinutes:      15,
			RefreshTokenTTLMinutes: 60,
		},
	}
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	return NewRouter(Deps{
		Config:          testConfig(),
		DB:              stubPinger{},
		SessionChecker:  stubSessionChecker{},
		AuthService:     stubAuthService{},
		ProductService:  stubProductService{},
		CartService:     stubCartService{},
		WishlistService: stubWishlistService{},
	})
}

func mintRouterToken(t *testing.T) string {
	t.Helper()
	cfg := testConfig()
	token, err := pkgAuth.MintAccessToken(cfg.JWT, time.Now().UTC(), pkgAuth.AccessTokenPayload{
		UserID:   uuid.New(),
		Email:    "buyer@example.com",
		UserType: enums.UserTypeBuyer,
		JTI:      session.NewAccessID(),
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}

func TestHealthLive(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
}

func TestHealthReadyWithHealthyStores(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
}

func TestPublicCatalogNeedsNoAuth(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
}

func TestCartRoutesRequireAuth(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/cart/items", nil)
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", rec.Code)
	}
}

func TestCartAddWithValidToken(t *testing.T) {
	router := newTestRouter(t)

	body := `{"product_id":"` + uuid.NewString() + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/cart/add", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+mintRouterToken(t))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", rec.Code, rec.Body.String())
	}

	var envelope map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if envelope["message"] != "Item added to cart" {
		t.Fatalf("unexpected message: %v", envelope["message"])
	}
}

func TestSignupSetsRefreshCookie(t *testing.T) {
	router := newTestRouter(t)

	body := `{"email":"new@example.com","password":"longenough","name":"New User"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(body))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", rec.Code, rec.Body.String())
	}

	var refreshCookie *http.Cookie
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "velora_refresh_token" {
			refreshCookie = cookie
		}
	}
	if refreshCookie == nil {
		t.Fatal("expected refresh cookie to be set")
	}
	if !refreshCookie.HttpOnly {
		t.Fatal("refresh cookie must be httpOnly")
	}
	if strings.Contains(rec.Body.String(), "refresh") && strings.Contains(rec.Body.String(), `"refresh_token"`) {
		t.Fatal("refresh token must not appear in the response body")
	}
}

func TestUnknownProductIs404(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products/"+uuid.NewString(), nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rec.Code)
	}
}
