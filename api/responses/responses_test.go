package responses

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	pkgerrors "github.com/velora-commerce/velora-backend/pkg/errors"
)

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return body
}

func TestWriteSuccessEnvelope(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	WriteSuccess(rec, "Item added to cart", map[string]any{"quantity": 2})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("unexpected content type %q", ct)
	}

	body := decodeBody(t, rec)
	if body["status"] != "success" {
		t.Fatalf("expected success status, got %v", body["status"])
	}
	if body["message"] != "Item added to cart" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
	data, ok := body["data"].(map[string]any)
	if !ok || data["quantity"] != float64(2) {
		t.Fatalf("unexpected data: %v", body["data"])
	}
}

func TestWriteSuccessNullData(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	WriteSuccess(rec, "Item removed from cart", nil)

	body := decodeBody(t, rec)
	if _, present := body["data"]; !present {
		t.Fatal("data key must be present even when nil")
	}
	if body["data"] != nil {
		t.Fatalf("expected null data, got %v", body["data"])
	}
}

func TestWriteErrorTypedMessage(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	err := pkgerrors.New(pkgerrors.CodeNotFound, "Cart not found")
	WriteError(context.Background(), nil, rec, err)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["status"] != "error" {
		t.Fatalf("expected error status, got %v", body["status"])
	}
	if body["error"] != "Cart not found" {
		t.Fatalf("unexpected error message: %v", body["error"])
	}
	if body["errorCode"] != "NOT_FOUND_ERROR" {
		t.Fatalf("unexpected error code: %v", body["errorCode"])
	}
}

func TestWriteErrorHidesInternalDetail(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	err := pkgerrors.Wrap(pkgerrors.CodeInternal, errors.New("pq: connection refused"), "query carts")
	WriteError(context.Background(), nil, rec, err)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["error"] != "internal server error" {
		t.Fatalf("driver detail leaked: %v", body["error"])
	}
}

func TestWriteErrorUntypedBecomesInternal(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	WriteError(context.Background(), nil, rec, errors.New("boom"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["errorCode"] != "INTERNAL_ERROR" {
		t.Fatalf("unexpected code: %v", body["errorCode"])
	}
}

func TestWriteErrorInsufficientStock(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	WriteError(context.Background(), nil, rec, pkgerrors.New(pkgerrors.CodeInsufficientStock, "Insufficient stock"))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["error"] != "Insufficient stock" || body["errorCode"] != "INSUFFICIENT_STOCK_ERROR" {
		t.Fatalf("unexpected body: %v", body)
	}
}
