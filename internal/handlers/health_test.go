package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

type fakePinger struct {
	err error
}

func (p *fakePinger) Ping(context.Context) error { return p.err }

func healthRouter(store DBPinger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewHealthHandler(store)
	router := gin.New()
	router.GET("/api/health", handler.Health)
	router.GET("/api/test-db", handler.TestDB)
	return router
}

func TestHealthConnected(t *testing.T) {
	router := healthRouter(&fakePinger{})

	resp := getJSON(router, "/api/health")
	mustStatus(t, resp.Code, http.StatusOK)

	out := decodeBody(t, resp)
	if out["status"] != "OK" || out["database"] != "Connected" {
		t.Fatalf("unexpected health body: %v", out)
	}
	if out["timestamp"] == "" {
		t.Fatalf("expected a timestamp")
	}
}

func TestHealthWithoutStore(t *testing.T) {
	router := healthRouter(nil)

	resp := getJSON(router, "/api/health")
	mustStatus(t, resp.Code, http.StatusOK)

	out := decodeBody(t, resp)
	if out["database"] != "Disconnected" {
		t.Fatalf("expected Disconnected, got %v", out["database"])
	}
}

func TestTestDBSuccess(t *testing.T) {
	router := healthRouter(&fakePinger{})

	resp := getJSON(router, "/api/test-db")
	mustStatus(t, resp.Code, http.StatusOK)

	out := decodeBody(t, resp)
	if out["message"] != "Database connection successful" {
		t.Fatalf("unexpected message: %v", out["message"])
	}
	result, _ := out["result"].(map[string]any)
	if result == nil || result["ok"] != float64(1) {
		t.Fatalf("expected result.ok == 1, got %v", out["result"])
	}
}

func TestTestDBFailure(t *testing.T) {
	router := healthRouter(&fakePinger{err: errors.New("no reachable servers")})

	resp := getJSON(router, "/api/test-db")
	mustStatus(t, resp.Code, http.StatusInternalServerError)

	out := decodeBody(t, resp)
	if out["message"] != "Database connection failed" {
		t.Fatalf("unexpected message: %v", out["message"])
	}
}
