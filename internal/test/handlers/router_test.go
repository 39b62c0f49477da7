package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"vintage-cars-backend/internal/handlers"
)

const testBaseURL = "http://localhost:8080"

// newTestRouter mounts the public and admin routes the way cmd/server does,
// minus the auth middleware (exercised separately in the middleware tests).
func newTestRouter(store handlers.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	brandsHandler := handlers.NewBrandsHandler(store)
	carsHandler := handlers.NewCarsHandler(store, testBaseURL)
	inquiriesHandler := handlers.NewInquiriesHandler(store)
	adminHandler := handlers.NewAdminHandler(store)

	router.GET("/health", handlers.HealthHandler)

	public := router.Group("/api/cars")
	public.GET("/brands/", brandsHandler.ListBrands)
	public.GET("/brands/:brand_id/", brandsHandler.GetBrand)
	public.GET("/", carsHandler.ListCars)
	public.GET("/:car_id/", carsHandler.GetCar)
	public.POST("/inquiries/", inquiriesHandler.CreateInquiry)

	admin := router.Group("/api/admin")
	admin.POST("/brands", adminHandler.CreateBrand)
	admin.PUT("/brands/:brand_id", adminHandler.UpdateBrand)
	admin.DELETE("/brands/:brand_id", adminHandler.DeleteBrand)
	admin.POST("/cars", adminHandler.CreateCar)
	admin.PUT("/cars/:car_id", adminHandler.UpdateCar)
	admin.DELETE("/cars/:car_id", adminHandler.DeleteCar)
	admin.POST("/cars/:car_id/images", adminHandler.CreateCarImage)
	admin.DELETE("/images/:image_id", adminHandler.DeleteCarImage)
	admin.GET("/inquiries", adminHandler.ListInquiries)

	return router
}

func doGET(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req, _ := http.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal body: %v", err)
	}
	req, _ := http.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
}
