package posclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/restaurant-admin-api/internal/config"
	"github.com/vfg2006/restaurant-admin-api/internal/domain"
)

func testClient(serverURL string) Client {
	return NewClient(&config.Config{
		POS: config.POS{
			URL:            serverURL + "/api/v1",
			ServiceToken:   "service-token",
			RequestTimeout: 5 * time.Second,
			ReportTimeout:  5 * time.Second,
		},
		Images: config.Images{MaxSizeByte: 1024 * 1024},
	})
}

func TestClient_Login_SendsFormEncodedCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/login/", r.URL.Path)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "admin", r.PostForm.Get("username"))
		assert.Equal(t, "secret", r.PostForm.Get("password"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token": "abc123", "token_type": "bearer"}`))
	}))
	defer server.Close()

	token, err := testClient(server.URL).Login(context.Background(), "admin", "secret")
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)
}

func TestClient_Login_RejectedCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	_, err := testClient(server.URL).Login(context.Background(), "admin", "wrong")
	require.Error(t, err)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusUnauthorized, statusErr.Status)
}

func TestClient_TokenFromContextOverridesServiceToken(t *testing.T) {
	var authorization string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authorization = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := testClient(server.URL)

	_, err := client.ListCategories(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, "Bearer service-token", authorization)

	_, err = client.ListCategories(WithToken(context.Background(), "user-token"), false)
	require.NoError(t, err)
	assert.Equal(t, "Bearer user-token", authorization)
}

func TestClient_ListCategories_ActiveOnlyQuery(t *testing.T) {
	var query string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/categories/", r.URL.Path)
		query = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id": 1, "name": "Bebidas", "is_active": true}]`))
	}))
	defer server.Close()

	client := testClient(server.URL)

	categories, err := client.ListCategories(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "Bebidas", categories[0].Name)
	assert.Equal(t, "active_only=true", query)

	_, err = client.ListCategories(context.Background(), false)
	require.NoError(t, err)
	assert.Empty(t, query)
}

func TestClient_GetReport_SingleDateInPath(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/reports/daily-sales/2024-03-10", r.URL.Path)
		assert.Equal(t, "2024-03-10", r.URL.Query().Get("date"))
		w.Write([]byte(`{"total_orders": 3}`))
	}))
	defer server.Close()

	body, err := testClient(server.URL).GetReport(context.Background(), domain.ReportDailySales,
		map[string]string{"date": "2024-03-10"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"total_orders": 3}`, string(body))
}

func TestClient_GetReport_RangeInQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/reports/waiter-commission", r.URL.Path)
		assert.Equal(t, "2024-03-01", r.URL.Query().Get("start_date"))
		assert.Equal(t, "2024-03-10", r.URL.Query().Get("end_date"))
		w.Write([]byte(`{"waiters": []}`))
	}))
	defer server.Close()

	_, err := testClient(server.URL).GetReport(context.Background(), domain.ReportWaiterCommission,
		map[string]string{"start_date": "2024-03-01", "end_date": "2024-03-10"})
	require.NoError(t, err)
}

func TestClient_UploadProductImage_MultipartFileField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/products/7/upload_image", r.URL.Path)

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()

		assert.Equal(t, "foto.png", header.Filename)

		data, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, []byte("image-bytes"), data)

		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	err := testClient(server.URL).UploadProductImage(context.Background(), 7,
		"foto.png", "image/png", strings.NewReader("image-bytes"))
	require.NoError(t, err)
}

func TestClient_FetchProductImage_NotFoundIsNil(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	image, err := testClient(server.URL).FetchProductImage(context.Background(), 7)
	require.NoError(t, err)
	assert.Nil(t, image)
}

func TestClient_FetchProductImage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/products/7/image", r.URL.Path)
		w.Header().Set("Content-Type", "image/png")
		w.Write([]byte("png-bytes"))
	}))
	defer server.Close()

	image, err := testClient(server.URL).FetchProductImage(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, image)
	assert.Equal(t, 7, image.ProductID)
	assert.Equal(t, "image/png", image.ContentType)
	assert.Equal(t, []byte("png-bytes"), image.Data)
}
