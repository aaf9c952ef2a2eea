package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"cuci-sepatu/controllers"
	"cuci-sepatu/middleware"
	"cuci-sepatu/models"
	"cuci-sepatu/repositories"
	"cuci-sepatu/routes"
	"cuci-sepatu/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore is an in-memory SepatuStore. A non-nil err makes every
// operation fail, simulating an unreachable database.
type fakeStore struct {
	items []models.Sepatu
	err   error
	seq   int
}

func (f *fakeStore) InsertOne(s *models.Sepatu) error {
	if f.err != nil {
		return f.err
	}
	f.seq++
	s.ID = uuid.NewString()
	s.CreatedAt = time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC).Add(time.Duration(f.seq) * time.Minute)
	f.items = append(f.items, *s)
	return nil
}

func (f *fakeStore) SelectAll(status string) ([]models.Sepatu, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []models.Sepatu{}
	for _, item := range f.items {
		if status == "" || item.Status == status {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeStore) SelectOneByID(id string) (*models.Sepatu, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.items {
		if f.items[i].ID == id {
			found := f.items[i]
			return &found, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeStore) UpdateByID(id string, patch map[string]interface{}) (*models.Sepatu, error) {
	if f.err != nil {
		return nil, f.err
	}
	if len(patch) == 0 {
		return f.SelectOneByID(id)
	}
	for i := range f.items {
		if f.items[i].ID != id {
			continue
		}
		item := &f.items[i]
		if v, ok := patch["nama_pelanggan"]; ok {
			item.NamaPelanggan = v.(string)
		}
		if v, ok := patch["jenis_sepatu"]; ok {
			item.JenisSepatu = v.(string)
		}
		if v, ok := patch["layanan"]; ok {
			item.Layanan = v.(string)
		}
		if v, ok := patch["status"]; ok {
			item.Status = v.(string)
		}
		if v, ok := patch["harga"]; ok {
			item.Harga = v.(float64)
		}
		if v, ok := patch["tanggal_masuk"]; ok {
			item.TanggalMasuk = v.(time.Time)
		}
		updated := *item
		return &updated, nil
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeStore) DeleteByID(id string) (*models.Sepatu, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.items {
		if f.items[i].ID == id {
			deleted := f.items[i]
			f.items = append(f.items[:i], f.items[i+1:]...)
			return &deleted, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func setupRouter(store services.SepatuStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := controllers.NewSepatuController(services.NewSepatuService(store))
	router := gin.New()
	router.Use(middleware.RecoveryMiddleware())
	routes.SetupRoutes(router, ctrl)
	return router
}

func doRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func validPayload() map[string]interface{} {
	return map[string]interface{}{
		"nama_pelanggan": "Budi Santoso",
		"jenis_sepatu":   "Sneakers",
		"layanan":        "Deep Clean",
		"status":         "Proses",
		"harga":          50000,
	}
}

func TestWelcome(t *testing.T) {
	router := setupRouter(&fakeStore{})

	rec := doRequest(router, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body models.WelcomeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "API Cuci Sepatu - Selamat Datang!", body.Message)
	assert.Len(t, body.Endpoints, 6)
}

func TestCreateRoundTrip(t *testing.T) {
	router := setupRouter(&fakeStore{})

	rec := doRequest(router, http.MethodPost, "/items", validPayload())
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.DataResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.True(t, created.Success)
	assert.Equal(t, "Data sepatu berhasil ditambahkan", created.Message)
	require.NotNil(t, created.Data)
	require.NotEmpty(t, created.Data.ID)
	assert.False(t, created.Data.TanggalMasuk.IsZero())
	assert.False(t, created.Data.CreatedAt.IsZero())

	rec = doRequest(router, http.MethodGet, "/items/"+created.Data.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var fetched models.DataResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fetched))
	assert.True(t, fetched.Success)
	assert.Equal(t, created.Data, fetched.Data)
}

func TestCreateMissingRequiredField(t *testing.T) {
	for _, field := range models.RequiredFields {
		t.Run(field, func(t *testing.T) {
			router := setupRouter(&fakeStore{})

			payload := validPayload()
			delete(payload, field)

			rec := doRequest(router, http.MethodPost, "/items", payload)
			require.Equal(t, http.StatusBadRequest, rec.Code)

			var body models.ValidationErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "Data tidak lengkap", body.Error)
			assert.Equal(t, models.RequiredFields, body.Required)

			// No record may have been written.
			rec = doRequest(router, http.MethodGet, "/items", nil)
			var list models.ListResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
			assert.Equal(t, 0, list.Count)
		})
	}
}

func TestCreateZeroHargaRejected(t *testing.T) {
	router := setupRouter(&fakeStore{})

	payload := validPayload()
	payload["harga"] = 0

	rec := doRequest(router, http.MethodPost, "/items", payload)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateWithExplicitTanggalMasuk(t *testing.T) {
	router := setupRouter(&fakeStore{})

	payload := validPayload()
	payload["tanggal_masuk"] = "2025-05-20T10:30:00Z"

	rec := doRequest(router, http.MethodPost, "/items", payload)
	require.Equal(t, http.StatusCreated, rec.Code)

	var body models.DataResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, time.Date(2025, 5, 20, 10, 30, 0, 0, time.UTC), body.Data.TanggalMasuk.UTC())
}

func TestCreateInvalidTanggalMasuk(t *testing.T) {
	router := setupRouter(&fakeStore{})

	payload := validPayload()
	payload["tanggal_masuk"] = "kemarin sore"

	rec := doRequest(router, http.MethodPost, "/items", payload)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "Format tanggal_masuk tidak valid", body.Error)
}

func TestListFilterAndOrdering(t *testing.T) {
	router := setupRouter(&fakeStore{})

	for i, status := range []string{"Selesai", "Proses", "Selesai"} {
		payload := validPayload()
		payload["nama_pelanggan"] = fmt.Sprintf("Pelanggan %d", i+1)
		payload["status"] = status
		rec := doRequest(router, http.MethodPost, "/items", payload)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doRequest(router, http.MethodGet, "/items", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var all models.ListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
	assert.True(t, all.Success)
	assert.Equal(t, 3, all.Count)
	require.Len(t, all.Data, 3)
	for i := 1; i < len(all.Data); i++ {
		assert.False(t, all.Data[i-1].CreatedAt.Before(all.Data[i].CreatedAt))
	}

	rec = doRequest(router, http.MethodGet, "/items?status=Selesai", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var filtered models.ListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &filtered))
	assert.Equal(t, 2, filtered.Count)
	for _, item := range filtered.Data {
		assert.Equal(t, "Selesai", item.Status)
	}

	// Exact match only, no partial or case-insensitive filtering.
	rec = doRequest(router, http.MethodGet, "/items?status=selesai", nil)
	var none models.ListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &none))
	assert.Equal(t, 0, none.Count)
}

func TestUpdateChangesOnlyProvidedFields(t *testing.T) {
	router := setupRouter(&fakeStore{})

	rec := doRequest(router, http.MethodPost, "/items", validPayload())
	require.Equal(t, http.StatusCreated, rec.Code)
	var created models.DataResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = doRequest(router, http.MethodPut, "/items/"+created.Data.ID, map[string]interface{}{
		"status": "Selesai",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var updated models.DataResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.True(t, updated.Success)
	assert.Equal(t, "Data sepatu berhasil diupdate", updated.Message)
	assert.Equal(t, "Selesai", updated.Data.Status)
	assert.Equal(t, created.Data.NamaPelanggan, updated.Data.NamaPelanggan)
	assert.Equal(t, created.Data.JenisSepatu, updated.Data.JenisSepatu)
	assert.Equal(t, created.Data.Layanan, updated.Data.Layanan)
	assert.Equal(t, created.Data.Harga, updated.Data.Harga)
	assert.Equal(t, created.Data.TanggalMasuk, updated.Data.TanggalMasuk)
}

func TestUpdateDropsZeroValues(t *testing.T) {
	router := setupRouter(&fakeStore{})

	rec := doRequest(router, http.MethodPost, "/items", validPayload())
	require.Equal(t, http.StatusCreated, rec.Code)
	var created models.DataResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	// Zero price and empty name are treated as "not provided".
	rec = doRequest(router, http.MethodPut, "/items/"+created.Data.ID, map[string]interface{}{
		"harga":          0,
		"nama_pelanggan": "",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var updated models.DataResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, created.Data.Harga, updated.Data.Harga)
	assert.Equal(t, created.Data.NamaPelanggan, updated.Data.NamaPelanggan)
}

func TestUpdateNotFound(t *testing.T) {
	router := setupRouter(&fakeStore{})

	rec := doRequest(router, http.MethodPut, "/items/"+uuid.NewString(), map[string]interface{}{
		"status": "Selesai",
	})
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "Data tidak ditemukan", body.Error)
}

func TestUpdateMalformedBody(t *testing.T) {
	router := setupRouter(&fakeStore{})

	req := httptest.NewRequest(http.MethodPut, "/items/"+uuid.NewString(), bytes.NewReader([]byte("{bukan json")))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteIdempotence(t *testing.T) {
	router := setupRouter(&fakeStore{})

	rec := doRequest(router, http.MethodPost, "/items", validPayload())
	require.Equal(t, http.StatusCreated, rec.Code)
	var created models.DataResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = doRequest(router, http.MethodDelete, "/items/"+created.Data.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var deleted models.DataResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &deleted))
	assert.Equal(t, "Data sepatu berhasil dihapus", deleted.Message)
	assert.Equal(t, created.Data, deleted.Data)

	// Second delete and a follow-up get must both miss.
	rec = doRequest(router, http.MethodDelete, "/items/"+created.Data.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(router, http.MethodGet, "/items/"+created.Data.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetByIDNotFound(t *testing.T) {
	router := setupRouter(&fakeStore{})

	rec := doRequest(router, http.MethodGet, "/items/"+uuid.NewString(), nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "Data tidak ditemukan", body.Error)
}

func TestUnmatchedRoute(t *testing.T) {
	router := setupRouter(&fakeStore{})

	rec := doRequest(router, http.MethodGet, "/tidak-ada", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "Endpoint tidak ditemukan", body.Error)
}

func TestStoreErrorSurfacedAs500(t *testing.T) {
	router := setupRouter(&fakeStore{err: fmt.Errorf("koneksi database terputus")})

	rec := doRequest(router, http.MethodGet, "/items", nil)
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "koneksi database terputus", body.Error)
}
