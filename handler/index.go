package handler

import (
	"encoding/json"
	"net/http"
)

func Handler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	response := map[string]interface{}{
		"message": "API Cuci Sepatu - Selamat Datang!",
		"endpoints": map[string]string{
			"GET /items":                "Dapatkan semua data sepatu",
			"GET /items?status=Selesai": "Filter sepatu berdasarkan status",
			"GET /items/:id":            "Dapatkan detail sepatu berdasarkan ID",
			"POST /items":               "Tambah data sepatu baru",
			"PUT /items/:id":            "Update data sepatu",
			"DELETE /items/:id":         "Hapus data sepatu",
		},
	}

	json.NewEncoder(w).Encode(response)
}
