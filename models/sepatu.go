package models

import "time"

type Sepatu struct {
	ID            string    `json:"id"`
	NamaPelanggan string    `json:"nama_pelanggan"`
	JenisSepatu   string    `json:"jenis_sepatu"`
	Layanan       string    `json:"layanan"`
	Status        string    `json:"status"`
	Harga         float64   `json:"harga"`
	TanggalMasuk  time.Time `json:"tanggal_masuk"`
	CreatedAt     time.Time `json:"created_at"`
}

type CreateSepatuRequest struct {
	NamaPelanggan string  `json:"nama_pelanggan" validate:"required"`
	JenisSepatu   string  `json:"jenis_sepatu" validate:"required"`
	Layanan       string  `json:"layanan" validate:"required"`
	Status        string  `json:"status" validate:"required"`
	Harga         float64 `json:"harga" validate:"required"`
	TanggalMasuk  string  `json:"tanggal_masuk"`
}

type UpdateSepatuRequest struct {
	NamaPelanggan string  `json:"nama_pelanggan"`
	JenisSepatu   string  `json:"jenis_sepatu"`
	Layanan       string  `json:"layanan"`
	Status        string  `json:"status"`
	Harga         float64 `json:"harga"`
	TanggalMasuk  string  `json:"tanggal_masuk"`
}

// RequiredFields lists the mandatory create fields, in the order they
// are reported back on validation failure.
var RequiredFields = []string{"nama_pelanggan", "jenis_sepatu", "layanan", "status", "harga"}
