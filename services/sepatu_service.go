package services

import (
	"errors"
	"time"

	"cuci-sepatu/models"
)

// SepatuStore is the record-store surface the service depends on. The
// Postgres repository implements it in production; tests substitute an
// in-memory fake.
type SepatuStore interface {
	InsertOne(s *models.Sepatu) error
	SelectAll(status string) ([]models.Sepatu, error)
	SelectOneByID(id string) (*models.Sepatu, error)
	UpdateByID(id string, patch map[string]interface{}) (*models.Sepatu, error)
	DeleteByID(id string) (*models.Sepatu, error)
}

// ErrInvalidTanggal rejects a tanggal_masuk value that parses as
// neither RFC 3339 nor a plain date.
var ErrInvalidTanggal = errors.New("format tanggal_masuk tidak valid")

type SepatuService struct {
	store SepatuStore
}

func NewSepatuService(store SepatuStore) *SepatuService {
	return &SepatuService{store: store}
}

func (s *SepatuService) GetAllSepatu(status string) ([]models.Sepatu, error) {
	return s.store.SelectAll(status)
}

func (s *SepatuService) GetSepatuByID(id string) (*models.Sepatu, error) {
	return s.store.SelectOneByID(id)
}

func (s *SepatuService) CreateSepatu(req models.CreateSepatuRequest) (*models.Sepatu, error) {
	tanggalMasuk := time.Now().UTC()
	if req.TanggalMasuk != "" {
		parsed, err := parseTanggal(req.TanggalMasuk)
		if err != nil {
			return nil, err
		}
		tanggalMasuk = parsed
	}

	sepatu := &models.Sepatu{
		NamaPelanggan: req.NamaPelanggan,
		JenisSepatu:   req.JenisSepatu,
		Layanan:       req.Layanan,
		Status:        req.Status,
		Harga:         req.Harga,
		TanggalMasuk:  tanggalMasuk,
	}

	if err := s.store.InsertOne(sepatu); err != nil {
		return nil, err
	}
	return sepatu, nil
}

func (s *SepatuService) UpdateSepatu(id string, req models.UpdateSepatuRequest) (*models.Sepatu, error) {
	patch := map[string]interface{}{}

	// Only fields carrying a truthy value enter the patch; zero values
	// mean "leave unchanged".
	if req.NamaPelanggan != "" {
		patch["nama_pelanggan"] = req.NamaPelanggan
	}
	if req.JenisSepatu != "" {
		patch["jenis_sepatu"] = req.JenisSepatu
	}
	if req.Layanan != "" {
		patch["layanan"] = req.Layanan
	}
	if req.Status != "" {
		patch["status"] = req.Status
	}
	if req.Harga != 0 {
		patch["harga"] = req.Harga
	}
	if req.TanggalMasuk != "" {
		parsed, err := parseTanggal(req.TanggalMasuk)
		if err != nil {
			return nil, err
		}
		patch["tanggal_masuk"] = parsed
	}

	return s.store.UpdateByID(id, patch)
}

func (s *SepatuService) DeleteSepatu(id string) (*models.Sepatu, error) {
	return s.store.DeleteByID(id)
}

func parseTanggal(value string) (time.Time, error) {
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed, nil
	}
	if parsed, err := time.Parse("2006-01-02", value); err == nil {
		return parsed, nil
	}
	return time.Time{}, ErrInvalidTanggal
}
