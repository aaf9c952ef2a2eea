package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cuci-sepatu/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when an operation matches zero rows. Callers
// use it to distinguish a missing record from a query failure.
var ErrNotFound = errors.New("data tidak ditemukan")

const sepatuColumns = "id, nama_pelanggan, jenis_sepatu, layanan, status, harga, tanggal_masuk, created_at"

// patchColumns fixes the order in which patch entries are applied, so
// the generated SET list is deterministic.
var patchColumns = []string{"nama_pelanggan", "jenis_sepatu", "layanan", "status", "harga", "tanggal_masuk"}

type SepatuRepository struct {
	db *pgxpool.Pool
}

func NewSepatuRepository(db *pgxpool.Pool) *SepatuRepository {
	return &SepatuRepository{db: db}
}

func (r *SepatuRepository) InsertOne(s *models.Sepatu) error {
	s.ID = uuid.NewString()

	query := `
		INSERT INTO sepatu (id, nama_pelanggan, jenis_sepatu, layanan, status, harga, tanggal_masuk)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`
	return r.db.QueryRow(context.Background(), query,
		s.ID, s.NamaPelanggan, s.JenisSepatu, s.Layanan, s.Status, s.Harga, s.TanggalMasuk,
	).Scan(&s.CreatedAt)
}

func (r *SepatuRepository) SelectAll(status string) ([]models.Sepatu, error) {
	query := fmt.Sprintf("SELECT %s FROM sepatu", sepatuColumns)
	args := []interface{}{}

	if status != "" {
		query += " WHERE status = $1"
		args = append(args, status)
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.Query(context.Background(), query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.Sepatu{}
	for rows.Next() {
		var s models.Sepatu
		if err := scanSepatu(rows, &s); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, rows.Err()
}

func (r *SepatuRepository) SelectOneByID(id string) (*models.Sepatu, error) {
	if _, err := uuid.Parse(id); err != nil {
		// Malformed ids cannot match any row.
		return nil, ErrNotFound
	}

	query := fmt.Sprintf("SELECT %s FROM sepatu WHERE id = $1", sepatuColumns)

	var s models.Sepatu
	err := scanSepatu(r.db.QueryRow(context.Background(), query, id), &s)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SepatuRepository) UpdateByID(id string, patch map[string]interface{}) (*models.Sepatu, error) {
	if len(patch) == 0 {
		return r.SelectOneByID(id)
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}

	setClauses := []string{}
	args := []interface{}{}
	argIndex := 1

	for _, col := range patchColumns {
		if value, ok := patch[col]; ok {
			setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, argIndex))
			args = append(args, value)
			argIndex++
		}
	}

	query := fmt.Sprintf(
		"UPDATE sepatu SET %s WHERE id = $%d RETURNING %s",
		strings.Join(setClauses, ", "), argIndex, sepatuColumns,
	)
	args = append(args, id)

	var s models.Sepatu
	err := scanSepatu(r.db.QueryRow(context.Background(), query, args...), &s)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SepatuRepository) DeleteByID(id string) (*models.Sepatu, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}

	query := fmt.Sprintf("DELETE FROM sepatu WHERE id = $1 RETURNING %s", sepatuColumns)

	var s models.Sepatu
	err := scanSepatu(r.db.QueryRow(context.Background(), query, id), &s)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func scanSepatu(row pgx.Row, s *models.Sepatu) error {
	return row.Scan(
		&s.ID, &s.NamaPelanggan, &s.JenisSepatu, &s.Layanan,
		&s.Status, &s.Harga, &s.TanggalMasuk, &s.CreatedAt,
	)
}
