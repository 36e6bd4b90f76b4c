package ad

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/classifieds/model"
)

type SQL struct {
	conn *sqlx.DB
}

type AdRepository interface {
	List(ctx context.Context, filter *model.AdFilter) ([]model.AdEntity, error)
	GetByID(ctx context.Context, id uint64) (*model.AdDetail, error)
	GetByIDTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.AdDetail, error)
	Create(ctx context.Context, data *model.AdEntity) (*model.AdEntity, error)
	Update(ctx context.Context, data *model.AdEntity) error
	UpdateImageTx(ctx context.Context, tx *sqlx.Tx, id uint64, imagePath string) error
	DeleteTx(ctx context.Context, tx *sqlx.Tx, id uint64) error
	CountByImagePath(ctx context.Context, imagePath string) (int64, error)
}

func NewAdRepository(conn *sqlx.DB) AdRepository {
	return &SQL{conn: conn}
}

const (
	listAdsBase = `SELECT id, title, description, price, image_path, user_id FROM ads WHERE true`

	getAdDetail = `SELECT a.id, a.title, a.description, a.price, a.image_path, a.user_id,
u.email AS author_email, u.first_name AS author_first_name, u.last_name AS author_last_name, u.phone AS author_phone
FROM ads a
JOIN users u ON a.user_id = u.id
WHERE a.id = ?`

	insertAdQuery = `INSERT INTO ads (title, description, price, image_path, user_id) VALUES (?, ?, ?, ?, ?)`
)

// List orders ads by id ascending.
func (s *SQL) List(ctx context.Context, filter *model.AdFilter) ([]model.AdEntity, error) {
	query := listAdsBase
	args := make([]any, 0, 1)
	if filter != nil && filter.UserID != 0 {
		query += " AND user_id = ?"
		args = append(args, filter.UserID)
	}
	query += " ORDER BY id"

	items := make([]model.AdEntity, 0)
	if err := s.conn.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

// GetByID returns nil, nil when the ad does not exist.
func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.AdDetail, error) {
	var detail model.AdDetail
	if err := s.conn.QueryRowxContext(ctx, getAdDetail, id).StructScan(&detail); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &detail, nil
}

// GetByIDTx locks the ad row until the transaction ends.
func (s *SQL) GetByIDTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.AdDetail, error) {
	var detail model.AdDetail
	if err := tx.QueryRowxContext(ctx, getAdDetail+" FOR UPDATE", id).StructScan(&detail); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &detail, nil
}

func (s *SQL) Create(ctx context.Context, data *model.AdEntity) (*model.AdEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertAdQuery, data.Title, data.Description, data.Price, data.ImagePath, data.UserID)
	if err != nil {
		return nil, err
	}
	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	data.ID = uint64(lastID)
	return data, nil
}

func (s *SQL) Update(ctx context.Context, data *model.AdEntity) error {
	_, err := s.conn.ExecContext(ctx, "UPDATE ads SET title = ?, description = ?, price = ? WHERE id = ?", data.Title, data.Description, data.Price, data.ID)
	return err
}

func (s *SQL) UpdateImageTx(ctx context.Context, tx *sqlx.Tx, id uint64, imagePath string) error {
	_, err := tx.ExecContext(ctx, "UPDATE ads SET image_path = ? WHERE id = ?", imagePath, id)
	return err
}

func (s *SQL) DeleteTx(ctx context.Context, tx *sqlx.Tx, id uint64) error {
	_, err := tx.ExecContext(ctx, "DELETE FROM ads WHERE id = ?", id)
	return err
}

func (s *SQL) CountByImagePath(ctx context.Context, imagePath string) (int64, error) {
	var total int64
	if err := s.conn.GetContext(ctx, &total, "SELECT COUNT(*) FROM ads WHERE image_path = ?", imagePath); err != nil {
		return 0, err
	}
	return total, nil
}
