package user

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/classifieds/model"
)

// ErrDuplicateEmail is returned when the unique email index rejects an insert.
var ErrDuplicateEmail = errors.New("duplicate email")

// ErrEmptyFilter is returned by Get when no filter field is set.
var ErrEmptyFilter = errors.New("empty user filter")

const mysqlDuplicateEntry = 1062

type SQL struct {
	conn *sqlx.DB
}

type UserRepository interface {
	Create(ctx context.Context, req *model.UserEntity) (*model.UserEntity, error)
	Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error)
	GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.UserEntity, error)
	UpdateProfile(ctx context.Context, data *model.UserEntity) error
	UpdatePassword(ctx context.Context, id uint64, passwordHash string) error
	UpdateImageTx(ctx context.Context, tx *sqlx.Tx, id uint64, imagePath string) error
	CountByImagePath(ctx context.Context, imagePath string) (int64, error)
}

func NewUserRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

const (
	insertUserQuery = `INSERT INTO users (email, password_hash, first_name, last_name, phone, role, created_at) VALUES (?, ?, ?, ?, ?, ?, NOW())`
	getUserBase     = `SELECT id, email, password_hash, first_name, last_name, phone, image_path, role, created_at, updated_at FROM users WHERE true`
)

func (s *SQL) Create(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertUserQuery, data.Email, data.PasswordHash, data.FirstName, data.LastName, data.Phone, data.Role)
	if err != nil {
		var myErr *mysql.MySQLError
		if errors.As(err, &myErr) && myErr.Number == mysqlDuplicateEntry {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	data.ID = uint64(lastID)
	return data, nil
}

// Get returns nil, nil when no user matches.
func (s *SQL) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	if filter == nil || (filter.ID == 0 && filter.Email == "") {
		return nil, ErrEmptyFilter
	}
	query := getUserBase
	args := make([]any, 0, 2)

	if filter.ID != 0 {
		query += " AND id = ?"
		args = append(args, filter.ID)
	}
	if filter.Email != "" {
		query += " AND email = ?"
		args = append(args, filter.Email)
	}

	var entity model.UserEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.UserEntity, error) {
	var entity model.UserEntity
	if err := tx.QueryRowxContext(ctx, getUserBase+" AND id = ? FOR UPDATE", id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) UpdateProfile(ctx context.Context, data *model.UserEntity) error {
	_, err := s.conn.ExecContext(ctx, "UPDATE users SET first_name = ?, last_name = ?, phone = ?, updated_at = NOW() WHERE id = ?", data.FirstName, data.LastName, data.Phone, data.ID)
	return err
}

func (s *SQL) UpdatePassword(ctx context.Context, id uint64, passwordHash string) error {
	_, err := s.conn.ExecContext(ctx, "UPDATE users SET password_hash = ?, updated_at = NOW() WHERE id = ?", passwordHash, id)
	return err
}

func (s *SQL) UpdateImageTx(ctx context.Context, tx *sqlx.Tx, id uint64, imagePath string) error {
	_, err := tx.ExecContext(ctx, "UPDATE users SET image_path = ?, updated_at = NOW() WHERE id = ?", imagePath, id)
	return err
}

func (s *SQL) CountByImagePath(ctx context.Context, imagePath string) (int64, error) {
	var total int64
	if err := s.conn.GetContext(ctx, &total, "SELECT COUNT(*) FROM users WHERE image_path = ?", imagePath); err != nil {
		return 0, err
	}
	return total, nil
}
