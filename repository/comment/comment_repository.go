package comment

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/classifieds/model"
)

type SQL struct {
	conn *sqlx.DB
}

type CommentRepository interface {
	ListByAd(ctx context.Context, adID uint64) ([]model.CommentDetail, error)
	Get(ctx context.Context, adID, commentID uint64) (*model.CommentDetail, error)
	Create(ctx context.Context, data *model.CommentEntity) (*model.CommentEntity, error)
	UpdateText(ctx context.Context, id uint64, text string) error
	Delete(ctx context.Context, id uint64) error
	DeleteByAdTx(ctx context.Context, tx *sqlx.Tx, adID uint64) (int64, error)
}

func NewCommentRepository(conn *sqlx.DB) CommentRepository {
	return &SQL{conn: conn}
}

const commentDetailBase = `SELECT c.id, c.created_at, c.text, c.ad_id, c.user_id,
u.email AS author_email, u.first_name AS author_first_name, u.image_path AS author_image_path
FROM comments c
JOIN users u ON c.user_id = u.id`

// ListByAd orders comments by creation time, then id.
func (s *SQL) ListByAd(ctx context.Context, adID uint64) ([]model.CommentDetail, error) {
	items := make([]model.CommentDetail, 0)
	query := commentDetailBase + " WHERE c.ad_id = ? ORDER BY c.created_at, c.id"
	if err := s.conn.SelectContext(ctx, &items, query, adID); err != nil {
		return nil, err
	}
	return items, nil
}

// Get returns nil, nil when the comment does not exist under adID.
func (s *SQL) Get(ctx context.Context, adID, commentID uint64) (*model.CommentDetail, error) {
	var detail model.CommentDetail
	query := commentDetailBase + " WHERE c.id = ? AND c.ad_id = ?"
	if err := s.conn.QueryRowxContext(ctx, query, commentID, adID).StructScan(&detail); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &detail, nil
}

func (s *SQL) Create(ctx context.Context, data *model.CommentEntity) (*model.CommentEntity, error) {
	result, err := s.conn.ExecContext(ctx, "INSERT INTO comments (created_at, text, ad_id, user_id) VALUES (?, ?, ?, ?)", data.CreatedAt, data.Text, data.AdID, data.UserID)
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

func (s *SQL) UpdateText(ctx context.Context, id uint64, text string) error {
	_, err := s.conn.ExecContext(ctx, "UPDATE comments SET text = ? WHERE id = ?", text, id)
	return err
}

func (s *SQL) Delete(ctx context.Context, id uint64) error {
	_, err := s.conn.ExecContext(ctx, "DELETE FROM comments WHERE id = ?", id)
	return err
}

func (s *SQL) DeleteByAdTx(ctx context.Context, tx *sqlx.Tx, adID uint64) (int64, error) {
	res, err := tx.ExecContext(ctx, "DELETE FROM comments WHERE ad_id = ?", adID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
