package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dealbridge/backend/internal/domain"
)

// BuyerRepository handles buyer account persistence.
type BuyerRepository struct {
	db  *sql.DB
	log *zap.Logger
}

// NewBuyerRepository creates a new buyer repository
func NewBuyerRepository(s *Store, log *zap.Logger) *BuyerRepository {
	return &BuyerRepository{db: s.db, log: log.Named("buyer_repo")}
}

// Create inserts a new buyer, assigning an id and creation timestamp.
func (r *BuyerRepository) Create(ctx context.Context, buyer *domain.Buyer) error {
	if buyer.ID == "" {
		buyer.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	buyer.CreatedAt = now

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO buyers (id, full_name, email, company_name, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		buyer.ID, buyer.FullName, buyer.Email, buyer.CompanyName, formatTime(now),
	)
	if err != nil {
		return fmt.Errorf("failed to insert buyer: %w", err)
	}

	r.log.Debug("buyer inserted", zap.String("id", buyer.ID))
	return nil
}

// GetByID returns one buyer or domain.ErrBuyerNotFound.
func (r *BuyerRepository) GetByID(ctx context.Context, id string) (*domain.Buyer, error) {
	var (
		buyer     domain.Buyer
		createdAt string
	)

	err := r.db.QueryRowContext(ctx, `
		SELECT id, full_name, email, company_name, created_at
		FROM buyers WHERE id = ?`, id).
		Scan(&buyer.ID, &buyer.FullName, &buyer.Email, &buyer.CompanyName, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBuyerNotFound
		}
		return nil, fmt.Errorf("failed to query buyer: %w", err)
	}

	buyer.CreatedAt = parseTime(createdAt)
	return &buyer, nil
}
