package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dealbridge/backend/internal/domain"
)

// DealRepository handles deal persistence on the shared SQLite store.
type DealRepository struct {
	db  *sql.DB
	log *zap.Logger
}

// NewDealRepository creates a new deal repository
func NewDealRepository(s *Store, log *zap.Logger) *DealRepository {
	return &DealRepository{db: s.db, log: log.Named("deal_repo")}
}

// Create inserts a new deal, assigning an id and timestamps.
func (r *DealRepository) Create(ctx context.Context, deal *domain.Deal) error {
	if deal.ID == "" {
		deal.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	deal.CreatedAt = now
	deal.UpdatedAt = now

	financials, err := json.Marshal(deal.FinancialDetails)
	if err != nil {
		return fmt.Errorf("failed to encode financial details: %w", err)
	}
	businessModel, err := json.Marshal(deal.BusinessModel)
	if err != nil {
		return fmt.Errorf("failed to encode business model: %w", err)
	}
	management, err := json.Marshal(deal.ManagementPreferences)
	if err != nil {
		return fmt.Errorf("failed to encode management preferences: %w", err)
	}
	tags, err := json.Marshal(deal.Tags)
	if err != nil {
		return fmt.Errorf("failed to encode tags: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO deals (
			id, title, company_description, deal_type, status, reward_level,
			industry_sector, geography_selection, years_in_business,
			employee_count, deals_completed_last5y, seller_id,
			financial_details, business_model, management_preferences,
			stake_percentage, tags, is_public, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		deal.ID, deal.Title, deal.CompanyDescription, string(deal.DealType),
		string(deal.Status), string(deal.RewardLevel), deal.IndustrySector,
		deal.GeographySelection, deal.YearsInBusiness,
		nullableInt(deal.EmployeeCount), nullableInt(deal.DealsCompletedLast5Years),
		deal.SellerID, string(financials), string(businessModel),
		string(management), nullableFloat(deal.StakePercentage), string(tags),
		boolToInt(deal.IsPublic), formatTime(now), formatTime(now),
	)
	if err != nil {
		return fmt.Errorf("failed to insert deal: %w", err)
	}

	r.log.Debug("deal inserted", zap.String("id", deal.ID))
	return nil
}

// GetByID returns one deal or domain.ErrDealNotFound.
func (r *DealRepository) GetByID(ctx context.Context, id string) (*domain.Deal, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, title, company_description, deal_type, status, reward_level,
			industry_sector, geography_selection, years_in_business,
			employee_count, deals_completed_last5y, seller_id,
			financial_details, business_model, management_preferences,
			stake_percentage, tags, is_public, created_at, updated_at
		FROM deals WHERE id = ?`, id)

	deal, err := scanDeal(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDealNotFound
		}
		return nil, fmt.Errorf("failed to query deal: %w", err)
	}
	return deal, nil
}

// ListBySeller returns all deals belonging to one seller, newest first.
func (r *DealRepository) ListBySeller(ctx context.Context, sellerID string) ([]domain.Deal, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, company_description, deal_type, status, reward_level,
			industry_sector, geography_selection, years_in_business,
			employee_count, deals_completed_last5y, seller_id,
			financial_details, business_model, management_preferences,
			stake_percentage, tags, is_public, created_at, updated_at
		FROM deals WHERE seller_id = ? ORDER BY created_at DESC`, sellerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query deals: %w", err)
	}
	defer rows.Close()

	var deals []domain.Deal
	for rows.Next() {
		deal, err := scanDeal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan deal: %w", err)
		}
		deals = append(deals, *deal)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating deals: %w", err)
	}

	return deals, nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanDeal(row rowScanner) (*domain.Deal, error) {
	var (
		deal             domain.Deal
		dealType         string
		status           string
		rewardLevel      string
		employeeCount    sql.NullInt64
		dealsCompleted   sql.NullInt64
		financialsJSON   string
		businessJSON     string
		managementJSON   string
		stakePercentage  sql.NullFloat64
		tagsJSON         string
		isPublic         int
		createdAt        string
		updatedAt        string
	)

	err := row.Scan(
		&deal.ID, &deal.Title, &deal.CompanyDescription, &dealType, &status,
		&rewardLevel, &deal.IndustrySector, &deal.GeographySelection,
		&deal.YearsInBusiness, &employeeCount, &dealsCompleted, &deal.SellerID,
		&financialsJSON, &businessJSON, &managementJSON, &stakePercentage,
		&tagsJSON, &isPublic, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	deal.DealType = domain.DealType(dealType)
	deal.Status = domain.DealStatus(status)
	deal.RewardLevel = domain.RewardLevel(rewardLevel)
	deal.EmployeeCount = intPtr(employeeCount)
	deal.DealsCompletedLast5Years = intPtr(dealsCompleted)
	deal.StakePercentage = floatPtr(stakePercentage)
	deal.IsPublic = isPublic != 0

	// Malformed JSON documents decode to zero values rather than failing
	// the read; scoring treats missing sub-objects as empty defaults.
	if err := json.Unmarshal([]byte(financialsJSON), &deal.FinancialDetails); err != nil {
		deal.FinancialDetails = domain.FinancialDetails{}
	}
	if err := json.Unmarshal([]byte(businessJSON), &deal.BusinessModel); err != nil {
		deal.BusinessModel = domain.BusinessModel{}
	}
	if err := json.Unmarshal([]byte(managementJSON), &deal.ManagementPreferences); err != nil {
		deal.ManagementPreferences = domain.ManagementPreferences{}
	}
	if err := json.Unmarshal([]byte(tagsJSON), &deal.Tags); err != nil {
		deal.Tags = nil
	}

	deal.CreatedAt = parseTime(createdAt)
	deal.UpdatedAt = parseTime(updatedAt)

	return &deal, nil
}
