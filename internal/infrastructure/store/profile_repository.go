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

// CompanyProfileRepository handles buyer company-profile persistence.
type CompanyProfileRepository struct {
	db  *sql.DB
	log *zap.Logger
}

// NewCompanyProfileRepository creates a new company profile repository
func NewCompanyProfileRepository(s *Store, log *zap.Logger) *CompanyProfileRepository {
	return &CompanyProfileRepository{db: s.db, log: log.Named("profile_repo")}
}

// Create inserts a new company profile, assigning an id and timestamps.
func (r *CompanyProfileRepository) Create(ctx context.Context, profile *domain.CompanyProfile) error {
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	profile.CreatedAt = now
	profile.UpdatedAt = now
	if profile.SelectedCurrency == "" {
		profile.SelectedCurrency = "USD"
	}

	criteria, err := json.Marshal(profile.TargetCriteria)
	if err != nil {
		return fmt.Errorf("failed to encode target criteria: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO company_profiles (
			id, company_name, website, selected_currency, company_type,
			capital_entity, deals_completed_last5y, average_deal_size,
			stop_sending_deals, do_not_send_marketed_deals,
			allow_buyer_like_deals, target_criteria, buyer_id,
			created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		profile.ID, profile.CompanyName, profile.Website,
		profile.SelectedCurrency, profile.CompanyType, profile.CapitalEntity,
		nullableInt(profile.DealsCompletedLast5Years),
		nullableFloat(profile.AverageDealSize),
		boolToInt(profile.Preferences.StopSendingDeals),
		boolToInt(profile.Preferences.DoNotSendMarketedDeals),
		boolToInt(profile.Preferences.AllowBuyerLikeDeals),
		string(criteria), profile.BuyerID, formatTime(now), formatTime(now),
	)
	if err != nil {
		return fmt.Errorf("failed to insert company profile: %w", err)
	}

	r.log.Debug("company profile inserted", zap.String("id", profile.ID))
	return nil
}

// GetByID returns one profile or domain.ErrProfileNotFound.
func (r *CompanyProfileRepository) GetByID(ctx context.Context, id string) (*domain.CompanyProfile, error) {
	row := r.db.QueryRowContext(ctx, selectProfileColumns+` WHERE id = ?`, id)

	profile, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to query company profile: %w", err)
	}
	return profile, nil
}

// ListCandidates returns the candidate batch for matching. Hard opt-outs
// are always excluded at the query level; the marketed-deals opt-out is
// excluded when the filter asks for it. This is a performance pre-filter
// only: the matching service re-applies the full eligibility gate.
func (r *CompanyProfileRepository) ListCandidates(ctx context.Context, filter domain.CandidateFilter) ([]domain.CompanyProfile, error) {
	query := selectProfileColumns + ` WHERE stop_sending_deals = 0`
	if filter.ExcludeMarketedOptOuts {
		query += ` AND do_not_send_marketed_deals = 0`
	}
	query += ` ORDER BY created_at ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query candidate profiles: %w", err)
	}
	defer rows.Close()

	var profiles []domain.CompanyProfile
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan company profile: %w", err)
		}
		profiles = append(profiles, *profile)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating company profiles: %w", err)
	}

	return profiles, nil
}

const selectProfileColumns = `
	SELECT id, company_name, website, selected_currency, company_type,
		capital_entity, deals_completed_last5y, average_deal_size,
		stop_sending_deals, do_not_send_marketed_deals,
		allow_buyer_like_deals, target_criteria, buyer_id,
		created_at, updated_at
	FROM company_profiles`

func scanProfile(row rowScanner) (*domain.CompanyProfile, error) {
	var (
		profile         domain.CompanyProfile
		dealsCompleted  sql.NullInt64
		averageDealSize sql.NullFloat64
		stopSending     int
		noMarketed      int
		allowLikes      int
		criteriaJSON    string
		createdAt       string
		updatedAt       string
	)

	err := row.Scan(
		&profile.ID, &profile.CompanyName, &profile.Website,
		&profile.SelectedCurrency, &profile.CompanyType,
		&profile.CapitalEntity, &dealsCompleted, &averageDealSize,
		&stopSending, &noMarketed, &allowLikes, &criteriaJSON,
		&profile.BuyerID, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	profile.DealsCompletedLast5Years = intPtr(dealsCompleted)
	profile.AverageDealSize = floatPtr(averageDealSize)
	profile.Preferences = domain.BuyerPreferences{
		StopSendingDeals:       stopSending != 0,
		DoNotSendMarketedDeals: noMarketed != 0,
		AllowBuyerLikeDeals:    allowLikes != 0,
	}

	// A malformed criteria document becomes the empty zero value; the
	// eligibility gate then naturally excludes the profile from matching.
	if err := json.Unmarshal([]byte(criteriaJSON), &profile.TargetCriteria); err != nil {
		profile.TargetCriteria = domain.TargetCriteria{}
	}

	profile.CreatedAt = parseTime(createdAt)
	profile.UpdatedAt = parseTime(updatedAt)

	return &profile, nil
}
