package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/dealbridge/backend/internal/domain"
)

// DealServiceConfig holds configuration for the deal service
type DealServiceConfig struct {
	CacheTTL           time.Duration
	MinMatchPercentage int
}

// DealService owns deal ingestion and the seller-facing buyer-match flow.
// The matching math itself lives in MatchingService; this layer fetches the
// inputs, enforces ownership, and caches the ranked list per deal.
type DealService struct {
	deals    domain.DealRepository
	profiles domain.CompanyProfileRepository
	buyers   domain.BuyerRepository
	cache    domain.CacheRepository
	matcher  *MatchingService
	cacheTTL time.Duration
	log      *zap.Logger
}

// NewDealService creates a new deal service with dependencies
func NewDealService(
	deals domain.DealRepository,
	profiles domain.CompanyProfileRepository,
	buyers domain.BuyerRepository,
	cache domain.CacheRepository,
	config DealServiceConfig,
	log *zap.Logger,
) *DealService {
	matcher := NewMatchingService(MatchConfig{
		MinMatchPercentage: config.MinMatchPercentage,
	})

	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 2 * time.Minute
	}

	return &DealService{
		deals:    deals,
		profiles: profiles,
		buyers:   buyers,
		cache:    cache,
		matcher:  matcher,
		cacheTTL: cacheTTL,
		log:      log,
	}
}

// CreateDeal validates and persists a new deal listing.
func (s *DealService) CreateDeal(ctx context.Context, deal *domain.Deal) error {
	if deal == nil {
		return domain.ErrInvalidRequest
	}
	if deal.Title == "" {
		return fmt.Errorf("%w: title is required", domain.ErrInvalidRequest)
	}
	if deal.SellerID == "" {
		return fmt.Errorf("%w: seller is required", domain.ErrInvalidRequest)
	}
	if deal.YearsInBusiness < 0 {
		return fmt.Errorf("%w: yearsInBusiness cannot be negative", domain.ErrInvalidRequest)
	}
	switch deal.RewardLevel {
	case domain.RewardLevelSeed, domain.RewardLevelBloom, domain.RewardLevelFruit:
	default:
		return fmt.Errorf("%w: rewardLevel must be Seed, Bloom or Fruit", domain.ErrInvalidRequest)
	}
	if deal.Status == "" {
		deal.Status = domain.DealStatusDraft
	}

	if err := s.deals.Create(ctx, deal); err != nil {
		return fmt.Errorf("creating deal: %w", err)
	}

	s.log.Info("deal created",
		zap.String("dealId", deal.ID),
		zap.String("sellerId", deal.SellerID),
		zap.String("industry", deal.IndustrySector),
		zap.String("geography", deal.GeographySelection))

	return nil
}

// GetDeal fetches one deal by id.
func (s *DealService) GetDeal(ctx context.Context, dealID string) (*domain.Deal, error) {
	if dealID == "" {
		return nil, domain.ErrInvalidRequest
	}
	return s.deals.GetByID(ctx, dealID)
}

// ListDealsBySeller returns every deal the seller has listed.
func (s *DealService) ListDealsBySeller(ctx context.Context, sellerID string) ([]domain.Deal, error) {
	if sellerID == "" {
		return nil, domain.ErrInvalidRequest
	}
	return s.deals.ListBySeller(ctx, sellerID)
}

// CreateProfile validates and persists a buyer company profile. The buyer
// reference must resolve, since match results carry the buyer's identity.
func (s *DealService) CreateProfile(ctx context.Context, profile *domain.CompanyProfile) error {
	if profile == nil {
		return domain.ErrInvalidRequest
	}
	if profile.CompanyName == "" {
		return fmt.Errorf("%w: companyName is required", domain.ErrInvalidRequest)
	}
	if profile.BuyerID == "" {
		return fmt.Errorf("%w: buyer is required", domain.ErrInvalidRequest)
	}
	if _, err := s.buyers.GetByID(ctx, profile.BuyerID); err != nil {
		return err
	}

	if err := s.profiles.Create(ctx, profile); err != nil {
		return fmt.Errorf("creating company profile: %w", err)
	}

	s.log.Info("company profile created",
		zap.String("profileId", profile.ID),
		zap.String("buyerId", profile.BuyerID),
		zap.Strings("countries", profile.TargetCriteria.Countries))

	return nil
}

// GetProfile fetches one company profile by id.
func (s *DealService) GetProfile(ctx context.Context, profileID string) (*domain.CompanyProfile, error) {
	if profileID == "" {
		return nil, domain.ErrInvalidRequest
	}
	return s.profiles.GetByID(ctx, profileID)
}

// CreateBuyer persists a buyer account record.
func (s *DealService) CreateBuyer(ctx context.Context, buyer *domain.Buyer) error {
	if buyer == nil {
		return domain.ErrInvalidRequest
	}
	if buyer.Email == "" {
		return fmt.Errorf("%w: email is required", domain.ErrInvalidRequest)
	}
	return s.buyers.Create(ctx, buyer)
}

// FindMatchingBuyers returns the ranked buyer-match list for a deal.
// Flow: fetch deal -> ownership check -> try cache -> list candidates ->
// score -> cache -> return. Only the deal's owning seller may request
// matches. An empty list is a valid, successful result.
func (s *DealService) FindMatchingBuyers(ctx context.Context, dealID, sellerID string) ([]domain.MatchResult, error) {
	deal, err := s.deals.GetByID(ctx, dealID)
	if err != nil {
		return nil, err
	}
	if deal.SellerID != sellerID {
		return nil, domain.ErrNotDealOwner
	}

	cacheKey := matchCacheKey(dealID)
	if cached, err := s.matchesFromCache(ctx, cacheKey); err == nil {
		s.log.Debug("match cache hit", zap.String("dealId", dealID), zap.Int("count", len(cached)))
		return cached, nil
	}

	// The store drops hard opt-outs up front; the matching service applies
	// the full gate again, so the results hold even for an unfiltered batch.
	filter := domain.CandidateFilter{
		ExcludeMarketedOptOuts: deal.RewardLevel == domain.RewardLevelSeed,
	}
	profiles, err := s.profiles.ListCandidates(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing candidate profiles: %w", err)
	}

	buyers, err := s.resolveBuyers(ctx, profiles)
	if err != nil {
		return nil, err
	}

	results, err := s.matcher.MatchBuyers(ctx, deal, profiles, buyers)
	if err != nil {
		return nil, err
	}

	s.log.Info("buyer matching completed",
		zap.String("dealId", dealID),
		zap.Int("candidates", len(profiles)),
		zap.Int("matches", len(results)))

	if err := s.cache.Set(ctx, cacheKey, results, s.cacheTTL); err != nil {
		s.log.Warn("failed to cache match results", zap.String("dealId", dealID), zap.Error(err))
	}

	return results, nil
}

// resolveBuyers loads the buyer record behind each candidate profile.
// Profiles whose buyer no longer resolves are left out of the map and
// silently skipped during scoring.
func (s *DealService) resolveBuyers(ctx context.Context, profiles []domain.CompanyProfile) (map[string]domain.Buyer, error) {
	buyers := make(map[string]domain.Buyer, len(profiles))
	for i := range profiles {
		id := profiles[i].BuyerID
		if _, done := buyers[id]; done {
			continue
		}
		buyer, err := s.buyers.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrBuyerNotFound) {
				s.log.Warn("candidate profile references missing buyer",
					zap.String("profileId", profiles[i].ID), zap.String("buyerId", id))
				continue
			}
			return nil, fmt.Errorf("resolving buyer %s: %w", id, err)
		}
		buyers[id] = *buyer
	}
	return buyers, nil
}

// matchesFromCache rebuilds a typed result list from the cache's generic
// JSON representation.
func (s *DealService) matchesFromCache(ctx context.Context, key string) ([]domain.MatchResult, error) {
	cached, err := s.cache.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(cached)
	if err != nil {
		return nil, err
	}

	var results []domain.MatchResult
	if err := json.Unmarshal(raw, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func matchCacheKey(dealID string) string {
	return "matches:" + dealID
}
