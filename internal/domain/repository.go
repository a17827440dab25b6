package domain

import (
	"context"
	"time"
)

// CandidateFilter narrows the profile set fetched for matching. The store
// applies it as a query-level optimization; the matching service re-applies
// the full eligibility gate regardless, so correctness never depends on it.
type CandidateFilter struct {
	// ExcludeMarketedOptOuts drops profiles with doNotSendMarketedDeals set.
	// Used when the deal's reward level is Seed.
	ExcludeMarketedOptOuts bool
}

// DealRepository defines persistence operations for deals.
type DealRepository interface {
	Create(ctx context.Context, deal *Deal) error
	GetByID(ctx context.Context, id string) (*Deal, error)
	ListBySeller(ctx context.Context, sellerID string) ([]Deal, error)
}

// CompanyProfileRepository defines persistence operations for company
// profiles. ListCandidates always excludes profiles with stopSendingDeals.
type CompanyProfileRepository interface {
	Create(ctx context.Context, profile *CompanyProfile) error
	GetByID(ctx context.Context, id string) (*CompanyProfile, error)
	ListCandidates(ctx context.Context, filter CandidateFilter) ([]CompanyProfile, error)
}

// BuyerRepository defines persistence operations for buyers.
type BuyerRepository interface {
	Create(ctx context.Context, buyer *Buyer) error
	GetByID(ctx context.Context, id string) (*Buyer, error)
}

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
