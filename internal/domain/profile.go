package domain

import "time"

// Business model labels a buyer can list under preferred business models.
// These are the exact strings the deal's boolean flags are matched against.
const (
	BusinessModelRecurringRevenue = "Recurring Revenue"
	BusinessModelProjectBased     = "Project-Based"
	BusinessModelAssetLight       = "Asset Light"
	BusinessModelAssetHeavy       = "Asset Heavy"
)

// ManagementOwnersDeparting is the management-preference label matched
// against a deal whose owner is retiring/divesting.
const ManagementOwnersDeparting = "Owner(s) Departing"

// TargetCriteria is a buyer's stated acquisition filter. Nil numeric fields
// mean "no preference": an absent criterion defaults to satisfied during
// scoring, never to a penalty.
type TargetCriteria struct {
	Countries                []string `json:"countries"`
	IndustrySectors          []string `json:"industrySectors"`
	RevenueMin               *float64 `json:"revenueMin,omitempty"`
	RevenueMax               *float64 `json:"revenueMax,omitempty"`
	EBITDAMin                *float64 `json:"ebitdaMin,omitempty"`
	EBITDAMax                *float64 `json:"ebitdaMax,omitempty"`
	TransactionSizeMin       *float64 `json:"transactionSizeMin,omitempty"`
	TransactionSizeMax       *float64 `json:"transactionSizeMax,omitempty"`
	RevenueGrowth            *float64 `json:"revenueGrowth,omitempty"`
	MinStakePercent          *float64 `json:"minStakePercent,omitempty"`
	MinYearsInBusiness       *int     `json:"minYearsInBusiness,omitempty"`
	DealsCompletedLast5Years *int     `json:"dealsCompletedLast5Years,omitempty"`
	PreferredBusinessModels  []string `json:"preferredBusinessModels"`
	ManagementTeamPreference []string `json:"managementTeamPreference"`
	Description              string   `json:"description,omitempty"`
}

// BuyerPreferences are a buyer's opt-out switches for deal flow.
type BuyerPreferences struct {
	// StopSendingDeals is a hard exclude: the profile never appears in
	// match results while set.
	StopSendingDeals bool `json:"stopSendingDeals"`
	// DoNotSendMarketedDeals excludes the profile only for Seed deals.
	DoNotSendMarketedDeals bool `json:"doNotSendMarketedDeals"`
	AllowBuyerLikeDeals    bool `json:"allowBuyerLikeDeals"`
}

// CompanyProfile is a buyer's company record with its target criteria and
// opt-out preferences. One profile references exactly one buyer.
type CompanyProfile struct {
	ID                       string           `json:"_id"`
	CompanyName              string           `json:"companyName"`
	Website                  string           `json:"website,omitempty"`
	SelectedCurrency         string           `json:"selectedCurrency,omitempty"`
	CompanyType              string           `json:"companyType,omitempty"`
	CapitalEntity            string           `json:"capitalEntity,omitempty"`
	DealsCompletedLast5Years *int             `json:"dealsCompletedLast5Years,omitempty"`
	AverageDealSize          *float64         `json:"averageDealSize,omitempty"`
	Preferences              BuyerPreferences `json:"preferences"`
	TargetCriteria           TargetCriteria   `json:"targetCriteria"`
	BuyerID                  string           `json:"buyer"`
	CreatedAt                time.Time        `json:"createdAt"`
	UpdatedAt                time.Time        `json:"updatedAt"`
}

// Buyer is the account behind one or more company profiles. Only identity
// fields are carried into match results; buyers play no part in scoring.
type Buyer struct {
	ID          string    `json:"_id"`
	FullName    string    `json:"fullName"`
	Email       string    `json:"email"`
	CompanyName string    `json:"companyName,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
