package domain

import "time"

// DealStatus is the lifecycle state of a deal listing.
type DealStatus string

const (
	DealStatusDraft     DealStatus = "draft"
	DealStatusPending   DealStatus = "pending"
	DealStatusActive    DealStatus = "active"
	DealStatusCompleted DealStatus = "completed"
	DealStatusRejected  DealStatus = "rejected"
)

// DealType categorizes what kind of transaction the seller is offering.
type DealType string

const (
	DealTypeAcquisition DealType = "acquisition"
	DealTypeMerger      DealType = "merger"
	DealTypeInvestment  DealType = "investment"
	DealTypePartnership DealType = "partnership"
	DealTypeOther       DealType = "other"
)

// RewardLevel is the visibility tier of a deal. Seed deals are marketed more
// broadly, which triggers an extra buyer opt-out rule during matching.
type RewardLevel string

const (
	RewardLevelSeed  RewardLevel = "Seed"
	RewardLevelBloom RewardLevel = "Bloom"
	RewardLevelFruit RewardLevel = "Fruit"
)

// FinancialDetails holds the optional financial figures of a deal.
// Nil means the seller did not provide the figure; scoring treats missing
// amounts as 0 rather than erroring.
type FinancialDetails struct {
	TrailingRevenueCurrency string   `json:"trailingRevenueCurrency,omitempty"`
	TrailingRevenueAmount   *float64 `json:"trailingRevenueAmount,omitempty"`
	TrailingEBITDACurrency  string   `json:"trailingEBITDACurrency,omitempty"`
	TrailingEBITDAAmount    *float64 `json:"trailingEBITDAAmount,omitempty"`
	AvgRevenueGrowth        *float64 `json:"avgRevenueGrowth,omitempty"`
	NetIncome               *float64 `json:"netIncome,omitempty"`
	AskingPrice             *float64 `json:"askingPrice,omitempty"`
	FinalSalePrice          *float64 `json:"finalSalePrice,omitempty"`
}

// BusinessModel flags describe how the listed company earns its revenue.
type BusinessModel struct {
	RecurringRevenue bool `json:"recurringRevenue"`
	ProjectBased     bool `json:"projectBased"`
	AssetLight       bool `json:"assetLight"`
	AssetHeavy       bool `json:"assetHeavy"`
}

// ManagementPreferences describes what happens to management post-close.
type ManagementPreferences struct {
	RetiringDivesting bool `json:"retiringDivesting"`
	StaffStay         bool `json:"staffStay"`
}

// Deal is a listing created by a seller describing a company for
// acquisition or investment.
type Deal struct {
	ID                       string                `json:"_id"`
	Title                    string                `json:"title"`
	CompanyDescription       string                `json:"companyDescription"`
	DealType                 DealType              `json:"dealType"`
	Status                   DealStatus            `json:"status"`
	RewardLevel              RewardLevel           `json:"rewardLevel"`
	IndustrySector           string                `json:"industrySector"`
	GeographySelection       string                `json:"geographySelection"`
	YearsInBusiness          int                   `json:"yearsInBusiness"`
	EmployeeCount            *int                  `json:"employeeCount,omitempty"`
	DealsCompletedLast5Years *int                  `json:"dealsCompletedLast5Years,omitempty"`
	SellerID                 string                `json:"seller"`
	FinancialDetails         FinancialDetails      `json:"financialDetails"`
	BusinessModel            BusinessModel         `json:"businessModel"`
	ManagementPreferences    ManagementPreferences `json:"managementPreferences"`
	StakePercentage          *float64              `json:"stakePercentage,omitempty"`
	Tags                     []string              `json:"tags,omitempty"`
	IsPublic                 bool                  `json:"isPublic"`
	CreatedAt                time.Time             `json:"createdAt"`
	UpdatedAt                time.Time             `json:"updatedAt"`
}
