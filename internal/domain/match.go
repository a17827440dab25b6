package domain

// MatchDetails records, per criterion, whether it contributed points to the
// total score. Industry and geography are always true: profiles that fail
// either gate are never scored at all.
type MatchDetails struct {
	IndustryMatch        bool `json:"industryMatch"`
	GeographyMatch       bool `json:"geographyMatch"`
	RevenueMatch         bool `json:"revenueMatch"`
	EBITDAMatch          bool `json:"ebitdaMatch"`
	TransactionSizeMatch bool `json:"transactionSizeMatch"`
	BusinessModelMatch   bool `json:"businessModelMatch"`
	ManagementMatch      bool `json:"managementMatch"`
	YearsMatch           bool `json:"yearsMatch"`
}

// CriteriaDetails echoes the raw deal values the score was computed from,
// for client-side transparency and debugging.
type CriteriaDetails struct {
	DealIndustry        string   `json:"dealIndustry"`
	DealGeography       string   `json:"dealGeography"`
	DealRevenue         *float64 `json:"dealRevenue,omitempty"`
	DealEBITDA          *float64 `json:"dealEbitda,omitempty"`
	DealTransactionSize *float64 `json:"dealTransactionSize,omitempty"`
	DealYearsInBusiness int      `json:"dealYearsInBusiness"`
}

// MatchResult is one ranked entry in a deal's buyer-match list.
type MatchResult struct {
	ProfileID                string           `json:"_id"`
	CompanyName              string           `json:"companyName"`
	BuyerID                  string           `json:"buyerId"`
	BuyerName                string           `json:"buyerName"`
	BuyerEmail               string           `json:"buyerEmail"`
	TargetCriteria           TargetCriteria   `json:"targetCriteria"`
	Preferences              BuyerPreferences `json:"preferences"`
	CompanyType              string           `json:"companyType,omitempty"`
	CapitalEntity            string           `json:"capitalEntity,omitempty"`
	DealsCompletedLast5Years *int             `json:"dealsCompletedLast5Years,omitempty"`
	AverageDealSize          *float64         `json:"averageDealSize,omitempty"`
	TotalMatchScore          int              `json:"totalMatchScore"`
	MatchPercentage          int              `json:"matchPercentage"`
	MatchDetails             MatchDetails     `json:"matchDetails"`
	CriteriaDetails          CriteriaDetails  `json:"criteriaDetails"`
}
