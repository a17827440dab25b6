package usecase

import (
	"context"
	"math"
	"sort"

	"github.com/dealbridge/backend/internal/domain"
	"github.com/dealbridge/backend/internal/geo"
)

// Per-criterion point awards. Industry and geography are mandatory gates, so
// every scored profile starts at 20; the rest are optional contributions.
const (
	industryPoints        = 10 // mandatory gate, always awarded once scored
	geographyPoints       = 10 // mandatory gate, always awarded once scored
	revenuePoints         = 8  // deal revenue inside the buyer's range
	ebitdaPoints          = 8  // deal EBITDA inside the buyer's range
	transactionSizePoints = 8  // deal asking price inside the buyer's range
	businessModelPoints   = 3  // per matching business-model flag, up to 12
	managementPoints      = 6  // owner departing preference lines up
	yearsPoints           = 5  // deal meets the buyer's minimum years in business
	revenueGrowthPoints   = 5  // growth criterion satisfied
	dealsCompletedPoints  = 5  // deals-completed criterion satisfied
)

// maxPossibleScore is the fixed normalization constant for match
// percentages. The point table actually sums past it when every business
// model flag matches, so a profile satisfying everything reports above
// 100%. Do not "fix" either side: the 40% threshold below is calibrated
// to this constant.
const maxPossibleScore = 60

// defaultMinMatchPercentage drops weak matches from the ranked list. With the
// two mandatory gates contributing 20 points, 40% means roughly one strong
// optional criterion beyond the gates.
const defaultMinMatchPercentage = 40

// criterionResult is one scoring rule's outcome: the points it contributed
// and whether it counted as satisfied for the match-details breakdown.
type criterionResult struct {
	points    int
	satisfied bool
}

func awardIf(ok bool, points int) criterionResult {
	if ok {
		return criterionResult{points: points, satisfied: true}
	}
	return criterionResult{}
}

// MatchConfig holds configuration for the matching service
type MatchConfig struct {
	MinMatchPercentage int
}

// MatchingService ranks buyer company profiles against a deal. It is pure
// and stateless: the same deal and candidate batch always produce the same
// ranked list, and concurrent calls need no coordination.
type MatchingService struct {
	minMatchPercentage int
}

// NewMatchingService creates a new matching service with the given configuration
func NewMatchingService(config MatchConfig) *MatchingService {
	threshold := config.MinMatchPercentage
	if threshold <= 0 {
		threshold = defaultMinMatchPercentage
	}

	return &MatchingService{
		minMatchPercentage: threshold,
	}
}

// MatchBuyers scores every eligible profile in the batch against the deal
// and returns the ranked result list. Profiles referencing a buyer absent
// from the buyers map are skipped, mirroring the join against the buyers
// collection. The candidate batch is typically pre-filtered by the store,
// but the full eligibility gate is re-applied here so an unfiltered batch
// still produces a correct result.
func (s *MatchingService) MatchBuyers(
	ctx context.Context,
	deal *domain.Deal,
	profiles []domain.CompanyProfile,
	buyers map[string]domain.Buyer,
) ([]domain.MatchResult, error) {
	if deal == nil {
		return nil, domain.ErrInvalidRequest
	}

	acc := s.NewAccumulator(deal)

	for i := range profiles {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		buyer, ok := buyers[profiles[i].BuyerID]
		if !ok {
			continue
		}
		acc.Add(&profiles[i], &buyer)
	}

	return acc.Results(), nil
}

// MatchAccumulator folds a streamed candidate sequence into a ranked match
// list. Add scores one profile at a time; Results performs the final
// threshold filter and sort once the batch is fully consumed.
type MatchAccumulator struct {
	svc      *MatchingService
	deal     *domain.Deal
	dealGeos geo.Set
	scored   []domain.MatchResult
}

// NewAccumulator prepares an accumulator for one deal. The deal's geography
// is expanded once up front; every candidate is gated against the same set.
func (s *MatchingService) NewAccumulator(deal *domain.Deal) *MatchAccumulator {
	return &MatchAccumulator{
		svc:      s,
		deal:     deal,
		dealGeos: geo.Expand(deal.GeographySelection),
	}
}

// Add gates and scores a single candidate profile. Ineligible profiles are
// dropped without a score being computed.
func (a *MatchAccumulator) Add(profile *domain.CompanyProfile, buyer *domain.Buyer) {
	if !a.eligible(profile) {
		return
	}
	a.scored = append(a.scored, a.score(profile, buyer))
}

// Results filters out entries below the minimum match percentage and sorts
// the remainder by percentage descending. The sort is stable, so profiles
// with equal percentages keep their input order.
func (a *MatchAccumulator) Results() []domain.MatchResult {
	results := make([]domain.MatchResult, 0, len(a.scored))
	for _, r := range a.scored {
		if r.MatchPercentage >= a.svc.minMatchPercentage {
			results = append(results, r)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MatchPercentage > results[j].MatchPercentage
	})

	return results
}

// eligible applies the mandatory pre-filter: opt-outs first, then the
// geography and industry gates. Profiles with empty countries or industry
// sectors never pass, since an empty set intersects nothing.
func (a *MatchAccumulator) eligible(profile *domain.CompanyProfile) bool {
	if profile.Preferences.StopSendingDeals {
		return false
	}
	if a.deal.RewardLevel == domain.RewardLevelSeed && profile.Preferences.DoNotSendMarketedDeals {
		return false
	}
	if !a.dealGeos.ContainsAny(profile.TargetCriteria.Countries) {
		return false
	}
	return containsString(profile.TargetCriteria.IndustrySectors, a.deal.IndustrySector)
}

// score computes every criterion contribution for a profile that has passed
// the gate and assembles the result entry. All criteria apply even when the
// corresponding target-criteria field is unset: absence of a preference
// defaults to satisfied, never to a penalty.
func (a *MatchAccumulator) score(profile *domain.CompanyProfile, buyer *domain.Buyer) domain.MatchResult {
	deal := a.deal
	tc := &profile.TargetCriteria

	dealRevenue := derefFloat(deal.FinancialDetails.TrailingRevenueAmount)
	dealEBITDA := derefFloat(deal.FinancialDetails.TrailingEBITDAAmount)
	dealAskingPrice := derefFloat(deal.FinancialDetails.AskingPrice)

	revenue := awardIf(rangeSatisfied(tc.RevenueMin, tc.RevenueMax, dealRevenue), revenuePoints)
	ebitda := awardIf(rangeSatisfied(tc.EBITDAMin, tc.EBITDAMax, dealEBITDA), ebitdaPoints)
	transactionSize := awardIf(rangeSatisfied(tc.TransactionSizeMin, tc.TransactionSizeMax, dealAskingPrice), transactionSizePoints)

	// Only the presence of a growth threshold is checked, with any positive
	// deal growth qualifying; the threshold's magnitude is never compared
	// against the deal's growth figure. Clients depend on this exact rule.
	growth := awardIf(
		tc.RevenueGrowth == nil || derefFloat(deal.FinancialDetails.AvgRevenueGrowth) > 0,
		revenueGrowthPoints,
	)

	businessModel := a.scoreBusinessModel(tc)

	management := awardIf(
		deal.ManagementPreferences.RetiringDivesting &&
			containsString(tc.ManagementTeamPreference, domain.ManagementOwnersDeparting),
		managementPoints,
	)

	years := awardIf(
		tc.MinYearsInBusiness == nil || deal.YearsInBusiness >= *tc.MinYearsInBusiness,
		yearsPoints,
	)

	dealsCompleted := awardIf(
		tc.DealsCompletedLast5Years == nil || derefInt(deal.DealsCompletedLast5Years) > 0,
		dealsCompletedPoints,
	)

	total := industryPoints + geographyPoints +
		revenue.points + ebitda.points + transactionSize.points +
		growth.points + businessModel.points + management.points +
		years.points + dealsCompleted.points

	percentage := int(math.Round(float64(total) / maxPossibleScore * 100))

	return domain.MatchResult{
		ProfileID:                profile.ID,
		CompanyName:              profile.CompanyName,
		BuyerID:                  buyer.ID,
		BuyerName:                buyer.FullName,
		BuyerEmail:               buyer.Email,
		TargetCriteria:           profile.TargetCriteria,
		Preferences:              profile.Preferences,
		CompanyType:              profile.CompanyType,
		CapitalEntity:            profile.CapitalEntity,
		DealsCompletedLast5Years: profile.DealsCompletedLast5Years,
		AverageDealSize:          profile.AverageDealSize,
		TotalMatchScore:          total,
		MatchPercentage:          percentage,
		MatchDetails: domain.MatchDetails{
			IndustryMatch:        true,
			GeographyMatch:       true,
			RevenueMatch:         revenue.satisfied,
			EBITDAMatch:          ebitda.satisfied,
			TransactionSizeMatch: transactionSize.satisfied,
			BusinessModelMatch:   businessModel.satisfied,
			ManagementMatch:      management.satisfied,
			YearsMatch:           years.satisfied,
		},
		CriteriaDetails: domain.CriteriaDetails{
			DealIndustry:        deal.IndustrySector,
			DealGeography:       deal.GeographySelection,
			DealRevenue:         deal.FinancialDetails.TrailingRevenueAmount,
			DealEBITDA:          deal.FinancialDetails.TrailingEBITDAAmount,
			DealTransactionSize: deal.FinancialDetails.AskingPrice,
			DealYearsInBusiness: deal.YearsInBusiness,
		},
	}
}

// scoreBusinessModel awards 3 points for each business-model flag set on the
// deal whose label appears in the buyer's preferred list, up to 12 total.
func (a *MatchAccumulator) scoreBusinessModel(tc *domain.TargetCriteria) criterionResult {
	bm := a.deal.BusinessModel
	points := 0

	if bm.RecurringRevenue && containsString(tc.PreferredBusinessModels, domain.BusinessModelRecurringRevenue) {
		points += businessModelPoints
	}
	if bm.ProjectBased && containsString(tc.PreferredBusinessModels, domain.BusinessModelProjectBased) {
		points += businessModelPoints
	}
	if bm.AssetLight && containsString(tc.PreferredBusinessModels, domain.BusinessModelAssetLight) {
		points += businessModelPoints
	}
	if bm.AssetHeavy && containsString(tc.PreferredBusinessModels, domain.BusinessModelAssetHeavy) {
		points += businessModelPoints
	}

	return criterionResult{points: points, satisfied: points > 0}
}

// rangeSatisfied checks a min/max pair against a deal value. A nil bound is
// an open bound; with both bounds nil the criterion is neutral and counts as
// satisfied. Missing deal values arrive here already defaulted to 0.
func rangeSatisfied(min, max *float64, value float64) bool {
	if min != nil && value < *min {
		return false
	}
	if max != nil && value > *max {
		return false
	}
	return true
}

func containsString(list []string, target string) bool {
	for _, s := range list {
		if s == target {
			return true
		}
	}
	return false
}

func derefFloat(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

func derefInt(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}
