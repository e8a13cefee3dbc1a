package services

import (
	"kicktwin/internal/domain"
	"kicktwin/internal/repos"
)

type LoyaltyService struct {
	Tiers  *repos.TierRepo
	Orders *repos.OrderRepo
}

func NewLoyaltyService(tiers *repos.TierRepo, orders *repos.OrderRepo) *LoyaltyService {
	return &LoyaltyService{Tiers: tiers, Orders: orders}
}

type LoyaltyStatus struct {
	Spend    int64
	Current  domain.LoyaltyTier
	Next     *domain.LoyaltyTier
	Progress float64 // percent toward the next tier, 100 at the top
	Tiers    []domain.LoyaltyTier
}

// StatusFor computes the tier standing for a cumulative spend. Tiers come in
// ascending threshold order; spend exactly at a threshold earns that tier.
func StatusFor(tiers []domain.LoyaltyTier, spend int64) LoyaltyStatus {
	st := LoyaltyStatus{Spend: spend, Progress: 100, Tiers: tiers}
	if len(tiers) == 0 {
		return st
	}
	st.Current = tiers[0]
	for _, t := range tiers {
		if spend >= t.Threshold {
			st.Current = t
		} else {
			next := t
			st.Next = &next
			break
		}
	}
	if st.Next != nil {
		span := st.Next.Threshold - st.Current.Threshold
		if span > 0 {
			st.Progress = float64(spend-st.Current.Threshold) / float64(span) * 100
		}
	}
	return st
}

// Status resolves a session's standing from its order history.
func (s *LoyaltyService) Status(sessionID string) (LoyaltyStatus, error) {
	tiers, err := s.Tiers.List()
	if err != nil {
		return LoyaltyStatus{}, err
	}
	spend, err := s.Orders.SpendBySession(sessionID)
	if err != nil {
		return LoyaltyStatus{}, err
	}
	return StatusFor(tiers, spend), nil
}
