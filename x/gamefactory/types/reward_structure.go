package types

import (
	"fmt"
	"sort"

	errorsmod "cosmossdk.io/errors"
)

// PercentDenominator is the sum every reward schedule must reach.
const PercentDenominator = 100

// RewardSchedule splits a distribution between the top TierSize players.
// Percentages are ordered rank 1 first.
type RewardSchedule struct {
	TierSize    uint32   `json:"tier_size"`
	Percentages []uint32 `json:"percentages"`
}

// Validate checks the schedule is complete and sums to exactly 100.
func (s RewardSchedule) Validate() error {
	if s.TierSize == 0 {
		return fmt.Errorf("tier size must be positive")
	}
	if uint32(len(s.Percentages)) != s.TierSize {
		return fmt.Errorf("tier %d: expected %d percentages, got %d", s.TierSize, s.TierSize, len(s.Percentages))
	}
	var sum uint64
	for i, p := range s.Percentages {
		if p == 0 {
			return fmt.Errorf("tier %d: rank %d has a zero share", s.TierSize, i+1)
		}
		sum += uint64(p)
	}
	if sum != PercentDenominator {
		return fmt.Errorf("tier %d: percentages sum to %d, want %d", s.TierSize, sum, PercentDenominator)
	}
	return nil
}

// RewardSchedules is the allow-listed table of supported tier sizes.
type RewardSchedules []RewardSchedule

// DefaultRewardSchedules returns the single supported 3-way split.
func DefaultRewardSchedules() RewardSchedules {
	return RewardSchedules{
		{TierSize: 3, Percentages: []uint32{50, 30, 20}},
	}
}

// Validate checks every schedule and rejects duplicate tier sizes.
func (rs RewardSchedules) Validate() error {
	if len(rs) == 0 {
		return fmt.Errorf("at least one reward schedule is required")
	}
	seen := make(map[uint32]struct{}, len(rs))
	for _, s := range rs {
		if err := s.Validate(); err != nil {
			return err
		}
		if _, ok := seen[s.TierSize]; ok {
			return fmt.Errorf("duplicate reward schedule for tier %d", s.TierSize)
		}
		seen[s.TierSize] = struct{}{}
	}
	return nil
}

// Schedule returns a copy of the percentages for tierSize. Unknown tier sizes
// fail with ErrInvalidTierSize; they are never approximated.
func (rs RewardSchedules) Schedule(tierSize uint32) ([]uint32, error) {
	for _, s := range rs {
		if s.TierSize == tierSize {
			out := make([]uint32, len(s.Percentages))
			copy(out, s.Percentages)
			return out, nil
		}
	}
	return nil, errorsmod.Wrapf(ErrInvalidTierSize, "tier size %d (supported: %v)", tierSize, rs.TierSizes())
}

// TierSizes lists the supported tier sizes in ascending order.
func (rs RewardSchedules) TierSizes() []uint32 {
	out := make([]uint32, 0, len(rs))
	for _, s := range rs {
		out = append(out, s.TierSize)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
