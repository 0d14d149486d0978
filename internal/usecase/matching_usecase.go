package usecase

import (
	"context"
	"log"

	"tradeportal/internal/domain/entities"
	"tradeportal/internal/usecase/interfaces"
)

// TierBuckets partitions matched providers by subscription tier. Buckets are
// disjoint and deduplicated by provider id; no ranking is applied, membership
// only.
type TierBuckets struct {
	Business []entities.User
	Pro      []entities.User
	Basic    []entities.User
}

// Total counts providers across all three buckets.
func (b TierBuckets) Total() int {
	return len(b.Business) + len(b.Pro) + len(b.Basic)
}

// All returns every matched provider across the three buckets. No tier is
// excluded from alerts; paid tiers get no exclusivity window.
func (b TierBuckets) All() []entities.User {
	out := make([]entities.User, 0, b.Total())
	out = append(out, b.Business...)
	out = append(out, b.Pro...)
	out = append(out, b.Basic...)
	return out
}

// IMatchingUseCase computes the set of providers eligible for a job.
//
// Match never fails: if the directory is unavailable it returns empty
// buckets, because job creation must not be blocked by matching health.

type IMatchingUseCase interface {
	Match(ctx context.Context, job entities.Job) TierBuckets
}

type MatchingUseCase struct {
	directory interfaces.IUserDirectory
}

var _ IMatchingUseCase = (*MatchingUseCase)(nil)

func NewMatchingUseCase(directory interfaces.IUserDirectory) *MatchingUseCase {
	return &MatchingUseCase{directory: directory}
}

func (u *MatchingUseCase) Match(ctx context.Context, job entities.Job) TierBuckets {
	if u.directory == nil {
		log.Printf("[matching][usecase] directory not configured job_id=%s", job.ID)
		return TierBuckets{}
	}

	providers, err := u.directory.ListProviders(ctx)
	if err != nil {
		log.Printf("[matching][usecase] directory unavailable job_id=%s err=%v", job.ID, err)
		return TierBuckets{}
	}

	var buckets TierBuckets
	seen := make(map[string]struct{}, len(providers))
	for _, p := range providers {
		if p.ID == "" || !entities.IsProvider(p.Role) {
			continue
		}
		if _, dup := seen[p.ID]; dup {
			continue
		}
		if !matchesSpecialty(p, job) || !matchesLocation(p, job) {
			continue
		}
		seen[p.ID] = struct{}{}

		switch p.SubscriptionTier {
		case entities.TierBusiness:
			buckets.Business = append(buckets.Business, p)
		case entities.TierPro:
			buckets.Pro = append(buckets.Pro, p)
		default:
			buckets.Basic = append(buckets.Basic, p)
		}
	}

	log.Printf("[matching][usecase] matched job_id=%s business=%d pro=%d basic=%d",
		job.ID, len(buckets.Business), len(buckets.Pro), len(buckets.Basic))
	return buckets
}

// matchesSpecialty checks the provider's service slugs against the job's
// normalized specialties, falling back to a service-type comparison when the
// job carries no specialties.
func matchesSpecialty(p entities.User, job entities.Job) bool {
	if len(job.Specialties) == 0 {
		return entities.Slugify(p.ServiceType) == entities.Slugify(job.ServiceType)
	}
	for _, want := range job.Specialties {
		for _, have := range p.ServiceSlugs {
			if want == have {
				return true
			}
		}
	}
	return false
}

// matchesLocation is satisfied by the provider's own city or any of its
// service areas. A job with no derivable citySlug skips location filtering
// entirely.
func matchesLocation(p entities.User, job entities.Job) bool {
	city := job.Location.CitySlug
	if city == "" {
		return true
	}
	if p.CitySlug == city {
		return true
	}
	for _, area := range p.ServiceAreaSlugs {
		if area == city {
			return true
		}
	}
	return false
}
