package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"tradeportal/internal/domain/entities"
	"tradeportal/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrJobNotFound      = errors.New("job not found")
	ErrJobForbidden     = errors.New("not allowed to access this job")
	ErrInvalidJobInput  = errors.New("invalid job input")
	ErrQuoteNotFound    = errors.New("quote not found")
	ErrInvalidJobStatus = errors.New("invalid job status transition")
)

// CreateJobInput is the domain command for posting a job.
type CreateJobInput struct {
	Title         string
	Description   string
	Urgency       entities.Urgency
	ServiceType   string
	Specialties   []string
	Postcode      string
	Town          string
	Budget        *float64
	ScheduledDate *time.Time
	Photos        []string
}

// IJobUseCase owns job state transitions and orchestrates matching and
// notification fan-out on creation. Fan-out failures never roll back or fail
// job creation.

type IJobUseCase interface {
	Create(ctx context.Context, actor Actor, in CreateJobInput) (entities.Job, error)
	GetByID(ctx context.Context, actor Actor, id string) (entities.Job, error)
	ListOpen(ctx context.Context, actor Actor) ([]entities.Job, error)
	Update(ctx context.Context, actor Actor, id string, patch entities.JobPatch) (entities.Job, error)
	AcceptQuote(ctx context.Context, actor Actor, jobID, quoteID string) (entities.Job, error)
	Complete(ctx context.Context, actor Actor, jobID string) (entities.Job, error)
	Cancel(ctx context.Context, actor Actor, jobID string) (entities.Job, error)
	Delete(ctx context.Context, actor Actor, jobID string) error
}

type JobUseCase struct {
	repo      interfaces.IJobRepository
	quotes    interfaces.IQuoteRepository
	directory interfaces.IUserDirectory
	matcher   IMatchingUseCase
	fanout    INotificationFanout
}

var _ IJobUseCase = (*JobUseCase)(nil)

func NewJobUseCase(repo interfaces.IJobRepository, quotes interfaces.IQuoteRepository, directory interfaces.IUserDirectory, matcher IMatchingUseCase, fanout INotificationFanout) *JobUseCase {
	return &JobUseCase{repo: repo, quotes: quotes, directory: directory, matcher: matcher, fanout: fanout}
}

func (u *JobUseCase) Create(ctx context.Context, actor Actor, in CreateJobInput) (entities.Job, error) {
	if !entities.CanAccess(actor.Role, []entities.Role{entities.RoleCustomer, entities.RoleAdmin}) {
		return entities.Job{}, ErrJobForbidden
	}
	if err := validateCreateJobInput(in); err != nil {
		return entities.Job{}, err
	}

	now := time.Now().UTC()
	job := entities.Job{
		ID:          uuid.NewString(),
		CustomerID:  actor.UserID,
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Urgency:     in.Urgency,
		ServiceType: strings.TrimSpace(in.ServiceType),
		Specialties: entities.NormalizeSpecialties(in.ServiceType, in.Specialties),
		Location: entities.JobLocation{
			Postcode: strings.TrimSpace(in.Postcode),
			Town:     strings.TrimSpace(in.Town),
			CitySlug: entities.Slugify(in.Town),
		},
		Budget:        in.Budget,
		ScheduledDate: in.ScheduledDate,
		Status:        entities.JobStatusOpen,
		Photos:        in.Photos,
		PaymentStatus: entities.PaymentStatusNone,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := u.repo.Create(ctx, job)
	if err != nil {
		log.Printf("[job][usecase] create failed customer_id=%s err=%v", actor.UserID, err)
		return entities.Job{}, err
	}
	log.Printf("[job][usecase] created job_id=%s customer_id=%s service_type=%s city_slug=%s",
		created.ID, created.CustomerID, created.ServiceType, created.Location.CitySlug)

	u.dispatch(ctx, created)
	return created, nil
}

// dispatch runs matching and fan-out after a successful create. Both are
// contained: their failures are logged inside and never reach the caller.
func (u *JobUseCase) dispatch(ctx context.Context, job entities.Job) {
	if u.matcher == nil || u.fanout == nil {
		log.Printf("[job][usecase] dispatch skipped job_id=%s", job.ID)
		return
	}
	buckets := u.matcher.Match(ctx, job)
	u.fanout.Notify(ctx, job, buckets)
}

func (u *JobUseCase) GetByID(ctx context.Context, actor Actor, id string) (entities.Job, error) {
	job, err := u.load(ctx, id)
	if err != nil {
		return entities.Job{}, err
	}
	if !canReadJob(actor, job) {
		return entities.Job{}, ErrJobForbidden
	}
	return job, nil
}

func (u *JobUseCase) ListOpen(ctx context.Context, actor Actor) ([]entities.Job, error) {
	if !entities.IsProvider(actor.Role) && !actor.IsAdmin() {
		return nil, ErrJobForbidden
	}
	return u.repo.ListOpen(ctx)
}

func (u *JobUseCase) Update(ctx context.Context, actor Actor, id string, patch entities.JobPatch) (entities.Job, error) {
	job, err := u.load(ctx, id)
	if err != nil {
		return entities.Job{}, err
	}
	if job.CustomerID != actor.UserID && !actor.IsAdmin() {
		return entities.Job{}, ErrJobForbidden
	}
	if patch.IsZero() {
		return entities.Job{}, fmt.Errorf("%w: empty patch", ErrInvalidJobInput)
	}
	if err := validateJobPatch(patch); err != nil {
		return entities.Job{}, err
	}

	// Re-derive location and specialties only for fields present in the
	// patch; untouched fields keep their stored derivations.
	if patch.Town != nil {
		slug := entities.Slugify(*patch.Town)
		patch.CitySlug = &slug
	}
	if patch.Specialties != nil || patch.ServiceType != nil {
		serviceType := job.ServiceType
		if patch.ServiceType != nil {
			serviceType = *patch.ServiceType
		}
		specialties := job.Specialties
		if patch.Specialties != nil {
			specialties = *patch.Specialties
		}
		normalized := entities.NormalizeSpecialties(serviceType, specialties)
		patch.Specialties = &normalized
	}

	updated, err := u.repo.Patch(ctx, id, patch)
	if err != nil {
		log.Printf("[job][usecase] patch failed job_id=%s err=%v", id, err)
		return entities.Job{}, err
	}
	if updated.ID == "" {
		// The row vanished between load and patch.
		return entities.Job{}, ErrJobNotFound
	}
	return updated, nil
}

func (u *JobUseCase) AcceptQuote(ctx context.Context, actor Actor, jobID, quoteID string) (entities.Job, error) {
	job, err := u.load(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if job.CustomerID != actor.UserID && !actor.IsAdmin() {
		return entities.Job{}, ErrJobForbidden
	}
	if !entities.CanTransition(job.Status, entities.JobStatusAssigned) {
		return entities.Job{}, fmt.Errorf("%w: cannot assign a %s job", ErrInvalidJobStatus, job.Status)
	}

	quote, err := u.quotes.GetByID(ctx, strings.TrimSpace(quoteID))
	if err != nil {
		return entities.Job{}, err
	}
	if quote.ID == "" {
		return entities.Job{}, ErrQuoteNotFound
	}
	if quote.JobID != job.ID {
		return entities.Job{}, fmt.Errorf("%w: quote does not belong to this job", ErrInvalidJobInput)
	}
	if err := u.checkTradesperson(ctx, quote.TradespersonID); err != nil {
		return entities.Job{}, err
	}

	status := entities.JobStatusAssigned
	patch := entities.JobPatch{
		Status:         &status,
		TradespersonID: &quote.TradespersonID,
	}
	updated, err := u.repo.Patch(ctx, job.ID, patch)
	if err != nil {
		log.Printf("[job][usecase] accept-quote failed job_id=%s quote_id=%s err=%v", job.ID, quote.ID, err)
		return entities.Job{}, err
	}
	if updated.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	log.Printf("[job][usecase] quote accepted job_id=%s quote_id=%s tradesperson_id=%s", job.ID, quote.ID, quote.TradespersonID)
	return updated, nil
}

func (u *JobUseCase) Complete(ctx context.Context, actor Actor, jobID string) (entities.Job, error) {
	return u.transition(ctx, actor, jobID, entities.JobStatusCompleted)
}

func (u *JobUseCase) Cancel(ctx context.Context, actor Actor, jobID string) (entities.Job, error) {
	return u.transition(ctx, actor, jobID, entities.JobStatusCancelled)
}

func (u *JobUseCase) transition(ctx context.Context, actor Actor, jobID string, to entities.JobStatus) (entities.Job, error) {
	job, err := u.load(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if job.CustomerID != actor.UserID && !actor.IsAdmin() {
		return entities.Job{}, ErrJobForbidden
	}
	if !entities.CanTransition(job.Status, to) {
		return entities.Job{}, fmt.Errorf("%w: %s -> %s", ErrInvalidJobStatus, job.Status, to)
	}

	patch := entities.JobPatch{Status: &to}
	updated, err := u.repo.Patch(ctx, job.ID, patch)
	if err != nil {
		return entities.Job{}, err
	}
	if updated.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	log.Printf("[job][usecase] transition job_id=%s from=%s to=%s", job.ID, job.Status, to)
	return updated, nil
}

func (u *JobUseCase) Delete(ctx context.Context, actor Actor, jobID string) error {
	if !actor.IsAdmin() {
		return ErrJobForbidden
	}
	if _, err := u.load(ctx, jobID); err != nil {
		return err
	}
	return u.repo.Delete(ctx, strings.TrimSpace(jobID))
}

// checkTradesperson verifies the quoting provider still has a directory
// record before a job is assigned to them.
func (u *JobUseCase) checkTradesperson(ctx context.Context, tradespersonID string) error {
	if u.directory == nil {
		return nil
	}
	provider, err := u.directory.GetUserByID(ctx, tradespersonID)
	if err != nil {
		log.Printf("[job][usecase] directory lookup failed tradesperson_id=%s err=%v", tradespersonID, err)
		return err
	}
	if provider.ID == "" || !entities.IsProvider(provider.Role) {
		return fmt.Errorf("%w: quoting tradesperson is no longer registered", ErrInvalidJobInput)
	}
	return nil
}

func (u *JobUseCase) load(ctx context.Context, id string) (entities.Job, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Job{}, fmt.Errorf("%w: missing job id", ErrInvalidJobInput)
	}
	job, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Job{}, err
	}
	if job.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	return job, nil
}

func canReadJob(actor Actor, job entities.Job) bool {
	if actor.IsAdmin() || job.CustomerID == actor.UserID {
		return true
	}
	return entities.IsProvider(actor.Role)
}

func validateCreateJobInput(in CreateJobInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidJobInput)
	}
	if strings.TrimSpace(in.ServiceType) == "" {
		return fmt.Errorf("%w: service_type is required", ErrInvalidJobInput)
	}
	if !entities.ValidUrgency(in.Urgency) {
		return fmt.Errorf("%w: unknown urgency %q", ErrInvalidJobInput, in.Urgency)
	}
	if strings.TrimSpace(in.Postcode) == "" {
		return fmt.Errorf("%w: postcode is required", ErrInvalidJobInput)
	}
	if in.Budget != nil && *in.Budget < 0 {
		return fmt.Errorf("%w: budget must not be negative", ErrInvalidJobInput)
	}
	return nil
}

func validateJobPatch(p entities.JobPatch) error {
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return fmt.Errorf("%w: title cannot be blank", ErrInvalidJobInput)
	}
	if p.ServiceType != nil && strings.TrimSpace(*p.ServiceType) == "" {
		return fmt.Errorf("%w: service_type cannot be blank", ErrInvalidJobInput)
	}
	if p.Urgency != nil && !entities.ValidUrgency(*p.Urgency) {
		return fmt.Errorf("%w: unknown urgency %q", ErrInvalidJobInput, *p.Urgency)
	}
	if p.Budget != nil && *p.Budget < 0 {
		return fmt.Errorf("%w: budget must not be negative", ErrInvalidJobInput)
	}
	return nil
}
