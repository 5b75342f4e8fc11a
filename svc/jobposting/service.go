package jobposting

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/hirekit/pkg/logger"
	"github.com/dmitrymomot/hirekit/pkg/validator"
)

// Service validates and persists job postings.
type Service interface {
	// Create validates input and stores a new posting.
	// Rejected input yields a *validator.ValidationError.
	Create(ctx context.Context, input any) (*JobPosting, error)

	// Update validates input and replaces the posting with the given hex ID.
	// CreatedAt is kept from the stored record.
	Update(ctx context.Context, id string, input any) (*JobPosting, error)

	// Get loads a posting by hex ID.
	Get(ctx context.Context, id string) (*JobPosting, error)

	// Check runs the validation pipeline without persisting anything. It
	// returns the sanitized posting, or the first failure.
	Check(input any) (*JobPosting, *validator.ValidationError)
}

// ServiceOption configures a Service instance.
type ServiceOption func(*service)

// WithLogger sets the service logger. Nil is ignored.
func WithLogger(log *slog.Logger) ServiceOption {
	return func(s *service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithClock overrides the time source used for timestamps.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *service) {
		if now != nil {
			s.now = now
		}
	}
}

type service struct {
	storage Storage
	log     *slog.Logger
	now     func() time.Time
}

// NewService creates a Service on top of storage.
// Panics if storage is nil.
func NewService(storage Storage, opts ...ServiceOption) Service {
	if storage == nil {
		panic(ErrNilStorage)
	}

	s := &service{
		storage: storage,
		log:     slog.New(slog.DiscardHandler),
		now:     func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Create(ctx context.Context, input any) (*JobPosting, error) {
	posting, err := s.validate(ctx, input, "create")
	if err != nil {
		return nil, err
	}

	now := s.now()
	posting.ID = bson.NewObjectID()
	posting.CreatedAt = now
	posting.UpdatedAt = now

	if err := s.storage.Insert(ctx, posting); err != nil {
		return nil, errors.Join(ErrFailedToSave, err)
	}

	s.log.InfoContext(ctx, "job posting created",
		logger.JobPostingID(posting.ID.Hex()),
		logger.OrgID(posting.OrgID.Hex()),
		logger.Event("create"),
	)
	return posting, nil
}

func (s *service) Update(ctx context.Context, id string, input any) (*JobPosting, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	existing, err := s.storage.Get(ctx, oid)
	if err != nil {
		return nil, err
	}

	posting, err := s.validate(ctx, input, "update")
	if err != nil {
		return nil, err
	}

	posting.ID = oid
	posting.CreatedAt = existing.CreatedAt
	posting.UpdatedAt = s.now()

	if err := s.storage.Replace(ctx, posting); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, errors.Join(ErrFailedToSave, err)
	}

	s.log.InfoContext(ctx, "job posting updated",
		logger.JobPostingID(posting.ID.Hex()),
		logger.OrgID(posting.OrgID.Hex()),
		logger.Event("update"),
	)
	return posting, nil
}

func (s *service) Get(ctx context.Context, id string) (*JobPosting, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return s.storage.Get(ctx, oid)
}

func (s *service) Check(input any) (*JobPosting, *validator.ValidationError) {
	res := ValidateJobPosting(input)
	return res.Value, res.Err
}

func (s *service) validate(ctx context.Context, input any, event string) (*JobPosting, error) {
	res := ValidateJobPosting(input)
	if !res.Valid {
		s.log.WarnContext(ctx, "job posting rejected",
			logger.Field(res.Err.Field),
			logger.Kind(res.Err.Kind),
			logger.Event(event),
		)
		return nil, res.Err
	}
	return res.Value, nil
}

func parseID(id string) (bson.ObjectID, error) {
	res := validator.ObjectID(id, "id", true)
	if !res.Valid {
		return bson.ObjectID{}, res.Err
	}
	return *res.Value, nil
}
