package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"

	"github.com/and161185/propledger/internal/errs"
	"github.com/and161185/propledger/internal/guard"
	"github.com/and161185/propledger/internal/lifecycle"
	"github.com/and161185/propledger/internal/media"
	"github.com/and161185/propledger/internal/metrics"
	"github.com/and161185/propledger/internal/model"
	"github.com/and161185/propledger/internal/notify"
	"github.com/and161185/propledger/internal/repository"
)

// PropertyService defines the property lifecycle operations.
//
// Mutating calls take baseVer: when > 0 the commit is attempted exactly once
// against it; when 0 the current version is read and conflicts are retried.
type PropertyService interface {
	Create(ctx context.Context, actor uuid.UUID, req CreateRequest) (*model.Property, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Property, error)
	List(ctx context.Context, f model.Filter) ([]model.Property, error)
	ListByOwner(ctx context.Context, owner uuid.UUID, offset, limit int) ([]model.Property, error)
	History(ctx context.Context, id uuid.UUID, q model.HistoryQuery) ([]model.Event, error)

	UpdateDetails(ctx context.Context, actor, id uuid.UUID, baseVer int64, patch lifecycle.DetailsPatch) (*model.Property, error)
	ConfigureAuction(ctx context.Context, actor, id uuid.UUID, baseVer int64, in lifecycle.AuctionSettings) (*model.Property, error)
	AttachMedia(ctx context.Context, actor, id uuid.UUID, baseVer int64, kind lifecycle.MediaKind, files []media.File) (*model.Property, error)
	RemoveMedia(ctx context.Context, actor, id uuid.UUID, baseVer int64, kind lifecycle.MediaKind, url string) (*model.Property, error)

	Tokenize(ctx context.Context, actor, id uuid.UUID, baseVer int64, in lifecycle.TokenInput) (*model.Property, error)
	ListForSale(ctx context.Context, actor, id uuid.UUID, baseVer int64, in lifecycle.ListInput) (*model.Property, error)
	Unlist(ctx context.Context, actor, id uuid.UUID, baseVer int64, evidence string) (*model.Property, error)
	Transfer(ctx context.Context, actor, id uuid.UUID, baseVer int64, in lifecycle.TransferInput) (*model.Property, error)
	PlaceBid(ctx context.Context, actor, id uuid.UUID, baseVer int64, in lifecycle.BidInput) (*model.Property, error)

	RecordView(ctx context.Context, id uuid.UUID) (int64, error)
	ToggleFavorite(ctx context.Context, actor, id uuid.UUID) (bool, error)
}

// CreateRequest is a new property plus raw media to upload.
type CreateRequest struct {
	Input     lifecycle.CreateInput
	Images    []media.File
	Documents []media.File
}

// Deps wires the service. Media, Publisher and Metrics are optional.
type Deps struct {
	Repo         repository.PropertyRepository
	Machine      *lifecycle.Machine
	Media        media.Store
	Publisher    notify.Publisher
	Metrics      *metrics.Metrics
	Log          *zap.Logger
	MaxAttempts  int
	StoreTimeout time.Duration
}

type PropertyServiceImpl struct {
	repo         repository.PropertyRepository
	machine      *lifecycle.Machine
	media        media.Store
	pub          notify.Publisher
	metrics      *metrics.Metrics
	log          *zap.Logger
	maxAttempts  int
	storeTimeout time.Duration
	retryBase    time.Duration
}

var _ PropertyService = (*PropertyServiceImpl)(nil)

// NewPropertyService constructs the service, defaulting to 3 commit attempts.
func NewPropertyService(d Deps) *PropertyServiceImpl {
	s := &PropertyServiceImpl{
		repo:         d.Repo,
		machine:      d.Machine,
		media:        d.Media,
		pub:          d.Publisher,
		metrics:      d.Metrics,
		log:          d.Log,
		maxAttempts:  d.MaxAttempts,
		storeTimeout: d.StoreTimeout,
		retryBase:    10 * time.Millisecond,
	}
	if s.machine == nil {
		s.machine = lifecycle.New(lifecycle.Config{})
	}
	if s.pub == nil {
		s.pub = notify.Nop{}
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	if s.maxAttempts <= 0 {
		s.maxAttempts = 3
	}
	return s
}

// Create validates input, uploads media and stores a pending property.
// Uploaded media is removed best-effort if anything after the upload fails.
func (s *PropertyServiceImpl) Create(ctx context.Context, actor uuid.UUID, req CreateRequest) (*model.Property, error) {
	p, err := s.machine.NewProperty(actor, req.Input)
	if err != nil {
		return nil, err
	}
	if (len(req.Images) > 0 || len(req.Documents) > 0) && s.media == nil {
		return nil, errs.Validation("media uploads are not configured")
	}

	var uploaded []string
	cleanup := func() {
		for _, u := range uploaded {
			s.deleteMedia(ctx, u)
		}
	}
	for _, f := range req.Images {
		u, err := s.media.Upload(ctx, media.FolderImages, f)
		if err != nil {
			cleanup()
			return nil, fmt.Errorf("upload image: %w", err)
		}
		uploaded = append(uploaded, u)
		p.Images = append(p.Images, u)
	}
	for _, f := range req.Documents {
		u, err := s.media.Upload(ctx, media.FolderDocuments, f)
		if err != nil {
			cleanup()
			return nil, fmt.Errorf("upload document: %w", err)
		}
		uploaded = append(uploaded, u)
		p.Documents = append(p.Documents, u)
	}

	sctx, cancel := s.storeCtx(ctx)
	defer cancel()
	if err := s.repo.Create(sctx, p); err != nil {
		cleanup()
		return nil, err
	}
	s.log.Info("property created", zap.String("property_id", p.ID.String()), zap.String("owner", actor.String()))
	return &p, nil
}

// Get returns a snapshot by id.
func (s *PropertyServiceImpl) Get(ctx context.Context, id uuid.UUID) (*model.Property, error) {
	if id == uuid.Nil {
		return nil, errs.Validation("empty id")
	}
	sctx, cancel := s.storeCtx(ctx)
	defer cancel()
	return s.repo.Get(sctx, id)
}

// List returns properties matching f.
func (s *PropertyServiceImpl) List(ctx context.Context, f model.Filter) ([]model.Property, error) {
	if f.Status != "" && !f.Status.Valid() {
		return nil, errs.Validation("unknown status %q", f.Status)
	}
	if f.Offset < 0 || f.Limit < 0 {
		return nil, errs.Validation("negative offset/limit")
	}
	sctx, cancel := s.storeCtx(ctx)
	defer cancel()
	return s.repo.List(sctx, f)
}

// ListByOwner returns properties owned by owner.
func (s *PropertyServiceImpl) ListByOwner(ctx context.Context, owner uuid.UUID, offset, limit int) ([]model.Property, error) {
	if owner == uuid.Nil {
		return nil, errs.Validation("empty owner")
	}
	return s.List(ctx, model.Filter{Owner: owner, Offset: offset, Limit: limit})
}

// History returns a page of ledger entries in append order.
func (s *PropertyServiceImpl) History(ctx context.Context, id uuid.UUID, q model.HistoryQuery) ([]model.Event, error) {
	if id == uuid.Nil {
		return nil, errs.Validation("empty id")
	}
	if q.Type != "" && !q.Type.Valid() {
		return nil, errs.Validation("unknown event type %q", q.Type)
	}
	if q.Offset < 0 || q.Limit < 0 {
		return nil, errs.Validation("negative offset/limit")
	}
	sctx, cancel := s.storeCtx(ctx)
	defer cancel()
	return s.repo.History(sctx, id, q)
}

// UpdateDetails amends descriptive fields.
func (s *PropertyServiceImpl) UpdateDetails(
	ctx context.Context, actor, id uuid.UUID, baseVer int64, patch lifecycle.DetailsPatch,
) (*model.Property, error) {
	p, _, err := s.commit(ctx, model.ActionAmend, actor, id, baseVer, func(cur model.Property) (model.Mutation, error) {
		return s.machine.UpdateDetails(cur, patch)
	})
	return p, err
}

// ConfigureAuction amends auction settings.
func (s *PropertyServiceImpl) ConfigureAuction(
	ctx context.Context, actor, id uuid.UUID, baseVer int64, in lifecycle.AuctionSettings,
) (*model.Property, error) {
	p, _, err := s.commit(ctx, model.ActionAmend, actor, id, baseVer, func(cur model.Property) (model.Mutation, error) {
		return s.machine.ConfigureAuction(cur, in)
	})
	return p, err
}

// AttachMedia uploads files and appends their URLs.
func (s *PropertyServiceImpl) AttachMedia(
	ctx context.Context, actor, id uuid.UUID, baseVer int64, kind lifecycle.MediaKind, files []media.File,
) (*model.Property, error) {
	if s.media == nil {
		return nil, errs.Validation("media uploads are not configured")
	}
	if len(files) == 0 {
		return nil, errs.Validation("no files")
	}
	folder := media.FolderImages
	if kind == lifecycle.MediaDocument {
		folder = media.FolderDocuments
	}

	// check ownership before spending an upload
	cur, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := guard.Authorize(*cur, actor, model.ActionAmend); err != nil {
		return nil, err
	}

	urls := make([]string, 0, len(files))
	for _, f := range files {
		u, err := s.media.Upload(ctx, folder, f)
		if err != nil {
			for _, done := range urls {
				s.deleteMedia(ctx, done)
			}
			return nil, fmt.Errorf("upload %s: %w", f.Name, err)
		}
		urls = append(urls, u)
	}

	p, _, err := s.commit(ctx, model.ActionAmend, actor, id, baseVer, func(cur model.Property) (model.Mutation, error) {
		return s.machine.AttachMedia(cur, kind, urls)
	})
	if err != nil {
		for _, u := range urls {
			s.deleteMedia(ctx, u)
		}
		return nil, err
	}
	return p, nil
}

// RemoveMedia detaches url and then deletes the remote object best-effort.
func (s *PropertyServiceImpl) RemoveMedia(
	ctx context.Context, actor, id uuid.UUID, baseVer int64, kind lifecycle.MediaKind, url string,
) (*model.Property, error) {
	p, _, err := s.commit(ctx, model.ActionAmend, actor, id, baseVer, func(cur model.Property) (model.Mutation, error) {
		return s.machine.RemoveMedia(cur, kind, url)
	})
	if err != nil {
		return nil, err
	}
	s.deleteMedia(ctx, url)
	return p, nil
}

// Tokenize records token issuance.
func (s *PropertyServiceImpl) Tokenize(
	ctx context.Context, actor, id uuid.UUID, baseVer int64, in lifecycle.TokenInput,
) (*model.Property, error) {
	return s.transition(ctx, model.ActionTokenize, actor, id, baseVer, func(cur model.Property) (model.Mutation, error) {
		return s.machine.Tokenize(cur, in)
	})
}

// ListForSale lists a tokenized property.
func (s *PropertyServiceImpl) ListForSale(
	ctx context.Context, actor, id uuid.UUID, baseVer int64, in lifecycle.ListInput,
) (*model.Property, error) {
	return s.transition(ctx, model.ActionList, actor, id, baseVer, func(cur model.Property) (model.Mutation, error) {
		return s.machine.List(cur, in)
	})
}

// Unlist withdraws a listed property.
func (s *PropertyServiceImpl) Unlist(
	ctx context.Context, actor, id uuid.UUID, baseVer int64, evidence string,
) (*model.Property, error) {
	return s.transition(ctx, model.ActionUnlist, actor, id, baseVer, func(cur model.Property) (model.Mutation, error) {
		return s.machine.Unlist(cur, evidence)
	})
}

// Transfer moves ownership.
func (s *PropertyServiceImpl) Transfer(
	ctx context.Context, actor, id uuid.UUID, baseVer int64, in lifecycle.TransferInput,
) (*model.Property, error) {
	return s.transition(ctx, model.ActionTransfer, actor, id, baseVer, func(cur model.Property) (model.Mutation, error) {
		return s.machine.Transfer(cur, in)
	})
}

// PlaceBid records a bid by actor.
func (s *PropertyServiceImpl) PlaceBid(
	ctx context.Context, actor, id uuid.UUID, baseVer int64, in lifecycle.BidInput,
) (*model.Property, error) {
	return s.transition(ctx, model.ActionBid, actor, id, baseVer, func(cur model.Property) (model.Mutation, error) {
		return s.machine.PlaceBid(cur, actor, in)
	})
}

// RecordView increments the view counter.
func (s *PropertyServiceImpl) RecordView(ctx context.Context, id uuid.UUID) (int64, error) {
	if id == uuid.Nil {
		return 0, errs.Validation("empty id")
	}
	sctx, cancel := s.storeCtx(ctx)
	defer cancel()
	return s.repo.IncrementViews(sctx, id)
}

// ToggleFavorite flips actor's favorite and reports whether it is now set.
func (s *PropertyServiceImpl) ToggleFavorite(ctx context.Context, actor, id uuid.UUID) (bool, error) {
	if actor == uuid.Nil {
		return false, errs.ErrUnauthorized
	}
	if id == uuid.Nil {
		return false, errs.Validation("empty id")
	}
	sctx, cancel := s.storeCtx(ctx)
	defer cancel()
	return s.repo.ToggleFavorite(sctx, id, actor)
}

// stepFunc is one lifecycle step over the current snapshot.
type stepFunc func(model.Property) (model.Mutation, error)

// transition commits a lifecycle step and publishes the appended event.
func (s *PropertyServiceImpl) transition(
	ctx context.Context, action model.Action, actor, id uuid.UUID, baseVer int64, step stepFunc,
) (*model.Property, error) {
	p, ev, err := s.commit(ctx, action, actor, id, baseVer, step)
	if err != nil {
		return nil, err
	}
	if ev != nil {
		if perr := s.pub.Publish(ctx, p.ID, *ev); perr != nil {
			s.metrics.IncrementSideEffectFailure("publish")
			s.log.Warn("event publish failed",
				zap.String("property_id", p.ID.String()), zap.String("event_id", ev.ID), zap.Error(perr))
		}
	}
	return p, nil
}

// commit runs guard+step inside the store's conditional write. Only version
// conflicts are retried; every other failure is terminal.
func (s *PropertyServiceImpl) commit(
	ctx context.Context, action model.Action, actor, id uuid.UUID, baseVer int64, step stepFunc,
) (*model.Property, *model.Event, error) {
	if id == uuid.Nil {
		return nil, nil, errs.Validation("empty id")
	}
	if baseVer < 0 {
		return nil, nil, errs.Validation("negative base_version")
	}

	var appended *model.Event
	fn := func(cur model.Property) (model.Mutation, error) {
		appended = nil
		if err := guard.Authorize(cur, actor, action); err != nil {
			return model.Mutation{}, err
		}
		mut, err := step(cur)
		if err != nil {
			return model.Mutation{}, err
		}
		appended = mut.Event
		return mut, nil
	}

	attempts := s.maxAttempts
	if baseVer > 0 {
		attempts = 1
	}

	var out *model.Property
	op := func() error {
		ver := baseVer
		if ver == 0 {
			cur, err := s.Get(ctx, id)
			if err != nil {
				return backoff.Permanent(err)
			}
			ver = cur.Version
		}
		sctx, cancel := s.storeCtx(ctx)
		defer cancel()
		p, err := s.repo.Commit(sctx, id, ver, fn)
		switch {
		case err == nil:
			out = p
			return nil
		case errors.Is(err, errs.ErrVersionConflict):
			s.metrics.IncrementConflict(string(action))
			return err
		default:
			return backoff.Permanent(err)
		}
	}

	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = s.retryBase
	eb.MaxInterval = 20 * s.retryBase
	b := backoff.WithContext(backoff.WithMaxRetries(eb, uint64(attempts-1)), ctx)

	start := time.Now()
	err := backoff.Retry(op, b)
	s.metrics.ObserveCommit(string(action), time.Since(start))
	s.metrics.IncrementTransition(string(action), outcome(err))
	if err != nil {
		s.log.Debug("commit rejected",
			zap.String("action", string(action)), zap.String("property_id", id.String()), zap.Error(err))
		return nil, nil, err
	}
	return out, appended, nil
}

func (s *PropertyServiceImpl) storeCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.storeTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.storeTimeout)
}

// deleteMedia removes an object and swallows failures.
func (s *PropertyServiceImpl) deleteMedia(ctx context.Context, url string) {
	if s.media == nil {
		return
	}
	if err := s.media.Delete(ctx, url); err != nil {
		s.metrics.IncrementSideEffectFailure("media_delete")
		s.log.Warn("media delete failed", zap.String("url", url), zap.Error(err))
	}
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, errs.ErrVersionConflict):
		return "conflict"
	case errors.Is(err, errs.ErrNotFound):
		return "not_found"
	case errors.Is(err, errs.ErrForbidden), errors.Is(err, errs.ErrUnauthorized):
		return "forbidden"
	case errors.Is(err, errs.ErrInvalidTransition):
		return "invalid_transition"
	case errors.Is(err, errs.ErrBidRejected):
		return "bid_rejected"
	case errors.Is(err, errs.ErrValidation):
		return "validation"
	default:
		return "error"
	}
}
