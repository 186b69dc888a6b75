package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"tokoaing-store/internal/dto"
	"tokoaing-store/internal/model"
	"tokoaing-store/internal/repository"
	"tokoaing-store/internal/store"
)

type ReviewService interface {
	ListReviews(ctx context.Context) ([]*model.Review, error)
	AddReview(ctx context.Context, req *dto.CreateReviewRequest) (*model.Review, error)
	UpdateReview(ctx context.Context, reviewID string, req *dto.UpdateReviewRequest) error
	DeleteReview(ctx context.Context, reviewID string) error
	ListenToReviews(ctx context.Context, callback func([]*model.Review)) (func(), error)
}

type reviewServiceImpl struct {
	reviewRepo repository.ReviewRepository
	notifier   *store.Notifier
}

func NewReviewService(reviewRepo repository.ReviewRepository, notifier *store.Notifier) ReviewService {
	return &reviewServiceImpl{
		reviewRepo: reviewRepo,
		notifier:   notifier,
	}
}

func (s *reviewServiceImpl) ListReviews(ctx context.Context) ([]*model.Review, error) {
	return s.reviewRepo.List(ctx)
}

func (s *reviewServiceImpl) AddReview(ctx context.Context, req *dto.CreateReviewRequest) (*model.Review, error) {
	review := &model.Review{
		ID:        uuid.NewString(),
		Author:    req.Author,
		Text:      req.Text,
		CreatedAt: time.Now(),
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *reviewServiceImpl) UpdateReview(ctx context.Context, reviewID string, req *dto.UpdateReviewRequest) error {
	updates := req.Updates()
	if len(updates) == 0 {
		return nil
	}
	return s.reviewRepo.Update(ctx, reviewID, updates)
}

func (s *reviewServiceImpl) DeleteReview(ctx context.Context, reviewID string) error {
	return s.reviewRepo.Delete(ctx, reviewID)
}

func (s *reviewServiceImpl) ListenToReviews(ctx context.Context, callback func([]*model.Review)) (func(), error) {
	reviews, err := s.reviewRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	callback(reviews)

	unsubscribe := s.notifier.Subscribe(store.CollectionReviews, func() {
		reviews, err := s.reviewRepo.List(ctx)
		if err != nil {
			log.WithError(err).Warn("review refresh failed, keeping last snapshot")
			return
		}
		callback(reviews)
	})

	return unsubscribe, nil
}
