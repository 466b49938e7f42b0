package service

import (
	"context"

	"newshub/internal/httpapi/models"
	"newshub/internal/httpapi/repository"
)

type TopicService interface {
	ListTopics(ctx context.Context) ([]models.Topic, error)
}

type topicService struct {
	topicRepo repository.TopicRepository
}

func NewTopicService(topicRepo repository.TopicRepository) TopicService {
	return &topicService{topicRepo: topicRepo}
}

func (s *topicService) ListTopics(ctx context.Context) ([]models.Topic, error) {
	return s.topicRepo.List(ctx)
}
