package service

import (
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/librarium/backend/internal/model"
	"github.com/librarium/backend/internal/repository"
	"github.com/librarium/backend/pkg/auth"
	"github.com/librarium/backend/pkg/kafka"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type Repository interface {
	repository.CustomerRepository
	repository.CatalogRepository
	repository.LoanRepository
}

type Service struct {
	log      *zap.Logger
	repo     Repository
	tokens   *auth.TokenManager
	producer sarama.SyncProducer
	now      func() time.Time
}

// NewService wires the domain logic. producer may be nil, in which case loan
// events are not published.
func NewService(repo Repository, tokens *auth.TokenManager, producer sarama.SyncProducer, log *zap.Logger) *Service {
	return &Service{
		log:      log,
		repo:     repo,
		tokens:   tokens,
		producer: producer,
		now:      time.Now,
	}
}

// publishLoanEvent is best-effort: the loan transition is already committed,
// a broker hiccup must not fail the request.
func (s *Service) publishLoanEvent(eventType string, loan model.Loan) {
	if s.producer == nil {
		return
	}
	event := model.LoanEvent{
		Type:     eventType,
		LoanID:   loan.ID,
		CustID:   loan.CustID,
		BookID:   loan.BookID,
		Occurred: s.now(),
	}
	value, err := json.Marshal(event)
	if err != nil {
		s.log.Error("marshal loan event", zap.Error(err))
		return
	}
	if _, _, err := s.producer.SendMessage(&sarama.ProducerMessage{
		Topic: kafka.LoanEventsTopic,
		Value: sarama.ByteEncoder(value),
	}); err != nil {
		s.log.Error("publish loan event", zap.String("type", eventType), zap.Error(err))
	}
}
