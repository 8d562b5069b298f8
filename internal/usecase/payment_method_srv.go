package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/RajaPrasetya/pos-server-api/internal/data/entity"
	"github.com/RajaPrasetya/pos-server-api/internal/data/repository"
	"github.com/RajaPrasetya/pos-server-api/internal/dto/request"
	"github.com/RajaPrasetya/pos-server-api/internal/dto/response"

	"go.uber.org/zap"
)

type PaymentMethodService interface {
	CreatePaymentMethod(ctx context.Context, req *request.CreatePaymentMethodRequest) (*response.PaymentMethodResponse, error)
	GetAllPaymentMethods(ctx context.Context) ([]*response.PaymentMethodResponse, error)
	GetPaymentMethodByID(ctx context.Context, id int64) (*response.PaymentMethodResponse, error)
	UpdatePaymentMethod(ctx context.Context, id int64, req *request.CreatePaymentMethodRequest) (*response.PaymentMethodResponse, error)
	DeletePaymentMethod(ctx context.Context, id int64) error
}

type paymentMethodService struct {
	paymentMethodRepo repository.PaymentMethodRepository
	log               *zap.Logger
}

func NewPaymentMethodService(paymentMethodRepo repository.PaymentMethodRepository, log *zap.Logger) PaymentMethodService {
	return &paymentMethodService{
		paymentMethodRepo: paymentMethodRepo,
		log:               log.With(zap.String("service", "payment_method")),
	}
}

func (s *paymentMethodService) CreatePaymentMethod(ctx context.Context, req *request.CreatePaymentMethodRequest) (*response.PaymentMethodResponse, error) {
	existing, err := s.paymentMethodRepo.FindByName(ctx, req.PaymentMethod)
	if err != nil {
		return nil, fmt.Errorf("check payment method name: %w", err)
	}
	if existing != nil {
		return nil, ErrPaymentMethodNameExists
	}

	now := time.Now()
	paymentMethod := &entity.PaymentMethod{
		PaymentMethod: req.PaymentMethod,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.paymentMethodRepo.Create(ctx, paymentMethod); err != nil {
		return nil, fmt.Errorf("create payment method: %w", err)
	}

	s.log.Info("Payment method created",
		zap.Int64("id_payment", paymentMethod.IDPayment),
		zap.String("payment_method", paymentMethod.PaymentMethod),
	)

	return response.PaymentMethodToResponse(paymentMethod), nil
}

func (s *paymentMethodService) GetAllPaymentMethods(ctx context.Context) ([]*response.PaymentMethodResponse, error) {
	paymentMethods, err := s.paymentMethodRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get payment methods: %w", err)
	}

	responses := make([]*response.PaymentMethodResponse, len(paymentMethods))
	for i, paymentMethod := range paymentMethods {
		responses[i] = response.PaymentMethodToResponse(paymentMethod)
	}

	return responses, nil
}

func (s *paymentMethodService) GetPaymentMethodByID(ctx context.Context, id int64) (*response.PaymentMethodResponse, error) {
	paymentMethod, err := s.paymentMethodRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find payment method: %w", err)
	}
	if paymentMethod == nil {
		return nil, ErrPaymentMethodNotFound
	}

	return response.PaymentMethodToResponse(paymentMethod), nil
}

func (s *paymentMethodService) UpdatePaymentMethod(ctx context.Context, id int64, req *request.CreatePaymentMethodRequest) (*response.PaymentMethodResponse, error) {
	paymentMethod, err := s.paymentMethodRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find payment method: %w", err)
	}
	if paymentMethod == nil {
		return nil, ErrPaymentMethodNotFound
	}

	other, err := s.paymentMethodRepo.FindByName(ctx, req.PaymentMethod)
	if err != nil {
		return nil, fmt.Errorf("check payment method name: %w", err)
	}
	if other != nil && other.IDPayment != id {
		return nil, ErrPaymentMethodNameExists
	}

	paymentMethod.PaymentMethod = req.PaymentMethod
	paymentMethod.UpdatedAt = time.Now()

	if err := s.paymentMethodRepo.Update(ctx, paymentMethod); err != nil {
		return nil, fmt.Errorf("update payment method: %w", err)
	}

	s.log.Info("Payment method updated", zap.Int64("id_payment", id))

	return response.PaymentMethodToResponse(paymentMethod), nil
}

func (s *paymentMethodService) DeletePaymentMethod(ctx context.Context, id int64) error {
	paymentMethod, err := s.paymentMethodRepo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find payment method: %w", err)
	}
	if paymentMethod == nil {
		return ErrPaymentMethodNotFound
	}

	if err := s.paymentMethodRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete payment method: %w", err)
	}

	s.log.Info("Payment method deleted", zap.Int64("id_payment", id))
	return nil
}
