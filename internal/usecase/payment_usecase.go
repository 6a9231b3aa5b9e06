package usecase

import (
	"context"
	"errors"

	"diagnostic-center-api/internal/converter"
	"diagnostic-center-api/internal/delivery/dto"
	"diagnostic-center-api/internal/domain/entity"
	"diagnostic-center-api/internal/domain/repository"
	"diagnostic-center-api/internal/infrastructure/payment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidPrice           = errors.New("invalid price provided")
	ErrPaymentGateway         = errors.New("payment processor failed")
	ErrPaymentAlreadyRecorded = errors.New("payment with this transaction id is already recorded")
)

var minorUnits = decimal.NewFromInt(100)

// PaymentGateway creates payment intents with an external processor.
type PaymentGateway interface {
	CreatePaymentIntent(ctx context.Context, amount int64, currency string) (*payment.Intent, error)
}

type PaymentUsecase interface {
	CreateIntent(ctx context.Context, req *dto.CreatePaymentIntentRequest) (*dto.PaymentIntentResponse, error)
	Confirm(ctx context.Context, callerEmail string, req *dto.ConfirmPaymentRequest) (*dto.PaymentResponse, error)
	History(ctx context.Context, email string) ([]dto.PaymentResponse, error)
}

type paymentUsecase struct {
	log             *logrus.Logger
	transactor      repository.Transactor
	appointmentRepo repository.AppointmentRepository
	paymentRepo     repository.PaymentRepository
	gateway         PaymentGateway
	currency        string
}

func NewPaymentUsecase(
	log *logrus.Logger,
	transactor repository.Transactor,
	appointmentRepo repository.AppointmentRepository,
	paymentRepo repository.PaymentRepository,
	gateway PaymentGateway,
	currency string,
) PaymentUsecase {
	return &paymentUsecase{
		log:             log,
		transactor:      transactor,
		appointmentRepo: appointmentRepo,
		paymentRepo:     paymentRepo,
		gateway:         gateway,
		currency:        currency,
	}
}

// AmountInMinorUnits converts a price to integer cents, truncating any
// fraction of a cent.
func AmountInMinorUnits(price decimal.Decimal) int64 {
	return price.Mul(minorUnits).Truncate(0).IntPart()
}

// CreateIntent validates the price before the processor is called.
func (u *paymentUsecase) CreateIntent(ctx context.Context, req *dto.CreatePaymentIntentRequest) (*dto.PaymentIntentResponse, error) {
	amount := AmountInMinorUnits(req.Price)
	if !req.Price.IsPositive() || amount <= 0 {
		return nil, ErrInvalidPrice
	}

	intent, err := u.gateway.CreatePaymentIntent(ctx, amount, u.currency)
	if err != nil {
		u.log.Warnf("Failed to create payment intent for amount %d: %+v", amount, err)
		return nil, ErrPaymentGateway
	}

	u.log.Infof("Payment intent created: id=%s, amount=%d %s", intent.ID, intent.Amount, intent.Currency)
	return &dto.PaymentIntentResponse{
		ClientSecret: intent.ClientSecret,
		Amount:       intent.Amount,
		Currency:     intent.Currency,
	}, nil
}

// Confirm marks the appointment paid and appends the payment record in one
// transaction. Either both writes happen or neither does.
func (u *paymentUsecase) Confirm(ctx context.Context, callerEmail string, req *dto.ConfirmPaymentRequest) (*dto.PaymentResponse, error) {
	if !req.Price.IsPositive() {
		return nil, ErrInvalidPrice
	}
	appointmentID, err := uuid.Parse(req.AppointmentID)
	if err != nil {
		return nil, ErrAppointmentNotFound
	}

	record := &entity.Payment{
		AppointmentID: appointmentID,
		TransactionID: req.TransactionID,
		Email:         req.Email,
		Price:         req.Price,
		Metadata:      entity.JSON(req.Metadata),
	}

	err = u.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		appointment, err := u.appointmentRepo.FindByID(ctx, appointmentID)
		if err != nil {
			return err
		}
		if appointment == nil {
			return ErrAppointmentNotFound
		}
		if appointment.UserEmail != callerEmail {
			return ErrAppointmentNotOwned
		}

		appointment.MarkPaid(req.TransactionID)
		if err := u.appointmentRepo.Update(ctx, appointment); err != nil {
			return err
		}
		return u.paymentRepo.Create(ctx, record)
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrAppointmentNotFound), errors.Is(err, ErrAppointmentNotOwned):
			return nil, err
		case isDuplicateKeyError(err, "transaction_id"):
			return nil, ErrPaymentAlreadyRecorded
		}
		u.log.Warnf("Failed to confirm payment for appointment %s: %+v", appointmentID, err)
		return nil, err
	}

	u.log.Infof("Payment recorded: appointment=%s, transaction=%s, price=%s", appointmentID, record.TransactionID, record.Price)
	return converter.PaymentToResponse(record), nil
}

func (u *paymentUsecase) History(ctx context.Context, email string) ([]dto.PaymentResponse, error) {
	payments, err := u.paymentRepo.FindByEmail(ctx, email)
	if err != nil {
		u.log.Warnf("Failed to find payments for %s: %+v", email, err)
		return nil, err
	}
	return converter.PaymentsToResponses(payments), nil
}
