package service

import (
	"context"
	"fmt"
	"log"

	"github.com/fjod/go_cart/pos/internal/domain"
	"github.com/fjod/go_cart/pos/internal/store"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/fjod/go_cart/pos/internal/service"

type CheckoutService struct {
	products store.ProductStore
	logger   *log.Logger
	tracer   trace.Tracer
}

type Option func(*CheckoutService)

func WithLogger(l *log.Logger) Option {
	return func(s *CheckoutService) { s.logger = l }
}

func WithTracer(t trace.Tracer) Option {
	return func(s *CheckoutService) { s.tracer = t }
}

func NewCheckoutService(products store.ProductStore, opts ...Option) *CheckoutService {
	s := &CheckoutService{
		products: products,
		logger:   log.Default(),
		tracer:   otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddItem resolves the product handle in the catalog and adds it to the cart.
func (s *CheckoutService) AddItem(ctx context.Context, cart *domain.Cart, productID uuid.UUID, quantity int) error {
	_, span := s.tracer.Start(ctx, "CheckoutService.AddItem", trace.WithAttributes(
		attribute.String("cart.id", cart.ID.String()),
		attribute.String("product.id", productID.String()),
		attribute.Int("quantity", quantity),
	))
	defer span.End()

	product, err := s.products.Get(productID)
	if err != nil {
		recordError(span, err)
		return fmt.Errorf("failed to get product %v: %w", productID, err)
	}

	if err := cart.Add(product, quantity); err != nil {
		recordError(span, err)
		s.logger.Printf("add item rejected cart_id = %v product = %v quantity = %v: %v", cart.ID, product.Name(), quantity, err)
		return fmt.Errorf("failed to add %v to cart: %w", product.Name(), err)
	}
	return nil
}

// Checkout runs the cart checkout transaction for the customer.
func (s *CheckoutService) Checkout(ctx context.Context, cart *domain.Cart, customer *domain.Customer) (*domain.Receipt, error) {
	_, span := s.tracer.Start(ctx, "CheckoutService.Checkout", trace.WithAttributes(
		attribute.String("cart.id", cart.ID.String()),
		attribute.String("customer", customer.Name()),
		attribute.Int("cart.lines", cart.Len()),
	))
	defer span.End()

	receipt, err := cart.Checkout(customer)
	if err != nil {
		recordError(span, err)
		s.logger.Printf("checkout failed cart_id = %v customer = %v: %v", cart.ID, customer.Name(), err)
		return nil, fmt.Errorf("checkout failed: %w", err)
	}

	span.SetAttributes(
		attribute.String("checkout.subtotal", receipt.Subtotal.String()),
		attribute.String("checkout.shipping_fee", receipt.ShippingFee.String()),
		attribute.String("checkout.total", receipt.Total.String()),
	)
	s.logger.Printf("checkout completed cart_id = %v customer = %v total = %v remaining_balance = %v",
		cart.ID, customer.Name(), receipt.Total, receipt.RemainingBalance)
	return receipt, nil
}

func recordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
