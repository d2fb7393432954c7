package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/fjod/go_cart/pos/internal/domain"
	"github.com/fjod/go_cart/pos/internal/receipt"
	"github.com/fjod/go_cart/pos/internal/service"
	"github.com/fjod/go_cart/pos/internal/store"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

type seed struct {
	name  string
	price string
	stock int
	opts  []domain.ProductOption
}

func main() {
	log.Println("pos demo starting...")

	traceMode := getEnv("POS_TRACE", "none")
	currency := getEnv("POS_CURRENCY_SYMBOL", "")
	balance := getEnv("POS_CUSTOMER_BALANCE", "1000")

	if traceMode == "stdout" {
		exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
		if err != nil {
			log.Fatalf("Failed to create trace exporter: %v", err)
		}
		tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
		otel.SetTracerProvider(tp)
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tp.Shutdown(ctx); err != nil {
				log.Printf("trace provider shutdown error: %v", err)
			}
		}()
	}

	nextWeek := time.Now().AddDate(0, 0, 7)
	yesterday := time.Now().AddDate(0, 0, -1)
	seeds := []seed{
		{"Cheese", "100", 10, []domain.ProductOption{domain.WithExpiry(nextWeek), domain.WithWeight(decimal.RequireFromString("0.2"))}},
		{"Biscuits", "150", 5, []domain.ProductOption{domain.WithExpiry(nextWeek), domain.WithWeight(decimal.RequireFromString("0.7"))}},
		{"TV", "500", 3, []domain.ProductOption{domain.WithWeight(decimal.RequireFromString("7.5"))}},
		{"Scratch card", "50", 100, nil},
		{"Milk", "12", 20, []domain.ProductOption{domain.WithExpiry(yesterday)}},
	}

	catalog := store.NewMemoryStore()
	defer catalog.Close()

	byName := make(map[string]*domain.Product)
	for _, s := range seeds {
		p, err := domain.NewProduct(s.name, decimal.RequireFromString(s.price), s.stock, s.opts...)
		if err != nil {
			log.Fatalf("Failed to create product %s: %v", s.name, err)
		}
		if err := catalog.Add(p); err != nil {
			log.Fatalf("Failed to register product %s: %v", s.name, err)
		}
		byName[s.name] = p
	}
	log.Printf("Initialized catalog with %d products", len(seeds))

	customerBalance, err := decimal.NewFromString(balance)
	if err != nil {
		log.Fatalf("Invalid POS_CUSTOMER_BALANCE: %v", err)
	}
	customer, err := domain.NewCustomer("Customer", customerBalance)
	if err != nil {
		log.Fatalf("Failed to create customer: %v", err)
	}

	ctx := context.Background()
	svc := service.NewCheckoutService(catalog)
	printer := receipt.NewPrinter(os.Stdout, currency)

	cart := domain.NewCart()
	items := []struct {
		name string
		qty  int
	}{
		{"Cheese", 2},
		{"Biscuits", 1},
		{"Scratch card", 1},
		{"Milk", 1},
	}
	for _, item := range items {
		if err := svc.AddItem(ctx, cart, byName[item.name].ID(), item.qty); err != nil {
			log.Printf("error: %v", err)
		}
	}

	r, err := svc.Checkout(ctx, cart, customer)
	if err != nil {
		log.Printf("error: %v", err)
	} else if err := printer.Print(r); err != nil {
		log.Printf("error: %v", err)
	}

	if _, err := svc.Checkout(ctx, domain.NewCart(), customer); err != nil {
		log.Printf("error: %v", err)
	}

	for _, p := range catalog.List() {
		log.Printf("%s stock = %d", p.Name(), p.Stock())
	}
}
