package impact

import (
	"context"
	"fmt"
	"math"
	"slices"

	"github.com/shopspring/decimal"

	"impactlens/internal/domain"
)

const (
	DeliveryStandard      = "standard"
	DeliveryExpress       = "express"
	DeliveryCarbonNeutral = "carbon_neutral"

	maxCheckoutQuantity = 10
	// kg CO2 one tree absorbs in a year.
	treeAbsorptionKg = 25
)

var (
	checkoutProduct = domain.CheckoutProduct{
		ID:        "eco-tshirt-001",
		Name:      "Organic Cotton T-Shirt",
		Brand:     "EcoThreads",
		Price:     decimal.NewFromInt(35),
		Materials: map[string]float64{"organic_cotton": 95, "recycled_polyester": 5},
		Emissions: domain.ImpactSaving{Conventional: 5.6, Sustainable: 1.8, Saved: 3.8},
		Water:     domain.ImpactSaving{Conventional: 2700, Sustainable: 850, Saved: 1850},
		SDGs:      []string{"SDG 12: Responsible Consumption", "SDG 13: Climate Action"},
	}

	deliveryOptions = []domain.DeliveryOption{
		{ID: DeliveryStandard, Name: "Standard Delivery", Price: decimal.RequireFromString("5.99"), Time: "5-7 business days", Emissions: 2.5},
		{ID: DeliveryExpress, Name: "Express Delivery", Price: decimal.RequireFromString("9.99"), Time: "1-2 business days", Emissions: 4.8},
		{ID: DeliveryCarbonNeutral, Name: "Carbon Neutral Delivery", Price: decimal.RequireFromString("7.99"), Time: "3-5 business days", Emissions: 0},
	}

	offsetPrice = decimal.RequireFromString("1.99")
)

// CheckoutPreview prices the demo product and reports the impact of the
// order. An unknown delivery option falls back to standard delivery. The
// offset neutralizes the delivery emissions and counts them as saved.
func (s *Service) CheckoutPreview(_ context.Context, req domain.CheckoutRequest) (domain.CheckoutPreview, error) {
	qty := req.Quantity
	if qty == 0 {
		qty = 1
	}
	if qty < 1 || qty > maxCheckoutQuantity {
		return domain.CheckoutPreview{}, fmt.Errorf("%w: quantity must be between 1 and %d", domain.ErrInvalid, maxCheckoutQuantity)
	}
	delivery := deliveryOptions[0]
	if i := slices.IndexFunc(deliveryOptions, func(o domain.DeliveryOption) bool { return o.ID == req.Delivery }); i >= 0 {
		delivery = deliveryOptions[i]
	}

	p := domain.CheckoutPreview{
		Product:         checkoutProduct,
		Quantity:        qty,
		Delivery:        delivery,
		DeliveryOptions: slices.Clone(deliveryOptions),
		Offset:          req.Offset,
		Subtotal:        checkoutProduct.Price.Mul(decimal.NewFromInt(int64(qty))),
		DeliveryPrice:   delivery.Price,
		OffsetPrice:     decimal.Zero,
		WaterSaved:      checkoutProduct.Water.Saved * float64(qty),
	}
	saved := checkoutProduct.Emissions.Saved * float64(qty)
	if req.Offset {
		saved += delivery.Emissions
		p.OffsetPrice = offsetPrice
	}
	p.Total = p.Subtotal.Add(p.DeliveryPrice).Add(p.OffsetPrice)
	p.EmissionsSaved = math.Round(saved*100) / 100
	p.TreesEquivalent = math.Round(saved/treeAbsorptionKg*10) / 10
	footprint := checkoutProduct.Emissions.Conventional*float64(qty) + delivery.Emissions
	p.SavingsPercentage = int64(math.Round(saved / footprint * 100))
	return p, nil
}
