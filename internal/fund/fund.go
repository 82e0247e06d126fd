package fund

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("fund not found")

// Category is the closed set of fund families offered by the catalog.
type Category string

const (
	CategoryFPV Category = "FPV"
	CategoryFIC Category = "FIC"
)

// Fund is immutable reference data; it is written only when the catalog is seeded.
type Fund struct {
	ID            string
	Name          string
	MinimumAmount decimal.Decimal
	Category      Category
	Active        bool
	CreatedAt     time.Time
}

// DefaultCatalog returns the funds offered out of the box.
func DefaultCatalog() []*Fund {
	return []*Fund{
		{ID: "1", Name: "FPV_EL CLIENTE_RECAUDADORA", MinimumAmount: decimal.NewFromInt(75000), Category: CategoryFPV, Active: true},
		{ID: "2", Name: "FPV_EL CLIENTE_ECOPETROL", MinimumAmount: decimal.NewFromInt(125000), Category: CategoryFPV, Active: true},
		{ID: "3", Name: "DEUDAPRIVADA", MinimumAmount: decimal.NewFromInt(50000), Category: CategoryFIC, Active: true},
		{ID: "4", Name: "FDO-ACCIONES", MinimumAmount: decimal.NewFromInt(250000), Category: CategoryFIC, Active: true},
		{ID: "5", Name: "FPV_EL CLIENTE_DINAMICA", MinimumAmount: decimal.NewFromInt(100000), Category: CategoryFPV, Active: true},
	}
}
