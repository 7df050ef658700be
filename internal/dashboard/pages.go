package dashboard

import (
	"context"

	"krishi-dashboard/internal/api"
	"krishi-dashboard/internal/common/logger"
	"krishi-dashboard/internal/data"
	"krishi-dashboard/internal/i18n"
	"krishi-dashboard/internal/records"
)

// Pages bundles the six list-page controllers. Farmers load from the
// backend; the other collections ship with the dashboard and load from the
// embedded datasets.
type Pages struct {
	Farmers      *Controller
	Alerts       *Controller
	Schemes      *Controller
	Reports      *Controller
	Outbreaks    *Controller
	MarketPrices *Controller
}

// NewPages wires the controllers to their data sources.
func NewPages(client *api.Client, catalog *i18n.Catalog, pageSize int, log logger.Logger) *Pages {
	fromFixtures := func(typ records.RecordType) LoadFunc {
		return func(ctx context.Context) ([]map[string]interface{}, error) {
			return data.Raw(typ)
		}
	}
	return &Pages{
		Farmers: NewController(records.TypeFarmer, func(ctx context.Context) ([]map[string]interface{}, error) {
			return client.Farmers(ctx)
		}, catalog, pageSize, log),
		Alerts:       NewController(records.TypeAlert, fromFixtures(records.TypeAlert), catalog, pageSize, log),
		Schemes:      NewController(records.TypeScheme, fromFixtures(records.TypeScheme), catalog, pageSize, log),
		Reports:      NewController(records.TypeReport, fromFixtures(records.TypeReport), catalog, pageSize, log),
		Outbreaks:    NewController(records.TypeOutbreak, fromFixtures(records.TypeOutbreak), catalog, pageSize, log),
		MarketPrices: NewController(records.TypeMarketPrice, fromFixtures(records.TypeMarketPrice), catalog, pageSize, log),
	}
}

// LoadAll loads every page collection, returning the first error while still
// attempting the rest. Pages that fail render their error; the others stay
// usable.
func (p *Pages) LoadAll(ctx context.Context) error {
	var first error
	for _, c := range []*Controller{p.Farmers, p.Alerts, p.Schemes, p.Reports, p.Outbreaks, p.MarketPrices} {
		if err := c.Load(ctx); err != nil && first == nil {
			first = err
		}
	}
	return first
}
