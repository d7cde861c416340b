package currency

import (
	"go.uber.org/fx"

	"github.com/bluedot/paylink/internal/config"
)

// Module provides the settlement currency converter.
var Module = fx.Provide(func(cfg *config.Config) *Converter {
	return NewConverter(cfg.SettlementCurrency)
})
