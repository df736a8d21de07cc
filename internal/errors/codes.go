// Package errors provides structured error handling for the engine.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Stock round errors
	CodeStockNotActiveEntity   Code = "STOCK_NOT_ACTIVE_ENTITY"
	CodeStockCannotBuyShares   Code = "STOCK_CANNOT_BUY_SHARES"
	CodeStockCannotSellShares  Code = "STOCK_CANNOT_SELL_SHARES"
	CodeStockCannotPar         Code = "STOCK_CANNOT_PAR"
	CodeStockCannotBuyCompany  Code = "STOCK_CANNOT_BUY_COMPANY"
	CodeStockCorporateSeller   Code = "STOCK_COMPANY_OWNED_BY_CORPORATION"
	CodeStockUnsupportedAction Code = "STOCK_UNSUPPORTED_ACTION"

	// Entity errors
	CodeEntityInsufficientCash Code = "ENTITY_INSUFFICIENT_CASH"
	CodeEntityShareNotOwned    Code = "ENTITY_SHARE_NOT_OWNED"

	// Market errors
	CodeMarketInvalidParPrice Code = "MARKET_INVALID_PAR_PRICE"
	CodeMarketAlreadyParred   Code = "MARKET_ALREADY_PARRED"
	CodeMarketPoolFull        Code = "MARKET_POOL_FULL"

	// Catalog errors
	CodeCatalogInvalidTitle Code = "CATALOG_INVALID_TITLE"
	CodeCatalogPlayerCount  Code = "CATALOG_INVALID_PLAYER_COUNT"
)
