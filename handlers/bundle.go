package handlers

// HandlerBundle groups all route handlers so route registration takes a
// single dependency.
type HandlerBundle struct {
	QuoteHandler    *QuoteHandler
	CatalogHandler  *CatalogHandler
	ContentHandler  *ContentHandler
	DiscountHandler *DiscountHandler
	OrderHandler    *OrderHandler
	AdminHandler    *AdminHandler
}
