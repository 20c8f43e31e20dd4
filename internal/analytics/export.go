package analytics

// ProductsSection surfaces the product-level numbers already computed by the
// revenue analyzer under the export document's own key.
type ProductsSection struct {
	TopProducts       []TopProduct      `json:"topProducts"`
	RevenueByCategory []CategoryRevenue `json:"revenueByCategory"`
}

// ExportData is the flat document handed to external PDF/Excel generators.
// Those generators never see Order or Review records, only this.
type ExportData struct {
	Revenue      RevenueReport      `json:"revenue"`
	Orders       OrdersReport       `json:"orders"`
	Customers    CustomerReport     `json:"customers"`
	Products     ProductsSection    `json:"products"`
	Satisfaction SatisfactionReport `json:"satisfaction"`
}

// AssembleExport maps the four analyzer reports into one export document. No
// computation, no extra rounding, no dropped fields.
func AssembleExport(revenue RevenueReport, orders OrdersReport, customers CustomerReport, satisfaction SatisfactionReport) ExportData {
	return ExportData{
		Revenue:   revenue,
		Orders:    orders,
		Customers: customers,
		Products: ProductsSection{
			TopProducts:       revenue.TopProducts,
			RevenueByCategory: revenue.RevenueByCategory,
		},
		Satisfaction: satisfaction,
	}
}
