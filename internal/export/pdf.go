// Package export renders the combined analytics document into
// distributable formats.
package export

import (
	"bytes"
	"fmt"
	"time"

	"resto-analytics-service/internal/analytics"

	"github.com/phpdave11/gofpdf"
)

// RenderPDF lays out the combined dashboard document as a printable report.
func RenderPDF(doc analytics.ExportData, merchantID int64, generatedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(12, 12, 12)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 8, "Business Analytics Report", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(0, 5, fmt.Sprintf("Merchant %d", merchantID), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 5, fmt.Sprintf("Generated %s", generatedAt.UTC().Format("2006-01-02 15:04 MST")), "", 1, "C", false, 0, "")
	pdf.Ln(3)

	writeRevenueSection(pdf, doc.Revenue)
	writeOrdersSection(pdf, doc.Orders)
	writeCustomersSection(pdf, doc.Customers)
	writeProductsSection(pdf, doc.Products)
	writeSatisfactionSection(pdf, doc.Satisfaction)

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func sectionHeader(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(0, 7, title, "B", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.Ln(1)
}

func keyValue(pdf *gofpdf.Fpdf, label, value string) {
	pdf.CellFormat(70, 5, label, "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 5, value, "", 1, "L", false, 0, "")
}

func writeRevenueSection(pdf *gofpdf.Fpdf, revenue analytics.RevenueReport) {
	sectionHeader(pdf, "Revenue")
	keyValue(pdf, "Revenue this month", fmt.Sprintf("%.2f", revenue.RevenueThisMonth))
	keyValue(pdf, "Revenue last month", fmt.Sprintf("%.2f", revenue.RevenueLastMonth))
	keyValue(pdf, "Growth", fmt.Sprintf("%d%%", revenue.GrowthPercentage))
	keyValue(pdf, "Average weekly revenue", fmt.Sprintf("%.2f", revenue.AverageWeeklyRevenue))
	pdf.Ln(1)

	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(0, 5, "Monthly trend", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	for _, month := range revenue.MonthlyGrowth {
		keyValue(pdf, month.Label, fmt.Sprintf("%.2f (%+d%%)", month.Revenue, month.Growth))
	}
	pdf.Ln(3)
}

func writeOrdersSection(pdf *gofpdf.Fpdf, orders analytics.OrdersReport) {
	sectionHeader(pdf, "Orders")
	keyValue(pdf, "Orders this month", fmt.Sprintf("%d", orders.OrdersThisMonth))
	keyValue(pdf, "Orders last month", fmt.Sprintf("%d", orders.OrdersLastMonth))
	keyValue(pdf, "Growth", fmt.Sprintf("%d%%", orders.OrdersGrowth))
	keyValue(pdf, "Average order value", fmt.Sprintf("%.2f", orders.AverageOrderValue))
	if orders.PeakDay != "" {
		keyValue(pdf, "Peak day", orders.PeakDay)
		keyValue(pdf, "Peak hour", fmt.Sprintf("%02d:00", orders.PeakHour))
	}
	keyValue(pdf, "Weekend vs weekday", fmt.Sprintf("%+.1f%%", orders.WeekendVsWeekdayRatio))
	pdf.Ln(3)
}

func writeCustomersSection(pdf *gofpdf.Fpdf, customers analytics.CustomerReport) {
	sectionHeader(pdf, "Customers")
	keyValue(pdf, "Total customers", fmt.Sprintf("%d", customers.TotalCustomers))
	keyValue(pdf, "Active customers", fmt.Sprintf("%d", customers.ActiveCustomers))
	keyValue(pdf, "New this month", fmt.Sprintf("%d", customers.NewCustomersThisMonth))
	keyValue(pdf, "Retention rate", fmt.Sprintf("%.1f%%", customers.RetentionRate))
	pdf.Ln(1)

	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(0, 5, "Segments", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	for _, segment := range customers.Segments {
		keyValue(pdf, segment.Segment,
			fmt.Sprintf("%d customers, avg spend %.2f", segment.Count, segment.AverageSpend))
	}
	pdf.Ln(3)
}

func writeProductsSection(pdf *gofpdf.Fpdf, products analytics.ProductsSection) {
	sectionHeader(pdf, "Products")
	for i, product := range products.TopProducts {
		keyValue(pdf, fmt.Sprintf("%d. %s", i+1, product.Name),
			fmt.Sprintf("%d sold, revenue %.2f", product.Quantity, product.Revenue))
	}
	if len(products.TopProducts) == 0 {
		pdf.CellFormat(0, 5, "No product sales recorded.", "", 1, "L", false, 0, "")
	}
	pdf.Ln(1)

	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(0, 5, "Revenue by category", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	for _, category := range products.RevenueByCategory {
		keyValue(pdf, category.Name, fmt.Sprintf("%.2f (%.1f%%)", category.Revenue, category.Percentage))
	}
	pdf.Ln(3)
}

func writeSatisfactionSection(pdf *gofpdf.Fpdf, satisfaction analytics.SatisfactionReport) {
	sectionHeader(pdf, "Satisfaction")
	keyValue(pdf, "Average rating", fmt.Sprintf("%.1f / 5", satisfaction.AverageRating))
	keyValue(pdf, "Total reviews", fmt.Sprintf("%d", satisfaction.TotalReviews))
	keyValue(pdf, "Change vs last month", fmt.Sprintf("%+.1f", satisfaction.RatingChange))
	pdf.Ln(1)

	for _, bucket := range satisfaction.RatingsDistribution {
		keyValue(pdf, bucket.Label, fmt.Sprintf("%d (%.1f%%)", bucket.Count, bucket.Percentage))
	}
}
