package console

import (
	"net/http"
	"sort"

	"github.com/JatinKumarRajput/smart-inventory-management-system2/internal/dto"
	"github.com/JatinKumarRajput/smart-inventory-management-system2/internal/model"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

// maxLabelChars caps product names in the low-stock chart; longer names are
// cut hard, no ellipsis.
const maxLabelChars = 15

type statusSegment struct {
	Label string
	Count int64
	Color string
}

// trendRow is one date with a column per movement type; combinations absent
// from the server response are zero.
type trendRow struct {
	Date       string
	Purchase   int64
	Sale       int64
	Adjustment int64
}

type lowStockRow struct {
	Label     string
	Quantity  int
	Threshold int
}

type dashboardView struct {
	Stats      *dto.DashboardStats
	Status     []statusSegment
	Trends     []trendRow
	LowStock   []lowStockRow
	Categories []dto.CategoryCount
	Error      string
}

// Dashboard fetches the five summaries concurrently and renders only when
// all succeed; one failure fails the whole view.
func (con *Console) Dashboard(c *gin.Context) {
	api := con.apiFor(c)
	ctx := c.Request.Context()

	var (
		stats      *dto.DashboardStats
		status     *dto.InventoryStatusSummary
		trends     []dto.TransactionTrendPoint
		lowStock   []dto.LowStockProduct
		categories []dto.CategoryCount
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { stats, err = api.Dashboard.Stats(gctx); return })
	g.Go(func() (err error) { status, err = api.Dashboard.InventoryStatus(gctx); return })
	g.Go(func() (err error) { trends, err = api.Dashboard.TransactionTrends(gctx); return })
	g.Go(func() (err error) { lowStock, err = api.Dashboard.LowStockProducts(gctx); return })
	g.Go(func() (err error) { categories, err = api.Dashboard.CategoryDistribution(gctx); return })

	if err := g.Wait(); err != nil {
		if isUnauthorized(err) {
			con.clearSession(c)
			c.Redirect(http.StatusFound, "/login")
			return
		}
		con.render(c, http.StatusBadGateway, "dashboard.html", "Dashboard",
			dashboardView{Error: "could not load dashboard data"})
		return
	}

	con.render(c, http.StatusOK, "dashboard.html", "Dashboard", dashboardView{
		Stats:      stats,
		Status:     statusSegments(status),
		Trends:     foldTrends(trends),
		LowStock:   lowStockRows(lowStock),
		Categories: categories,
	})
}

func statusSegments(s *dto.InventoryStatusSummary) []statusSegment {
	return []statusSegment{
		{Label: "In Stock", Count: s.InStock, Color: colorInStock},
		{Label: "Low Stock", Count: s.LowStock, Color: colorLowStock},
		{Label: "Out of Stock", Count: s.OutOfStock, Color: colorOutOfStock},
	}
}

// foldTrends collapses (date, type, count) points into one row per date,
// sorted ascending by date.
func foldTrends(points []dto.TransactionTrendPoint) []trendRow {
	byDate := make(map[string]*trendRow)
	for _, p := range points {
		r, ok := byDate[p.Date]
		if !ok {
			r = &trendRow{Date: p.Date}
			byDate[p.Date] = r
		}
		switch p.Type {
		case model.TxPurchase:
			r.Purchase = p.Count
		case model.TxSale:
			r.Sale = p.Count
		case model.TxAdjustment:
			r.Adjustment = p.Count
		}
	}

	rows := make([]trendRow, 0, len(byDate))
	for _, r := range byDate {
		rows = append(rows, *r)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date < rows[j].Date })
	return rows
}

func lowStockRows(products []dto.LowStockProduct) []lowStockRow {
	rows := make([]lowStockRow, 0, len(products))
	for _, p := range products {
		rows = append(rows, lowStockRow{
			Label:     truncateLabel(p.ProductName),
			Quantity:  p.Quantity,
			Threshold: p.LowStockThreshold,
		})
	}
	return rows
}

func truncateLabel(name string) string {
	runes := []rune(name)
	if len(runes) <= maxLabelChars {
		return name
	}
	return string(runes[:maxLabelChars])
}
