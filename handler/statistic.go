package handler

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/zacharvey88/teatime-collective-sub000/constants"
	"github.com/zacharvey88/teatime-collective-sub000/database"
	"github.com/zacharvey88/teatime-collective-sub000/helper"
	"github.com/zacharvey88/teatime-collective-sub000/model"
	"github.com/zacharvey88/teatime-collective-sub000/utils"
)

// GetAdminStats feeds the dashboard header panels. The panels are
// independent queries, so they run concurrently and the handler waits for
// all of them.
func GetAdminStats(c *fiber.Ctx) error {
	_, isAdmin := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, 403, constants.ADMIN_ONLY, nil)
	}

	db := database.DB
	monthStart := time.Now().AddDate(0, 0, 1-time.Now().Day()).Format("2006-01-02")

	var (
		wg           sync.WaitGroup
		statusCounts []struct {
			Status string `json:"status"`
			Count  int64  `json:"count"`
		}
		pendingCount  int64
		monthRevenue  int64
		customerCount int64
		upcomingDates int64
	)

	wg.Add(5)
	go func() {
		defer wg.Done()
		db.Model(&model.Order{}).Select("status, COUNT(*) as count").Group("status").Scan(&statusCounts)
	}()
	go func() {
		defer wg.Done()
		db.Model(&model.Order{}).Where("status = ?", constants.ORDER_STATUS_NEW).Count(&pendingCount)
	}()
	go func() {
		defer wg.Done()
		db.Model(&model.Order{}).
			Select("COALESCE(SUM(estimated_total_pence), 0)").
			Where("created_at >= ? AND status NOT IN ?", monthStart,
				[]string{constants.ORDER_STATUS_REJECTED, constants.ORDER_STATUS_ARCHIVED}).
			Scan(&monthRevenue)
	}()
	go func() {
		defer wg.Done()
		db.Model(&model.Customer{}).Count(&customerCount)
	}()
	go func() {
		defer wg.Done()
		today := time.Now().Format("2006-01-02")
		db.Model(&model.MarketDate{}).Where("active = ? AND date >= ?", true, today).Count(&upcomingDates)
	}()
	wg.Wait()

	return utils.SuccessResponse(c, 200, fiber.Map{
		"ordersByStatus":      statusCounts,
		"pendingOrders":       pendingCount,
		"monthRevenuePence":   monthRevenue,
		"monthRevenue":        model.Pence(monthRevenue).Format(),
		"customers":           customerCount,
		"upcomingMarketDates": upcomingDates,
	})
}
