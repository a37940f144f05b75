package helper

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/zacharvey88/teatime-collective-sub000/database"
	"github.com/zacharvey88/teatime-collective-sub000/model"
)

var marketScheduler *cron.Cron

// StartMarketDateScheduler deactivates past market dates shortly after
// midnight so the public markets page only ever lists upcoming dates.
func StartMarketDateScheduler() {
	marketScheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := marketScheduler.AddFunc("5 0 * * *", ExpirePastMarketDates)
	if err != nil {
		log.Printf("market scheduler init failed: %v", err)
		return
	}

	marketScheduler.Start()
	log.Println("market date scheduler started (daily 00:05)")
}

// marketDateCutoff is the day boundary for the expiry sweep. Dates strictly
// before the cutoff are past; a market happening today stays listed.
func marketDateCutoff(now time.Time) string {
	return now.Format("2006-01-02")
}

// pastMarketDate is the expiry predicate the sweep applies in SQL.
func pastMarketDate(date time.Time, now time.Time) bool {
	return date.Format("2006-01-02") < marketDateCutoff(now)
}

func ExpirePastMarketDates() {
	result := database.DB.Model(&model.MarketDate{}).
		Where("active = ? AND date < ?", true, marketDateCutoff(time.Now())).
		Update("active", false)

	if result.Error != nil {
		log.Printf("market date expiry failed: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("deactivated %d past market dates", result.RowsAffected)
	}
}

func StopMarketDateScheduler() {
	if marketScheduler != nil {
		marketScheduler.Stop()
	}
}
