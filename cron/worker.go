package cron

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"

	"github.com/Dramaboy123/dramabot9531/config"
	"github.com/Dramaboy123/dramabot9531/services/analytics"
	"github.com/Dramaboy123/dramabot9531/services/notification"
	"github.com/Dramaboy123/dramabot9531/utils"
)

const (
	TypeMorningReport  = "report:morning"
	TypeEveningReport  = "report:evening"
	TypeOccupancyCheck = "occupancy:check"
	TypeWeeklySummary  = "report:weekly"
)

// InitReportWorker starts the async worker and the schedule that drives the
// chat reports.
func InitReportWorker(analyticsSvc analytics.Service, notifier notification.Notifier) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeMorningReport, handleDailyReportTask(analyticsSvc, notifier, TypeMorningReport))
	mux.HandleFunc(TypeEveningReport, handleDailyReportTask(analyticsSvc, notifier, TypeEveningReport))
	mux.HandleFunc(TypeOccupancyCheck, handleOccupancyCheckTask(analyticsSvc, notifier))
	mux.HandleFunc(TypeWeeklySummary, handleWeeklySummaryTask(analyticsSvc, notifier))

	// Start Redis health monitor
	go monitorRedisConnection()

	go registerSchedule(redisOpts)

	// Start async worker with retry logic
	go func() {
		log.Println("[ReportWorker] 🚀 Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReportWorker] ❌ Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReportWorker] ❗ Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

// registerSchedule turns the configured HH:MM report times into cron entries.
func registerSchedule(redisOpts asynq.RedisClientOpt) {
	scheduler := asynq.NewScheduler(redisOpts, &asynq.SchedulerOpts{
		Location: time.Local,
	})

	entries := []struct {
		taskType string
		spec     string
	}{
		{TypeMorningReport, dailySpec(config.AppConfig.MorningReportTime)},
		{TypeOccupancyCheck, dailySpec(config.AppConfig.AfternoonCheckTime)},
		{TypeEveningReport, dailySpec(config.AppConfig.EveningReportTime)},
		{TypeWeeklySummary, weeklySpec(config.AppConfig.MorningReportTime)},
	}

	for _, e := range entries {
		if e.spec == "" {
			log.Printf("[ReportWorker] ⚠️ Skipping %s: no valid schedule time configured", e.taskType)
			continue
		}
		if _, err := scheduler.Register(e.spec, asynq.NewTask(e.taskType, nil)); err != nil {
			log.Printf("[ReportWorker] ❌ Failed to register %s (%s): %v", e.taskType, e.spec, err)
		}
	}

	if err := scheduler.Run(); err != nil {
		log.Printf("[ReportWorker] ❌ Scheduler stopped: %v", err)
	}
}

// dailySpec converts an HH:MM wall-clock time into a cron spec.
func dailySpec(hhmm string) string {
	hour, minute, ok := parseClock(hhmm)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%d %d * * *", minute, hour)
}

// weeklySpec fires at the given wall-clock time on Mondays.
func weeklySpec(hhmm string) string {
	hour, minute, ok := parseClock(hhmm)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%d %d * * 1", minute, hour)
}

func parseClock(hhmm string) (hour, minute int, ok bool) {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, false
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, false
	}
	return hour, minute, true
}

// alreadySent marks the task type as delivered for today and reports whether
// a previous run beat us to it. A dead cache never blocks a report.
func alreadySent(ctx context.Context, taskType string) bool {
	client := utils.GetCacheClient()
	if client == nil {
		return false
	}
	key := utils.LastReportKeyPrefix + taskType + ":" + utils.Today().Format(utils.DateLayout)
	set, err := client.SetNX(ctx, key, time.Now().Format(time.RFC3339), utils.LastReportTTL).Result()
	if err != nil {
		log.Printf("[ReportWorker] ⚠️ Dedupe check failed for %s: %v", taskType, err)
		return false
	}
	return !set
}

func handleDailyReportTask(analyticsSvc analytics.Service, notifier notification.Notifier, taskType string) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		if alreadySent(ctx, taskType) {
			log.Printf("[ReportWorker] ⏭️ %s already delivered today, skipping", taskType)
			return nil
		}

		report, err := analyticsSvc.DailyReport(ctx, time.Time{})
		if err != nil {
			log.Printf("[ReportWorker] ❌ Daily report failed: %v", err)
			return err
		}

		text := notification.RenderDailyReport(config.AppConfig.HotelName, report)
		if err := notifier.SendMessage(ctx, config.AppConfig.TelegramChatID, text); err != nil {
			log.Printf("[ReportWorker] ❌ Failed to send daily report: %v", err)
			return err
		}

		log.Printf("[ReportWorker] ✅ Delivered %s", taskType)
		return nil
	}
}

func handleOccupancyCheckTask(analyticsSvc analytics.Service, notifier notification.Notifier) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		occAlert, err := analyticsSvc.LowOccupancyAlert(ctx)
		if err != nil {
			log.Printf("[ReportWorker] ❌ Occupancy check failed: %v", err)
			return err
		}
		expAlert, err := analyticsSvc.HighExpenseAlert(ctx)
		if err != nil {
			log.Printf("[ReportWorker] ❌ Expense check failed: %v", err)
			return err
		}

		if occAlert == nil && expAlert == nil {
			log.Println("[ReportWorker] 👍 Afternoon check clear, no alerts")
			return nil
		}

		var lines []string
		if occAlert != nil {
			lines = append(lines, occAlert.Message)
			suggestion := analyticsSvc.SuggestPricing(occAlert.Occupancy)
			lines = append(lines, notification.RenderPricingSuggestion(suggestion))
		}
		if expAlert != nil {
			lines = append(lines, expAlert.Message)
		}

		text := strings.Join(lines, "\n\n")
		if err := notifier.SendMessage(ctx, config.AppConfig.TelegramChatID, text); err != nil {
			log.Printf("[ReportWorker] ❌ Failed to send alert: %v", err)
			return err
		}

		log.Println("[ReportWorker] ✅ Delivered afternoon alerts")
		return nil
	}
}

func handleWeeklySummaryTask(analyticsSvc analytics.Service, notifier notification.Notifier) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		if alreadySent(ctx, TypeWeeklySummary) {
			log.Println("[ReportWorker] ⏭️ Weekly summary already delivered today, skipping")
			return nil
		}

		summary, err := analyticsSvc.WeeklySummary(ctx)
		if err != nil {
			log.Printf("[ReportWorker] ❌ Weekly summary failed: %v", err)
			return err
		}

		text := notification.RenderPeriodSummary("Weekly Summary", summary)
		if err := notifier.SendMessage(ctx, config.AppConfig.TelegramChatID, text); err != nil {
			log.Printf("[ReportWorker] ❌ Failed to send weekly summary: %v", err)
			return err
		}

		log.Println("[ReportWorker] ✅ Delivered weekly summary")
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[ReportWorker] ⚠️ Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
