package worker

// retry_cron.go
// Background goroutine that periodically drains the dead letter queues and
// requeues entries for another round of attempts. Entries that have been
// replayed past the total-attempt ceiling are parked in a terminal list
// (dlq:dead:{queue}) for manual inspection.

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	retryTickInterval = 60 * time.Second
	retryBatchSize    = 10

	// maxTotalAttempts is the ceiling across pool retries and DLQ replays.
	maxTotalAttempts = 2 * MaxJobAttempts

	deadPrefix = "dlq:dead:"
)

// StartRetryCron launches a goroutine that ticks every minute and replays
// DLQ entries. It respects the context for graceful shutdown.
func StartRetryCron(ctx context.Context, rdb *redis.Client) {
	go func() {
		ticker := time.NewTicker(retryTickInterval)
		defer ticker.Stop()

		log.Info().Msg("retry_cron: started")

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("retry_cron: shutting down")
				return
			case <-ticker.C:
				for _, queue := range []string{QueueFis, QueueEmail, QueueStokAlarm} {
					replayDLQ(ctx, rdb, queue)
				}
			}
		}
	}()
}

func replayDLQ(ctx context.Context, rdb *redis.Client, queue string) {
	dlqKey := DLQPrefix + queue

	for i := 0; i < retryBatchSize; i++ {
		raw, err := rdb.RPop(ctx, dlqKey).Result()
		if err == redis.Nil {
			return // queue drained
		}
		if err != nil {
			log.Error().Err(err).Str("dlq_key", dlqKey).Msg("retry_cron: failed to pop DLQ entry")
			return
		}

		var entry DLQEntry
		if err := json.Unmarshal([]byte(raw), &entry); err != nil {
			log.Error().Err(err).Str("dlq_key", dlqKey).Msg("retry_cron: invalid DLQ entry — parking")
			_ = rdb.LPush(ctx, deadPrefix+queue, raw).Err()
			continue
		}

		if entry.Attempts >= maxTotalAttempts {
			if err := rdb.LPush(ctx, deadPrefix+queue, raw).Err(); err != nil {
				log.Error().Err(err).Str("queue", queue).Msg("retry_cron: failed to park dead entry")
			}
			log.Warn().
				Str("queue", queue).
				Str("job_type", entry.JobType).
				Int("attempts", entry.Attempts).
				Msg("retry_cron: entry exhausted all attempts — parked")
			continue
		}

		job := Job{Type: entry.JobType, Payload: entry.Payload, Attempts: entry.Attempts}
		encoded, err := json.Marshal(job)
		if err != nil {
			log.Error().Err(err).Str("queue", queue).Msg("retry_cron: failed to encode replay job")
			continue
		}
		if err := rdb.LPush(ctx, queue, encoded).Err(); err != nil {
			log.Error().Err(err).Str("queue", queue).Msg("retry_cron: failed to requeue entry")
			continue
		}
		log.Info().
			Str("queue", queue).
			Str("job_type", entry.JobType).
			Int("attempts", entry.Attempts).
			Msg("retry_cron: DLQ entry requeued")
	}
}
