package push

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/guardline/sos_guardian_system/internal/config"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Worker - фоновый обработчик очереди push-заданий
type Worker struct {
	redisClient *redis.Client
	dispatcher  Dispatcher
	logger      *logrus.Logger
	cfg         *config.Config
}

// NewWorker создает новый Worker
func NewWorker(redisClient *redis.Client, dispatcher Dispatcher, logger *logrus.Logger, cfg *config.Config) *Worker {
	return &Worker{
		redisClient: redisClient,
		dispatcher:  dispatcher,
		logger:      logger,
		cfg:         cfg,
	}
}

// Start запускает горутину для обработки очереди push-заданий
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Starting push worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping push worker.")
				return
			default:
				// BRPOP - блокирующее извлечение из правой части списка (очереди)
				// 0 означает бесконечное ожидание
				result, err := w.redisClient.BRPop(ctx, 0, pushQueueKey).Result()
				if err != nil {
					if errors.Is(err, context.Canceled) {
						continue // Контекст отменен, но не ошибка Redis
					}
					w.logger.WithError(err).Error("Failed to pop push job from Redis")
					time.Sleep(w.cfg.PushSendTimeout) // Ждем перед повторной попыткой
					continue
				}

				// result[0] - ключ, result[1] - значение
				var job QueuedPush
				if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
					w.logger.WithError(err).Error("Failed to unmarshal push job from Redis")
					continue
				}

				w.processJob(ctx, job)
			}
		}
	}()
}

// processJob рассылает задание на все адреса параллельно, по одной попытке на
// адрес. Доставка best-effort: сбои только логируются, повторов нет.
func (w *Worker) processJob(ctx context.Context, job QueuedPush) {
	log := w.logger.WithField("tokens", len(job.Tokens))
	log.Debug("Processing push job...")

	var wg sync.WaitGroup
	for _, token := range job.Tokens {
		wg.Add(1)
		go func(token string) {
			defer wg.Done()

			sendCtx, cancel := context.WithTimeout(ctx, w.cfg.PushSendTimeout)
			defer cancel()

			if result := w.dispatcher.Send(sendCtx, token, job.Payload); !result.Success {
				log.WithField("error", result.ErrorMessage).Warn("Push delivery failed")
			}
		}(token)
	}
	wg.Wait()
}
