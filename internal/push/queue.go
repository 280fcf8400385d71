package push

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -source=queue.go -destination=mocks/mock_queue.go -package=mocks

const pushQueueKey = "push_jobs"

// QueuedPush - фоновое push-задание: одно содержимое на несколько адресов.
// Через очередь идут низкоприоритетные data-only обновления местоположения,
// ответ от быстрого пути они не задерживают.
type QueuedPush struct {
	Tokens  []string `json:"tokens"`
	Payload Payload  `json:"payload"`
}

// QueuePublisher - интерфейс для публикации push-заданий
type QueuePublisher interface {
	Publish(ctx context.Context, job QueuedPush) error
}

// RedisQueuePublisher - реализация QueuePublisher, использующая Redis
type RedisQueuePublisher struct {
	redisClient *redis.Client
}

// NewRedisQueuePublisher создает новый RedisQueuePublisher
func NewRedisQueuePublisher(client *redis.Client) *RedisQueuePublisher {
	return &RedisQueuePublisher{redisClient: client}
}

// Publish публикует push-задание в очередь Redis
func (p *RedisQueuePublisher) Publish(ctx context.Context, job QueuedPush) error {
	if len(job.Tokens) == 0 {
		return nil
	}

	payload, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal push job: %w", err)
	}

	// LPUSH добавляет задание в левую часть списка, воркер забирает справа
	if err := p.redisClient.LPush(ctx, pushQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish push job to Redis: %w", err)
	}
	return nil
}
