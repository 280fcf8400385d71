package ws

import (
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Channel - один живой аутентифицированный канал до клиента
type Channel interface {
	Send(event Event) error
}

// Registry отображает аутентифицированную личность на набор ее открытых
// каналов. Состояние целиком производно от активных подключений: процесс
// стартует с пустым реестром, переподключившиеся клиенты регистрируются
// заново. Несколько каналов на личность поддерживаются (несколько устройств).
type Registry struct {
	mu       sync.RWMutex
	channels map[uuid.UUID]map[Channel]struct{}
	owners   map[Channel]uuid.UUID
	logger   *logrus.Logger
}

func NewRegistry(logger *logrus.Logger) *Registry {
	return &Registry{
		channels: make(map[uuid.UUID]map[Channel]struct{}),
		owners:   make(map[Channel]uuid.UUID),
		logger:   logger,
	}
}

// Register добавляет канал в набор каналов личности
func (r *Registry) Register(identity uuid.UUID, ch Channel) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.channels[identity]
	if !ok {
		set = make(map[Channel]struct{})
		r.channels[identity] = set
	}
	set[ch] = struct{}{}
	r.owners[ch] = identity
}

// Unregister удаляет канал из набора личности, которой он принадлежит
func (r *Registry) Unregister(ch Channel) {
	r.mu.Lock()
	defer r.mu.Unlock()

	identity, ok := r.owners[ch]
	if !ok {
		return
	}
	delete(r.owners, ch)

	set := r.channels[identity]
	delete(set, ch)
	if len(set) == 0 {
		delete(r.channels, identity)
	}
}

// SendToIdentity доставляет событие на каждый зарегистрированный канал
// личности. Ноль каналов - не ошибка: личность может быть оффлайн, тогда
// доставка ложится на push. Доставка по каналам независима и неупорядочена;
// сбой записи в один канал не прерывает остальные. Возвращает число каналов,
// принявших событие.
func (r *Registry) SendToIdentity(identity uuid.UUID, event Event) int {
	r.mu.RLock()
	snapshot := make([]Channel, 0, len(r.channels[identity]))
	for ch := range r.channels[identity] {
		snapshot = append(snapshot, ch)
	}
	r.mu.RUnlock()

	delivered := 0
	for _, ch := range snapshot {
		if err := ch.Send(event); err != nil {
			r.logger.WithError(err).WithField("identity", identity).Warn("Failed to send event to channel")
			continue
		}
		delivered++
	}
	return delivered
}

// ChannelCount возвращает число открытых каналов личности
func (r *Registry) ChannelCount(identity uuid.UUID) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.channels[identity])
}
