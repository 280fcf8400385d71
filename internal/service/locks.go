package service

import (
	"sync"

	"github.com/google/uuid"
)

// ownerLocks сериализует мутации инцидентов одного владельца.
// У владельца не бывает больше одного активного инцидента, поэтому ключ -
// владелец, а не инцидент; инциденты разных владельцев независимы и общей
// блокировки не требуют. Межпроцессная гарантия обеспечивается частичным
// уникальным индексом в БД.
type ownerLocks struct {
	locks sync.Map // uuid.UUID -> *sync.Mutex
}

func (l *ownerLocks) lock(ownerID uuid.UUID) func() {
	v, _ := l.locks.LoadOrStore(ownerID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
