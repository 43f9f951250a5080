package sequence

import "sync"

// Sequence потокобезопасный генератор последовательных идентификаторов
// Внедряется в агрегат-владелец вместо глобальных счетчиков
type Sequence struct {
	mu   sync.Mutex
	next int64
}

// New создает последовательность, начинающуюся с 1
func New() *Sequence {
	return &Sequence{next: 1}
}

// Next возвращает следующий номер последовательности
func (s *Sequence) Next() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.next
	s.next++
	return n
}

// Peek возвращает номер, который выдаст следующий вызов Next
func (s *Sequence) Peek() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.next
}
