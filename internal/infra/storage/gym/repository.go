package gym

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-GymService/internal/domain"
	"github.com/m04kA/SMC-GymService/pkg/sequence"
)

// Repository корень агрегата "зал": реестр комнат, классов, тренеров,
// участников и транзакций. Всё состояние живёт в памяти процесса;
// долговечность — ответственность внешнего слоя.
//
// Repository владеет генераторами последовательных id всех сущностей —
// глобальных счетчиков на уровне пакетов нет.
type Repository struct {
	mu           sync.RWMutex
	rooms        []*domain.Room
	classes      []*domain.GymClass
	trainers     []*domain.Trainer
	members      []*domain.Member
	transactions []*domain.Transaction

	roomSeq   *sequence.Sequence
	classSeq  *sequence.Sequence
	staffSeq  *sequence.Sequence
	memberSeq *sequence.Sequence
}

// NewRepository создает пустой реестр
func NewRepository() *Repository {
	return &Repository{
		roomSeq:   sequence.New(),
		classSeq:  sequence.New(),
		staffSeq:  sequence.New(),
		memberSeq: sequence.New(),
	}
}

// CreateRoom создает комнату и регистрирует её в зале
func (r *Repository) CreateRoom(name string, capacity int) *domain.Room {
	r.mu.Lock()
	defer r.mu.Unlock()
	room := domain.NewRoom(domain.FormatRoomID(r.roomSeq.Next()), name, capacity)
	r.rooms = append(r.rooms, room)
	return room
}

// CreateClass создает класс занятий
func (r *Repository) CreateClass(name, detail string) *domain.GymClass {
	r.mu.Lock()
	defer r.mu.Unlock()
	class := domain.NewGymClass(domain.FormatClassID(r.classSeq.Next()), name, detail)
	r.classes = append(r.classes, class)
	return class
}

// CreateTrainer создает тренера
func (r *Repository) CreateTrainer(citizenID, name string, age int, tier domain.TrainerTier, specialization string) *domain.Trainer {
	r.mu.Lock()
	defer r.mu.Unlock()
	trainer := domain.NewTrainer(domain.FormatStaffID(r.staffSeq.Next()), citizenID, name, age, tier, specialization)
	r.trainers = append(r.trainers, trainer)
	return trainer
}

// CreateMember регистрирует участника; повторный citizen id — ошибка
func (r *Repository) CreateMember(citizenID, name string, age int, membership domain.MembershipTier) (*domain.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.members {
		if m.CitizenID == citizenID {
			return nil, ErrDuplicateCitizenID
		}
	}
	member := domain.NewMember(domain.FormatMemberID(r.memberSeq.Next()), citizenID, name, age, membership)
	r.members = append(r.members, member)
	return member, nil
}

// CreateTransaction создает платежную транзакцию и регистрирует её
// в зале и у участника
func (r *Repository) CreateTransaction(txType string, amount float64, timestamp time.Time, member *domain.Member) *domain.Transaction {
	tx := &domain.Transaction{
		ID:        uuid.NewString(),
		Type:      txType,
		Amount:    amount,
		Timestamp: timestamp,
		MemberID:  member.ID,
	}

	r.mu.Lock()
	r.transactions = append(r.transactions, tx)
	r.mu.Unlock()

	member.AddTransaction(tx)
	return tx
}

// Rooms возвращает снимок списка комнат
func (r *Repository) Rooms() []*domain.Room {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Room, len(r.rooms))
	copy(out, r.rooms)
	return out
}

// Classes возвращает снимок списка классов
func (r *Repository) Classes() []*domain.GymClass {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.GymClass, len(r.classes))
	copy(out, r.classes)
	return out
}

// Trainers возвращает снимок списка тренеров
func (r *Repository) Trainers() []*domain.Trainer {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Trainer, len(r.trainers))
	copy(out, r.trainers)
	return out
}

// Transactions возвращает снимок списка транзакций
func (r *Repository) Transactions() []*domain.Transaction {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Transaction, len(r.transactions))
	copy(out, r.transactions)
	return out
}

// RoomByID ищет комнату по id
func (r *Repository) RoomByID(id string) (*domain.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, room := range r.rooms {
		if room.ID == id {
			return room, nil
		}
	}
	return nil, ErrRoomNotFound
}

// ClassByID ищет класс по id
func (r *Repository) ClassByID(id string) (*domain.GymClass, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, class := range r.classes {
		if class.ID == id {
			return class, nil
		}
	}
	return nil, ErrClassNotFound
}

// TrainerByID ищет тренера по id
func (r *Repository) TrainerByID(id string) (*domain.Trainer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, trainer := range r.trainers {
		if trainer.ID == id {
			return trainer, nil
		}
	}
	return nil, ErrTrainerNotFound
}

// MemberByID ищет участника по id (MEM-XXX)
func (r *Repository) MemberByID(id string) (*domain.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, m := range r.members {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, ErrMemberNotFound
}

// MemberByCitizenID ищет участника по гражданскому номеру
func (r *Repository) MemberByCitizenID(citizenID string) (*domain.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, m := range r.members {
		if m.CitizenID == citizenID {
			return m, nil
		}
	}
	return nil, ErrMemberNotFound
}

// ScheduleByID ищет расписание, обходя сначала классы, затем тренеров
// (у каждого владельца линейный поиск по его списку)
func (r *Repository) ScheduleByID(id string) (*domain.Schedule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, class := range r.classes {
		if s, ok := class.Book().ScheduleByID(id); ok {
			return s, nil
		}
	}
	for _, trainer := range r.trainers {
		if s, ok := trainer.Book().ScheduleByID(id); ok {
			return s, nil
		}
	}
	return nil, ErrScheduleNotFound
}

// ScheduleOwner ищет владельца расписаний по id: класс (CL-*) или тренер
// (STF-*). Ровно один из результатов не nil.
func (r *Repository) ScheduleOwner(id string) (*domain.GymClass, *domain.Trainer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, class := range r.classes {
		if class.ID == id {
			return class, nil, nil
		}
	}
	for _, trainer := range r.trainers {
		if trainer.ID == id {
			return nil, trainer, nil
		}
	}
	return nil, nil, ErrOwnerNotFound
}
