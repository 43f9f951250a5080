package members

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-GymService/internal/domain"
	gymRepo "github.com/m04kA/SMC-GymService/internal/infra/storage/gym"
	"github.com/m04kA/SMC-GymService/internal/service/members/models"
	"github.com/m04kA/SMC-GymService/pkg/types"
)

// Service управляет участниками и их бронированиями
type Service struct {
	store  GymStore
	logger Logger
}

// NewService создаёт сервис участников
func NewService(store GymStore, logger Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// Register регистрирует нового участника.
//
// Бизнес-логика:
// 1. Валидация входных данных
// 2. Парсинг уровня членства
// 3. Создание участника в хранилище (citizen id должен быть уникален)
func (s *Service) Register(ctx context.Context, req *models.RegisterMemberRequest) (*models.MemberResponse, error) {
	if req.CitizenID == "" || req.Name == "" {
		return nil, fmt.Errorf("%w: citizenId and name are required", ErrInvalidInput)
	}
	if req.Age <= 0 {
		return nil, fmt.Errorf("%w: age must be positive", ErrInvalidInput)
	}

	membership, err := domain.ParseMembershipTier(req.Membership)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	member, err := s.store.CreateMember(req.CitizenID, req.Name, req.Age, membership)
	if err != nil {
		if errors.Is(err, gymRepo.ErrDuplicateCitizenID) {
			s.logger.Warn("[Register] Duplicate citizen id: %s", req.CitizenID)
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCitizenID, req.CitizenID)
		}
		s.logger.Error("[Register] Failed to create member: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("[Register] Registered member %s (%s)", member.ID, member.Membership)
	return models.FromDomainMember(member), nil
}

// GetBookings возвращает все бронирования участника, занятия и шкафчики
func (s *Service) GetBookings(ctx context.Context, memberID string) (*models.MemberBookingsResponse, error) {
	member, err := s.store.MemberByID(memberID)
	if err != nil {
		if errors.Is(err, gymRepo.ErrMemberNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrMemberNotFound, memberID)
		}
		s.logger.Error("[GetBookings] Failed to get member %s: %v", memberID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return models.FromDomainBookings(member), nil
}

// ReserveLocker бронирует первый свободный шкафчик нужного типа в комнате.
//
// Бизнес-логика:
// 1. Валидация и парсинг даты, времени и типа шкафчика
// 2. Поиск участника и комнаты
// 3. Бронирование через комнату, создаётся Pending-бронирование
func (s *Service) ReserveLocker(ctx context.Context, req *models.ReserveLockerRequest) (*models.LockerBookingView, error) {
	kind, err := domain.ParseLockerKind(req.Kind)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", ErrInvalidInput, req.Date)
	}

	startTS, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid start time %q", ErrInvalidInput, req.StartTime)
	}
	endTS, err := types.NewTimeStringFromString(req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid end time %q", ErrInvalidInput, req.EndTime)
	}
	if !startTS.IsBefore(endTS) {
		return nil, fmt.Errorf("%w: start time must be before end time", ErrInvalidInput)
	}

	member, err := s.store.MemberByID(req.MemberID)
	if err != nil {
		if errors.Is(err, gymRepo.ErrMemberNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrMemberNotFound, req.MemberID)
		}
		s.logger.Error("[ReserveLocker] Failed to get member %s: %v", req.MemberID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	room, err := s.store.RoomByID(req.RoomID)
	if err != nil {
		if errors.Is(err, gymRepo.ErrRoomNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrRoomNotFound, req.RoomID)
		}
		s.logger.Error("[ReserveLocker] Failed to get room %s: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	booking, err := room.ReserveLocker(kind, member, startTS.At(date), endTS.At(date), domain.StatusPending)
	if err != nil {
		if errors.Is(err, domain.ErrNoLockerAvailable) {
			s.logger.Warn("[ReserveLocker] No %s locker available in room %s", kind, room.ID)
			return nil, fmt.Errorf("%w: no %s locker in room %s", ErrNoLockerAvailable, kind, room.ID)
		}
		s.logger.Error("[ReserveLocker] Failed to reserve locker: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("[ReserveLocker] Member %s reserved locker %s", member.ID, booking.Locker.ID)
	view := models.FromDomainLockerBooking(booking)
	return &view, nil
}
