package domain

import "sync"

// Member is a gym member. The two booking containers preserve insertion order;
// they hold back-references for reporting, ownership of training bookings
// stays with the schedule.
type Member struct {
	ID         string
	CitizenID  string
	Name       string
	Age        int
	Membership MembershipTier

	mu               sync.Mutex
	trainingBookings []*TrainingBooking
	lockerBookings   []*LockerBooking
	transactions     []*Transaction
	trainingPlan     string
}

// NewMember creates a member with the given membership tier
func NewMember(id, citizenID, name string, age int, membership MembershipTier) *Member {
	return &Member{
		ID:         id,
		CitizenID:  citizenID,
		Name:       name,
		Age:        age,
		Membership: membership,
	}
}

func (m *Member) addTrainingBooking(b *TrainingBooking) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.trainingBookings = append(m.trainingBookings, b)
}

func (m *Member) addLockerBooking(b *LockerBooking) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lockerBookings = append(m.lockerBookings, b)
}

// TrainingBookings returns the member's training bookings in insertion order
func (m *Member) TrainingBookings() []*TrainingBooking {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*TrainingBooking, len(m.trainingBookings))
	copy(out, m.trainingBookings)
	return out
}

// LockerBookings returns the member's locker bookings in insertion order
func (m *Member) LockerBookings() []*LockerBooking {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*LockerBooking, len(m.lockerBookings))
	copy(out, m.lockerBookings)
	return out
}

// PendingTrainingBookings returns training bookings awaiting payment.
// Each container is filtered independently by its own status.
func (m *Member) PendingTrainingBookings() []*TrainingBooking {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*TrainingBooking
	for _, b := range m.trainingBookings {
		if b.Status() == StatusPending {
			out = append(out, b)
		}
	}
	return out
}

// PendingLockerBookings returns locker bookings awaiting payment
func (m *Member) PendingLockerBookings() []*LockerBooking {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*LockerBooking
	for _, b := range m.lockerBookings {
		if b.Status() == StatusPending {
			out = append(out, b)
		}
	}
	return out
}

// AddTransaction records a payment transaction on the member
func (m *Member) AddTransaction(t *Transaction) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transactions = append(m.transactions, t)
}

// Transactions returns the member's transactions in insertion order
func (m *Member) Transactions() []*Transaction {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*Transaction, len(m.transactions))
	copy(out, m.transactions)
	return out
}

// SetTrainingPlan attaches a personal plan written by a trainer
func (m *Member) SetTrainingPlan(text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.trainingPlan = text
}

// TrainingPlan returns the member's personal plan, empty if none
func (m *Member) TrainingPlan() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.trainingPlan
}
