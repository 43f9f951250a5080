package domain

// Trainer is a staff member who runs sessions. Its tier drives the session
// price. A trainer owns a ScheduleBook directly, so it can create private
// schedules with no gym class attached.
type Trainer struct {
	ID             string
	CitizenID      string
	Name           string
	Age            int
	Tier           TrainerTier
	Specialization string

	book *ScheduleBook
}

// NewTrainer creates a trainer with its own schedule book
func NewTrainer(id, citizenID, name string, age int, tier TrainerTier, specialization string) *Trainer {
	t := &Trainer{
		ID:             id,
		CitizenID:      citizenID,
		Name:           name,
		Age:            age,
		Tier:           tier,
		Specialization: specialization,
	}
	t.book = NewScheduleBook(t)
	return t
}

// ScheduleOwnerID implements ScheduleOwner
func (t *Trainer) ScheduleOwnerID() string { return t.ID }

// OwnerTrainer implements ScheduleOwner: a trainer is its own default trainer
func (t *Trainer) OwnerTrainer() *Trainer { return t }

// Book returns the trainer's schedule book
func (t *Trainer) Book() *ScheduleBook { return t.book }

// WriteTrainingPlan attaches plan text to a schedule or a member
func (t *Trainer) WriteTrainingPlan(target interface{ SetTrainingPlan(string) }, text string) {
	target.SetTrainingPlan(text)
}
