package domain

// GymClass is a named class offering (yoga, bike, ...). Every schedule it
// creates carries the class reference, which makes its schedules type "Class".
type GymClass struct {
	ID     string
	Name   string
	Detail string

	book *ScheduleBook
}

// NewGymClass creates a class with its own schedule book
func NewGymClass(id, name, detail string) *GymClass {
	c := &GymClass{ID: id, Name: name, Detail: detail}
	c.book = NewScheduleBook(c)
	return c
}

// ScheduleOwnerID implements ScheduleOwner
func (c *GymClass) ScheduleOwnerID() string { return c.ID }

// OwnerTrainer implements ScheduleOwner: a class has no default trainer, so
// schedule creation must supply one explicitly
func (c *GymClass) OwnerTrainer() *Trainer { return nil }

// Book returns the class schedule book
func (c *GymClass) Book() *ScheduleBook { return c.book }
