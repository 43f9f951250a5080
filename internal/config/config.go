package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-GymService/internal/domain"
)

var (
	// ErrLoad возвращается, когда файл конфигурации не удалось прочитать
	ErrLoad = errors.New("config: failed to load config file")

	// ErrInvalid возвращается при некорректных значениях конфигурации
	ErrInvalid = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Logs    LogsConfig    `toml:"logs"`
	Metrics MetricsConfig `toml:"metrics"`
	Policy  PolicyConfig  `toml:"policy"`
	Pricing Pricing       `toml:"pricing"`
	Seed    Seed          `toml:"seed"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования; пустой File означает stdout
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки метрик Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// PolicyConfig поведенческие политики домена
type PolicyConfig struct {
	// CancelCascade: отмена расписания каскадно отменяет его бронирования.
	// По умолчанию false — бронирования сохраняют свой статус.
	CancelCascade bool `toml:"cancel_cascade"`
}

// SessionPrice цены тренировки у тренера одного уровня
type SessionPrice struct {
	Private float64 `toml:"private"`
	Class   float64 `toml:"class"`
}

// DiscountRow скидки (в процентах) для одного типа членства
type DiscountRow struct {
	Booking float64 `toml:"booking"`
	Item    float64 `toml:"item"`
	Locker  float64 `toml:"locker"`
}

// Pricing статические таблицы цен и скидок.
// Отсутствующий ключ — ошибка конфигурации, а не восстановимая ситуация.
type Pricing struct {
	Sessions  map[string]SessionPrice `toml:"sessions"`
	Lockers   map[string]float64      `toml:"lockers"`
	Discounts map[string]DiscountRow  `toml:"discounts"`
}

// SessionPrice возвращает цену занятия по уровню тренера и типу расписания
func (p Pricing) SessionPrice(tier domain.TrainerTier, scheduleType domain.ScheduleType) (float64, bool) {
	row, ok := p.Sessions[string(tier)]
	if !ok {
		return 0, false
	}
	if scheduleType == domain.ScheduleTypeClass {
		return row.Class, true
	}
	return row.Private, true
}

// LockerHourlyRate возвращает почасовую ставку для типа шкафчика
func (p Pricing) LockerHourlyRate(kind domain.LockerKind) (float64, bool) {
	rate, ok := p.Lockers[string(kind)]
	return rate, ok
}

// MemberDiscounts возвращает строку скидок для типа членства
func (p Pricing) MemberDiscounts(tier domain.MembershipTier) (DiscountRow, bool) {
	row, ok := p.Discounts[string(tier)]
	return row, ok
}

// Seed начальное наполнение зала: комнаты со шкафчиками, тренеры и классы.
// Участники и расписания создаются через API.
type Seed struct {
	Rooms    []SeedRoom    `toml:"rooms"`
	Trainers []SeedTrainer `toml:"trainers"`
	Classes  []SeedClass   `toml:"classes"`
}

type SeedRoom struct {
	Name          string `toml:"name"`
	Capacity      int    `toml:"capacity"`
	LockersNormal int    `toml:"lockers_normal"`
	LockersVIP    int    `toml:"lockers_vip"`
}

type SeedTrainer struct {
	CitizenID      string `toml:"citizen_id"`
	Name           string `toml:"name"`
	Age            int    `toml:"age"`
	Tier           string `toml:"tier"`
	Specialization string `toml:"specialization"`
}

type SeedClass struct {
	Name   string `toml:"name"`
	Detail string `toml:"detail"`
}

// Load читает и валидирует конфигурацию из toml файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLoad, path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in (0, 65535], got %d", ErrInvalid, c.Server.HTTPPort)
	}
	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("%w: metrics.path must be set when metrics are enabled", ErrInvalid)
	}
	for tier := range c.Pricing.Sessions {
		if _, err := domain.ParseTrainerTier(tier); err != nil {
			return fmt.Errorf("%w: pricing.sessions: %v", ErrInvalid, err)
		}
	}
	for kind := range c.Pricing.Lockers {
		if _, err := domain.ParseLockerKind(kind); err != nil {
			return fmt.Errorf("%w: pricing.lockers: %v", ErrInvalid, err)
		}
	}
	for tier, row := range c.Pricing.Discounts {
		if _, err := domain.ParseMembershipTier(tier); err != nil {
			return fmt.Errorf("%w: pricing.discounts: %v", ErrInvalid, err)
		}
		if row.Booking < 0 || row.Booking > 100 || row.Item < 0 || row.Item > 100 || row.Locker < 0 || row.Locker > 100 {
			return fmt.Errorf("%w: pricing.discounts[%s]: percentages must be within [0, 100]", ErrInvalid, tier)
		}
	}
	for i, tr := range c.Seed.Trainers {
		if _, err := domain.ParseTrainerTier(tr.Tier); err != nil {
			return fmt.Errorf("%w: seed.trainers[%d]: %v", ErrInvalid, i, err)
		}
	}
	for i, room := range c.Seed.Rooms {
		if room.Capacity <= 0 {
			return fmt.Errorf("%w: seed.rooms[%d]: capacity must be positive", ErrInvalid, i)
		}
	}
	return nil
}
