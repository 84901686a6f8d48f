// Package services содержит бизнес-логику справочника пилотов и команд Формулы-1.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/portfolio-backend/internal/models"
	"github.com/magabrotheeeer/portfolio-backend/internal/storage/repository"
)

// Ошибки, по которым обработчики выбирают HTTP-статус.
var (
	// ErrDriverNotFound пилот с таким ID отсутствует
	ErrDriverNotFound = errors.New("driver not found")
	// ErrTeamNotFound команда с таким ID отсутствует
	ErrTeamNotFound = errors.New("team not found")
	// ErrTeamExists команда с таким именем уже есть
	ErrTeamExists = errors.New("team already exists")
)

// dobLayout формат даты рождения в запросах.
const dobLayout = "02-01-2006"

// F1Repository определяет методы для работы с пилотами и командами в хранилище.
type F1Repository interface {
	// ListTeams возвращает все команды, отсортированные по имени.
	ListTeams(ctx context.Context) ([]*models.Team, error)
	// GetTeam возвращает команду по ID.
	GetTeam(ctx context.Context, id string) (*models.Team, error)
	// CreateTeam добавляет команду и возвращает её ID.
	CreateTeam(ctx context.Context, team models.Team) (string, error)
	// ListDrivers возвращает всех пилотов, отсортированных по номеру.
	ListDrivers(ctx context.Context) ([]*models.Driver, error)
	// GetDriver возвращает пилота по ID.
	GetDriver(ctx context.Context, id string) (*models.Driver, error)
	// CreateDriver добавляет пилота и возвращает его ID.
	CreateDriver(ctx context.Context, driver models.Driver) (string, error)
	// UpdateDriver обновляет пилота по ID и возвращает число обновленных строк.
	UpdateDriver(ctx context.Context, driver models.Driver, id string) (int64, error)
	// DeleteDriver удаляет пилота по ID и возвращает число удаленных строк.
	DeleteDriver(ctx context.Context, id string) (int64, error)
}

// F1Service реализует бизнес-логику справочника.
//
// Команда пилота денормализуется: при создании и обновлении пилота
// текущее состояние команды копируется в его запись и дальше живет
// независимо от изменений самой команды.
type F1Service struct {
	repo F1Repository
	log  *slog.Logger
}

// NewF1Service создает новый экземпляр F1Service.
func NewF1Service(repo F1Repository, log *slog.Logger) *F1Service {
	return &F1Service{
		repo: repo,
		log:  log,
	}
}

// ListTeams возвращает все команды.
func (s *F1Service) ListTeams(ctx context.Context) ([]*models.Team, error) {
	const op = "f1.ListTeams"

	result, err := s.repo.ListTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// CreateTeam добавляет новую команду.
// Для занятого имени возвращает ErrTeamExists.
func (s *F1Service) CreateTeam(ctx context.Context, team models.Team) (*models.Team, error) {
	const op = "f1.CreateTeam"

	id, err := s.repo.CreateTeam(ctx, team)
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return nil, ErrTeamExists
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	team.ID = id

	s.log.Info("created new team", slog.String("id", id), slog.String("name", team.Name))
	return &team, nil
}

// ListDrivers возвращает всех пилотов, отсортированных по номеру.
func (s *F1Service) ListDrivers(ctx context.Context) ([]*models.Driver, error) {
	const op = "f1.ListDrivers"

	result, err := s.repo.ListDrivers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// GetDriver возвращает пилота по ID.
func (s *F1Service) GetDriver(ctx context.Context, id string) (*models.Driver, error) {
	const op = "f1.GetDriver"

	driver, err := s.repo.GetDriver(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrDriverNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return driver, nil
}

// driverFromRequest валидирует ссылку на команду и собирает запись пилота
// со снимком команды.
func (s *F1Service) driverFromRequest(ctx context.Context, req models.DummyDriver) (*models.Driver, error) {
	team, err := s.repo.GetTeam(ctx, req.TeamID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}

	dob, err := time.Parse(dobLayout, req.DOB)
	if err != nil {
		return nil, fmt.Errorf("invalid date of birth: %w", err)
	}

	return &models.Driver{
		Num:         req.Num,
		Code:        req.Code,
		Forename:    req.Forename,
		Surname:     req.Surname,
		DOB:         dob,
		Nationality: req.Nationality,
		URL:         req.URL,
		Team:        *team,
	}, nil
}

// CreateDriver добавляет пилота, снимая текущее состояние его команды.
// Для неизвестной команды возвращает ErrTeamNotFound.
func (s *F1Service) CreateDriver(ctx context.Context, req models.DummyDriver) (*models.Driver, error) {
	const op = "f1.CreateDriver"

	driver, err := s.driverFromRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	id, err := s.repo.CreateDriver(ctx, *driver)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	driver.ID = id

	s.log.Info("created new driver",
		slog.String("id", id),
		slog.String("code", driver.Code))

	return driver, nil
}

// UpdateDriver полностью заменяет запись пилота, заново снимая состояние команды.
//
// Для неизвестного пилота возвращает ErrDriverNotFound,
// для неизвестной команды — ErrTeamNotFound.
func (s *F1Service) UpdateDriver(ctx context.Context, id string, req models.DummyDriver) (*models.Driver, error) {
	const op = "f1.UpdateDriver"

	driver, err := s.driverFromRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	count, err := s.repo.UpdateDriver(ctx, *driver, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if count == 0 {
		return nil, ErrDriverNotFound
	}
	driver.ID = id

	s.log.Info("updated driver", slog.String("id", id))
	return driver, nil
}

// DeleteDriver удаляет пилота по ID.
// Для неизвестного пилота возвращает ErrDriverNotFound.
func (s *F1Service) DeleteDriver(ctx context.Context, id string) error {
	const op = "f1.DeleteDriver"

	count, err := s.repo.DeleteDriver(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if count == 0 {
		return ErrDriverNotFound
	}

	s.log.Info("removed driver", slog.String("id", id))
	return nil
}
