package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/portfolio-backend/internal/models"
)

// ListTeams возвращает все команды, отсортированные по имени.
func (s *Storage) ListTeams(ctx context.Context) ([]*models.Team, error) {
	const op = "storage.ListTeams"

	query := `SELECT id, num, name, nationality, COALESCE(url, '')
			  FROM teams
			  ORDER BY name`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Team
	for rows.Next() {
		t := &models.Team{}
		if err = rows.Scan(&t.ID, &t.Num, &t.Name, &t.Nationality, &t.URL); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// GetTeam возвращает команду по ID.
func (s *Storage) GetTeam(ctx context.Context, id string) (*models.Team, error) {
	const op = "storage.GetTeam"

	query := `SELECT id, num, name, nationality, COALESCE(url, '')
			  FROM teams
			  WHERE id = $1`
	t := &models.Team{}
	err := s.DB.QueryRowContext(ctx, query, id).Scan(
		&t.ID, &t.Num, &t.Name, &t.Nationality, &t.URL)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return t, nil
}

// CreateTeam сохраняет новую команду и возвращает её ID.
func (s *Storage) CreateTeam(ctx context.Context, team models.Team) (string, error) {
	const op = "storage.CreateTeam"

	var newID string
	query := `INSERT INTO teams (num, name, nationality, url)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id;`
	if err := s.DB.QueryRowContext(ctx, query,
		team.Num, team.Name, team.Nationality, team.URL).Scan(&newID); err != nil {
		if isUniqueViolation(err) {
			return "", fmt.Errorf("%s: %w", op, ErrAlreadyExists)
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

const driverColumns = `id, num, code, forename, surname, dob, nationality, COALESCE(url, ''),
			  team_id, team_num, team_name, team_nationality, COALESCE(team_url, '')`

// ListDrivers возвращает всех пилотов, отсортированных по номеру.
func (s *Storage) ListDrivers(ctx context.Context) ([]*models.Driver, error) {
	const op = "storage.ListDrivers"

	query := `SELECT ` + driverColumns + ` FROM drivers ORDER BY num`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Driver
	for rows.Next() {
		d := &models.Driver{}
		if err = rows.Scan(&d.ID, &d.Num, &d.Code, &d.Forename, &d.Surname,
			&d.DOB, &d.Nationality, &d.URL,
			&d.Team.ID, &d.Team.Num, &d.Team.Name, &d.Team.Nationality, &d.Team.URL); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, d)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// GetDriver возвращает пилота по ID.
func (s *Storage) GetDriver(ctx context.Context, id string) (*models.Driver, error) {
	const op = "storage.GetDriver"

	query := `SELECT ` + driverColumns + ` FROM drivers WHERE id = $1`
	d := &models.Driver{}
	err := s.DB.QueryRowContext(ctx, query, id).Scan(
		&d.ID, &d.Num, &d.Code, &d.Forename, &d.Surname,
		&d.DOB, &d.Nationality, &d.URL,
		&d.Team.ID, &d.Team.Num, &d.Team.Name, &d.Team.Nationality, &d.Team.URL)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return d, nil
}

// CreateDriver сохраняет нового пилота вместе со снимком его команды и возвращает ID.
func (s *Storage) CreateDriver(ctx context.Context, driver models.Driver) (string, error) {
	const op = "storage.CreateDriver"

	var newID string
	query := `INSERT INTO drivers (num, code, forename, surname, dob, nationality, url,
			      team_id, team_num, team_name, team_nationality, team_url)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			  RETURNING id;`
	if err := s.DB.QueryRowContext(ctx, query,
		driver.Num, driver.Code, driver.Forename, driver.Surname, driver.DOB,
		driver.Nationality, driver.URL,
		driver.Team.ID, driver.Team.Num, driver.Team.Name,
		driver.Team.Nationality, driver.Team.URL).Scan(&newID); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// UpdateDriver перезаписывает данные пилота, включая снимок команды,
// и возвращает число обновленных строк.
func (s *Storage) UpdateDriver(ctx context.Context, driver models.Driver, id string) (int64, error) {
	const op = "storage.UpdateDriver"

	query := `UPDATE drivers
			  SET num = $1, code = $2, forename = $3, surname = $4, dob = $5,
			      nationality = $6, url = $7,
			      team_id = $8, team_num = $9, team_name = $10,
			      team_nationality = $11, team_url = $12
			  WHERE id = $13`
	res, err := s.DB.ExecContext(ctx, query,
		driver.Num, driver.Code, driver.Forename, driver.Surname, driver.DOB,
		driver.Nationality, driver.URL,
		driver.Team.ID, driver.Team.Num, driver.Team.Name,
		driver.Team.Nationality, driver.Team.URL, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	count, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}

// DeleteDriver удаляет пилота по ID и возвращает число удаленных строк.
func (s *Storage) DeleteDriver(ctx context.Context, id string) (int64, error) {
	const op = "storage.DeleteDriver"

	query := `DELETE FROM drivers WHERE id = $1`
	res, err := s.DB.ExecContext(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	count, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}
