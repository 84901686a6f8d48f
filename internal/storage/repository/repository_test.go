package repository_test

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/magabrotheeeer/portfolio-backend/internal/migrations"
	"github.com/magabrotheeeer/portfolio-backend/internal/models"
	"github.com/magabrotheeeer/portfolio-backend/internal/storage/repository"
)

func setupStorage(t *testing.T) *repository.Storage {
	t.Helper()

	if testing.Short() {
		t.Skip("integration test requires docker")
	}

	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("user"),
		postgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	})

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	storage, err := repository.New(dsn)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = storage.Close()
	})

	migrationsPath, err := filepath.Abs("../../../migrations")
	require.NoError(t, err)
	require.NoError(t, migrations.Run(storage.DB, migrationsPath))

	return storage
}

func registerTestUser(t *testing.T, storage *repository.Storage, username string) string {
	t.Helper()

	uid, err := storage.RegisterUser(context.Background(), models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "$2a$10$fakefakefakefakefakefak",
		Role:         "user",
	})
	require.NoError(t, err)
	return uid
}

func TestUsers_RegisterAndGet(t *testing.T) {
	storage := setupStorage(t)
	ctx := context.Background()

	uid := registerTestUser(t, storage, "alice")
	require.NotEmpty(t, uid)

	byUID, err := storage.GetUser(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, "alice", byUID.Username)
	assert.Equal(t, "alice@example.com", byUID.Email)
	assert.Equal(t, "user", byUID.Role)
	assert.False(t, byUID.CreatedAt.IsZero())

	byName, err := storage.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, uid, byName.UID)

	byEmail, err := storage.GetUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, uid, byEmail.UID)

	_, err = storage.GetUser(ctx, "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUsers_DuplicateUsername(t *testing.T) {
	storage := setupStorage(t)
	ctx := context.Background()

	registerTestUser(t, storage, "bob")

	_, err := storage.RegisterUser(ctx, models.User{
		Username:     "bob",
		PasswordHash: "hash",
		Role:         "user",
	})
	assert.ErrorIs(t, err, repository.ErrAlreadyExists)
}

func TestUsers_OAuth(t *testing.T) {
	storage := setupStorage(t)
	ctx := context.Background()

	uid, err := storage.CreateOAuthUser(ctx, models.User{
		Username: "Carol",
		Email:    "carol@gmail.com",
		Role:     "user",
		GoogleID: "google-sub-123",
	})
	require.NoError(t, err)

	found, err := storage.GetUserByGoogleID(ctx, "google-sub-123")
	require.NoError(t, err)
	assert.Equal(t, uid, found.UID)
	assert.Empty(t, found.PasswordHash)

	_, err = storage.GetUserByGoogleID(ctx, "google-sub-999")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUsers_Secrets(t *testing.T) {
	storage := setupStorage(t)
	ctx := context.Background()

	first := registerTestUser(t, storage, "first")
	registerTestUser(t, storage, "silent")

	count, err := storage.UpdateSecret(ctx, first, "я боюсь пауков")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// Пользователи без секрета в выдачу не попадают
	users, err := storage.ListUsersWithSecrets(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "first", users[0].Username)
	assert.Equal(t, "я боюсь пауков", users[0].Secret)

	count, err = storage.UpdateSecret(ctx, "00000000-0000-0000-0000-000000000000", "ignored")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestComments_CreateListDelete(t *testing.T) {
	storage := setupStorage(t)
	ctx := context.Background()

	uid := registerTestUser(t, storage, "critic")

	firstID, err := storage.CreateComment(ctx, models.Comment{
		MovieID:    1,
		Text:       "старый комментарий",
		AuthorUID:  uid,
		AuthorName: "critic",
	})
	require.NoError(t, err)

	// Гарантируем различимые created_at
	time.Sleep(10 * time.Millisecond)

	secondID, err := storage.CreateComment(ctx, models.Comment{
		MovieID:    1,
		Text:       "свежий комментарий",
		AuthorUID:  uid,
		AuthorName: "critic",
	})
	require.NoError(t, err)

	_, err = storage.CreateComment(ctx, models.Comment{
		MovieID:    2,
		Text:       "другой фильм",
		AuthorUID:  uid,
		AuthorName: "critic",
	})
	require.NoError(t, err)

	// Новые сначала, чужой фильм не попадает
	comments, err := storage.ListCommentsByMovie(ctx, 1)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, secondID, comments[0].ID)
	assert.Equal(t, firstID, comments[1].ID)
	assert.False(t, comments[0].CreatedAt.Before(comments[1].CreatedAt))

	got, err := storage.GetComment(ctx, firstID)
	require.NoError(t, err)
	assert.Equal(t, "старый комментарий", got.Text)
	assert.Equal(t, uid, got.AuthorUID)

	count, err := storage.DeleteComment(ctx, firstID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = storage.DeleteComment(ctx, firstID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	_, err = storage.GetComment(ctx, firstID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestLikes_LazyZeroRow(t *testing.T) {
	storage := setupStorage(t)

	counter, err := storage.GetLikeCounter(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 7, counter.MovieID)
	assert.Equal(t, 0, counter.Likes)
	assert.Equal(t, 0, counter.Dislikes)
}

func TestLikes_ConcurrentIncrements(t *testing.T) {
	storage := setupStorage(t)
	ctx := context.Background()

	const likes, dislikes = 20, 10

	var wg sync.WaitGroup
	errCh := make(chan error, likes+dislikes)
	for i := 0; i < likes; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := storage.IncrementLikes(ctx, 3)
			errCh <- err
		}()
	}
	for i := 0; i < dislikes; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := storage.IncrementDislikes(ctx, 3)
			errCh <- err
		}()
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		require.NoError(t, err)
	}

	// Ни один голос не должен потеряться
	counter, err := storage.GetLikeCounter(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, likes, counter.Likes)
	assert.Equal(t, dislikes, counter.Dislikes)
}

func createTestTeam(t *testing.T, storage *repository.Storage) *models.Team {
	t.Helper()

	id, err := storage.CreateTeam(context.Background(), models.Team{
		Num:         16,
		Name:        "Scuderia Ferrari",
		Nationality: "ITA",
		URL:         "https://www.ferrari.com/",
	})
	require.NoError(t, err)

	team, err := storage.GetTeam(context.Background(), id)
	require.NoError(t, err)
	return team
}

func TestF1_Teams(t *testing.T) {
	storage := setupStorage(t)
	ctx := context.Background()

	team := createTestTeam(t, storage)
	assert.Equal(t, "Scuderia Ferrari", team.Name)

	_, err := storage.CreateTeam(ctx, models.Team{
		Num:         99,
		Name:        "Scuderia Ferrari",
		Nationality: "ITA",
	})
	assert.ErrorIs(t, err, repository.ErrAlreadyExists)

	teams, err := storage.ListTeams(ctx)
	require.NoError(t, err)
	require.Len(t, teams, 1)

	_, err = storage.GetTeam(ctx, "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestF1_DriverLifecycle(t *testing.T) {
	storage := setupStorage(t)
	ctx := context.Background()

	team := createTestTeam(t, storage)

	driver := models.Driver{
		Num:         16,
		Code:        "LEC",
		Forename:    "Charles",
		Surname:     "Leclerc",
		DOB:         time.Date(1997, time.October, 16, 0, 0, 0, 0, time.UTC),
		Nationality: "MON",
		URL:         "https://en.wikipedia.org/wiki/Charles_Leclerc",
		Team:        *team,
	}
	id, err := storage.CreateDriver(ctx, driver)
	require.NoError(t, err)

	// Снимок команды хранится вместе с пилотом
	got, err := storage.GetDriver(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "LEC", got.Code)
	assert.Equal(t, team.ID, got.Team.ID)
	assert.Equal(t, "Scuderia Ferrari", got.Team.Name)
	assert.Equal(t, 1997, got.DOB.Year())

	driver.Num = 17
	count, err := storage.UpdateDriver(ctx, driver, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	updated, err := storage.GetDriver(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 17, updated.Num)

	drivers, err := storage.ListDrivers(ctx)
	require.NoError(t, err)
	require.Len(t, drivers, 1)

	count, err = storage.DeleteDriver(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = storage.DeleteDriver(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	_, err = storage.GetDriver(ctx, id)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
