package integration

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"testing"

	"notes-taking-be/internal/config"
	"notes-taking-be/internal/dto"
	"notes-taking-be/internal/model"
	"notes-taking-be/internal/pkg/logger"
	"notes-taking-be/internal/repository/implementation"
	"notes-taking-be/internal/service"
	"notes-taking-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupService(t *testing.T) service.INoteService {
	t.Helper()

	// Load .env from root
	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	if os.Getenv("DB_HOST") == "" {
		t.Skip("Skipping integration test: DB_HOST not set")
	}

	cfg := config.Load()
	gormDB, err := database.NewGormDB(database.GormConfig{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.Name,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	require.NoError(t, gormDB.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error)
	require.NoError(t, gormDB.AutoMigrate(&model.Note{}))

	testLogger := logger.NewZapLogger(filepath.Join(t.TempDir(), "test.log"), false)
	return service.NewNoteService(implementation.NewNoteRepository(gormDB), testLogger)
}

func noteData(t *testing.T, res *dto.Response) *dto.NoteResponse {
	t.Helper()
	note, ok := res.Data.(*dto.NoteResponse)
	require.True(t, ok, "expected note payload, got %T", res.Data)
	return note
}

func TestNoteRoundTrip(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	marker := uuid.New().String()

	created, err := svc.CreateNote(ctx, &dto.CreateNoteRequest{
		Title: "Integration " + marker,
		Body:  "Original body",
	})
	require.NoError(t, err)
	require.True(t, created.Success)
	id := noteData(t, created).Id
	assert.NotEqual(t, uuid.Nil, id)

	// Fetch returns exactly what was stored.
	fetched, err := svc.FetchNoteById(ctx, id)
	require.NoError(t, err)
	require.True(t, fetched.Success)
	assert.Equal(t, "Integration "+marker, noteData(t, fetched).Title)
	assert.Equal(t, "Original body", noteData(t, fetched).Body)

	// Update only the title, the body must survive.
	before := noteData(t, fetched).UpdatedAt
	title := "Integration updated " + marker
	updated, err := svc.UpdateNote(ctx, id, &dto.UpdateNoteRequest{Title: &title})
	require.NoError(t, err)
	require.True(t, updated.Success)
	assert.Equal(t, title, noteData(t, updated).Title)
	assert.Equal(t, "Original body", noteData(t, updated).Body)
	if before != nil {
		require.NotNil(t, noteData(t, updated).UpdatedAt)
		assert.False(t, noteData(t, updated).UpdatedAt.Before(*before))
	}

	// Hard delete is idempotent in outcome: hit, then miss.
	deleted, err := svc.DeleteNote(ctx, id)
	require.NoError(t, err)
	assert.True(t, deleted.Success)

	again, err := svc.DeleteNote(ctx, id)
	require.NoError(t, err)
	assert.False(t, again.Success)

	gone, err := svc.FetchNoteById(ctx, id)
	require.NoError(t, err)
	assert.False(t, gone.Success)
}

func TestFetchUnknownIdReturnsNotFound(t *testing.T) {
	svc := setupService(t)

	res, err := svc.FetchNoteById(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, "Note not found", res.Message)
}

func TestTitleSearchIsCaseInsensitive(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	marker := uuid.New().String()
	for _, title := range []string{"Pinned " + marker, "PINNED " + marker, "a pinned thing " + marker} {
		res, err := svc.CreateNote(ctx, &dto.CreateNoteRequest{Title: title, Body: "b"})
		require.NoError(t, err)
		require.True(t, res.Success)
	}

	res, err := svc.QueryNotesByTitle(ctx, "pinned "+marker)
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Len(t, res.Data.([]*dto.NoteResponse), 2)

	res, err = svc.QueryNotesByTitle(ctx, marker)
	require.NoError(t, err)
	assert.Len(t, res.Data.([]*dto.NoteResponse), 3)
}

func TestSoftDeleteHidesFromListingOnly(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	created, err := svc.CreateNote(ctx, &dto.CreateNoteRequest{
		Title: "Soft target " + uuid.New().String(),
		Body:  "b",
	})
	require.NoError(t, err)
	id := noteData(t, created).Id

	inPage := func() bool {
		res, err := svc.GetNotes(ctx, 1, 10000)
		require.NoError(t, err)
		for _, n := range res.Data.(*dto.NotePageResponse).Notes {
			if n.Id == id {
				return true
			}
		}
		return false
	}

	assert.True(t, inPage())

	res, err := svc.SoftDeleteNote(ctx, id)
	require.NoError(t, err)
	assert.True(t, res.Success)

	// Gone from the listing, still reachable by id.
	assert.False(t, inPage())

	fetched, err := svc.FetchNoteById(ctx, id)
	require.NoError(t, err)
	require.True(t, fetched.Success)
	assert.True(t, noteData(t, fetched).IsDeleted)

	// Soft-deleting again reports not found.
	res, err = svc.SoftDeleteNote(ctx, id)
	require.NoError(t, err)
	assert.False(t, res.Success)

	// Hard delete still reaches the soft-deleted row.
	res, err = svc.DeleteNote(ctx, id)
	require.NoError(t, err)
	assert.True(t, res.Success)
}

func TestPaginationWindowAndTotal(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	res, err := svc.GetNotes(ctx, 1, 10000)
	require.NoError(t, err)
	total := res.Data.(*dto.NotePageResponse).Total

	for i := 0; i < 7; i++ {
		created, err := svc.CreateNote(ctx, &dto.CreateNoteRequest{
			Title: "Page filler " + uuid.New().String(),
			Body:  "b",
		})
		require.NoError(t, err)
		require.True(t, created.Success)
	}

	res, err = svc.GetNotes(ctx, 2, 5)
	require.NoError(t, err)
	page := res.Data.(*dto.NotePageResponse)
	assert.LessOrEqual(t, len(page.Notes), 5)
	assert.Equal(t, total+7, page.Total)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 5, page.Limit)
}
