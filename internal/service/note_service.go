package service

import (
	"context"
	"time"

	"notes-taking-be/internal/constant"
	"notes-taking-be/internal/dto"
	"notes-taking-be/internal/entity"
	"notes-taking-be/internal/pkg/logger"
	"notes-taking-be/internal/repository/contract"
	"notes-taking-be/internal/repository/specification"

	"github.com/google/uuid"
)

type INoteService interface {
	CreateNote(ctx context.Context, req *dto.CreateNoteRequest) (*dto.Response, error)
	FetchNoteById(ctx context.Context, id uuid.UUID) (*dto.Response, error)
	QueryNotesByTitle(ctx context.Context, substring string) (*dto.Response, error)
	UpdateNote(ctx context.Context, id uuid.UUID, req *dto.UpdateNoteRequest) (*dto.Response, error)
	DeleteNote(ctx context.Context, id uuid.UUID) (*dto.Response, error)
	GetNotes(ctx context.Context, page, limit int) (*dto.Response, error)
	SoftDeleteNote(ctx context.Context, id uuid.UUID) (*dto.Response, error)
}

type noteService struct {
	notes  contract.NoteRepository
	logger logger.ILogger
}

func NewNoteService(notes contract.NoteRepository, logger logger.ILogger) INoteService {
	return &noteService{
		notes:  notes,
		logger: logger,
	}
}

func (s *noteService) CreateNote(ctx context.Context, req *dto.CreateNoteRequest) (*dto.Response, error) {
	note := entity.Note{
		Id:        uuid.New(),
		Title:     req.Title,
		Body:      req.Body,
		CreatedAt: time.Now(),
	}

	if err := s.notes.Create(ctx, &note); err != nil {
		s.logger.Error("note_service", "error in CreateNote", map[string]interface{}{"error": err.Error()})
		return nil, err
	}

	return dto.SuccessResponse(constant.NoteCreated, toNoteResponse(&note)), nil
}

func (s *noteService) FetchNoteById(ctx context.Context, id uuid.UUID) (*dto.Response, error) {
	// No soft-delete filter here: a soft-deleted note stays reachable by id.
	note, err := s.notes.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		s.logger.Error("note_service", "error in FetchNoteById", map[string]interface{}{"error": err.Error()})
		return nil, err
	}
	if note == nil {
		return dto.NoteNotFound(), nil
	}

	return dto.SuccessResponse(constant.NotesFetched, toNoteResponse(note)), nil
}

func (s *noteService) QueryNotesByTitle(ctx context.Context, substring string) (*dto.Response, error) {
	// Soft-deleted notes are searchable too; an empty result is a success.
	notes, err := s.notes.FindAll(ctx, specification.TitleContains{Substring: substring})
	if err != nil {
		s.logger.Error("note_service", "error in QueryNotesByTitle", map[string]interface{}{"error": err.Error()})
		return nil, err
	}

	return dto.SuccessResponse(constant.NotesFetched, toNoteResponses(notes)), nil
}

func (s *noteService) UpdateNote(ctx context.Context, id uuid.UUID, req *dto.UpdateNoteRequest) (*dto.Response, error) {
	note, err := s.notes.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		s.logger.Error("note_service", "error in UpdateNote", map[string]interface{}{"error": err.Error()})
		return nil, err
	}
	if note == nil {
		return dto.NoteNotFound(), nil
	}

	// Shallow merge over the fetched record: absent fields stay untouched.
	if req.Title != nil {
		note.Title = *req.Title
	}
	if req.Body != nil {
		note.Body = *req.Body
	}
	now := time.Now()
	note.UpdatedAt = &now

	if err := s.notes.Update(ctx, note); err != nil {
		s.logger.Error("note_service", "error in UpdateNote", map[string]interface{}{"error": err.Error()})
		return nil, err
	}

	return dto.SuccessResponse(constant.NoteUpdated, toNoteResponse(note)), nil
}

func (s *noteService) DeleteNote(ctx context.Context, id uuid.UUID) (*dto.Response, error) {
	affected, err := s.notes.Delete(ctx, id)
	if err != nil {
		s.logger.Error("note_service", "error in DeleteNote", map[string]interface{}{"error": err.Error()})
		return nil, err
	}
	if affected == 0 {
		return dto.NoteNotFound(), nil
	}

	return dto.NoteDeleted(), nil
}

func (s *noteService) GetNotes(ctx context.Context, page, limit int) (*dto.Response, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	notes, err := s.notes.FindAll(ctx,
		specification.NotSoftDeleted{},
		specification.Pagination{Limit: limit, Offset: (page - 1) * limit},
	)
	if err != nil {
		s.logger.Error("note_service", "error in GetNotes", map[string]interface{}{"error": err.Error()})
		return nil, err
	}

	// Total counts every non-deleted note, independent of the page window.
	total, err := s.notes.Count(ctx, specification.NotSoftDeleted{})
	if err != nil {
		s.logger.Error("note_service", "error in GetNotes", map[string]interface{}{"error": err.Error()})
		return nil, err
	}

	return dto.SuccessResponse(constant.NotesFetched, &dto.NotePageResponse{
		Notes: toNoteResponses(notes),
		Total: total,
		Page:  page,
		Limit: limit,
	}), nil
}

func (s *noteService) SoftDeleteNote(ctx context.Context, id uuid.UUID) (*dto.Response, error) {
	// Only a live note can be soft-deleted; an already deleted or missing
	// note reports not found.
	note, err := s.notes.FindOne(ctx, specification.ByID{ID: id}, specification.NotSoftDeleted{})
	if err != nil {
		s.logger.Error("note_service", "error in SoftDeleteNote", map[string]interface{}{"error": err.Error()})
		return nil, err
	}
	if note == nil {
		return dto.NoteNotFound(), nil
	}

	note.IsDeleted = true
	now := time.Now()
	note.UpdatedAt = &now

	if err := s.notes.Update(ctx, note); err != nil {
		s.logger.Error("note_service", "error in SoftDeleteNote", map[string]interface{}{"error": err.Error()})
		return nil, err
	}

	return dto.NoteDeleted(), nil
}

func toNoteResponse(n *entity.Note) *dto.NoteResponse {
	return &dto.NoteResponse{
		Id:        n.Id,
		Title:     n.Title,
		Body:      n.Body,
		IsDeleted: n.IsDeleted,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

func toNoteResponses(notes []*entity.Note) []*dto.NoteResponse {
	responses := make([]*dto.NoteResponse, len(notes))
	for i, n := range notes {
		responses[i] = toNoteResponse(n)
	}
	return responses
}
