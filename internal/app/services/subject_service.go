package services

import (
	"context"

	"github.com/demiray/campusms/internal/app/models"
	"github.com/demiray/campusms/internal/app/models/dto"
	"github.com/demiray/campusms/internal/app/repositories"
)

// SubjectService handles the subject catalog. Subjects are immutable after
// creation, so there are no update or delete operations.
type SubjectService interface {
	CreateSubject(ctx context.Context, request *dto.CreateSubjectRequest) (*models.Subject, error)
	ListSubjects(ctx context.Context) ([]*models.Subject, error)
}

type subjectService struct {
	subjects SubjectStore
	ids      IDSource
}

// NewSubjectService creates a new SubjectService
func NewSubjectService(subjects SubjectStore, ids IDSource) SubjectService {
	return &subjectService{
		subjects: subjects,
		ids:      ids,
	}
}

func (s *subjectService) CreateSubject(ctx context.Context, request *dto.CreateSubjectRequest) (*models.Subject, error) {
	subjectID, err := s.ids.Next(ctx, repositories.PrefixSubject)
	if err != nil {
		return nil, err
	}

	subject := &models.Subject{
		SubjectID: subjectID,
		Name:      request.Name,
		Credits:   request.Credits,
	}
	if err := s.subjects.Create(ctx, subject); err != nil {
		return nil, err
	}
	return subject, nil
}

func (s *subjectService) ListSubjects(ctx context.Context) ([]*models.Subject, error) {
	return s.subjects.GetAll(ctx)
}
