package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"github.com/reagan13/beach-management-system-java-sub000/infras/otel"
	"github.com/reagan13/beach-management-system-java-sub000/infras/postgres"
	"github.com/reagan13/beach-management-system-java-sub000/internal/domains/absence/model"
	gDto "github.com/reagan13/beach-management-system-java-sub000/shared/dto"
	gRepo "github.com/reagan13/beach-management-system-java-sub000/shared/repository"
)

type Absence interface {
	Insert(ctx context.Context, model model.Absence) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Absence, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Absence, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Absence]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Absence {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Absence](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
