package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/reagan13/beach-management-system-java-sub000/infras/otel"
	"github.com/reagan13/beach-management-system-java-sub000/infras/postgres"
	"github.com/reagan13/beach-management-system-java-sub000/internal/domains/checkinout/model"
	gDto "github.com/reagan13/beach-management-system-java-sub000/shared/dto"
	gRepo "github.com/reagan13/beach-management-system-java-sub000/shared/repository"
)

type CheckInOut interface {
	Insert(ctx context.Context, model model.CheckInOut) error
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.CheckInOut) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.CheckInOut, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.CheckInOut, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, tx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.CheckInOut]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) CheckInOut {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.CheckInOut](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
