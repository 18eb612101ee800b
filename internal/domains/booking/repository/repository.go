package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/reagan13/beach-management-system-java-sub000/infras/otel"
	"github.com/reagan13/beach-management-system-java-sub000/infras/postgres"
	"github.com/reagan13/beach-management-system-java-sub000/internal/domains/booking/model"
	"github.com/reagan13/beach-management-system-java-sub000/shared/constant"
	gDto "github.com/reagan13/beach-management-system-java-sub000/shared/dto"
	gRepo "github.com/reagan13/beach-management-system-java-sub000/shared/repository"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	GetActiveByRoom(ctx context.Context, roomNumber string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, tx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, tx *sqlx.Tx, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetActiveByRoom returns the pending and confirmed bookings of a room.
// These are the rows that block new stays and keep the room occupied.
func (repo *repositoryImpl) GetActiveByRoom(ctx context.Context, roomNumber string) ([]model.Booking, error) {
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldRoomNumber, Value: roomNumber, Operator: gDto.FilterOperatorEq},
			gDto.Filter{Field: model.FieldStatus, Value: []string{constant.BookingStatusPending, constant.BookingStatusConfirmed}, Operator: gDto.FilterOperatorIn},
		},
		Operator: gDto.FilterGroupOperatorAnd,
	}

	return repo.GetAll(ctx, gDto.QueryParams{}, filter) //nolint:wrapcheck
}
