package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/reagan13/beach-management-system-java-sub000/infras/otel"
	"github.com/reagan13/beach-management-system-java-sub000/infras/postgres"
	"github.com/reagan13/beach-management-system-java-sub000/internal/domains/audit/model"
	"github.com/reagan13/beach-management-system-java-sub000/shared/constant"
	gDto "github.com/reagan13/beach-management-system-java-sub000/shared/dto"
	"github.com/reagan13/beach-management-system-java-sub000/shared/logger"
	gRepo "github.com/reagan13/beach-management-system-java-sub000/shared/repository"
)

type Audit interface {
	Insert(ctx context.Context, model model.AuditLog) error
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.AuditLog) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.AuditLog, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	Summary(ctx context.Context, filter gDto.FilterGroup) ([]model.ActionSummary, error)
}

type RoomAudit interface {
	Insert(ctx context.Context, model model.RoomAuditLog) error
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.RoomAuditLog) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.RoomAuditLog, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type BookingAudit interface {
	Insert(ctx context.Context, model model.BookingAuditLog) error
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.BookingAuditLog) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.BookingAuditLog, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.AuditLog]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Audit {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.AuditLog](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Summary groups the trail by action so the report endpoint can show
// how many adds, edits and deletes happened in a period.
func (repo *repositoryImpl) Summary(ctx context.Context, filter gDto.FilterGroup) ([]model.ActionSummary, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".audit_log.Summary")
	defer scope.End()

	where, args := repo.BuildWhereClause(ctx, filter)

	query := fmt.Sprintf("SELECT action, COUNT(id) AS total FROM %s %s GROUP BY action ORDER BY total DESC", model.TableName, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var summaries []model.ActionSummary

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return summaries, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	err = prepare.SelectContext(ctx, &summaries, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return summaries, fmt.Errorf("failed to summarize audit logs: %w", err)
	}

	return summaries, nil
}

type roomRepositoryImpl struct {
	gRepo.Repository[model.RoomAuditLog]
}

func NewRoomAudit(db *postgres.Connection, otel otel.Otel) RoomAudit {
	return &roomRepositoryImpl{
		Repository: gRepo.NewRepository[model.RoomAuditLog](model.RoomEntityName, model.RoomTableName, model.FieldID, db, otel),
	}
}

type bookingRepositoryImpl struct {
	gRepo.Repository[model.BookingAuditLog]
}

func NewBookingAudit(db *postgres.Connection, otel otel.Otel) BookingAudit {
	return &bookingRepositoryImpl{
		Repository: gRepo.NewRepository[model.BookingAuditLog](model.BookingEntityName, model.BookingTableName, model.FieldID, db, otel),
	}
}
