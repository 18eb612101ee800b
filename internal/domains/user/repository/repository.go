package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/reagan13/beach-management-system-java-sub000/infras/otel"
	"github.com/reagan13/beach-management-system-java-sub000/infras/postgres"
	"github.com/reagan13/beach-management-system-java-sub000/internal/domains/user/model"
	gDto "github.com/reagan13/beach-management-system-java-sub000/shared/dto"
	gRepo "github.com/reagan13/beach-management-system-java-sub000/shared/repository"
)

type User interface {
	Insert(ctx context.Context, model model.User) error
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.User) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.User, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.User, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, tx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, tx *sqlx.Tx, filter gDto.FilterGroup) error
}

// Owner, Customer and Staff store the role-specific rows attached to a
// base user. They are written together with the user row inside one
// transaction at registration time.
type Owner interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.Owner) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Owner, error)
}

type Customer interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.Customer) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Customer, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type Staff interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.Staff) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Staff, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.User]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) User {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.User](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type ownerRepositoryImpl struct {
	gRepo.Repository[model.Owner]
}

func NewOwner(db *postgres.Connection, otel otel.Otel) Owner {
	return &ownerRepositoryImpl{
		Repository: gRepo.NewRepository[model.Owner](model.OwnerEntityName, model.OwnerTableName, model.FieldUserID, db, otel),
	}
}

type customerRepositoryImpl struct {
	gRepo.Repository[model.Customer]
}

func NewCustomer(db *postgres.Connection, otel otel.Otel) Customer {
	return &customerRepositoryImpl{
		Repository: gRepo.NewRepository[model.Customer](model.CustomerEntity, model.CustomerTableName, model.FieldUserID, db, otel),
	}
}

type staffRepositoryImpl struct {
	gRepo.Repository[model.Staff]
}

func NewStaff(db *postgres.Connection, otel otel.Otel) Staff {
	return &staffRepositoryImpl{
		Repository: gRepo.NewRepository[model.Staff](model.StaffEntityName, model.StaffTableName, model.FieldUserID, db, otel),
	}
}
