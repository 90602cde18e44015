package userrepository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"gitlab.com/codeplatform.net/internal/core/ports/primary"
	"gitlab.com/codeplatform.net/internal/core/ports/secondary"
	"gitlab.com/codeplatform.net/internal/domain"
	querybuilder "gitlab.com/codeplatform.net/internal/utils"
)

var _ secondary.UserPort = &userRepo{}

type userRepo struct {
	db     *sqlx.DB
	logger primary.Logger
	schema string
}

func New(db *sqlx.DB, logger primary.Logger, schema string) secondary.UserPort {
	return &userRepo{
		db:     db,
		logger: logger,
		schema: schema,
	}
}

func userColumns() []string {
	t := domain.GetUserTable()
	return []string{t.ID, t.Email, t.PasswordHash, t.Name, t.Picture, t.Provider, t.CreatedAt, t.UpdatedAt}
}

func (u userRepo) Create(ctx context.Context, user *domain.Users) (int64, error) {
	userTbl := domain.GetUserTable()
	query, args := querybuilder.NewQueryBuilder(u.schema).Insert(
		userTbl.Email, userTbl.PasswordHash, userTbl.Name, userTbl.Provider,
	).
		Into(userTbl.GetTableName()).
		Values(user.Email, user.PasswordHash, user.Name, user.Provider).
		Returning(userTbl.ID).
		Build()

	var id int64
	if err := u.db.QueryRowxContext(ctx, sqlx.Rebind(sqlx.DOLLAR, query), args...).Scan(&id); err != nil {
		u.logger.Error("Failed to create user", "email", user.Email, "error", err)
		return 0, err
	}
	return id, nil
}

// GetByEmail returns nil without error when no user has the email.
func (u userRepo) GetByEmail(ctx context.Context, email string) (*domain.Users, error) {
	return u.getByEmail(ctx, u.db, email)
}

func (u userRepo) getByEmail(ctx context.Context, q sqlx.QueryerContext, email string) (*domain.Users, error) {
	userTbl := domain.GetUserTable()
	query, args := querybuilder.NewQueryBuilder(u.schema).
		Select(userColumns()...).
		From(userTbl.GetTableName()).
		Where(fmt.Sprintf("%s = ?", userTbl.Email), email).
		Build()

	var user domain.Users
	err := sqlx.GetContext(ctx, q, &user, sqlx.Rebind(sqlx.DOLLAR, query), args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

func (u userRepo) UpsertGoogleUser(ctx context.Context, gUser *domain.GoogleUser) (*domain.Users, error) {
	tx, err := u.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	existing, err := u.getByEmail(ctx, tx, gUser.Email)
	if err != nil {
		return nil, err
	}

	userTbl := domain.GetUserTable()
	picture := nullable(gUser.Picture)
	var user domain.Users
	if existing != nil {
		query := fmt.Sprintf(
			"UPDATE %s.%s SET name = $1, picture = $2, updated_at = NOW() WHERE email = $3 RETURNING %s",
			u.schema, userTbl.GetTableName(), strings.Join(userColumns(), ", "),
		)
		err = tx.GetContext(ctx, &user, query, gUser.Name, picture, gUser.Email)
	} else {
		query, args := querybuilder.NewQueryBuilder(u.schema).
			Insert(userTbl.Email, userTbl.Name, userTbl.Picture, userTbl.Provider).
			Into(userTbl.GetTableName()).
			Values(gUser.Email, gUser.Name, picture, string(domain.ProviderGoogle)).
			Returning(userColumns()...).
			Build()
		err = tx.GetContext(ctx, &user, sqlx.Rebind(sqlx.DOLLAR, query), args...)
	}
	if err != nil {
		u.logger.Error("Failed to upsert google user", "email", gUser.Email, "error", err)
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &user, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
