package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-auth-service/models"
)

var usersTable = models.User{}.TableName()

func buildFindPasswordHashQuery(b sq.StatementBuilderType, username string) (string, []any, error) {
	return b.Select("password_hash").
		From(usersTable).
		Where(sq.Eq{"username": username}).
		ToSql()
}

func buildSeedUserQuery(b sq.StatementBuilderType, username, passwordHash string) (string, []any, error) {
	return b.Insert(usersTable).
		Columns("username", "password_hash").
		Values(username, passwordHash).
		Suffix("ON CONFLICT (username) DO NOTHING").
		ToSql()
}

func buildListUsernamesQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select("username").
		From(usersTable).
		OrderBy("username").
		ToSql()
}
