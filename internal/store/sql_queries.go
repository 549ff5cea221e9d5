package store

import (
	"time"

	"github.com/MKhiriev/with-auth/models"
	sq "github.com/Masterminds/squirrel"
)

// psql builds statements with PostgreSQL $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var userColumns = []string{
	"user_id",
	"name",
	"email",
	"email_verified",
	"role",
	"sex",
	"joined_at",
	"last_login",
}

func buildFindUserByIDQuery(userID int64) (string, []any, error) {
	return psql.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildInsertUserQuery(user models.User) (string, []any, error) {
	return psql.Insert(models.User{}.TableName()).
		Columns("name", "email", "email_verified", "role", "sex").
		Values(user.Name, user.Email, user.EmailVerified, string(user.Role), user.Sex).
		Suffix("RETURNING user_id, joined_at").
		ToSql()
}

func buildTouchUserLastLoginQuery(userID int64, at time.Time) (string, []any, error) {
	return psql.Update(models.User{}.TableName()).
		Set("last_login", at).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildInsertAuthMethodQuery(method models.AuthMethod) (string, []any, error) {
	return psql.Insert(models.AuthMethod{}.TableName()).
		Columns("user_id", "google", "kakao", "password").
		Values(method.UserID, method.Google, method.Kakao, method.Password).
		Suffix("RETURNING auth_method_id").
		ToSql()
}

func buildFindProviderLinkQuery(provider models.Provider, externalID string) (string, []any, error) {
	return psql.Select(
		"pl.link_id",
		"pl.auth_method_id",
		"pl.provider",
		"pl.external_id",
		"pl.last_used",
		"am.user_id",
	).
		From(models.ProviderLink{}.TableName() + " pl").
		Join(models.AuthMethod{}.TableName() + " am ON am.auth_method_id = pl.auth_method_id").
		Where(sq.And{
			sq.Eq{"pl.provider": provider.String()},
			sq.Eq{"pl.external_id": externalID},
		}).
		ToSql()
}

func buildInsertProviderLinkQuery(link models.ProviderLink) (string, []any, error) {
	return psql.Insert(models.ProviderLink{}.TableName()).
		Columns("auth_method_id", "provider", "external_id", "last_used").
		Values(link.AuthMethodID, link.Provider.String(), link.ExternalID, link.LastUsed).
		Suffix("RETURNING link_id").
		ToSql()
}

func buildTouchProviderLinkQuery(linkID int64, at time.Time) (string, []any, error) {
	return psql.Update(models.ProviderLink{}.TableName()).
		Set("last_used", at).
		Where(sq.Eq{"link_id": linkID}).
		ToSql()
}

func buildUsernameExistsQuery(username string) (string, []any, error) {
	return psql.Select("1").
		Prefix("SELECT EXISTS (").
		From(models.PasswordCredential{}.TableName()).
		Where(sq.Eq{"username": username}).
		Suffix(")").
		ToSql()
}

func buildFindPasswordCredentialQuery(username string) (string, []any, error) {
	return psql.Select(
		"pc.credential_id",
		"pc.auth_method_id",
		"pc.username",
		"pc.password_hash",
		"pc.last_changed",
		"pc.last_used",
		"am.user_id",
	).
		From(models.PasswordCredential{}.TableName() + " pc").
		Join(models.AuthMethod{}.TableName() + " am ON am.auth_method_id = pc.auth_method_id").
		Where(sq.Eq{"pc.username": username}).
		ToSql()
}

func buildInsertPasswordCredentialQuery(credential models.PasswordCredential) (string, []any, error) {
	return psql.Insert(models.PasswordCredential{}.TableName()).
		Columns("auth_method_id", "username", "password_hash", "last_changed").
		Values(credential.AuthMethodID, credential.Username, credential.PasswordHash, credential.LastChanged).
		Suffix("RETURNING credential_id").
		ToSql()
}

func buildTouchPasswordCredentialQuery(credentialID int64, at time.Time) (string, []any, error) {
	return psql.Update(models.PasswordCredential{}.TableName()).
		Set("last_used", at).
		Where(sq.Eq{"credential_id": credentialID}).
		ToSql()
}
