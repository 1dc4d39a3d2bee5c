package repository

import (
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/vfg2006/ads-console-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-console-api/internal/domain"
)

const userCredentialsTable = "user_credentials uc"

type CredentialRepository interface {
	GetByUserID(userID string) (*domain.UserCredential, error)
	UpdateGoogleTokens(userID, accessToken, refreshToken string, expiresAt time.Time) error
}

type credentialRepository struct {
	conn *postgres.Connection
}

func NewCredentialRepository(conn *postgres.Connection) CredentialRepository {
	return &credentialRepository{
		conn: conn,
	}
}

// GetByUserID retorna as credenciais externas do usuário, ou nil quando o
// usuário não possui registro.
func (r *credentialRepository) GetByUserID(userID string) (*domain.UserCredential, error) {
	credentialSQL, credentialArgs, err := squirrel.
		Select("uc.user_id, uc.facebook_token, uc.google_access_token, uc.google_refresh_token, uc.google_token_expires_at").
		From(userCredentialsTable).
		Where(squirrel.Eq{"uc.user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := r.conn.QueryRow(credentialSQL, credentialArgs...)

	credential := &domain.UserCredential{}
	if err := row.Scan(
		&credential.UserID,
		&credential.FacebookToken,
		&credential.GoogleAccessToken,
		&credential.GoogleRefreshToken,
		&credential.GoogleTokenExpiresAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return credential, nil
}

// UpdateGoogleTokens persiste os tokens renovados. O refresh token é gravado
// mesmo quando igual ao anterior: o Google pode rotacioná-lo a cada renovação.
func (r *credentialRepository) UpdateGoogleTokens(userID, accessToken, refreshToken string, expiresAt time.Time) error {
	updateSQL, updateArgs, err := squirrel.
		Update("user_credentials").
		Set("google_access_token", accessToken).
		Set("google_refresh_token", refreshToken).
		Set("google_token_expires_at", expiresAt).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(updateSQL, updateArgs...)
	return err
}
