// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SH Pixel Authors

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/shpixel/gallery/internal/logger"
	"github.com/shpixel/gallery/migrations"
	"github.com/shpixel/gallery/models"
)

//go:generate mockgen -source=local.go -destination=../mock/local_store_mock.go -package=mock

// LocalStore is the sqlite-backed cache on the client device. It persists the
// session (user record + bearer token), the last known photo/album collections
// and the view preferences so the application can start offline and skip the
// login screen while the stored token is still valid.
//
// The cache is best-effort: callers log write failures and continue, the
// remote service stays authoritative.
type LocalStore interface {
	SaveSession(ctx context.Context, user models.User, token string) error
	Session(ctx context.Context) (models.User, string, error)
	ClearSession(ctx context.Context) error

	SavePhotos(ctx context.Context, photos []models.Photo) error
	Photos(ctx context.Context) ([]models.Photo, error)
	SaveAlbums(ctx context.Context, albums []models.Album) error
	Albums(ctx context.Context) ([]models.Album, error)

	SavePref(ctx context.Context, key, value string) error
	Prefs(ctx context.Context) (map[string]string, error)

	Close() error
}

type localStore struct {
	db     *sql.DB
	sb     sq.StatementBuilderType
	logger *logger.Logger
}

// NewLocalStore opens (creating if needed) the sqlite database at dbPath and
// runs pending migrations. Use ":memory:" for a throwaway database.
func NewLocalStore(dbPath string, log *logger.Logger) (LocalStore, error) {
	if dbPath == "" {
		dbPath = ":memory:"
	}
	if dbPath != ":memory:" {
		if dir := filepath.Dir(dbPath); dir != "." {
			if err := os.MkdirAll(dir, 0o700); err != nil {
				return nil, fmt.Errorf("create local store dir: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open local store: %w", err)
	}
	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("ping local store: %w", err)
	}

	if err = migrations.Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate local store: %w", err)
	}

	return newLocalStoreWithDB(db, log), nil
}

// newLocalStoreWithDB wires a store around an already opened database.
// Split out so tests can inject a sqlmock connection.
func newLocalStoreWithDB(db *sql.DB, log *logger.Logger) *localStore {
	return &localStore{
		db:     db,
		sb:     sq.StatementBuilder.PlaceholderFormat(sq.Question),
		logger: log,
	}
}

func (s *localStore) SaveSession(ctx context.Context, user models.User, token string) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode session user: %w", err)
	}

	query, args, err := s.sb.
		Insert("session").
		Columns("id", "user_json", "token", "saved_at").
		Values(1, string(payload), token, time.Now().UTC()).
		Suffix("ON CONFLICT(id) DO UPDATE SET user_json=excluded.user_json, token=excluded.token, saved_at=excluded.saved_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build save session query: %w", err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Msg("failed to persist session")
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *localStore) Session(ctx context.Context) (models.User, string, error) {
	query, args, err := s.sb.
		Select("user_json", "token").
		From("session").
		Where(sq.Eq{"id": 1}).
		ToSql()
	if err != nil {
		return models.User{}, "", fmt.Errorf("build session query: %w", err)
	}

	var payload, token string
	row := s.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&payload, &token); err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, "", ErrLocalSessionNotFound
		}
		return models.User{}, "", fmt.Errorf("read session: %w", err)
	}

	var user models.User
	if err = json.Unmarshal([]byte(payload), &user); err != nil {
		return models.User{}, "", fmt.Errorf("decode session user: %w", err)
	}
	return user, token, nil
}

func (s *localStore) ClearSession(ctx context.Context) error {
	query, args, err := s.sb.Delete("session").Where(sq.Eq{"id": 1}).ToSql()
	if err != nil {
		return fmt.Errorf("build clear session query: %w", err)
	}
	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (s *localStore) SavePhotos(ctx context.Context, photos []models.Photo) error {
	return s.replaceAll(ctx, "photos", func(tx *sql.Tx) error {
		for _, p := range photos {
			payload, err := json.Marshal(p)
			if err != nil {
				return fmt.Errorf("encode photo %s: %w", p.ID, err)
			}
			query, args, err := s.sb.
				Insert("photos").
				Columns("id", "payload").
				Values(p.ID, string(payload)).
				ToSql()
			if err != nil {
				return fmt.Errorf("build insert photo query: %w", err)
			}
			if _, err = tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("insert photo %s: %w", p.ID, err)
			}
		}
		return nil
	})
}

func (s *localStore) Photos(ctx context.Context) ([]models.Photo, error) {
	rows, err := s.selectPayloads(ctx, "photos")
	if err != nil {
		return nil, err
	}

	photos := make([]models.Photo, 0, len(rows))
	for _, raw := range rows {
		var p models.Photo
		if err = json.Unmarshal([]byte(raw), &p); err != nil {
			return nil, fmt.Errorf("decode cached photo: %w", err)
		}
		photos = append(photos, p)
	}
	return photos, nil
}

func (s *localStore) SaveAlbums(ctx context.Context, albums []models.Album) error {
	return s.replaceAll(ctx, "albums", func(tx *sql.Tx) error {
		for _, a := range albums {
			payload, err := json.Marshal(a)
			if err != nil {
				return fmt.Errorf("encode album %s: %w", a.ID, err)
			}
			query, args, err := s.sb.
				Insert("albums").
				Columns("id", "payload").
				Values(a.ID, string(payload)).
				ToSql()
			if err != nil {
				return fmt.Errorf("build insert album query: %w", err)
			}
			if _, err = tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("insert album %s: %w", a.ID, err)
			}
		}
		return nil
	})
}

func (s *localStore) Albums(ctx context.Context) ([]models.Album, error) {
	rows, err := s.selectPayloads(ctx, "albums")
	if err != nil {
		return nil, err
	}

	albums := make([]models.Album, 0, len(rows))
	for _, raw := range rows {
		var a models.Album
		if err = json.Unmarshal([]byte(raw), &a); err != nil {
			return nil, fmt.Errorf("decode cached album: %w", err)
		}
		albums = append(albums, a)
	}
	return albums, nil
}

func (s *localStore) SavePref(ctx context.Context, key, value string) error {
	query, args, err := s.sb.
		Insert("prefs").
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT(key) DO UPDATE SET value=excluded.value").
		ToSql()
	if err != nil {
		return fmt.Errorf("build save pref query: %w", err)
	}
	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save pref %s: %w", key, err)
	}
	return nil
}

func (s *localStore) Prefs(ctx context.Context) (map[string]string, error) {
	query, args, err := s.sb.Select("key", "value").From("prefs").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build prefs query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("read prefs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	prefs := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err = rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("scan pref: %w", err)
		}
		prefs[k] = v
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate prefs: %w", err)
	}
	return prefs, nil
}

func (s *localStore) Close() error {
	return s.db.Close()
}

// replaceAll wipes table and re-inserts the whole collection inside one
// transaction, keeping rowid order equal to master-list order.
func (s *localStore) replaceAll(ctx context.Context, table string, insert func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace %s: %w", table, err)
	}
	defer func() { _ = tx.Rollback() }()

	query, args, err := s.sb.Delete(table).ToSql()
	if err != nil {
		return fmt.Errorf("build wipe %s query: %w", table, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("wipe %s: %w", table, err)
	}

	if err = insert(tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit replace %s: %w", table, err)
	}
	return nil
}

func (s *localStore) selectPayloads(ctx context.Context, table string) ([]string, error) {
	query, args, err := s.sb.
		Select("payload").
		From(table).
		OrderBy("position ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select %s query: %w", table, err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", table, err)
	}
	defer func() { _ = rows.Close() }()

	var out []string
	for rows.Next() {
		var payload string
		if err = rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan %s row: %w", table, err)
		}
		out = append(out, payload)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", table, err)
	}
	return out, nil
}
