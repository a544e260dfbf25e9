//go:build integration

package repository

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"testing"
	"time"

	"go_vocab_galaxy/internal/model"

	"github.com/google/uuid"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var pgDB *gorm.DB

const pgContainerName = "test_postgres_vocab_galaxy"

// TestMain は PostgreSQL コンテナを起動し、goose マイグレーションを適用します。
func TestMain(m *testing.M) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("Could not construct pool: %s", err)
	}
	pool.MaxWait = 120 * time.Second

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Name:       pgContainerName,
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=user",
			"POSTGRES_PASSWORD=secret",
			"POSTGRES_DB=vocab_galaxy",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		log.Fatalf("Could not start PostgreSQL resource: %s", err)
	}

	// devcontainer からは host.docker.internal 経由で接続する
	host := os.Getenv("TEST_DB_HOST")
	if host == "" {
		host = "localhost"
	}
	url := fmt.Sprintf("postgres://user:secret@%s:%s/vocab_galaxy?sslmode=disable", host, resource.GetPort("5432/tcp"))
	logger.Info("PostgreSQL container started", slog.String("container_name", pgContainerName), slog.String("host", host))

	if err = pool.Retry(func() error {
		var errRetry error
		pgDB, errRetry = NewDB(url, logger)
		return errRetry
	}); err != nil {
		_ = pool.Purge(resource)
		log.Fatalf("Could not connect to PostgreSQL: %s", err)
	}

	if err := Migrate(context.Background(), pgDB, logger); err != nil {
		_ = pool.Purge(resource)
		log.Fatalf("Could not migrate: %s", err)
	}

	code := m.Run()

	if err := pool.Purge(resource); err != nil {
		log.Printf("Could not purge resource: %s", err)
	}
	os.Exit(code)
}

func TestPostgres_TranslationUniqueKey(t *testing.T) {
	ctx := context.Background()
	repo := NewGormTranslationRepository()
	source := "pg-" + uuid.NewString()[:8]

	require.NoError(t, repo.Create(ctx, pgDB, &model.Translation{
		ID: uuid.New(), Source: source, Target: "book", SourceLang: model.LangFR, TargetLang: model.LangEN, Meaning: model.ProvenanceDeepL,
	}))
	err := repo.Create(ctx, pgDB, &model.Translation{
		ID: uuid.New(), Source: source, Target: "book", SourceLang: model.LangFR, TargetLang: model.LangEN, Meaning: model.ProvenanceManual,
	})
	assert.ErrorIs(t, err, model.ErrConflict)
}

func TestPostgres_DeleteLexiconCascades(t *testing.T) {
	ctx := context.Background()
	lexRepo := NewGormLexiconRepository()
	transRepo := NewGormTranslationRepository()
	grammarRepo := NewGormGrammarRepository()

	entry := &model.LexiconEntry{ID: uuid.New(), Word: "maison", Type: model.EntryTypeWord, Galaxy: "home", Subtopic: "rooms"}
	require.NoError(t, lexRepo.Create(ctx, pgDB, entry))

	tr := &model.Translation{
		ID: uuid.New(), LexiconID: &entry.ID, Source: "maison-" + uuid.NewString()[:8], Target: "house",
		SourceLang: model.LangFR, TargetLang: model.LangEN, Meaning: model.ProvenanceManual,
	}
	require.NoError(t, transRepo.Create(ctx, pgDB, tr))
	_, err := transRepo.ReplaceExamples(ctx, pgDB, tr.ID, []string{"Une grande maison."})
	require.NoError(t, err)
	_, err = grammarRepo.UpsertForLexicon(ctx, pgDB, entry.ID, model.GrammarAttrs{PartOfSpeech: "noun"})
	require.NoError(t, err)

	// 子テーブルは外部キーの ON DELETE CASCADE で消える
	require.NoError(t, lexRepo.Delete(ctx, pgDB, entry.ID))

	_, err = transRepo.FindByID(ctx, pgDB, tr.ID)
	assert.ErrorIs(t, err, model.ErrNotFound)
	_, err = grammarRepo.FindByLexicon(ctx, pgDB, entry.ID)
	assert.ErrorIs(t, err, model.ErrNotFound)

	var examples int64
	require.NoError(t, pgDB.Model(&model.Example{}).Where("translation_id = ?", tr.ID).Count(&examples).Error)
	assert.Zero(t, examples)
}

func TestPostgres_StatsIncrement(t *testing.T) {
	ctx := context.Background()
	repo := NewGormStatsRepository()

	require.NoError(t, repo.Increment(ctx, pgDB, model.LangRU, model.LangFR, model.FromCache))
	require.NoError(t, repo.Increment(ctx, pgDB, model.LangRU, model.LangFR, model.FromCache))

	var row model.TranslationStats
	require.NoError(t, pgDB.Where("source_lang = ? AND target_lang = ? AND from_source = ?", model.LangRU, model.LangFR, model.FromCache).First(&row).Error)
	assert.Equal(t, int64(2), row.Count)
}
