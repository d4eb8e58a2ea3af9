//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/manar-nas/trivia-api/internal/database"
	"github.com/manar-nas/trivia-api/internal/model"
	"github.com/manar-nas/trivia-api/internal/sqlerr"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const testSchema = `
CREATE TABLE categories (
	id   serial PRIMARY KEY,
	type text NOT NULL
);

CREATE TABLE questions (
	id         serial PRIMARY KEY,
	question   text NOT NULL,
	answer     text NOT NULL,
	category   integer NOT NULL,
	difficulty integer NOT NULL
);

INSERT INTO categories (type) VALUES ('Science'), ('Art'), ('Geography');

INSERT INTO questions (question, answer, category, difficulty) VALUES
	('Whose autobiography is entitled ''I Know Why the Caged Bird Sings''?', 'Maya Angelou', 1, 2),
	('What movie earned Tom Hanks his third straight Oscar nomination?', 'Apollo 13', 2, 4),
	('What is the 100% pure element with symbol Au?', 'Gold', 1, 1),
	('Which is the only team to play in every soccer World Cup tournament?', 'Brazil', 3, 3),
	('What boxer''s original name is Cassius Clay?', 'Muhammad Ali', 2, 1);
`

func setupRepositories(t *testing.T) (*QuestionRepository, *CategoryRepository) {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:alpine",
		postgres.WithDatabase("trivia_test"),
		postgres.WithUsername("trivia"),
		postgres.WithPassword("trivia"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := pgContainer.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)

	_, err = pool.Exec(ctx, testSchema)
	require.NoError(t, err)

	logger := zerolog.Nop()
	db := database.FromPool(pool, &logger)
	t.Cleanup(func() { _ = db.Close() })

	return NewQuestionRepository(db.ORM), NewCategoryRepository(db.ORM)
}

func TestRepositories_Integration(t *testing.T) {
	questions, categories := setupRepositories(t)
	ctx := context.Background()

	t.Run("categories in id order", func(t *testing.T) {
		all, err := categories.All(ctx)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, "Science", all[0].Type)

		c, err := categories.GetByID(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, "Art", c.Type)

		_, err = categories.GetByID(ctx, 99)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("find and count with filters", func(t *testing.T) {
		page, err := questions.Find(ctx, model.QuestionFilter{}, 0, model.QuestionsPerPage)
		require.NoError(t, err)
		require.Len(t, page, 5)
		assert.Equal(t, 1, page[0].ID)

		byCategory, err := questions.Find(ctx, model.QuestionFilter{CategoryID: 2, ExcludeIDs: []int{2}}, 0, model.QuestionsPerPage)
		require.NoError(t, err)
		require.Len(t, byCategory, 1)
		assert.Equal(t, 5, byCategory[0].ID)

		n, err := questions.Count(ctx, model.QuestionFilter{CategoryID: 1})
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)
	})

	t.Run("search is case-insensitive and literal", func(t *testing.T) {
		found, err := questions.Find(ctx, model.QuestionFilter{SearchTerm: "TITLE"}, 0, model.QuestionsPerPage)
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "Maya Angelou", found[0].Answer)

		percent, err := questions.Count(ctx, model.QuestionFilter{SearchTerm: "100%"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), percent)

		wildcard, err := questions.Count(ctx, model.QuestionFilter{SearchTerm: "%"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), wildcard)
	})

	t.Run("create and delete", func(t *testing.T) {
		created, err := questions.Create(ctx, model.Question{Question: "Q?", Answer: "A", Category: 3, Difficulty: 2})
		require.NoError(t, err)
		assert.Greater(t, created.ID, 5)

		got, err := questions.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Q?", got.Question)

		require.NoError(t, questions.Delete(ctx, created.ID))

		_, err = questions.GetByID(ctx, created.ID)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.ErrorIs(t, questions.Delete(ctx, created.ID), ErrNotFound)
	})

	t.Run("constraint violations are classified", func(t *testing.T) {
		_, err := questions.Create(ctx, model.Question{Question: "Q?", Answer: "A", Category: 1, Difficulty: 1})
		require.NoError(t, err)

		// A NOT NULL violation surfaces through sqlerr.
		_, err = questions.db.Runtime().Exec(ctx, "INSERT INTO questions (question, answer, category) VALUES ('q', 'a', 1)")
		require.Error(t, err)
		assert.Equal(t, sqlerr.NotNullViolation, sqlerr.ErrCode(wrap(err, "insert")))
	})
}
