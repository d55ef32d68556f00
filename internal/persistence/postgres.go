package persistence

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"

	"ideaforge/internal/core"
)

// PostgresDB implements the Database interface for PostgreSQL.
type PostgresDB struct {
	db         *sql.DB
	savedIdeas SavedIdeaRepository
}

// PoolConfig tunes the connection pool.
type PoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// DefaultPoolConfig is used when the caller passes a zero PoolConfig.
var DefaultPoolConfig = PoolConfig{
	MaxOpenConns:    25,
	MaxIdleConns:    5,
	ConnMaxLifetime: 5 * time.Minute,
}

// NewPostgresDB opens a PostgreSQL connection pool and verifies it.
func NewPostgresDB(connectionString string, pool PoolConfig) (*PostgresDB, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if pool.MaxOpenConns == 0 {
		pool = DefaultPoolConfig
	}
	db.SetMaxOpenConns(pool.MaxOpenConns)
	db.SetMaxIdleConns(pool.MaxIdleConns)
	db.SetConnMaxLifetime(pool.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	pgDB := &PostgresDB{db: db}
	pgDB.savedIdeas = &postgresSavedIdeaRepo{db: db}
	return pgDB, nil
}

func (p *PostgresDB) SavedIdeas() SavedIdeaRepository { return p.savedIdeas }

func (p *PostgresDB) Close() error {
	return p.db.Close()
}

func (p *PostgresDB) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

// postgresSavedIdeaRepo implements SavedIdeaRepository for PostgreSQL.
type postgresSavedIdeaRepo struct {
	db *sql.DB
}

func (r *postgresSavedIdeaRepo) Save(ctx context.Context, idea *core.SavedIdea) error {
	var validationData []byte
	if idea.ValidationData != nil {
		var err error
		validationData, err = json.Marshal(idea.ValidationData)
		if err != nil {
			return &StoreError{Op: "save", Err: fmt.Errorf("failed to encode validation data: %w", err)}
		}
	}

	query := `
		INSERT INTO saved_ideas (
			user_id, idea_id, title, description, market, complexity,
			time_to_revenue, match_score, tags, match_reasoning,
			differentiator, validation_keywords, confidence, generated_by,
			saved_at, validated, validation_data
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		ON CONFLICT (user_id, idea_id) DO UPDATE SET
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			market = EXCLUDED.market,
			complexity = EXCLUDED.complexity,
			time_to_revenue = EXCLUDED.time_to_revenue,
			match_score = EXCLUDED.match_score,
			tags = EXCLUDED.tags,
			match_reasoning = EXCLUDED.match_reasoning,
			differentiator = EXCLUDED.differentiator,
			validation_keywords = EXCLUDED.validation_keywords,
			confidence = EXCLUDED.confidence,
			generated_by = EXCLUDED.generated_by,
			saved_at = EXCLUDED.saved_at,
			validated = EXCLUDED.validated,
			validation_data = EXCLUDED.validation_data
	`

	_, err := r.db.ExecContext(ctx, query,
		idea.UserID, idea.ID, idea.Title, idea.Description, idea.Market,
		idea.Complexity, idea.TimeToRevenue, idea.MatchScore,
		pq.Array(idea.Tags), idea.MatchReasoning, idea.Differentiator,
		pq.Array(idea.ValidationKeywords), idea.Confidence, idea.GeneratedBy,
		idea.SavedAt, idea.Validated, validationData,
	)
	if err != nil {
		return &StoreError{Op: "save", Err: err}
	}
	return nil
}

func (r *postgresSavedIdeaRepo) ListByUser(ctx context.Context, userID string) ([]core.SavedIdea, error) {
	query := `
		SELECT idea_id, title, description, market, complexity,
		       time_to_revenue, match_score, tags, match_reasoning,
		       differentiator, validation_keywords, confidence, generated_by,
		       saved_at, validated, validation_data
		FROM saved_ideas
		WHERE user_id = $1
		ORDER BY saved_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, &StoreError{Op: "list", Err: err}
	}
	defer rows.Close()

	ideas := []core.SavedIdea{}
	for rows.Next() {
		var idea core.SavedIdea
		var validationData []byte
		err := rows.Scan(
			&idea.ID, &idea.Title, &idea.Description, &idea.Market,
			&idea.Complexity, &idea.TimeToRevenue, &idea.MatchScore,
			pq.Array(&idea.Tags), &idea.MatchReasoning, &idea.Differentiator,
			pq.Array(&idea.ValidationKeywords), &idea.Confidence,
			&idea.GeneratedBy, &idea.SavedAt, &idea.Validated, &validationData,
		)
		if err != nil {
			return nil, &StoreError{Op: "list", Err: err}
		}
		idea.UserID = userID
		if len(validationData) > 0 {
			var snapshot core.ValidationData
			if err := json.Unmarshal(validationData, &snapshot); err != nil {
				return nil, &StoreError{Op: "list", Err: fmt.Errorf("failed to decode validation data: %w", err)}
			}
			idea.ValidationData = &snapshot
		}
		ideas = append(ideas, idea)
	}
	if err := rows.Err(); err != nil {
		return nil, &StoreError{Op: "list", Err: err}
	}
	return ideas, nil
}

func (r *postgresSavedIdeaRepo) Delete(ctx context.Context, userID, ideaID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM saved_ideas WHERE user_id = $1 AND idea_id = $2`,
		userID, ideaID,
	)
	if err != nil {
		return &StoreError{Op: "delete", Err: err}
	}
	return nil
}
