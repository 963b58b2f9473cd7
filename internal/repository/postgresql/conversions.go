package postgresql

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/docx_converter/internal/domain"
)

const (
	TableConversions = "conversions"

	interruptedMessage = "interrupted"
)

type ConversionsRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewConversionsRepository(pool *pgxpool.Pool) *ConversionsRepository {
	return &ConversionsRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *ConversionsRepository) Conversions(
	ctx context.Context,
	limit, offset uint64,
) ([]*domain.Conversion, int, error) {
	sql, args, err := r.countQuery().ToSql()
	if err != nil {
		return nil, -1, createQueryError(err)
	}

	var total int
	if err := r.pool.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return nil, -1, scanRowError(err)
	}

	sql, args, err = r.pageQuery(limit, offset).ToSql()
	if err != nil {
		return nil, -1, createQueryError(err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, -1, executeQueryError(err)
	}

	conversions, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[domain.Conversion])
	if err != nil {
		return nil, -1, collectRowsError(err)
	}

	return conversions, total, nil
}

func (r *ConversionsRepository) UpdateOrCreateConversion(ctx context.Context, conversion *domain.Conversion) error {
	sql, args, err := r.upsertQuery(conversion).ToSql()
	if err != nil {
		return createQueryError(err)
	}

	if _, err := r.pool.Exec(ctx, sql, args...); err != nil {
		return executeQueryError(err)
	}

	return nil
}

// FailProcessingConversions closes attempts that were cut off by a restart.
func (r *ConversionsRepository) FailProcessingConversions(ctx context.Context) (int64, error) {
	sql, args, err := r.failProcessingQuery().ToSql()
	if err != nil {
		return 0, createQueryError(err)
	}

	tag, err := r.pool.Exec(ctx, sql, args...)
	if err != nil {
		return 0, executeQueryError(err)
	}

	return tag.RowsAffected(), nil
}

func (r *ConversionsRepository) countQuery() sq.SelectBuilder {
	return r.qb.
		Select("COUNT(*)").
		From(TableConversions)
}

func (r *ConversionsRepository) pageQuery(limit, offset uint64) sq.SelectBuilder {
	return r.qb.
		Select(
			"id",
			"filename",
			"size_bytes",
			"status",
			"message",
			"created_at",
			"finished_at",
		).
		From(TableConversions).
		OrderBy("created_at DESC").
		Limit(limit).
		Offset(offset)
}

// upsertQuery never overwrites filename, size or created_at of an existing attempt.
func (r *ConversionsRepository) upsertQuery(conversion *domain.Conversion) sq.InsertBuilder {
	return r.qb.
		Insert(TableConversions).
		Columns(
			"id",
			"filename",
			"size_bytes",
			"status",
			"message",
			"created_at",
			"finished_at",
		).
		Values(
			conversion.ID,
			conversion.Filename,
			conversion.SizeBytes,
			conversion.Status,
			conversion.Message,
			conversion.CreatedAt,
			conversion.FinishedAt,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			status = EXCLUDED.status,
			message = EXCLUDED.message,
			finished_at = EXCLUDED.finished_at
		`)
}

func (r *ConversionsRepository) failProcessingQuery() sq.UpdateBuilder {
	return r.qb.
		Update(TableConversions).
		Set("status", domain.StatusError).
		Set("message", interruptedMessage).
		Set("finished_at", sq.Expr("NOW()")).
		Where(sq.Eq{"status": domain.StatusProcessing})
}
