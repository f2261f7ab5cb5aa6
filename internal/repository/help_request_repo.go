package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"helprequest-service/internal/model"
)

// helpRequestColumns задаёт порядок колонок, который ожидает scanHelpRequest.
const helpRequestColumns = `id, requester_email, team_id, table_or_breakout_room, request_time, explanation, solved`

// HelpRequestRepo реализует хранилище заявок на базе PostgreSQL.
type HelpRequestRepo struct {
	db *Postgres
}

// NewHelpRequestRepo создаёт репозиторий заявок поверх подключения к PostgreSQL.
func NewHelpRequestRepo(db *Postgres) *HelpRequestRepo {
	return &HelpRequestRepo{db: db}
}

// List возвращает все заявки в порядке создания.
func (r *HelpRequestRepo) List(ctx context.Context) ([]model.HelpRequest, error) {
	q := r.db.GetQueryExecutor(ctx)

	rows, err := q.Query(ctx, `
SELECT `+helpRequestColumns+`
FROM helprequests
ORDER BY id
`)
	if err != nil {
		return nil, fmt.Errorf("query help requests: %w", err)
	}
	defer rows.Close()

	res := make([]model.HelpRequest, 0)
	for rows.Next() {
		hr, err := scanHelpRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan help request: %w", err)
		}
		res = append(res, hr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return res, nil
}

// GetByID возвращает заявку по id. Если её нет, возвращает ErrHelpRequestNotFound.
func (r *HelpRequestRepo) GetByID(ctx context.Context, id int64) (model.HelpRequest, error) {
	q := r.db.GetQueryExecutor(ctx)

	row := q.QueryRow(ctx, `
SELECT `+helpRequestColumns+`
FROM helprequests
WHERE id = $1
`, id)

	hr, err := scanHelpRequest(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.HelpRequest{}, ErrHelpRequestNotFound
		}
		return model.HelpRequest{}, fmt.Errorf("get help request: %w", err)
	}
	return hr, nil
}

// Create сохраняет новую заявку. Поле ID входной структуры игнорируется,
// id назначает БД; возвращается сохранённая строка.
func (r *HelpRequestRepo) Create(ctx context.Context, hr model.HelpRequest) (model.HelpRequest, error) {
	q := r.db.GetQueryExecutor(ctx)

	row := q.QueryRow(ctx, `
INSERT INTO helprequests (requester_email, team_id, table_or_breakout_room, request_time, explanation, solved)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING `+helpRequestColumns,
		helpRequestArgs(hr)...)

	created, err := scanHelpRequest(row)
	if err != nil {
		return model.HelpRequest{}, fmt.Errorf("insert help request: %w", err)
	}
	return created, nil
}

// Update перезаписывает все изменяемые поля заявки hr.ID.
// Если строки нет, возвращает ErrHelpRequestNotFound.
func (r *HelpRequestRepo) Update(ctx context.Context, hr model.HelpRequest) (model.HelpRequest, error) {
	q := r.db.GetQueryExecutor(ctx)

	args := append([]any{hr.ID}, helpRequestArgs(hr)...)
	row := q.QueryRow(ctx, `
UPDATE helprequests
SET requester_email        = $2,
    team_id                = $3,
    table_or_breakout_room = $4,
    request_time           = $5,
    explanation            = $6,
    solved                 = $7
WHERE id = $1
RETURNING `+helpRequestColumns,
		args...)

	updated, err := scanHelpRequest(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.HelpRequest{}, ErrHelpRequestNotFound
		}
		return model.HelpRequest{}, fmt.Errorf("update help request: %w", err)
	}
	return updated, nil
}

// Delete удаляет заявку. Если строки нет, возвращает ErrHelpRequestNotFound.
func (r *HelpRequestRepo) Delete(ctx context.Context, id int64) error {
	q := r.db.GetQueryExecutor(ctx)

	cmdTag, err := q.Exec(ctx, `DELETE FROM helprequests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete help request: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrHelpRequestNotFound
	}
	return nil
}

// scanHelpRequest раскладывает строку в порядке helpRequestColumns по полям структуры.
func scanHelpRequest(row pgx.Row) (model.HelpRequest, error) {
	var hr model.HelpRequest
	var requestTime time.Time

	if err := row.Scan(
		&hr.ID,
		&hr.RequesterEmail,
		&hr.TeamID,
		&hr.TableOrBreakoutRoom,
		&requestTime,
		&hr.Explanation,
		&hr.Solved,
	); err != nil {
		return model.HelpRequest{}, err
	}

	hr.RequestTime = model.NewLocalDateTime(requestTime)
	return hr, nil
}

// helpRequestArgs возвращает значения изменяемых колонок в порядке INSERT/UPDATE.
func helpRequestArgs(hr model.HelpRequest) []any {
	return []any{
		hr.RequesterEmail,
		hr.TeamID,
		hr.TableOrBreakoutRoom,
		hr.RequestTime.Time,
		hr.Explanation,
		hr.Solved,
	}
}
