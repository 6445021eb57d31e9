package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rushteam/matchkit/core"
)

// 默认表名。两张表结构相同：id TEXT PRIMARY KEY, data JSONB。
const (
	DefaultSeekerTable = "seekers"
	DefaultJobTable    = "jobs"
)

// Postgres 从 Postgres 读取快照。data 列是记录的 JSON，由 core 的记录适配函数转换。
type Postgres struct {
	pool        *pgxpool.Pool
	sb          sq.StatementBuilderType
	SeekerTable string
	JobTable    string
}

// Connect 建立连接池并 Ping。ctx 没有截止时间时 Ping 最多等待 5 秒。
func Connect(ctx context.Context, dsn string) (*Postgres, error) {
	pcfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	p, err := pgxpool.NewWithConfig(ctx, pcfg)
	if err != nil {
		return nil, err
	}

	pingCtx := ctx
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
	}
	if err := p.Ping(pingCtx); err != nil {
		p.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return NewPostgres(p), nil
}

// NewPostgres 包装已有连接池。
func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{
		pool:        pool,
		sb:          sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		SeekerTable: DefaultSeekerTable,
		JobTable:    DefaultJobTable,
	}
}

func (p *Postgres) Name() string { return "postgres" }

// Close 关闭连接池。
func (p *Postgres) Close() error {
	if p != nil && p.pool != nil {
		p.pool.Close()
	}
	return nil
}

func (p *Postgres) selectRecords(table string) sq.SelectBuilder {
	return p.sb.Select("id", "data").From(table).OrderBy("id ASC")
}

func (p *Postgres) ListSeekers(ctx context.Context) ([]*core.Seeker, error) {
	recs, err := p.query(ctx, p.selectRecords(p.SeekerTable))
	if err != nil {
		return nil, fmt.Errorf("list seekers: %w", err)
	}
	out := make([]*core.Seeker, 0, len(recs))
	for _, rec := range recs {
		out = append(out, core.SeekerFromRecord(rec))
	}
	return out, nil
}

func (p *Postgres) ListJobs(ctx context.Context) ([]*core.Job, error) {
	recs, err := p.query(ctx, p.selectRecords(p.JobTable))
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	out := make([]*core.Job, 0, len(recs))
	for _, rec := range recs {
		out = append(out, core.JobFromRecord(rec))
	}
	return out, nil
}

func (p *Postgres) GetSeeker(ctx context.Context, id string) (*core.Seeker, error) {
	recs, err := p.query(ctx, p.selectRecords(p.SeekerTable).Where(sq.Eq{"id": id}).Limit(1))
	if err != nil {
		return nil, fmt.Errorf("get seeker %q: %w", id, err)
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("seeker %q: %w", id, core.ErrSeekerNotFound)
	}
	return core.SeekerFromRecord(recs[0]), nil
}

func (p *Postgres) GetJob(ctx context.Context, id string) (*core.Job, error) {
	recs, err := p.query(ctx, p.selectRecords(p.JobTable).Where(sq.Eq{"id": id}).Limit(1))
	if err != nil {
		return nil, fmt.Errorf("get job %q: %w", id, err)
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("job %q: %w", id, core.ErrJobNotFound)
	}
	return core.JobFromRecord(recs[0]), nil
}

// query 执行查询，把每行的 data 解析为记录，id 列覆盖 data 里的 id。
func (p *Postgres) query(ctx context.Context, b sq.SelectBuilder) ([]map[string]any, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]map[string]any, 0)
	for rows.Next() {
		var id string
		var data []byte
		if err := rows.Scan(&id, &data); err != nil {
			return nil, err
		}
		rec, err := decodeRecord(id, data)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func decodeRecord(id string, data []byte) (map[string]any, error) {
	rec := make(map[string]any)
	if len(data) > 0 {
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("decode record %q: %w", id, err)
		}
	}
	if rec == nil {
		rec = make(map[string]any)
	}
	rec["id"] = id
	return rec, nil
}

var _ core.Repository = (*Postgres)(nil)
