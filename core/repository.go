package core

import "context"

// Repository 是求职者/职位快照的只读仓储接口。
//
// 引擎本身不读仓储，调用方（CLI、服务层）从仓储取出快照后交给引擎。
// 实现：repository.Memory、repository.Postgres、repository.Cached。
type Repository interface {
	// Name 返回仓储名称（用于日志）
	Name() string

	// ListSeekers 列出全部求职者快照
	ListSeekers(ctx context.Context) ([]*Seeker, error)

	// ListJobs 列出全部职位快照
	ListJobs(ctx context.Context) ([]*Job, error)

	// GetSeeker 按 ID 读取求职者，不存在时返回 ErrSeekerNotFound
	GetSeeker(ctx context.Context, id string) (*Seeker, error)

	// GetJob 按 ID 读取职位，不存在时返回 ErrJobNotFound
	GetJob(ctx context.Context, id string) (*Job, error)
}

var (
	ErrSeekerNotFound = NewDomainError(ModuleRepository, ErrorCodeNotFound, "repository: seeker not found")
	ErrJobNotFound    = NewDomainError(ModuleRepository, ErrorCodeNotFound, "repository: job not found")
)
