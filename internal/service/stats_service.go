package service

import (
	"context"

	"github.com/ignatzorin/ats-backend/internal/domain/valueobject"
)

// StatsCompanyCounter считает компании по статусу.
type StatsCompanyCounter interface {
	CountByStatus(ctx context.Context, status valueobject.CompanyStatus) (total int, inStatus int, err error)
}

// StatsJobOrderCounter считает вакансии по статусу.
type StatsJobOrderCounter interface {
	CountByStatus(ctx context.Context, status valueobject.JobOrderStatus) (total int, inStatus int, err error)
}

// StatsCandidateCounter считает кандидатов в воронке.
type StatsCandidateCounter interface {
	PipelineCounts(ctx context.Context) (total, inPipeline, joinedThisMonth int, err error)
}

// StatsService собирает сводку для дашборда.
type StatsService struct {
	companies  StatsCompanyCounter
	jobOrders  StatsJobOrderCounter
	candidates StatsCandidateCounter
}

// NewStatsService создаёт сервис статистики.
func NewStatsService(companies StatsCompanyCounter, jobOrders StatsJobOrderCounter, candidates StatsCandidateCounter) *StatsService {
	return &StatsService{companies: companies, jobOrders: jobOrders, candidates: candidates}
}

// DashboardStats — сводные показатели агентства.
type DashboardStats struct {
	TotalCompanies  int `json:"total_companies"`
	ActiveCompanies int `json:"active_companies"`
	TotalJobOrders  int `json:"total_job_orders"`
	OpenJobOrders   int `json:"open_job_orders"`
	TotalCandidates int `json:"total_candidates"`
	InPipeline      int `json:"in_pipeline"`
	JoinedThisMonth int `json:"joined_this_month"`
	CompaniesTrend  int `json:"companies_trend"`
	JobOrdersTrend  int `json:"job_orders_trend"`
	CandidatesTrend int `json:"candidates_trend"`
}

// GetDashboardStats возвращает сводку. Тренды месяц-к-месяцу пока не
// считаются и отдаются нулями.
func (s *StatsService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	var err error
	stats.TotalCompanies, stats.ActiveCompanies, err = s.companies.CountByStatus(ctx, valueobject.CompanyStatusActive)
	if err != nil {
		return nil, err
	}

	stats.TotalJobOrders, stats.OpenJobOrders, err = s.jobOrders.CountByStatus(ctx, valueobject.JobOrderStatusOpen)
	if err != nil {
		return nil, err
	}

	stats.TotalCandidates, stats.InPipeline, stats.JoinedThisMonth, err = s.candidates.PipelineCounts(ctx)
	if err != nil {
		return nil, err
	}

	return stats, nil
}
