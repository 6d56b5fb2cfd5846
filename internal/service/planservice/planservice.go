package planservice

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/dkovalev/creditplan/internal/domain"
	"github.com/dkovalev/creditplan/internal/pg"
)

type CategoryRepo interface {
	ListAll(ctx context.Context) ([]domain.Category, error)
}

type PlanRepo interface {
	SyncIDSequence(ctx context.Context) error
	ExistsForPeriod(ctx context.Context, period time.Time, categoryID int) (bool, error)
	Save(ctx context.Context, plan *domain.Plan) error
	FindByPeriod(ctx context.Context, from, to time.Time) ([]domain.Plan, error)
}

type CreditRepo interface {
	SumBodyByIssuancePeriod(ctx context.Context, from, to time.Time) (float64, error)
}

type PaymentRepo interface {
	SumByPaymentPeriod(ctx context.Context, from, to time.Time) (float64, error)
}

type Service struct {
	categoryRepo CategoryRepo
	planRepo     PlanRepo
	creditRepo   CreditRepo
	paymentRepo  PaymentRepo
	txManager    pg.TXManager
}

func New(categoryRepo CategoryRepo, planRepo PlanRepo, creditRepo CreditRepo, paymentRepo PaymentRepo, txManager pg.TXManager) *Service {
	return &Service{
		categoryRepo: categoryRepo,
		planRepo:     planRepo,
		creditRepo:   creditRepo,
		paymentRepo:  paymentRepo,
		txManager:    txManager,
	}
}

var (
	ErrFormat     = errors.New("bad record format")
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("plan already exists")
)

// periodLayout is the textual date form of batch input, DD.MM.YYYY.
const periodLayout = "02.01.2006"

// PlanRecord is one raw line of a plan batch before validation.
type PlanRecord struct {
	Period   string
	Sum      string
	Category string
}

// ParsePlanRecords splits tab-separated text into raw plan records,
// one per non-empty line: period, sum, category name.
func ParsePlanRecords(r io.Reader) ([]PlanRecord, error) {
	scanner := bufio.NewScanner(r)

	var records []PlanRecord
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimRight(scanner.Text(), "\r")
		if text == "" {
			continue
		}
		fields := strings.Split(text, "\t")
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: line %d must have 3 tab-separated fields, got %d", ErrFormat, line, len(fields))
		}
		records = append(records, PlanRecord{
			Period:   strings.TrimSpace(fields[0]),
			Sum:      strings.TrimSpace(fields[1]),
			Category: strings.TrimSpace(fields[2]),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFormat, err)
	}
	return records, nil
}

type planKey struct {
	period     time.Time
	categoryID int
}

// InsertPlans validates and stores a plan batch as one atomic unit.
// The first invalid record aborts the whole batch and nothing is
// committed. Returns the number of inserted plans.
func (s *Service) InsertPlans(ctx context.Context, records []PlanRecord) (int, error) {
	inserted := 0

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		categories, err := s.categoryRepo.ListAll(ctx)
		if err != nil {
			zap.L().Error("can't get categories", zap.Error(err))
			return err
		}
		byName := make(map[string]domain.Category, len(categories))
		for _, category := range categories {
			byName[category.Name] = category
		}

		// seeded rows may have ids the sequence never issued
		if err := s.planRepo.SyncIDSequence(ctx); err != nil {
			return err
		}

		seen := make(map[planKey]struct{}, len(records))
		for _, rec := range records {
			period, err := time.Parse(periodLayout, rec.Period)
			if err != nil {
				return fmt.Errorf("%w: can't parse period %q", ErrFormat, rec.Period)
			}
			if period.Day() != 1 {
				return fmt.Errorf("%w: period %s must be the first day of a month", ErrValidation, rec.Period)
			}
			sum, err := strconv.ParseUint(rec.Sum, 10, 63)
			if err != nil {
				return fmt.Errorf("%w: sum %q must be a non-negative integer", ErrValidation, rec.Sum)
			}
			category, ok := byName[rec.Category]
			if !ok {
				return fmt.Errorf("%w: unknown category %q", ErrValidation, rec.Category)
			}

			key := planKey{period: period, categoryID: category.ID}
			if _, dup := seen[key]; dup {
				return fmt.Errorf("%w: period %s, category %s", ErrConflict, rec.Period, rec.Category)
			}
			exists, err := s.planRepo.ExistsForPeriod(ctx, period, category.ID)
			if err != nil {
				return err
			}
			if exists {
				return fmt.Errorf("%w: period %s, category %s", ErrConflict, rec.Period, rec.Category)
			}

			plan := &domain.Plan{
				Period:     period,
				Sum:        int(sum),
				CategoryID: category.ID,
			}
			if err := s.planRepo.Save(ctx, plan); err != nil {
				return err
			}
			seen[key] = struct{}{}
			inserted++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	zap.L().Info("plan batch inserted", zap.Int("count", inserted))
	return inserted, nil
}

// PlanPerformance compares one plan of the target month against the
// matching actual activity.
type PlanPerformance struct {
	Month      string
	Category   string
	PlanSum    int
	ActualSum  float64
	Percentage float64
}

// GetPlansPerformance reports plan-vs-actual for every plan of the
// target month. Disbursement plans are matched against credit bodies
// issued that month, collection plans against payments received that
// month. Any other plan category is a data-integrity failure.
func (s *Service) GetPlansPerformance(ctx context.Context, month, year int) ([]PlanPerformance, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: month %d is out of range", ErrValidation, month)
	}
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	var result []PlanPerformance

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		plans, err := s.planRepo.FindByPeriod(ctx, from, to)
		if err != nil {
			zap.L().Error("can't get plans", zap.Error(err))
			return err
		}

		result = make([]PlanPerformance, 0, len(plans))
		for _, plan := range plans {
			var actual float64
			switch plan.CategoryName {
			case domain.CategoryDisbursement:
				actual, err = s.creditRepo.SumBodyByIssuancePeriod(ctx, from, to)
			case domain.CategoryCollection:
				actual, err = s.paymentRepo.SumByPaymentPeriod(ctx, from, to)
			default:
				return fmt.Errorf("%w: unsupported plan category %q for performance calculation", ErrValidation, plan.CategoryName)
			}
			if err != nil {
				return err
			}

			percentage := 0.0
			if plan.Sum != 0 {
				percentage = math.Round(actual/float64(plan.Sum)*100*100) / 100
			}
			result = append(result, PlanPerformance{
				Month:      from.Format("2006-01"),
				Category:   plan.CategoryName,
				PlanSum:    plan.Sum,
				ActualSum:  actual,
				Percentage: percentage,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// CheckDictionary verifies at startup that every category name the
// services rely on is present in the dictionary table.
func (s *Service) CheckDictionary(ctx context.Context) error {
	categories, err := s.categoryRepo.ListAll(ctx)
	if err != nil {
		return err
	}
	names := make(map[string]struct{}, len(categories))
	for _, category := range categories {
		names[category.Name] = struct{}{}
	}
	for _, name := range domain.KnownCategories {
		if _, ok := names[name]; !ok {
			return fmt.Errorf("dictionary is missing category %q", name)
		}
	}
	return nil
}
