package repository

import (
	"context"
	"errors"

	"diagnostic-center-api/internal/domain/entity"
	domainRepo "diagnostic-center-api/internal/domain/repository"

	"gorm.io/gorm"
)

// availabilityQuery expands each test's JSONB slots and removes the labels
// taken by non-cancelled appointments on the date. Labels keep their catalog
// order and repeated labels collapse into one.
const availabilityQuery = `
SELECT t.*,
	COALESCE((
		SELECT jsonb_agg(s.label ORDER BY s.ord)
		FROM (
			SELECT e.label, MIN(e.ord) AS ord
			FROM jsonb_array_elements_text(t.slots) WITH ORDINALITY AS e(label, ord)
			WHERE NOT EXISTS (
				SELECT 1 FROM appointments a
				WHERE a.test_slug = t.slug
					AND a.booking_date = ?
					AND a.status <> ?
					AND a.booking_slot = e.label
			)
			GROUP BY e.label
		) s
	), '[]'::jsonb) AS remaining_slots
FROM tests t
ORDER BY t.created_at ASC, t.slug ASC`

type availabilityRow struct {
	entity.DiagnosticTest `gorm:"embedded"`
	RemainingSlots        entity.SlotList
}

type diagnosticTestRepository struct {
	db *gorm.DB
}

func NewDiagnosticTestRepository(db *gorm.DB) domainRepo.DiagnosticTestRepository {
	return &diagnosticTestRepository{db: db}
}

func (r *diagnosticTestRepository) Create(ctx context.Context, test *entity.DiagnosticTest) error {
	return conn(ctx, r.db).Create(test).Error
}

func (r *diagnosticTestRepository) FindBySlug(ctx context.Context, slug string) (*entity.DiagnosticTest, error) {
	var test entity.DiagnosticTest
	err := conn(ctx, r.db).Where("slug = ?", slug).First(&test).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &test, nil
}

func (r *diagnosticTestRepository) FindAllWithAvailability(ctx context.Context, bookingDate string) ([]entity.TestAvailability, error) {
	var rows []availabilityRow
	err := conn(ctx, r.db).
		Raw(availabilityQuery, bookingDate, string(entity.AppointmentStatusCancelled)).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make([]entity.TestAvailability, len(rows))
	for i, row := range rows {
		result[i] = entity.TestAvailability{
			Test:           row.DiagnosticTest,
			RemainingSlots: []string(row.RemainingSlots),
		}
	}
	return result, nil
}

func (r *diagnosticTestRepository) Update(ctx context.Context, test *entity.DiagnosticTest) error {
	return conn(ctx, r.db).Save(test).Error
}

func (r *diagnosticTestRepository) Delete(ctx context.Context, slug string) (int64, error) {
	result := conn(ctx, r.db).Where("slug = ?", slug).Delete(&entity.DiagnosticTest{})
	return result.RowsAffected, result.Error
}
