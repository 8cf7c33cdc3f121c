package fixtures

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/wfhtracker/wfh-backend-go/internal/domain/entry"
	"github.com/wfhtracker/wfh-backend-go/internal/domain/reason"
	"github.com/wfhtracker/wfh-backend-go/internal/domain/staff"
	"github.com/wfhtracker/wfh-backend-go/internal/pkg/database"
	"github.com/wfhtracker/wfh-backend-go/internal/repository/postgresql"
)

// Seeder loads the default dataset. Every write is an upsert, so running
// it against an already-seeded database is a no-op apart from log noise.
type Seeder struct {
	db         *database.DB
	staffRepo  staff.StaffRepository
	reasonRepo reason.ReasonRepository
	entryRepo  entry.EntryRepository
	logger     *slog.Logger
}

func NewSeeder(db *database.DB, staffRepo staff.StaffRepository, reasonRepo reason.ReasonRepository, entryRepo entry.EntryRepository, logger *slog.Logger) *Seeder {
	return &Seeder{
		db:         db,
		staffRepo:  staffRepo,
		reasonRepo: reasonRepo,
		entryRepo:  entryRepo,
		logger:     logger,
	}
}

// Run applies the three seed phases inside a single transaction so a
// partially applied dataset never persists.
func (s *Seeder) Run(ctx context.Context) error {
	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		staffByName, err := s.seedStaff(txCtx)
		if err != nil {
			return err
		}

		reasonByName, err := s.seedReasons(txCtx)
		if err != nil {
			return err
		}

		return s.seedEntries(txCtx, staffByName, reasonByName)
	})
}

func (s *Seeder) seedStaff(ctx context.Context) (map[string]staff.Staff, error) {
	byName := make(map[string]staff.Staff, len(StaffNames))

	for _, name := range StaffNames {
		result, created, err := s.staffRepo.UpsertByFullName(ctx, staff.Staff{
			FullName: name,
			Active:   true,
			Role:     staff.RoleUser,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to seed staff %q: %w", name, err)
		}
		if created {
			s.logger.Info("seeded staff member", "fullName", name)
		} else {
			s.logger.Info("staff member already present, skipping", "fullName", name)
		}
		byName[name] = result
	}

	return byName, nil
}

func (s *Seeder) seedReasons(ctx context.Context) (map[string]reason.Reason, error) {
	byName := make(map[string]reason.Reason, len(ReasonNames))

	for _, name := range ReasonNames {
		result, created, err := s.reasonRepo.UpsertByName(ctx, reason.Reason{
			Name:     name,
			IsActive: true,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to seed reason %q: %w", name, err)
		}
		if created {
			s.logger.Info("seeded reason", "name", name)
		} else {
			s.logger.Info("reason already present, skipping", "name", name)
		}
		byName[name] = result
	}

	return byName, nil
}

func (s *Seeder) seedEntries(ctx context.Context, staffByName map[string]staff.Staff, reasonByName map[string]reason.Reason) error {
	for _, seed := range HistoricEntries() {
		member, ok := staffByName[seed.StaffName]
		if !ok {
			return fmt.Errorf("seed entry references unknown staff %q", seed.StaffName)
		}
		rs, ok := reasonByName[seed.ReasonName]
		if !ok {
			return fmt.Errorf("seed entry references unknown reason %q", seed.ReasonName)
		}

		reasonID := rs.ID
		created, err := s.entryRepo.Upsert(ctx, entry.WfhEntry{
			StaffID:   member.ID,
			ReasonID:  &reasonID,
			Date:      seed.Date,
			CreatedBy: "system",
		})
		if err != nil {
			return fmt.Errorf("failed to seed entry for %q on %s: %w", seed.StaffName, seed.Date.Format("2006-01-02"), err)
		}
		if created {
			s.logger.Info("seeded entry", "fullName", seed.StaffName, "date", seed.Date.Format("2006-01-02"))
		} else {
			s.logger.Info("entry already present, skipping", "fullName", seed.StaffName, "date", seed.Date.Format("2006-01-02"))
		}
	}

	return nil
}
