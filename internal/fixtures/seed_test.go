package fixtures

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wfhtracker/wfh-backend-go/internal/pkg/database"
	"github.com/wfhtracker/wfh-backend-go/internal/repository/postgresql"
)

// Runs the full seed twice against a real database and checks the second
// pass changes nothing. Skips when no test database is configured.
func TestSeederRunIsIdempotent(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	db, err := database.NewPostgreSQLDB(dsn)
	require.NoError(t, err, "failed to connect to test database")
	defer db.Close()

	_, err = db.Exec(ctx, "TRUNCATE TABLE wfh_entries, reasons, staff CASCADE")
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	seeder := NewSeeder(
		db,
		postgresql.NewStaffRepository(db),
		postgresql.NewReasonRepository(db),
		postgresql.NewEntryRepository(db),
		logger,
	)

	for i := 0; i < 2; i++ {
		require.NoError(t, seeder.Run(ctx), "run %d", i)
	}

	var staffCount, reasonCount, entryCount int
	require.NoError(t, db.QueryRow(ctx, "SELECT COUNT(*) FROM staff").Scan(&staffCount))
	require.NoError(t, db.QueryRow(ctx, "SELECT COUNT(*) FROM reasons").Scan(&reasonCount))
	require.NoError(t, db.QueryRow(ctx, "SELECT COUNT(*) FROM wfh_entries").Scan(&entryCount))

	assert.Equal(t, len(StaffNames), staffCount)
	assert.Equal(t, len(ReasonNames), reasonCount)
	assert.Equal(t, len(HistoricEntries()), entryCount)
}
