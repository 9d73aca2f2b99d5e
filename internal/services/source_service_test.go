package services

import (
	"testing"
	"time"

	"finera/internal/testutil"
)

func TestMonthNameTR(t *testing.T) {
	cases := []struct {
		month time.Month
		want  string
	}{
		{time.January, "Ocak"},
		{time.June, "Haziran"},
		{time.December, "Aralık"},
	}
	for _, tc := range cases {
		if got := MonthNameTR(tc.month); got != tc.want {
			t.Errorf("MonthNameTR(%v) = %q, want %q", tc.month, got, tc.want)
		}
	}
}

func TestSourceService_ResolveManualSource(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	service := NewSourceService(db)
	user := testutil.CreateTestUser(t, db)
	period := testutil.CreateTestPeriod(t, db, user.ID, 2024, 1)

	t.Run("derives_localized_bucket_name", func(t *testing.T) {
		source, err := service.ResolveManualSource(db, period, user.ID)
		testutil.AssertNoError(t, err)

		if source.SourceName != "Manuel Girişler Ocak 2024" {
			t.Errorf("unexpected manual source name: %q", source.SourceName)
		}
		if source.UploadTimestamp != nil {
			t.Error("manual sources must not carry an upload timestamp")
		}
	})

	t.Run("manual_entries_in_a_month_share_one_bucket", func(t *testing.T) {
		first, err := service.ResolveManualSource(db, period, user.ID)
		testutil.AssertNoError(t, err)
		second, err := service.ResolveManualSource(db, period, user.ID)
		testutil.AssertNoError(t, err)

		if first.ID != second.ID {
			t.Errorf("expected one manual bucket per period, got %s and %s", first.ID, second.ID)
		}
	})
}

func TestSourceService_ResolveStatementSource(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	service := NewSourceService(db)
	user := testutil.CreateTestUser(t, db)
	period := testutil.CreateTestPeriod(t, db, user.ID, 2024, 1)

	t.Run("default_prefix_and_filename_form_the_name", func(t *testing.T) {
		source, err := service.ResolveStatementSource(db, period, user.ID, "", "ocak_2024.pdf")
		testutil.AssertNoError(t, err)

		if source.SourceName != "Ekstre - ocak_2024.pdf" {
			t.Errorf("unexpected source name: %q", source.SourceName)
		}
		if source.UploadTimestamp == nil {
			t.Error("statement sources must carry an upload timestamp")
		}
	})

	t.Run("caller_prefix_overrides_default", func(t *testing.T) {
		source, err := service.ResolveStatementSource(db, period, user.ID, "Kredi Kartı", "subat.pdf")
		testutil.AssertNoError(t, err)

		if source.SourceName != "Kredi Kartı - subat.pdf" {
			t.Errorf("unexpected source name: %q", source.SourceName)
		}
	})

	t.Run("re_upload_with_same_name_appends_to_existing_source", func(t *testing.T) {
		first, err := service.ResolveStatementSource(db, period, user.ID, "", "same.pdf")
		testutil.AssertNoError(t, err)
		second, err := service.ResolveStatementSource(db, period, user.ID, "", "same.pdf")
		testutil.AssertNoError(t, err)

		if first.ID != second.ID {
			t.Errorf("expected same source for identical derived name, got %s and %s", first.ID, second.ID)
		}
	})

	t.Run("distinct_filenames_create_distinct_sources", func(t *testing.T) {
		first, err := service.ResolveStatementSource(db, period, user.ID, "", "a.pdf")
		testutil.AssertNoError(t, err)
		second, err := service.ResolveStatementSource(db, period, user.ID, "", "b.pdf")
		testutil.AssertNoError(t, err)

		if first.ID == second.ID {
			t.Error("expected distinct sources for distinct filenames")
		}
	})
}
