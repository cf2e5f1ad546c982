package tariff_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"ohanna/internal/domains/tariff"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	friday   = time.Date(2025, time.March, 7, 0, 0, 0, 0, time.UTC)
	saturday = time.Date(2025, time.March, 8, 0, 0, 0, 0, time.UTC)
	sunday   = time.Date(2025, time.March, 9, 0, 0, 0, 0, time.UTC)
	monday   = time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	tuesday  = time.Date(2025, time.March, 11, 0, 0, 0, 0, time.UTC)
)

func TestOvernightNight_CoupleBase(t *testing.T) {
	table := tariff.DefaultTable()

	tests := []struct {
		name      string
		date      time.Time
		isHoliday bool
		want      int
	}{
		{name: "saturday", date: saturday, want: 450000},
		{name: "holiday tuesday", date: tuesday, isHoliday: true, want: 450000},
		{name: "sunday without holiday flag", date: sunday, want: 380000},
		{name: "plain tuesday", date: tuesday, want: 380000},
	}

	for _, tt := range tests {
		for _, people := range []int{1, 2} {
			t.Run(tt.name, func(t *testing.T) {
				assert.Equal(t, tt.want, table.OvernightNight(people, 0, tt.date, tt.isHoliday))
			})
		}
	}
}

func TestOvernightNight_GroupTables(t *testing.T) {
	table := tariff.DefaultTable()

	weekday := map[int]int{3: 430000, 4: 500000, 5: 570000, 6: 640000}
	elevated := map[int]int{3: 520000, 4: 590000, 5: 660000, 6: 730000}

	for people := 3; people <= 6; people++ {
		assert.Equal(t, weekday[people], table.OvernightNight(people, 0, tuesday, false), "weekday %d", people)
		assert.Equal(t, weekday[people], table.OvernightNight(people, 0, sunday, false), "sunday %d", people)
		assert.Equal(t, elevated[people], table.OvernightNight(people, 0, saturday, false), "saturday %d", people)
		assert.Equal(t, elevated[people], table.OvernightNight(people, 0, monday, true), "holiday %d", people)
	}
}

func TestOvernightNight_Surcharges(t *testing.T) {
	table := tariff.DefaultTable()

	tests := []struct {
		name      string
		people    int
		children  int
		date      time.Time
		isHoliday bool
		want      int
	}{
		{name: "seventh adult on saturday", people: 7, date: saturday, want: 730000 + 70000},
		{name: "seventh adult on sunday uses weekday base and special rate", people: 7, date: sunday, want: 640000 + 70000},
		{name: "seventh adult on tuesday", people: 7, date: tuesday, want: 640000 + 56000},
		{name: "two extra adults on holiday", people: 8, date: tuesday, isHoliday: true, want: 730000 + 2*70000},
		{name: "children on tuesday", people: 2, children: 2, date: tuesday, want: 380000 + 2*40000},
		{name: "children and extra adult", people: 7, children: 1, date: friday, want: 640000 + 56000 + 40000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, table.OvernightNight(tt.people, tt.children, tt.date, tt.isHoliday))
		})
	}
}

func TestDayVisit(t *testing.T) {
	table := tariff.DefaultTable()

	tests := []struct {
		name      string
		people    int
		children  int
		date      time.Time
		isHoliday bool
		want      int
	}{
		{name: "plain tuesday", people: 2, date: tuesday, want: 280000},
		{name: "sunday", people: 2, date: sunday, want: 400000},
		{name: "saturday", people: 6, date: saturday, want: 400000},
		{name: "holiday monday", people: 4, date: monday, isHoliday: true, want: 400000},
		{name: "eight adults on tuesday", people: 8, date: tuesday, want: 280000 + 2*56000},
		{name: "eight adults on sunday", people: 8, date: sunday, want: 400000 + 2*70000},
		{name: "children", people: 2, children: 3, date: tuesday, want: 280000 + 3*40000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, table.DayVisit(tt.people, tt.children, tt.date, tt.isHoliday))
		})
	}
}

func TestStay(t *testing.T) {
	table := tariff.DefaultTable()

	t.Run("sums each night independently", func(t *testing.T) {
		want := table.OvernightNight(2, 1, friday, false) +
			table.OvernightNight(2, 1, saturday, false) +
			table.OvernightNight(2, 1, sunday, false)

		assert.Equal(t, want, table.Stay(2, 1, friday, monday, false))
		assert.Equal(t, 380000+450000+380000+3*40000, want)
	})

	t.Run("holiday flag applies to every night", func(t *testing.T) {
		assert.Equal(t, 3*450000, table.Stay(2, 0, friday, monday, true))
	})

	t.Run("nights are listed in order", func(t *testing.T) {
		nights := table.Nights(4, 0, friday, monday, false)

		require.Len(t, nights, 3)
		assert.Equal(t, saturday, nights[1].Date)
		assert.Equal(t, 590000, nights[1].Price)
	})

	t.Run("empty range", func(t *testing.T) {
		assert.Zero(t, table.Stay(2, 0, monday, monday, false))
	})
}

func TestRackRate(t *testing.T) {
	table := tariff.DefaultTable()

	assert.Equal(t, 450000, table.RackRate(saturday))
	assert.Equal(t, 380000, table.RackRate(sunday))
}

func TestLoadTable(t *testing.T) {
	t.Run("empty path yields defaults", func(t *testing.T) {
		table, err := tariff.LoadTable("")

		require.NoError(t, err)
		assert.Equal(t, tariff.DefaultTable(), table)
	})

	t.Run("custom sheet", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tariff.yaml")
		sheet := `base_capacity: 3
overnight:
  2: {weekday: 100, elevated: 200}
  3: {weekday: 150, elevated: 250}
day_visit: {weekday: 50, elevated: 80}
extra_person: {weekday: 10, elevated: 20}
child: 5
`
		require.NoError(t, os.WriteFile(path, []byte(sheet), 0o600))

		table, err := tariff.LoadTable(path)
		require.NoError(t, err)

		assert.Equal(t, 250+20+5, table.OvernightNight(4, 1, saturday, false))
		assert.Equal(t, 50, table.DayVisit(1, 0, tuesday, false))
	})

	t.Run("missing group rate", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tariff.yaml")
		require.NoError(t, os.WriteFile(path, []byte("base_capacity: 4\novernight:\n  2: {weekday: 1, elevated: 2}\n"), 0o600))

		_, err := tariff.LoadTable(path)
		assert.ErrorContains(t, err, "3 people")
	})

	t.Run("unreadable file", func(t *testing.T) {
		_, err := tariff.LoadTable(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})
}
