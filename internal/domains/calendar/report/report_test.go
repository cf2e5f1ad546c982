package report_test

import (
	"bytes"
	"ohanna/internal/domains/booking/model"
	"ohanna/internal/domains/calendar"
	"ohanna/internal/domains/calendar/report"
	"ohanna/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestBuild(t *testing.T) {
	bookings := []model.Booking{
		{
			ID:            "b-1",
			Kind:          model.KindOvernight,
			StartDate:     timezone.Date(2025, 3, 7),
			EndDate:       timezone.Date(2025, 3, 9),
			NumPeople:     2,
			NumChildren:   1,
			Guests:        []model.Guest{{Name: "Ana"}},
			TotalPrice:    830000,
			Discount:      30000,
			Deposit:       300000,
			PaymentMethod: model.MethodCash,
			Payments: []model.Payment{
				{ID: "p-1", Amount: 200000, Method: model.MethodCash, Date: timezone.Date(2025, 3, 1)},
				{ID: "p-2", Amount: 100000, Method: model.MethodNequiA, Date: timezone.Date(2025, 3, 2)},
			},
		},
	}

	data, err := report.Build(bookings, calendar.Collect(bookings, 2025, time.March))
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)

	defer f.Close()

	assert.Equal(t, []string{report.SheetBookings, report.SheetCollections}, f.GetSheetList())

	rows, err := f.GetRows(report.SheetBookings)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Cliente", rows[0][0])
	assert.Equal(t, []string{"Ana", "Hospedaje", "2025-03-07", "2025-03-09", "3", "830000", "30000", "300000", "500000", "Efectivo", "0", "0"}, rows[1])

	rows, err = f.GetRows(report.SheetCollections)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"Efectivo", "200000", "66.7"}, rows[1])
	assert.Equal(t, []string{"Nequi Hernan", "100000", "33.3"}, rows[2])
	assert.Equal(t, []string{"Total", "300000"}, rows[3])
}

func TestBuild_Empty(t *testing.T) {
	data, err := report.Build(nil, calendar.Collect(nil, 2025, time.March))
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)

	defer f.Close()

	rows, err := f.GetRows(report.SheetCollections)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Método", "Monto", "Porcentaje"}, {"Total", "0"}}, rows)
}
