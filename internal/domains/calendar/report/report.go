// Package report renders the month ledger as a spreadsheet for the accountant.
package report

import (
	"fmt"
	"ohanna/internal/domains/booking/model"
	"ohanna/internal/domains/calendar"
	"ohanna/shared/timezone"

	"github.com/xuri/excelize/v2"
)

const (
	SheetBookings    = "Reservas"
	SheetCollections = "Recaudo"

	defaultSheet = "Sheet1"
	totalLabel   = "Total"
)

var bookingHeader = []any{
	"Cliente", "Tipo", "Inicio", "Fin", "Huéspedes", "Total", "Descuento", "Abonado", "Saldo",
	"Método", "Aseo total", "Aseo abonado",
}

var collectionHeader = []any{"Método", "Monto", "Porcentaje"}

// Build writes the bookings of the month and the money collected per method to an XLSX
// workbook.
func Build(bookings []model.Booking, collections calendar.Collections) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(defaultSheet, SheetBookings); err != nil {
		return nil, fmt.Errorf("failed to name bookings sheet: %w", err)
	}

	if _, err := f.NewSheet(SheetCollections); err != nil {
		return nil, fmt.Errorf("failed to add collections sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	if err = writeBookings(f, bookings, bold); err != nil {
		return nil, err
	}

	if err = writeCollections(f, collections, bold); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	return buf.Bytes(), nil
}

func writeBookings(f *excelize.File, bookings []model.Booking, headerStyle int) error {
	rows := make([][]any, 0, len(bookings)+1)
	rows = append(rows, bookingHeader)

	for _, b := range bookings {
		client := ""
		if len(b.Guests) > 0 {
			client = b.Guests[0].Name
		}

		rows = append(rows, []any{
			client,
			string(b.Kind),
			timezone.FormatDate(b.StartDate),
			timezone.FormatDate(b.EndDate),
			b.Occupants(),
			b.TotalPrice,
			b.Discount,
			b.Deposit,
			b.Balance(),
			string(b.PaymentMethod),
			b.CleaningTotal,
			b.CleaningDeposit,
		})
	}

	if err := writeRows(f, SheetBookings, rows); err != nil {
		return err
	}

	if err := f.SetRowStyle(SheetBookings, 1, 1, headerStyle); err != nil {
		return fmt.Errorf("failed to style bookings header: %w", err)
	}

	if err := f.SetColWidth(SheetBookings, "A", "A", 28); err != nil {
		return fmt.Errorf("failed to size bookings sheet: %w", err)
	}

	return nil
}

func writeCollections(f *excelize.File, collections calendar.Collections, headerStyle int) error {
	ranked := collections.Ranked()

	rows := make([][]any, 0, len(ranked)+2)
	rows = append(rows, collectionHeader)

	for _, m := range ranked {
		rows = append(rows, []any{string(m.Method), m.Amount, m.Percent})
	}

	rows = append(rows, []any{totalLabel, collections.Total})

	if err := writeRows(f, SheetCollections, rows); err != nil {
		return err
	}

	if err := f.SetRowStyle(SheetCollections, 1, 1, headerStyle); err != nil {
		return fmt.Errorf("failed to style collections header: %w", err)
	}

	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("failed to address row %d: %w", i+1, err)
		}

		if err = f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}

	return nil
}
