// Package share renders a booking as the text blocks sent to the guest, the gatekeeper and the
// administrator, and as a structured export record.
package share

import (
	"bytes"
	"encoding/json"
	"fmt"
	"ohanna/internal/domains/booking/model"
	"ohanna/shared/money"
	"ohanna/shared/timezone"
	"strings"
)

const (
	separator = "--------------------------------"

	noGuests       = "No registrados"
	noClient       = "No registrado"
	labelOvernight = "Hospedaje"
	labelDayVisit  = "Pasadía"
)

type Formatter struct {
	propertyName  string
	recipientName string
}

func New(propertyName, recipientName string) *Formatter {
	return &Formatter{propertyName: propertyName, recipientName: recipientName}
}

// GuestConfirmation is the reservation notice sent to the recipient.
func (f *Formatter) GuestConfirmation(b model.Booking) string {
	lines := []string{
		fmt.Sprintf("🏡 *RESERVA %s* 🏡", strings.ToUpper(f.propertyName)),
		separator,
		fmt.Sprintf("👤 *%s:*", f.recipientName),
		fmt.Sprintf("📅 *Ingreso:* %s (%s)", timezone.FormatDate(b.StartDate), b.CheckIn()),
		fmt.Sprintf("📅 *Salida:* %s (%s)", timezone.FormatDate(b.EndDate), b.CheckOut()),
		fmt.Sprintf("🏨 *Tipo:* %s", b.Kind),
		fmt.Sprintf("👥 *Personas:* %d", b.NumPeople),
		fmt.Sprintf("💰 *Saldo Pendiente:* %s", money.Format(b.Balance())),
		separator,
	}

	return strings.Join(lines, "\n")
}

// GatekeeperList authorizes the named guests at the gate. Guests with a blank name are left out.
func (f *Formatter) GatekeeperList(b model.Booking) string {
	guests := []string{}

	for _, g := range b.Guests {
		if strings.TrimSpace(g.Name) == "" {
			continue
		}

		guests = append(guests, fmt.Sprintf("• %s - %s", g.Name, g.Document))
	}

	guestList := noGuests
	if len(guests) > 0 {
		guestList = strings.Join(guests, "\n")
	}

	lines := []string{
		"👮 *AUTORIZACIÓN PORTERÍA* 👮",
		separator,
		fmt.Sprintf("📅 *Fecha:* %s al %s", timezone.FormatDate(b.StartDate), timezone.FormatDate(b.EndDate)),
		fmt.Sprintf("🏠 *%s*", f.propertyName),
		"👥 *Huéspedes:*",
		guestList,
		separator,
	}

	return strings.Join(lines, "\n")
}

// AdminSummary is the internal breakdown of price, payments and cleaning fee.
func (f *Formatter) AdminSummary(b model.Booking) string {
	days := b.Nights()

	lines := []string{
		"📝 *RESUMEN DE RESERVA (ADMIN)* 📝",
		separator,
		fmt.Sprintf("👥 *Huéspedes totales:* %d (%d adultos, %d niños)", b.Occupants(), b.NumPeople, b.NumChildren),
		fmt.Sprintf("📅 *Duración:* %d %s", days, dayLabel(b.Kind, days)),
		fmt.Sprintf("💰 *Desglose:* %s (Tarifa base + adicionales)", money.Format(b.TotalPrice)),
		fmt.Sprintf("📉 *Descuento:* %s", money.Format(b.Discount)),
		fmt.Sprintf("✅ *Total:* %s", money.Format(b.DiscountedTotal())),
		"💳 *Abonos:*",
	}

	lines = append(lines, paymentLines(b)...)
	lines = append(lines,
		fmt.Sprintf("🧹 *Aseo:* %s (Abonado: %s, Saldo: %s)",
			money.Format(b.CleaningTotal), money.Format(b.CleaningDeposit), money.Format(b.CleaningBalance())),
		separator,
	)

	return strings.Join(lines, "\n")
}

func dayLabel(kind model.Kind, days int) string {
	label := labelDayVisit
	if kind == model.KindOvernight {
		label = labelOvernight
	}

	if days == 1 {
		return "Día " + label
	}

	return "Días " + label
}

// paymentLines lists itemized payments, or the stored deposit of a record that predates them.
func paymentLines(b model.Booking) []string {
	if len(b.Payments) == 0 {
		return []string{fmt.Sprintf("• %s (%s)", money.Format(b.Deposit), legacyMethod(b))}
	}

	lines := make([]string, len(b.Payments))
	for i, p := range b.Payments {
		lines[i] = fmt.Sprintf("• %s (%s) - %s", money.Format(p.Amount), p.Method, timezone.FormatDate(p.Date))
	}

	return lines
}

func legacyMethod(b model.Booking) model.PaymentMethod {
	if b.PaymentMethod == "" {
		return model.MethodUnspecified
	}

	return b.PaymentMethod
}

// ExportPayment is one entry of the export's payment list. Legacy deposits have no id or date.
type ExportPayment struct {
	ID     string              `json:"id,omitempty"`
	Amount int                 `json:"amount"`
	Method model.PaymentMethod `json:"method"`
	Date   string              `json:"date,omitempty"`
}

// Record is the export schema read by downstream spreadsheets. Field names are fixed.
type Record struct {
	Client          string          `json:"cliente"`
	Kind            model.Kind      `json:"tipo"`
	Start           string          `json:"inicio"`
	End             string          `json:"fin"`
	Occupants       int             `json:"huespedes"`
	Total           int             `json:"total"`
	Payments        []ExportPayment `json:"abonos"`
	CleaningTotal   int             `json:"aseo_total"`
	CleaningDeposit int             `json:"aseo_abonado"`
}

func (f *Formatter) Record(b model.Booking) Record {
	client := noClient
	if len(b.Guests) > 0 && b.Guests[0].Name != "" {
		client = b.Guests[0].Name
	}

	payments := make([]ExportPayment, 0, len(b.Payments))
	for _, p := range b.Payments {
		payments = append(payments, ExportPayment{ID: p.ID, Amount: p.Amount, Method: p.Method, Date: timezone.FormatDate(p.Date)})
	}

	if len(b.Payments) == 0 && b.Deposit > 0 {
		payments = append(payments, ExportPayment{Amount: b.Deposit, Method: legacyMethod(b)})
	}

	return Record{
		Client:          client,
		Kind:            b.Kind,
		Start:           timezone.FormatDate(b.StartDate),
		End:             timezone.FormatDate(b.EndDate),
		Occupants:       b.Occupants(),
		Total:           b.DiscountedTotal(),
		Payments:        payments,
		CleaningTotal:   b.CleaningTotal,
		CleaningDeposit: b.CleaningDeposit,
	}
}

// Export serializes the record as indented JSON.
func (f *Formatter) Export(b model.Booking) (string, error) {
	var buf bytes.Buffer

	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(f.Record(b)); err != nil {
		return "", fmt.Errorf("failed to encode export record: %w", err)
	}

	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// Messages bundles all four renderings.
type Messages struct {
	GuestConfirmation string
	GatekeeperList    string
	AdminSummary      string
	Export            string
}

func (f *Formatter) All(b model.Booking) (Messages, error) {
	export, err := f.Export(b)
	if err != nil {
		return Messages{}, err
	}

	return Messages{
		GuestConfirmation: f.GuestConfirmation(b),
		GatekeeperList:    f.GatekeeperList(b),
		AdminSummary:      f.AdminSummary(b),
		Export:            export,
	}, nil
}
