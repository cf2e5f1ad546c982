package service_test

import (
	"context"
	"errors"
	"ohanna/infras/otel/mocks"
	bookingModel "ohanna/internal/domains/booking/model"
	bookingMocks "ohanna/internal/domains/booking/service/mocks"
	"ohanna/internal/domains/draft/model"
	"ohanna/internal/domains/draft/model/dto"
	"ohanna/internal/domains/draft/repository"
	"ohanna/internal/domains/draft/service"
	"ohanna/internal/domains/tariff"
	"ohanna/shared/timezone"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T) (service.Draft, *bookingMocks.MockBooking) {
	t.Helper()

	ctrl := gomock.NewController(t)
	bookings := bookingMocks.NewMockBooking(ctrl)

	return service.New(repository.NewMemory(), bookings, tariff.DefaultTable(), mocks.NewOtel()), bookings
}

func ptr[T any](v T) *T { return &v }

func TestDraftService_OpenOnDate(t *testing.T) {
	svc, _ := newService(t)

	res, err := svc.Open(context.Background(), dto.OpenDraftRequest{Date: "2025-03-07"})
	require.NoError(t, err)

	assert.NotEmpty(t, res.ID)
	assert.False(t, res.Editing)
	assert.Equal(t, "2025-03-08", res.Booking.EndDate)
	assert.Equal(t, 380000, res.Quote, "one friday night for two")

	got, err := svc.Get(context.Background(), res.ID)
	require.NoError(t, err)
	assert.Equal(t, res.ID, got.ID)
}

func TestDraftService_OpenFromBooking(t *testing.T) {
	svc, bookings := newService(t)

	bookings.EXPECT().Find(gomock.Any(), "b-1").Return(bookingModel.Booking{
		ID:            "b-1",
		Kind:          bookingModel.KindOvernight,
		StartDate:     timezone.Date(2025, 3, 7),
		EndDate:       timezone.Date(2025, 3, 9),
		NumPeople:     2,
		Deposit:       100000,
		PaymentMethod: bookingModel.MethodBankB,
	}, nil)
	bookings.EXPECT().Find(gomock.Any(), "ghost").Return(bookingModel.Booking{}, bookingModel.ErrBookingNotFound)

	res, err := svc.Open(context.Background(), dto.OpenDraftRequest{BookingID: "b-1"})
	require.NoError(t, err)
	assert.True(t, res.Editing)
	require.Len(t, res.Booking.Payments, 1)
	assert.Equal(t, "legacy", res.Booking.Payments[0].ID)
	assert.Equal(t, "DaviPlata", res.Booking.Payments[0].Method)

	_, err = svc.Open(context.Background(), dto.OpenDraftRequest{BookingID: "ghost"})
	assert.ErrorIs(t, err, bookingModel.ErrBookingNotFound)
}

func TestDraftService_Execute(t *testing.T) {
	tests := []struct {
		name    string
		cmds    []dto.CommandRequest
		wantErr error
		check   func(t *testing.T, res dto.CommandResponse)
	}{
		{
			name: "guest commands",
			cmds: []dto.CommandRequest{
				{Command: model.CommandAddGuest},
				{Command: model.CommandUpdateGuest, Index: ptr(1), Guest: &dto.GuestFieldsRequest{Name: ptr("Ana")}},
				{Command: model.CommandRemoveGuest, Index: ptr(0)},
			},
			check: func(t *testing.T, res dto.CommandResponse) {
				t.Helper()
				require.NotNil(t, res.Draft)
				require.Len(t, res.Draft.Booking.Guests, 1)
				assert.Equal(t, "Ana", res.Draft.Booking.Guests[0].Name)
			},
		},
		{
			name:    "remove guest without index",
			cmds:    []dto.CommandRequest{{Command: model.CommandRemoveGuest}},
			wantErr: model.ErrGuestIndexOutOfRange,
		},
		{
			name: "payment commands",
			cmds: []dto.CommandRequest{
				{Command: model.CommandAddPayment},
				{Command: model.CommandUpdatePayment, Index: ptr(0), Payment: &dto.PaymentFieldsRequest{Amount: ptr(90000)}},
			},
			check: func(t *testing.T, res dto.CommandResponse) {
				t.Helper()
				require.Len(t, res.Draft.Booking.Payments, 1)
				assert.Equal(t, 90000, res.Draft.Booking.Payments[0].Amount)
				assert.Equal(t, "Efectivo", res.Draft.Booking.Payments[0].Method)
			},
		},
		{
			name:    "remove missing payment",
			cmds:    []dto.CommandRequest{{Command: model.CommandRemovePayment, Index: ptr(0)}},
			wantErr: model.ErrPaymentIndexOutOfRange,
		},
		{
			name: "set fields reprices",
			cmds: []dto.CommandRequest{
				{Command: model.CommandSetFields, Fields: &dto.FieldsRequest{Kind: ptr(bookingModel.KindDayVisit), StartDate: ptr("2025-03-08")}},
			},
			check: func(t *testing.T, res dto.CommandResponse) {
				t.Helper()
				assert.Equal(t, "2025-03-08", res.Draft.Booking.EndDate)
				assert.Equal(t, 400000, res.Draft.Quote, "saturday day visit for two")
			},
		},
		{
			name:    "bad date in fields",
			cmds:    []dto.CommandRequest{{Command: model.CommandSetFields, Fields: &dto.FieldsRequest{StartDate: ptr("soon")}}},
			wantErr: nil,
			check:   nil,
		},
		{
			name:    "unknown command",
			cmds:    []dto.CommandRequest{{Command: "explode"}},
			wantErr: model.ErrUnknownCommand,
		},
		{
			name:    "delete a new draft",
			cmds:    []dto.CommandRequest{{Command: model.CommandDelete}},
			wantErr: model.ErrNotEditing,
		},
		{
			name: "cancel closes",
			cmds: []dto.CommandRequest{{Command: model.CommandCancel}},
			check: func(t *testing.T, res dto.CommandResponse) {
				t.Helper()
				assert.True(t, res.Closed)
				assert.Nil(t, res.Draft)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newService(t)

			opened, err := svc.Open(context.Background(), dto.OpenDraftRequest{Date: "2025-03-07"})
			require.NoError(t, err)

			var res dto.CommandResponse

			for _, cmd := range tt.cmds {
				res, err = svc.Execute(context.Background(), opened.ID, cmd)
				if err != nil {
					break
				}
			}

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.check == nil:
				assert.Error(t, err)
			default:
				require.NoError(t, err)
				tt.check(t, res)
			}
		})
	}
}

func TestDraftService_Save(t *testing.T) {
	svc, bookings := newService(t)

	opened, err := svc.Open(context.Background(), dto.OpenDraftRequest{Date: "2025-03-07"})
	require.NoError(t, err)

	bookings.EXPECT().
		SaveModel(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, b bookingModel.Booking) (bookingModel.SaveResult, error) {
			assert.Empty(t, b.ID, "new drafts create bookings")

			b.ID = "b-new"

			return bookingModel.SaveResult{Booking: b, Created: true}, nil
		})

	res, err := svc.Execute(context.Background(), opened.ID, dto.CommandRequest{Command: model.CommandSave})
	require.NoError(t, err)
	assert.True(t, res.Closed)
	require.NotNil(t, res.Saved)
	assert.Equal(t, "b-new", res.Saved.Booking.ID)
	assert.True(t, res.Saved.Created)

	_, err = svc.Get(context.Background(), opened.ID)
	assert.ErrorIs(t, err, model.ErrDraftNotFound)
}

func TestDraftService_SaveFailureKeepsDraft(t *testing.T) {
	svc, bookings := newService(t)

	opened, err := svc.Open(context.Background(), dto.OpenDraftRequest{Date: "2025-03-07"})
	require.NoError(t, err)

	bookings.EXPECT().SaveModel(gomock.Any(), gomock.Any()).Return(bookingModel.SaveResult{}, bookingModel.ErrBookingConflict)

	_, err = svc.Execute(context.Background(), opened.ID, dto.CommandRequest{Command: model.CommandSave})
	assert.ErrorIs(t, err, bookingModel.ErrBookingConflict)

	_, err = svc.Get(context.Background(), opened.ID)
	assert.NoError(t, err)
}

func TestDraftService_DeleteEditedBooking(t *testing.T) {
	svc, bookings := newService(t)

	bookings.EXPECT().Find(gomock.Any(), "b-1").Return(bookingModel.Booking{ID: "b-1", Kind: bookingModel.KindDayVisit}, nil)

	opened, err := svc.Open(context.Background(), dto.OpenDraftRequest{BookingID: "b-1"})
	require.NoError(t, err)

	bookings.EXPECT().Delete(gomock.Any(), "b-1").Return(errors.New("disk full"))

	_, err = svc.Execute(context.Background(), opened.ID, dto.CommandRequest{Command: model.CommandDelete})
	assert.Error(t, err)

	bookings.EXPECT().Delete(gomock.Any(), "b-1").Return(nil)

	res, err := svc.Execute(context.Background(), opened.ID, dto.CommandRequest{Command: model.CommandDelete})
	require.NoError(t, err)
	assert.True(t, res.Closed)
}

func TestDraftService_Cancel(t *testing.T) {
	svc, _ := newService(t)

	assert.ErrorIs(t, svc.Cancel(context.Background(), "ghost"), model.ErrDraftNotFound)

	opened, err := svc.Open(context.Background(), dto.OpenDraftRequest{Date: "2025-03-07"})
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(context.Background(), opened.ID))
	assert.ErrorIs(t, svc.Cancel(context.Background(), opened.ID), model.ErrDraftNotFound)
}
