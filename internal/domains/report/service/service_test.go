package service_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/reagan13/beach-management-system-java-sub000/config"
	"github.com/reagan13/beach-management-system-java-sub000/infras/otel/mocks"
	s3Mocks "github.com/reagan13/beach-management-system-java-sub000/infras/s3/mocks"
	bookingModel "github.com/reagan13/beach-management-system-java-sub000/internal/domains/booking/model"
	bookingMocks "github.com/reagan13/beach-management-system-java-sub000/internal/domains/booking/mocks"
	paymentModel "github.com/reagan13/beach-management-system-java-sub000/internal/domains/payment/model"
	paymentMocks "github.com/reagan13/beach-management-system-java-sub000/internal/domains/payment/mocks"
	"github.com/reagan13/beach-management-system-java-sub000/internal/domains/report/model/dto"
	"github.com/reagan13/beach-management-system-java-sub000/internal/domains/report/service"
	"github.com/reagan13/beach-management-system-java-sub000/shared/constant"
)

type reportServiceMocks struct {
	bookings *bookingMocks.MockBooking
	payments *paymentMocks.MockPayment
	storage  *s3Mocks.MockS3
}

func newReportService(ctrl *gomock.Controller) (service.Report, reportServiceMocks) {
	m := reportServiceMocks{
		bookings: bookingMocks.NewMockBooking(ctrl),
		payments: paymentMocks.NewMockPayment(ctrl),
		storage:  s3Mocks.NewMockS3(ctrl),
	}

	cfg := &config.Config{}
	cfg.External.S3.BucketName = "reports-bucket"

	svc := service.New(m.bookings, m.payments, m.storage, cfg, mocks.NewOtel())

	return svc, m
}

func TestReportService_BookingSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newReportService(ctrl)

	bookings := []bookingModel.Booking{
		{
			ID:           "booking-id",
			RoomNumber:   "101",
			CustomerName: "Guest",
			CheckInDate:  time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			CheckOutDate: time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
			GuestCount:   2,
			TotalPrice:   500,
			Status:       constant.BookingStatusConfirmed,
		},
	}

	m.bookings.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(bookings, nil)

	m.storage.EXPECT().
		UploadFileBytes(gomock.Any(), "reports-bucket", "reports", gomock.Any(), constant.ContentTypeCSV, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, fileName, _ string, data []byte) (string, error) {
			records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
			assert.NoError(t, err)
			assert.Len(t, records, 2)
			assert.Equal(t, "id", records[0][0])
			assert.Equal(t, "booking-id", records[1][0])
			assert.Equal(t, "2026-09-01", records[1][3])
			assert.Equal(t, "500.00", records[1][6])

			return "https://cdn.example.com/reports/" + fileName, nil
		})

	res, err := svc.BookingSummary(context.Background(), dto.GenerateReportRequest{})

	assert.NoError(t, err)
	assert.Equal(t, 1, res.Rows)
	assert.Contains(t, res.URL, res.FileName)
}

func TestReportService_PaymentSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newReportService(ctrl)

	payments := []paymentModel.Payment{
		{
			ID:     "payment-id",
			UserID: "user-id",
			Amount: 250,
			Method: "cash",
			Status: "completed",
		},
	}

	m.payments.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(payments, nil)

	m.storage.EXPECT().
		UploadFileBytes(gomock.Any(), "reports-bucket", "reports", gomock.Any(), constant.ContentTypeCSV, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, fileName, _ string, data []byte) (string, error) {
			records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
			assert.NoError(t, err)
			assert.Len(t, records, 2)
			// Payments without a linked booking export an empty booking_id.
			assert.Equal(t, "", records[1][2])
			assert.Equal(t, "250.00", records[1][3])

			return "https://cdn.example.com/reports/" + fileName, nil
		})

	res, err := svc.PaymentSummary(context.Background(), dto.GenerateReportRequest{})

	assert.NoError(t, err)
	assert.Equal(t, 1, res.Rows)
}

func TestReportService_UploadFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newReportService(ctrl)

	m.bookings.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]bookingModel.Booking{}, nil)

	m.storage.EXPECT().
		UploadFileBytes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", errors.New("bucket unreachable"))

	_, err := svc.BookingSummary(context.Background(), dto.GenerateReportRequest{})

	assert.Error(t, err)
}
