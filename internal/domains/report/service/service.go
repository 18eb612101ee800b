package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/reagan13/beach-management-system-java-sub000/config"
	"github.com/reagan13/beach-management-system-java-sub000/infras/otel"
	"github.com/reagan13/beach-management-system-java-sub000/infras/s3"
	bookingModel "github.com/reagan13/beach-management-system-java-sub000/internal/domains/booking/model"
	bookingRepo "github.com/reagan13/beach-management-system-java-sub000/internal/domains/booking/repository"
	paymentModel "github.com/reagan13/beach-management-system-java-sub000/internal/domains/payment/model"
	paymentRepo "github.com/reagan13/beach-management-system-java-sub000/internal/domains/payment/repository"
	"github.com/reagan13/beach-management-system-java-sub000/internal/domains/report/model/dto"
	"github.com/reagan13/beach-management-system-java-sub000/shared/constant"
	gDto "github.com/reagan13/beach-management-system-java-sub000/shared/dto"
	"github.com/reagan13/beach-management-system-java-sub000/shared/timezone"
)

const reportDirectory = "reports"

type Report interface {
	BookingSummary(ctx context.Context, req dto.GenerateReportRequest) (dto.ReportResponse, error)
	PaymentSummary(ctx context.Context, req dto.GenerateReportRequest) (dto.ReportResponse, error)
}

type serviceImpl struct {
	bookings bookingRepo.Booking
	payments paymentRepo.Payment
	storage  s3.S3
	cfg      *config.Config
	otel     otel.Otel
}

func New(bookings bookingRepo.Booking, payments paymentRepo.Payment, storage s3.S3, cfg *config.Config, otel otel.Otel) Report {
	return &serviceImpl{
		bookings: bookings,
		payments: payments,
		storage:  storage,
		cfg:      cfg,
		otel:     otel,
	}
}

func (s *serviceImpl) BookingSummary(ctx context.Context, req dto.GenerateReportRequest) (res dto.ReportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".BookingSummary")
	defer scope.End()
	defer scope.TraceIfError(err)

	params := gDto.QueryParams{SortBy: bookingModel.FieldCheckInDate, SortDir: gDto.SortDirAsc}
	filter := req.ToFilter(bookingModel.TableName, bookingModel.FieldCheckInDate)

	bookings, err := s.bookings.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings for report")

		return res, fmt.Errorf("failed to get bookings for report: %w", err)
	}

	records := make([][]string, 0, len(bookings)+1)
	records = append(records, []string{"id", "room_number", "customer_name", "check_in_date", "check_out_date", "guest_count", "total_price", "status"})

	for _, b := range bookings {
		records = append(records, []string{
			b.ID,
			b.RoomNumber,
			b.CustomerName,
			b.CheckInDate.Format(constant.DateOnlyFormat),
			b.CheckOutDate.Format(constant.DateOnlyFormat),
			strconv.Itoa(b.GuestCount),
			strconv.FormatFloat(b.TotalPrice, 'f', 2, 64),
			b.Status,
		})
	}

	return s.uploadCSV(ctx, "bookings", records, len(bookings))
}

func (s *serviceImpl) PaymentSummary(ctx context.Context, req dto.GenerateReportRequest) (res dto.ReportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PaymentSummary")
	defer scope.End()
	defer scope.TraceIfError(err)

	params := gDto.QueryParams{SortBy: constant.FieldCreatedAt, SortDir: gDto.SortDirAsc}
	filter := req.ToFilter(paymentModel.TableName, constant.FieldCreatedAt)

	payments, err := s.payments.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get payments for report")

		return res, fmt.Errorf("failed to get payments for report: %w", err)
	}

	records := make([][]string, 0, len(payments)+1)
	records = append(records, []string{"id", "user_id", "booking_id", "amount", "method", "status", "created_at"})

	for _, p := range payments {
		bookingID := constant.Empty
		if p.BookingID != nil {
			bookingID = *p.BookingID
		}

		records = append(records, []string{
			p.ID,
			p.UserID,
			bookingID,
			strconv.FormatFloat(p.Amount, 'f', 2, 64),
			p.Method,
			p.Status,
			p.CreatedAt.Format(constant.DateOnlyFormat),
		})
	}

	return s.uploadCSV(ctx, "payments", records, len(payments))
}

func (s *serviceImpl) uploadCSV(ctx context.Context, prefix string, records [][]string, rows int) (res dto.ReportResponse, err error) {
	var buf bytes.Buffer

	writer := csv.NewWriter(&buf)
	if err = writer.WriteAll(records); err != nil {
		log.Error().Err(err).Msg("failed to encode report")

		return res, fmt.Errorf("failed to encode report: %w", err)
	}

	now := timezone.Now()
	fileName := fmt.Sprintf("%s-%s.csv", prefix, now.Format("20060102-150405"))

	url, err := s.storage.UploadFileBytes(ctx, s.cfg.External.S3.BucketName, reportDirectory, fileName, constant.ContentTypeCSV, buf.Bytes())
	if err != nil {
		log.Error().Err(err).Msg("failed to upload report")

		return res, fmt.Errorf("failed to upload report: %w", err)
	}

	return dto.ReportResponse{
		FileName:    fileName,
		URL:         url,
		Rows:        rows,
		GeneratedAt: now,
	}, nil
}
