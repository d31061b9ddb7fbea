package scan

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"Bar-Management-SaaS/domain"
	"Bar-Management-SaaS/entities"
	"Bar-Management-SaaS/pkg/report"
)

type (
	ScanService interface {
		ScanReceipt(ctx context.Context, req domain.ScanReceiptRequest, employeeID string, storeID string) (*domain.ScanReceiptResponse, error)
		ConfirmScan(ctx context.Context, req domain.ConfirmScanRequest, employeeID string, employeeName string, storeID string) (*domain.ReceiptResponse, error)
		GetScanHistory(ctx context.Context, storeID string, dailyReportID string, limit int) ([]*domain.ScanHistoryItem, error)
		DeleteScan(ctx context.Context, id string, storeID string) error
	}

	scanService struct {
		scanRepository   ScanRepository
		reportRepository report.ReportRepository
		scanner          Scanner
	}
)

func NewScanService(scanRepository ScanRepository, reportRepository report.ReportRepository, scanner Scanner) ScanService {
	return &scanService{
		scanRepository:   scanRepository,
		reportRepository: reportRepository,
		scanner:          scanner,
	}
}

func (s *scanService) ScanReceipt(ctx context.Context, req domain.ScanReceiptRequest, employeeID string, storeID string) (*domain.ScanReceiptResponse, error) {
	employeeUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	storeUUID, err := uuid.Parse(storeID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	result := s.scanner.Scan(ctx, req.Image)

	now := time.Now()
	image := &entities.ReceiptImage{
		StoreID:          storeUUID,
		EmployeeID:       employeeUUID,
		ImageURL:         result.ImageURL,
		ImageHash:        result.ImageHash,
		OcrRawText:       result.RawText,
		ConfidenceScore:  result.Confidence,
		ProcessingStatus: "completed",
		UploadedAt:       now,
		ProcessedAt:      &now,
	}
	if !result.Success {
		image.ProcessingStatus = "failed"
	}

	if req.DailyReportID != "" {
		reportUUID, err := uuid.Parse(req.DailyReportID)
		if err != nil {
			return nil, domain.ErrParseUUID
		}
		image.DailyReportID = &reportUUID
	}

	if extracted, err := json.Marshal(result); err == nil {
		image.OcrExtractedData = string(extracted)
	}

	if err := s.scanRepository.CreateReceiptImage(ctx, image); err != nil {
		return nil, err
	}

	return &domain.ScanReceiptResponse{
		ScanResult:     result,
		ReceiptImageID: image.ID,
	}, nil
}

// ConfirmScan turns a verified scan into a receipt row and resyncs the
// owning report's totals.
func (s *scanService) ConfirmScan(ctx context.Context, req domain.ConfirmScanRequest, employeeID string, employeeName string, storeID string) (*domain.ReceiptResponse, error) {
	image, err := s.scanRepository.GetReceiptImageByID(ctx, req.ReceiptImageID)
	if err != nil {
		return nil, domain.ErrScanNotFound
	}
	if image.StoreID.String() != storeID {
		return nil, domain.ErrStoreAccessDenied
	}
	if image.IsVerified {
		return nil, domain.ErrScanAlreadyUsed
	}

	reportUUID, err := uuid.Parse(req.DailyReportID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	dailyReport, err := s.reportRepository.GetDailyReportByID(ctx, req.DailyReportID)
	if err != nil {
		return nil, domain.ErrReportNotFound
	}
	if dailyReport.StoreID.String() != storeID {
		return nil, domain.ErrStoreAccessDenied
	}

	customerName := req.CustomerName
	if customerName == "" {
		customerName = "不明"
	}
	receiptEmployee := req.EmployeeName
	if receiptEmployee == "" {
		receiptEmployee = employeeName
	}

	receipt := &entities.Receipt{
		DailyReportID:     reportUUID,
		CustomerName:      customerName,
		EmployeeName:      receiptEmployee,
		DrinkCount:        req.DrinkCount,
		ChampagneType:     req.ChampagneType,
		ChampagnePrice:    req.ChampagnePrice,
		Amount:            req.Amount,
		IsCard:            req.IsCard,
		ReceiptImageID:    &image.ID,
		IsAutoGenerated:   true,
		ManualCorrections: req.Corrections,
	}

	if err := s.scanRepository.CreateReceipt(ctx, receipt); err != nil {
		return nil, err
	}

	image.IsVerified = true
	image.DailyReportID = &reportUUID
	if err := s.scanRepository.UpdateReceiptImage(ctx, image); err != nil {
		return nil, err
	}

	if err := s.reportRepository.RecalculateTotals(ctx, req.DailyReportID); err != nil {
		return nil, err
	}

	return &domain.ReceiptResponse{
		ID:             receipt.ID,
		CustomerName:   receipt.CustomerName,
		EmployeeName:   receipt.EmployeeName,
		DrinkCount:     receipt.DrinkCount,
		ChampagneType:  receipt.ChampagneType,
		ChampagnePrice: receipt.ChampagnePrice,
		Amount:         receipt.Amount,
		IsCard:         receipt.IsCard,
		IsAuto:         receipt.IsAutoGenerated,
		CreatedAt:      receipt.CreatedAt,
	}, nil
}

func (s *scanService) GetScanHistory(ctx context.Context, storeID string, dailyReportID string, limit int) ([]*domain.ScanHistoryItem, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}

	images, err := s.scanRepository.GetReceiptImages(ctx, storeID, dailyReportID, limit)
	if err != nil {
		return nil, err
	}

	items := make([]*domain.ScanHistoryItem, 0, len(images))
	for _, image := range images {
		items = append(items, &domain.ScanHistoryItem{
			ID:              image.ID,
			ImageURL:        image.ImageURL,
			ImageHash:       image.ImageHash,
			Status:          image.ProcessingStatus,
			ConfidenceScore: image.ConfidenceScore,
			IsVerified:      image.IsVerified,
			DailyReportID:   image.DailyReportID,
			UploadedAt:      image.UploadedAt,
			ProcessedAt:     image.ProcessedAt,
		})
	}
	return items, nil
}

func (s *scanService) DeleteScan(ctx context.Context, id string, storeID string) error {
	image, err := s.scanRepository.GetReceiptImageByID(ctx, id)
	if err != nil {
		return domain.ErrScanNotFound
	}
	if image.StoreID.String() != storeID {
		return domain.ErrStoreAccessDenied
	}
	if image.IsVerified {
		return domain.ErrScanAlreadyUsed
	}
	return s.scanRepository.DeleteReceiptImage(ctx, id)
}
