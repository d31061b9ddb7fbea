package scan

import (
	"context"
	"encoding/base64"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Bar-Management-SaaS/domain"
	"Bar-Management-SaaS/entities"
)

type fakeScanRepository struct {
	images   map[uuid.UUID]*entities.ReceiptImage
	receipts []*entities.Receipt
}

func newFakeScanRepository() *fakeScanRepository {
	return &fakeScanRepository{images: map[uuid.UUID]*entities.ReceiptImage{}}
}

func (f *fakeScanRepository) CreateReceiptImage(_ context.Context, image *entities.ReceiptImage) error {
	if image.ID == uuid.Nil {
		image.ID = uuid.New()
	}
	f.images[image.ID] = image
	return nil
}

func (f *fakeScanRepository) GetReceiptImageByID(_ context.Context, id string) (*entities.ReceiptImage, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	image, ok := f.images[parsed]
	if !ok {
		return nil, domain.ErrScanNotFound
	}
	return image, nil
}

func (f *fakeScanRepository) UpdateReceiptImage(_ context.Context, image *entities.ReceiptImage) error {
	f.images[image.ID] = image
	return nil
}

func (f *fakeScanRepository) DeleteReceiptImage(_ context.Context, id string) error {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return err
	}
	delete(f.images, parsed)
	return nil
}

func (f *fakeScanRepository) GetReceiptImages(_ context.Context, storeID string, _ string, limit int) ([]*entities.ReceiptImage, error) {
	var out []*entities.ReceiptImage
	for _, image := range f.images {
		if image.StoreID.String() == storeID && len(out) < limit {
			out = append(out, image)
		}
	}
	return out, nil
}

func (f *fakeScanRepository) CreateReceipt(_ context.Context, receipt *entities.Receipt) error {
	if receipt.ID == uuid.Nil {
		receipt.ID = uuid.New()
	}
	f.receipts = append(f.receipts, receipt)
	return nil
}

func (f *fakeScanRepository) GetReceiptsByReport(_ context.Context, dailyReportID string) ([]*entities.Receipt, error) {
	var out []*entities.Receipt
	for _, receipt := range f.receipts {
		if receipt.DailyReportID.String() == dailyReportID {
			out = append(out, receipt)
		}
	}
	return out, nil
}

type fakeReportRepository struct {
	reports      map[uuid.UUID]*entities.DailyReport
	recalculated []string
}

func newFakeReportRepository() *fakeReportRepository {
	return &fakeReportRepository{reports: map[uuid.UUID]*entities.DailyReport{}}
}

func (f *fakeReportRepository) CreateDailyReport(_ context.Context, report *entities.DailyReport) error {
	if report.ID == uuid.Nil {
		report.ID = uuid.New()
	}
	f.reports[report.ID] = report
	return nil
}

func (f *fakeReportRepository) GetDailyReportByID(_ context.Context, id string) (*entities.DailyReport, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	report, ok := f.reports[parsed]
	if !ok {
		return nil, domain.ErrReportNotFound
	}
	return report, nil
}

func (f *fakeReportRepository) GetDailyReportByDate(_ context.Context, _ string, _ string, _ time.Time) (*entities.DailyReport, error) {
	return nil, nil
}

func (f *fakeReportRepository) UpdateDailyReport(_ context.Context, report *entities.DailyReport) error {
	f.reports[report.ID] = report
	return nil
}

func (f *fakeReportRepository) GetDailyReports(_ context.Context, _ string, _ string, _, _ *time.Time, _ *bool, _, _ int) ([]*entities.DailyReport, int64, error) {
	return nil, 0, nil
}

func (f *fakeReportRepository) RecalculateTotals(_ context.Context, dailyReportID string) error {
	f.recalculated = append(f.recalculated, dailyReportID)
	return nil
}

func (f *fakeReportRepository) SumSalesForPeriod(_ context.Context, _ string, _, _ time.Time) (float64, int, error) {
	return 0, 0, nil
}

func (f *fakeReportRepository) SumEmployeeSalesForPeriod(_ context.Context, _ string, _, _ time.Time) (float64, int, error) {
	return 0, 0, nil
}

func (f *fakeReportRepository) CountPendingReports(_ context.Context, _ string) (int64, error) {
	return 0, nil
}

func testScanService(t *testing.T) (ScanService, *fakeScanRepository, *fakeReportRepository) {
	t.Helper()
	scanRepo := newFakeScanRepository()
	reportRepo := newFakeReportRepository()
	service := NewScanService(scanRepo, reportRepo, NewScanner(nil, nil))
	return service, scanRepo, reportRepo
}

func TestScanReceiptPersistsImage(t *testing.T) {
	service, scanRepo, _ := testScanService(t)
	storeID := uuid.New()
	employeeID := uuid.New()

	payload := base64.StdEncoding.EncodeToString(encodeTestImage(t, 320, 240))
	res, err := service.ScanReceipt(context.Background(), domain.ScanReceiptRequest{Image: payload}, employeeID.String(), storeID.String())
	require.NoError(t, err)

	require.NotEqual(t, uuid.Nil, res.ReceiptImageID)
	stored := scanRepo.images[res.ReceiptImageID]
	require.NotNil(t, stored)
	assert.Equal(t, "completed", stored.ProcessingStatus)
	assert.Equal(t, storeID, stored.StoreID)
	assert.Equal(t, res.ImageHash, stored.ImageHash)
	assert.Greater(t, stored.ConfidenceScore, 0.0)
}

func TestScanReceiptBadImageMarkedFailed(t *testing.T) {
	service, scanRepo, _ := testScanService(t)

	res, err := service.ScanReceipt(context.Background(), domain.ScanReceiptRequest{Image: "%%%"}, uuid.New().String(), uuid.New().String())
	require.NoError(t, err)

	assert.False(t, res.Success)
	stored := scanRepo.images[res.ReceiptImageID]
	require.NotNil(t, stored)
	assert.Equal(t, "failed", stored.ProcessingStatus)
}

func TestConfirmScanCreatesReceiptAndRecalculates(t *testing.T) {
	service, scanRepo, reportRepo := testScanService(t)
	storeID := uuid.New()
	employeeID := uuid.New()

	dailyReport := &entities.DailyReport{StoreID: storeID, EmployeeID: employeeID}
	require.NoError(t, reportRepo.CreateDailyReport(context.Background(), dailyReport))

	payload := base64.StdEncoding.EncodeToString(encodeTestImage(t, 320, 240))
	scanned, err := service.ScanReceipt(context.Background(), domain.ScanReceiptRequest{Image: payload}, employeeID.String(), storeID.String())
	require.NoError(t, err)

	res, err := service.ConfirmScan(context.Background(), domain.ConfirmScanRequest{
		ReceiptImageID: scanned.ReceiptImageID.String(),
		DailyReportID:  dailyReport.ID.String(),
		Amount:         35000,
		DrinkCount:     8,
		IsCard:         true,
	}, employeeID.String(), "花子", storeID.String())
	require.NoError(t, err)

	assert.Equal(t, "不明", res.CustomerName)
	assert.Equal(t, "花子", res.EmployeeName)
	assert.True(t, res.IsAuto)
	assert.Len(t, scanRepo.receipts, 1)
	assert.Contains(t, reportRepo.recalculated, dailyReport.ID.String())
	assert.True(t, scanRepo.images[scanned.ReceiptImageID].IsVerified)
}

func TestConfirmScanRejectsReuse(t *testing.T) {
	service, _, reportRepo := testScanService(t)
	storeID := uuid.New()
	employeeID := uuid.New()

	dailyReport := &entities.DailyReport{StoreID: storeID, EmployeeID: employeeID}
	require.NoError(t, reportRepo.CreateDailyReport(context.Background(), dailyReport))

	payload := base64.StdEncoding.EncodeToString(encodeTestImage(t, 320, 240))
	scanned, err := service.ScanReceipt(context.Background(), domain.ScanReceiptRequest{Image: payload}, employeeID.String(), storeID.String())
	require.NoError(t, err)

	req := domain.ConfirmScanRequest{
		ReceiptImageID: scanned.ReceiptImageID.String(),
		DailyReportID:  dailyReport.ID.String(),
		Amount:         5000,
	}
	_, err = service.ConfirmScan(context.Background(), req, employeeID.String(), "花子", storeID.String())
	require.NoError(t, err)

	_, err = service.ConfirmScan(context.Background(), req, employeeID.String(), "花子", storeID.String())
	assert.ErrorIs(t, err, domain.ErrScanAlreadyUsed)
}

func TestConfirmScanRejectsOtherStore(t *testing.T) {
	service, _, reportRepo := testScanService(t)
	storeID := uuid.New()
	employeeID := uuid.New()

	dailyReport := &entities.DailyReport{StoreID: storeID, EmployeeID: employeeID}
	require.NoError(t, reportRepo.CreateDailyReport(context.Background(), dailyReport))

	payload := base64.StdEncoding.EncodeToString(encodeTestImage(t, 320, 240))
	scanned, err := service.ScanReceipt(context.Background(), domain.ScanReceiptRequest{Image: payload}, employeeID.String(), storeID.String())
	require.NoError(t, err)

	_, err = service.ConfirmScan(context.Background(), domain.ConfirmScanRequest{
		ReceiptImageID: scanned.ReceiptImageID.String(),
		DailyReportID:  dailyReport.ID.String(),
	}, employeeID.String(), "花子", uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrStoreAccessDenied)
}

func TestDeleteScanRejectsVerified(t *testing.T) {
	service, scanRepo, reportRepo := testScanService(t)
	storeID := uuid.New()
	employeeID := uuid.New()

	dailyReport := &entities.DailyReport{StoreID: storeID, EmployeeID: employeeID}
	require.NoError(t, reportRepo.CreateDailyReport(context.Background(), dailyReport))

	payload := base64.StdEncoding.EncodeToString(encodeTestImage(t, 320, 240))
	scanned, err := service.ScanReceipt(context.Background(), domain.ScanReceiptRequest{Image: payload}, employeeID.String(), storeID.String())
	require.NoError(t, err)

	_, err = service.ConfirmScan(context.Background(), domain.ConfirmScanRequest{
		ReceiptImageID: scanned.ReceiptImageID.String(),
		DailyReportID:  dailyReport.ID.String(),
	}, employeeID.String(), "花子", storeID.String())
	require.NoError(t, err)

	err = service.DeleteScan(context.Background(), scanned.ReceiptImageID.String(), storeID.String())
	assert.ErrorIs(t, err, domain.ErrScanAlreadyUsed)
	assert.Contains(t, scanRepo.images, scanned.ReceiptImageID)
}
