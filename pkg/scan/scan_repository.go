package scan

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"Bar-Management-SaaS/entities"
)

type (
	ScanRepository interface {
		CreateReceiptImage(ctx context.Context, image *entities.ReceiptImage) error
		GetReceiptImageByID(ctx context.Context, id string) (*entities.ReceiptImage, error)
		UpdateReceiptImage(ctx context.Context, image *entities.ReceiptImage) error
		DeleteReceiptImage(ctx context.Context, id string) error
		GetReceiptImages(ctx context.Context, storeID string, dailyReportID string, limit int) ([]*entities.ReceiptImage, error)

		CreateReceipt(ctx context.Context, receipt *entities.Receipt) error
		GetReceiptsByReport(ctx context.Context, dailyReportID string) ([]*entities.Receipt, error)
	}

	scanRepository struct {
		db *gorm.DB
	}
)

func NewScanRepository(db *gorm.DB) ScanRepository {
	return &scanRepository{db: db}
}

func (r *scanRepository) CreateReceiptImage(ctx context.Context, image *entities.ReceiptImage) error {
	return r.db.WithContext(ctx).Create(image).Error
}

func (r *scanRepository) GetReceiptImageByID(ctx context.Context, id string) (*entities.ReceiptImage, error) {
	var image entities.ReceiptImage
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&image).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, err
	}
	return &image, nil
}

func (r *scanRepository) UpdateReceiptImage(ctx context.Context, image *entities.ReceiptImage) error {
	return r.db.WithContext(ctx).Save(image).Error
}

func (r *scanRepository) DeleteReceiptImage(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.ReceiptImage{}).Error
}

func (r *scanRepository) GetReceiptImages(ctx context.Context, storeID string, dailyReportID string, limit int) ([]*entities.ReceiptImage, error) {
	var images []*entities.ReceiptImage

	query := r.db.WithContext(ctx).Where("store_id = ?", storeID)
	if dailyReportID != "" {
		query = query.Where("daily_report_id = ?", dailyReportID)
	}

	if err := query.Order("uploaded_at desc").Limit(limit).Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

func (r *scanRepository) CreateReceipt(ctx context.Context, receipt *entities.Receipt) error {
	return r.db.WithContext(ctx).Create(receipt).Error
}

func (r *scanRepository) GetReceiptsByReport(ctx context.Context, dailyReportID string) ([]*entities.Receipt, error) {
	var receipts []*entities.Receipt
	if err := r.db.WithContext(ctx).
		Where("daily_report_id = ?", dailyReportID).
		Order("created_at asc").
		Find(&receipts).Error; err != nil {
		return nil, err
	}
	return receipts, nil
}
