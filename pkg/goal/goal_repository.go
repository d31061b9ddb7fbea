package goal

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"Bar-Management-SaaS/entities"
)

type (
	GoalRepository interface {
		GetGoal(ctx context.Context, employeeID string, year, month int) (*entities.PersonalGoal, error)
		CreateGoal(ctx context.Context, goal *entities.PersonalGoal) error
		UpdateGoal(ctx context.Context, goal *entities.PersonalGoal) error
		GetGoalHistory(ctx context.Context, employeeID string, limit int) ([]*entities.PersonalGoal, error)
	}

	goalRepository struct {
		db *gorm.DB
	}
)

func NewGoalRepository(db *gorm.DB) GoalRepository {
	return &goalRepository{db: db}
}

func (r *goalRepository) GetGoal(ctx context.Context, employeeID string, year, month int) (*entities.PersonalGoal, error) {
	var goal entities.PersonalGoal
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND year = ? AND month = ?", employeeID, year, month).
		First(&goal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &goal, nil
}

func (r *goalRepository) CreateGoal(ctx context.Context, goal *entities.PersonalGoal) error {
	return r.db.WithContext(ctx).Create(goal).Error
}

func (r *goalRepository) UpdateGoal(ctx context.Context, goal *entities.PersonalGoal) error {
	return r.db.WithContext(ctx).Save(goal).Error
}

func (r *goalRepository) GetGoalHistory(ctx context.Context, employeeID string, limit int) ([]*entities.PersonalGoal, error) {
	var goals []*entities.PersonalGoal
	if err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("year desc, month desc").
		Limit(limit).
		Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}
