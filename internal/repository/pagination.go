package repository

import "gorm.io/gorm"

// Paginate executes a paginated query and returns one page plus the total
// number of rows matching db. Pages start at 1.
func Paginate[T any](db *gorm.DB, page, limit int) ([]T, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}

	var totalItems int64
	if err := db.Session(&gorm.Session{}).Model(new(T)).Count(&totalItems).Error; err != nil {
		return nil, 0, err
	}

	var results []T
	offset := (page - 1) * limit
	if err := db.Offset(offset).Limit(limit).Find(&results).Error; err != nil {
		return nil, 0, err
	}

	return results, totalItems, nil
}
