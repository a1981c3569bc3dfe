package main

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"infix-calc-go/model"
)

// SaveRecord inserts rec unless a live row with the same hash exists.
func (this *Store) SaveRecord(rec *model.EvalRecord) error {
	return this.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(rec).Error
}

// FindRecord returns the live row for hash, or gorm.ErrRecordNotFound.
func (this *Store) FindRecord(hash string) (*model.EvalRecord, error) {
	var rec model.EvalRecord
	if err := this.DB.Where("`expression_hash` = ?", hash).First(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

// TouchRecord bumps the last access time and hit count of a row.
func (this *Store) TouchRecord(id int64) error {
	return this.DB.Model(&model.EvalRecord{}).Where("`id` = ?", id).
		Updates(map[string]interface{}{
			"last_access": time.Now().Unix(),
			"hits":        gorm.Expr("`hits` + 1"),
		}).Error
}

// RecentRecords returns up to limit live rows, most recently used first.
func (this *Store) RecentRecords(limit int) ([]*model.EvalRecord, error) {
	var items []*model.EvalRecord
	if err := this.DB.Order("`last_access` desc").Order("`id` desc").
		Limit(limit).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (this *Store) FindExpiredWithLimit(now time.Time, limit int) ([]*model.EvalRecord, error) {
	var expired []*model.EvalRecord
	if err := this.DB.Where("`last_access` + `expired_duration` < ?", now.Unix()).
		Limit(limit).Find(&expired).Error; err != nil {
		return nil, err
	}
	return expired, nil
}

// DeleteRecords soft-deletes the given rows.
func (this *Store) DeleteRecords(ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	return this.DB.Delete(&model.EvalRecord{}, ids).Error
}
