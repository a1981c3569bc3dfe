package model

import "gorm.io/plugin/soft_delete"

type EvalRecord struct {
	ID int64 `json:"id" gorm:"primarykey"`
	// BLAKE3 of the expression text; unique among live rows
	ExpressionHash string `json:"expression_hash" gorm:"uniqueIndex:idx_expression_hash_live"`
	Expression     string `json:"expression"`
	Postfix        string `json:"postfix"`
	Result         int64  `json:"result"`
	// unix seconds
	CreatedAt  int64 `json:"created_at"`
	LastAccess int64 `json:"last_access" gorm:"index:idx_last_access"`
	// seconds the row stays live after its last access
	ExpiredDuration int64 `json:"expired_duration"`
	Hits            int64 `json:"hits" gorm:"default:1"`
	/* 0 live, otherwise deletion time in milliseconds */
	Deleted soft_delete.DeletedAt `json:"-" gorm:"softDelete:milli;default:0;uniqueIndex:idx_expression_hash_live"`
}

func (EvalRecord) TableName() string {
	return "eval_record"
}
