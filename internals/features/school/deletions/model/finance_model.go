// internals/features/school/deletions/model/finance_model.go
package model

import "time"

type CurrencyModel struct {
	ID     int64  `json:"id"     gorm:"column:id;primaryKey;autoIncrement"`
	Name   string `json:"name"   gorm:"column:name;type:varchar(60);not null"`
	Symbol string `json:"symbol" gorm:"column:symbol;type:varchar(8);not null;default:''"`
}

func (CurrencyModel) TableName() string { return "currencies" }

type ServiceCategoryModel struct {
	ID   int64  `json:"id"   gorm:"column:id;primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"column:name;type:varchar(80);not null"`
}

func (ServiceCategoryModel) TableName() string { return "service_categories" }

// ServiceTypeModel: jenis layanan berbayar (propina, cartão, uniforme, ...).
type ServiceTypeModel struct {
	ID         int64   `json:"id"          gorm:"column:id;primaryKey;autoIncrement"`
	Name       string  `json:"name"        gorm:"column:name;type:varchar(120);not null"`
	CurrencyID *int64  `json:"currency_id" gorm:"column:currency_id;index"`
	CategoryID *int64  `json:"category_id" gorm:"column:category_id;index"`
	Price      float64 `json:"price"       gorm:"column:price;not null;default:0"`
}

func (ServiceTypeModel) TableName() string { return "service_types" }

type PaymentMethodModel struct {
	ID   int64  `json:"id"   gorm:"column:id;primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"column:name;type:varchar(60);not null"`
}

func (PaymentMethodModel) TableName() string { return "payment_methods" }

type PaymentModel struct {
	ID              int64     `json:"id"                gorm:"column:id;primaryKey;autoIncrement"`
	StudentID       *int64    `json:"student_id"        gorm:"column:student_id;index"`
	PaymentMethodID *int64    `json:"payment_method_id" gorm:"column:payment_method_id;index"`
	Amount          float64   `json:"amount"            gorm:"column:amount;not null;default:0"`
	PaidAt          time.Time `json:"paid_at"           gorm:"column:paid_at;autoCreateTime"`
}

func (PaymentModel) TableName() string { return "payments" }

type StudentServiceModel struct {
	ID            int64  `json:"id"              gorm:"column:id;primaryKey;autoIncrement"`
	StudentID     *int64 `json:"student_id"      gorm:"column:student_id;index"`
	SectionID     *int64 `json:"section_id"      gorm:"column:section_id;index"`
	ServiceTypeID *int64 `json:"service_type_id" gorm:"column:service_type_id;index"`
}

func (StudentServiceModel) TableName() string { return "student_services" }

type SectionServiceModel struct {
	ID            int64  `json:"id"              gorm:"column:id;primaryKey;autoIncrement"`
	SectionID     *int64 `json:"section_id"      gorm:"column:section_id;index"`
	ServiceTypeID *int64 `json:"service_type_id" gorm:"column:service_type_id;index"`
}

func (SectionServiceModel) TableName() string { return "section_services" }

type ClassTuitionModel struct {
	ID      int64   `json:"id"       gorm:"column:id;primaryKey;autoIncrement"`
	ClassID int64   `json:"class_id" gorm:"column:class_id;not null;index"`
	Amount  float64 `json:"amount"   gorm:"column:amount;not null;default:0"`
}

func (ClassTuitionModel) TableName() string { return "class_tuitions" }

type TuitionLimitModel struct {
	ID      int64 `json:"id"       gorm:"column:id;primaryKey;autoIncrement"`
	ClassID int64 `json:"class_id" gorm:"column:class_id;not null;index"`
	DueDay  int   `json:"due_day"  gorm:"column:due_day;not null;default:10"`
}

func (TuitionLimitModel) TableName() string { return "tuition_limits" }
