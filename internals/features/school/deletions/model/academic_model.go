// internals/features/school/deletions/model/academic_model.go
package model

import "time"

// ClassModel merepresentasikan tabel `classes` (classe / tingkat)
type ClassModel struct {
	ID        int64     `json:"id"         gorm:"column:id;primaryKey;autoIncrement"`
	Name      string    `json:"name"       gorm:"column:name;type:varchar(120);not null"`
	CourseID  *int64    `json:"course_id"  gorm:"column:course_id;index"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
}

func (ClassModel) TableName() string { return "classes" }

type CourseModel struct {
	ID        int64     `json:"id"         gorm:"column:id;primaryKey;autoIncrement"`
	Name      string    `json:"name"       gorm:"column:name;type:varchar(160);not null"`
	Code      *string   `json:"code"       gorm:"column:code;type:varchar(40)"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
}

func (CourseModel) TableName() string { return "courses" }

// ClassSectionModel = turma. Referensi ke tahun ajaran, ruang & periode
// bersifat BLOCK (lihat registry), referensi ke class/course bersifat CASCADE.
type ClassSectionModel struct {
	ID             int64     `json:"id"               gorm:"column:id;primaryKey;autoIncrement"`
	Name           string    `json:"name"             gorm:"column:name;type:varchar(80);not null"`
	ClassID        *int64    `json:"class_id"         gorm:"column:class_id;index"`
	CourseID       *int64    `json:"course_id"        gorm:"column:course_id;index"`
	AcademicYearID *int64    `json:"academic_year_id" gorm:"column:academic_year_id;index"`
	RoomID         *int64    `json:"room_id"          gorm:"column:room_id;index"`
	PeriodID       *int64    `json:"period_id"        gorm:"column:period_id;index"`
	Capacity       int       `json:"capacity"         gorm:"column:capacity;not null;default:0"`
	CreatedAt      time.Time `json:"created_at"       gorm:"column:created_at;autoCreateTime"`
}

func (ClassSectionModel) TableName() string { return "class_sections" }

type SubjectModel struct {
	ID        int64     `json:"id"         gorm:"column:id;primaryKey;autoIncrement"`
	Name      string    `json:"name"       gorm:"column:name;type:varchar(120);not null"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
}

func (SubjectModel) TableName() string { return "subjects" }

// CurriculumModel: grade curricular (class x course x subject)
type CurriculumModel struct {
	ID        int64  `json:"id"         gorm:"column:id;primaryKey;autoIncrement"`
	ClassID   *int64 `json:"class_id"   gorm:"column:class_id;index"`
	CourseID  *int64 `json:"course_id"  gorm:"column:course_id;index"`
	SubjectID *int64 `json:"subject_id" gorm:"column:subject_id;index"`
	Workload  int    `json:"workload"   gorm:"column:workload;not null;default:0"`
}

func (CurriculumModel) TableName() string { return "curricula" }

type ClassMonthModel struct {
	ID      int64  `json:"id"       gorm:"column:id;primaryKey;autoIncrement"`
	ClassID int64  `json:"class_id" gorm:"column:class_id;not null;index"`
	Month   string `json:"month"    gorm:"column:month;type:varchar(20);not null"`
}

func (ClassMonthModel) TableName() string { return "class_months" }

type AcademicYearModel struct {
	ID       int64  `json:"id"        gorm:"column:id;primaryKey;autoIncrement"`
	Name     string `json:"name"      gorm:"column:name;type:varchar(40);not null"`
	IsActive bool   `json:"is_active" gorm:"column:is_active;not null;default:false"`
}

func (AcademicYearModel) TableName() string { return "academic_years" }

type RoomModel struct {
	ID       int64  `json:"id"       gorm:"column:id;primaryKey;autoIncrement"`
	Name     string `json:"name"     gorm:"column:name;type:varchar(80);not null"`
	Capacity int    `json:"capacity" gorm:"column:capacity;not null;default:0"`
}

func (RoomModel) TableName() string { return "rooms" }

type PeriodModel struct {
	ID   int64  `json:"id"   gorm:"column:id;primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"column:name;type:varchar(40);not null"`
}

func (PeriodModel) TableName() string { return "periods" }
