// internals/features/school/deletions/model/people_model.go
package model

import "time"

// UserModel: tabel users lama (legacy), masih direferensikan students & teachers.
type UserModel struct {
	ID        int64     `json:"id"         gorm:"column:id;primaryKey;autoIncrement"`
	Username  string    `json:"username"   gorm:"column:username;type:varchar(80);not null"`
	Email     *string   `json:"email"      gorm:"column:email;type:varchar(160)"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
}

func (UserModel) TableName() string { return "users" }

type UserRoleModel struct {
	ID     int64  `json:"id"      gorm:"column:id;primaryKey;autoIncrement"`
	UserID int64  `json:"user_id" gorm:"column:user_id;not null;index"`
	Role   string `json:"role"    gorm:"column:role;type:varchar(30);not null"`
}

func (UserRoleModel) TableName() string { return "user_roles" }

type StudentModel struct {
	ID     int64  `json:"id"      gorm:"column:id;primaryKey;autoIncrement"`
	UserID *int64 `json:"user_id" gorm:"column:user_id;index"`
	Name   string `json:"name"    gorm:"column:name;type:varchar(160);not null"`
}

func (StudentModel) TableName() string { return "students" }

type EnrollmentModel struct {
	ID         int64     `json:"id"          gorm:"column:id;primaryKey;autoIncrement"`
	StudentID  int64     `json:"student_id"  gorm:"column:student_id;not null;index"`
	EnrolledAt time.Time `json:"enrolled_at" gorm:"column:enrolled_at;autoCreateTime"`
}

func (EnrollmentModel) TableName() string { return "enrollments" }

// ConfirmationModel: konfirmasi matrícula tahunan siswa di sebuah turma.
type ConfirmationModel struct {
	ID        int64  `json:"id"         gorm:"column:id;primaryKey;autoIncrement"`
	SectionID *int64 `json:"section_id" gorm:"column:section_id;index"`
	StudentID *int64 `json:"student_id" gorm:"column:student_id;index"`
	Status    string `json:"status"     gorm:"column:status;type:varchar(20);not null;default:'pending'"`
}

func (ConfirmationModel) TableName() string { return "confirmations" }

type SpecialtyModel struct {
	ID   int64  `json:"id"   gorm:"column:id;primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"column:name;type:varchar(120);not null"`
}

func (SpecialtyModel) TableName() string { return "specialties" }

type TeacherModel struct {
	ID          int64  `json:"id"           gorm:"column:id;primaryKey;autoIncrement"`
	UserID      *int64 `json:"user_id"      gorm:"column:user_id;index"`
	SpecialtyID *int64 `json:"specialty_id" gorm:"column:specialty_id;index"`
	Name        string `json:"name"         gorm:"column:name;type:varchar(160);not null"`
}

func (TeacherModel) TableName() string { return "teachers" }

// TeacherSectionModel: penugasan guru per turma per disciplina.
type TeacherSectionModel struct {
	ID        int64  `json:"id"         gorm:"column:id;primaryKey;autoIncrement"`
	TeacherID *int64 `json:"teacher_id" gorm:"column:teacher_id;index"`
	SectionID *int64 `json:"section_id" gorm:"column:section_id;index"`
	SubjectID *int64 `json:"subject_id" gorm:"column:subject_id;index"`
}

func (TeacherSectionModel) TableName() string { return "teacher_sections" }

type SectionDirectorModel struct {
	ID        int64  `json:"id"         gorm:"column:id;primaryKey;autoIncrement"`
	TeacherID *int64 `json:"teacher_id" gorm:"column:teacher_id;index"`
	SectionID *int64 `json:"section_id" gorm:"column:section_id;index"`
}

func (SectionDirectorModel) TableName() string { return "section_directors" }

type GradeModel struct {
	ID        int64   `json:"id"         gorm:"column:id;primaryKey;autoIncrement"`
	StudentID *int64  `json:"student_id" gorm:"column:student_id;index"`
	SubjectID *int64  `json:"subject_id" gorm:"column:subject_id;index"`
	Score     float64 `json:"score"      gorm:"column:score;not null;default:0"`
}

func (GradeModel) TableName() string { return "grades" }
