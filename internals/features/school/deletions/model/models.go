package model

// All mengembalikan semua model yang dikenal registry penghapusan,
// dipakai untuk AutoMigrate (test & tooling).
func All() []any {
	return []any{
		&CourseModel{}, &ClassModel{}, &AcademicYearModel{}, &RoomModel{}, &PeriodModel{},
		&ClassSectionModel{}, &SubjectModel{}, &CurriculumModel{}, &ClassMonthModel{},
		&UserModel{}, &UserRoleModel{}, &StudentModel{}, &EnrollmentModel{}, &ConfirmationModel{},
		&SpecialtyModel{}, &TeacherModel{}, &TeacherSectionModel{}, &SectionDirectorModel{}, &GradeModel{},
		&CurrencyModel{}, &ServiceCategoryModel{}, &ServiceTypeModel{}, &PaymentMethodModel{}, &PaymentModel{},
		&StudentServiceModel{}, &SectionServiceModel{}, &ClassTuitionModel{}, &TuitionLimitModel{},
	}
}
