// internals/features/school/deletions/registry/school_graph.go
package registry

import "schoolku_backend/internals/features/school/deletions/model"

func describe(t EntityType, table, label, reportKey, display string) Descriptor {
	return Descriptor{
		Type:        t,
		Table:       table,
		PrimaryKey:  "id",
		LabelColumn: label,
		ReportKey:   reportKey,
		DisplayName: display,
	}
}

func cascade(parent, child EntityType, fk string) Edge {
	return Edge{Parent: parent, Child: child, ForeignKey: fk, Policy: Cascade}
}

func block(parent, child EntityType, fk string) Edge {
	return Edge{Parent: parent, Child: child, ForeignKey: fk, Policy: Block}
}

// SchoolGraph: dependency graph sekolah. Urutan edge per parent = urutan hapus
// di kedalaman yang sama.
func SchoolGraph() Graph {
	return Graph{
		Descriptors: []Descriptor{
			// roots
			describe(Class, model.ClassModel{}.TableName(), "name", "classes", "Classe"),
			describe(Course, model.CourseModel{}.TableName(), "name", "courses", "Curso"),
			describe(Section, model.ClassSectionModel{}.TableName(), "name", "sections", "Turma"),
			describe(Subject, model.SubjectModel{}.TableName(), "name", "subjects", "Disciplina"),
			describe(LegacyUser, model.UserModel{}.TableName(), "username", "users", "Utilizador"),
			describe(AcademicYear, model.AcademicYearModel{}.TableName(), "name", "academicYears", "Ano lectivo"),
			describe(Room, model.RoomModel{}.TableName(), "name", "rooms", "Sala"),
			describe(Period, model.PeriodModel{}.TableName(), "name", "periods", "Período"),
			describe(Currency, model.CurrencyModel{}.TableName(), "name", "currencies", "Moeda"),
			describe(ServiceCategory, model.ServiceCategoryModel{}.TableName(), "name", "serviceCategories", "Categoria de serviço"),
			describe(PaymentMethod, model.PaymentMethodModel{}.TableName(), "name", "paymentMethods", "Forma de pagamento"),
			describe(Specialty, model.SpecialtyModel{}.TableName(), "name", "specialties", "Especialidade"),

			// dependents
			describe(Confirmation, model.ConfirmationModel{}.TableName(), "", "confirmations", "Confirmação"),
			describe(StudentService, model.StudentServiceModel{}.TableName(), "", "studentServices", "Serviço do aluno"),
			describe(TeacherSection, model.TeacherSectionModel{}.TableName(), "", "teacherSections", "Professor da turma"),
			describe(SectionService, model.SectionServiceModel{}.TableName(), "", "sectionServices", "Serviço da turma"),
			describe(SectionDirector, model.SectionDirectorModel{}.TableName(), "", "sectionDirectors", "Director de turma"),
			describe(Curriculum, model.CurriculumModel{}.TableName(), "", "curricula", "Grade curricular"),
			describe(ClassTuition, model.ClassTuitionModel{}.TableName(), "", "classTuitions", "Propina da classe"),
			describe(TuitionLimit, model.TuitionLimitModel{}.TableName(), "", "tuitionLimits", "Limite de propina"),
			describe(ClassMonth, model.ClassMonthModel{}.TableName(), "month", "classMonths", "Mês da classe"),
			describe(Grade, model.GradeModel{}.TableName(), "", "grades", "Nota"),
			describe(Student, model.StudentModel{}.TableName(), "name", "students", "Aluno"),
			describe(Enrollment, model.EnrollmentModel{}.TableName(), "", "enrollments", "Matrícula"),
			describe(Payment, model.PaymentModel{}.TableName(), "", "payments", "Pagamento"),
			describe(UserRole, model.UserRoleModel{}.TableName(), "role", "userRoles", "Perfil do utilizador"),
			describe(Teacher, model.TeacherModel{}.TableName(), "name", "teachers", "Professor"),
			describe(ServiceType, model.ServiceTypeModel{}.TableName(), "name", "serviceTypes", "Tipo de serviço"),
		},
		Edges: []Edge{
			// turma
			cascade(Section, Confirmation, "section_id"),
			cascade(Section, StudentService, "section_id"),
			cascade(Section, TeacherSection, "section_id"),
			cascade(Section, SectionService, "section_id"),
			cascade(Section, SectionDirector, "section_id"),

			// classe
			cascade(Class, Curriculum, "class_id"),
			cascade(Class, Section, "class_id"),
			cascade(Class, ClassTuition, "class_id"),
			cascade(Class, TuitionLimit, "class_id"),
			cascade(Class, ClassMonth, "class_id"),

			// curso
			cascade(Course, Curriculum, "course_id"),
			cascade(Course, Section, "course_id"),
			cascade(Course, Class, "course_id"),

			// disciplina
			cascade(Subject, TeacherSection, "subject_id"),
			cascade(Subject, Curriculum, "subject_id"),
			cascade(Subject, Grade, "subject_id"),

			// legacy user: dulu di-probe per nama tabel, sekarang eksplisit
			cascade(LegacyUser, Student, "user_id"),
			cascade(LegacyUser, Teacher, "user_id"),
			cascade(LegacyUser, UserRole, "user_id"),
			cascade(Student, Confirmation, "student_id"),
			cascade(Student, StudentService, "student_id"),
			cascade(Student, Enrollment, "student_id"),
			cascade(Student, Grade, "student_id"),
			cascade(Student, Payment, "student_id"),
			cascade(Teacher, TeacherSection, "teacher_id"),
			cascade(Teacher, SectionDirector, "teacher_id"),

			// master data: tolak hapus kalau masih dipakai
			block(AcademicYear, Section, "academic_year_id"),
			block(Room, Section, "room_id"),
			block(Period, Section, "period_id"),
			block(Currency, ServiceType, "currency_id"),
			block(ServiceCategory, ServiceType, "category_id"),
			block(PaymentMethod, Payment, "payment_method_id"),
			block(Specialty, Teacher, "specialty_id"),
		},
		Roots: map[EntityType]Policy{
			Class:           Cascade,
			Course:          Cascade,
			Section:         Cascade,
			Subject:         Cascade,
			LegacyUser:      Cascade,
			AcademicYear:    Block,
			Room:            Block,
			Period:          Block,
			Currency:        Block,
			ServiceCategory: Block,
			PaymentMethod:   Block,
			Specialty:       Block,
		},
	}
}
