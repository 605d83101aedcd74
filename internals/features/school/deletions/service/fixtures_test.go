package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/deletions/model"
	"schoolku_backend/internals/features/school/deletions/registry"
	"schoolku_backend/internals/features/school/deletions/repository"
	"schoolku_backend/internals/features/school/deletions/testutil"
)

var ptr = testutil.Ptr[int64]

type fixture struct {
	db     *gorm.DB
	store  *repository.GormStore
	reg    *registry.Registry
	engine *Engine
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewDB(t)
	seedSchool(t, db)

	store := repository.NewGormStore(db, 0)
	reg := registry.MustNewRegistry(registry.SchoolGraph())
	return &fixture{
		db:     db,
		store:  store,
		reg:    reg,
		engine: NewEngine(reg, store, Options{Budget: 5 * time.Second}),
	}
}

// seedSchool:
//   - Classe 5: turma 12 (3 confirmações), turma 13 (0 confirmações)
//   - Classe 6: turma 14 (2 confirmações), tidak boleh tersentuh saat classe 5 dihapus
//   - Moeda 2 dipakai 4 tipos de serviço, moeda 3 tidak dipakai
//   - User 9 → aluno 90 → 1 matrícula; user 10 → aluno 100 → 1 matrícula
func seedSchool(t *testing.T, db *gorm.DB) {
	t.Helper()
	testutil.Create(t, db,
		&model.CourseModel{ID: 1, Name: "Ciências Físicas e Biológicas"},
		&model.ClassModel{ID: 5, Name: "10ª Classe", CourseID: ptr(1)},
		&model.ClassModel{ID: 6, Name: "11ª Classe", CourseID: ptr(1)},
		&model.AcademicYearModel{ID: 1, Name: "2025/2026", IsActive: true},
		&model.RoomModel{ID: 1, Name: "Sala 1"},
		&model.RoomModel{ID: 2, Name: "Sala 2"},
		&model.PeriodModel{ID: 1, Name: "Manhã"},
		&model.SubjectModel{ID: 7, Name: "Matemática"},
		&model.SubjectModel{ID: 8, Name: "Química"},

		&model.ClassSectionModel{ID: 12, Name: "10A", ClassID: ptr(5), CourseID: ptr(1), RoomID: ptr(1), AcademicYearID: ptr(1), PeriodID: ptr(1)},
		&model.ClassSectionModel{ID: 13, Name: "10B", ClassID: ptr(5)},
		&model.ClassSectionModel{ID: 14, Name: "11A", ClassID: ptr(6), CourseID: ptr(1)},

		&model.TeacherSectionModel{ID: 1, SectionID: ptr(13), SubjectID: ptr(7)},
		&model.TeacherSectionModel{ID: 2, SectionID: ptr(14), SubjectID: ptr(8)},
		&model.SectionDirectorModel{ID: 1, SectionID: ptr(12)},
		&model.SectionServiceModel{ID: 1, SectionID: ptr(14)},

		&model.CurriculumModel{ID: 1, ClassID: ptr(5), SubjectID: ptr(7)},
		&model.CurriculumModel{ID: 2, ClassID: ptr(5), SubjectID: ptr(8)},
		&model.CurriculumModel{ID: 3, ClassID: ptr(6), SubjectID: ptr(7)},
		&model.ClassTuitionModel{ID: 1, ClassID: 5, Amount: 15000},
		&model.TuitionLimitModel{ID: 1, ClassID: 5, DueDay: 10},
		&model.ClassMonthModel{ID: 1, ClassID: 5, Month: "Setembro"},
		&model.ClassMonthModel{ID: 2, ClassID: 5, Month: "Outubro"},
		&model.ClassMonthModel{ID: 3, ClassID: 5, Month: "Novembro"},
		&model.ClassMonthModel{ID: 4, ClassID: 6, Month: "Setembro"},

		&model.CurrencyModel{ID: 2, Name: "Kwanza", Symbol: "Kz"},
		&model.CurrencyModel{ID: 3, Name: "Dólar", Symbol: "$"},
		&model.ServiceCategoryModel{ID: 1, Name: "Propinas"},

		&model.UserModel{ID: 9, Username: "ana.silva"},
		&model.UserModel{ID: 10, Username: "joao.costa"},
		&model.UserRoleModel{ID: 1, UserID: 9, Role: "student"},
		&model.StudentModel{ID: 90, UserID: ptr(9), Name: "Ana Silva"},
		&model.StudentModel{ID: 100, UserID: ptr(10), Name: "João Costa"},
		&model.EnrollmentModel{ID: 1, StudentID: 90},
		&model.EnrollmentModel{ID: 2, StudentID: 100},
		&model.GradeModel{ID: 1, StudentID: ptr(100), SubjectID: ptr(7), Score: 14},
		&model.GradeModel{ID: 2, StudentID: ptr(100), SubjectID: ptr(8), Score: 12},
	)

	for i := int64(1); i <= 3; i++ {
		testutil.Create(t, db, &model.ConfirmationModel{ID: i, SectionID: ptr(12)})
	}
	for i := int64(4); i <= 5; i++ {
		testutil.Create(t, db, &model.ConfirmationModel{ID: i, SectionID: ptr(14), StudentID: ptr(100)})
	}
	for i := int64(1); i <= 4; i++ {
		testutil.Create(t, db, &model.ServiceTypeModel{ID: i, Name: "Serviço", CurrencyID: ptr(2), CategoryID: ptr(1)})
	}
}

var errInjected = errors.New("injected failure")

// hookStore membungkus Store asli supaya test bisa mencatat / menggagalkan DeleteMany.
type hookStore struct {
	inner repository.Store

	mu     sync.Mutex
	calls  int
	tables []string
	onStep func(ctx context.Context, call int, f repository.Filter) error
}

func (s *hookStore) Transaction(ctx context.Context, fn func(tx repository.Tx) error) error {
	return s.inner.Transaction(ctx, func(tx repository.Tx) error {
		return fn(&hookTx{Tx: tx, store: s})
	})
}

type hookTx struct {
	repository.Tx
	store *hookStore
}

func (t *hookTx) DeleteMany(ctx context.Context, f repository.Filter) (int64, error) {
	s := t.store
	s.mu.Lock()
	s.calls++
	call := s.calls
	s.tables = append(s.tables, f.Table)
	hook := s.onStep
	s.mu.Unlock()

	if hook != nil {
		if err := hook(ctx, call, f); err != nil {
			return 0, err
		}
	}
	return t.Tx.DeleteMany(ctx, f)
}

func failAt(step int) func(context.Context, int, repository.Filter) error {
	return func(_ context.Context, call int, _ repository.Filter) error {
		if call == step {
			return errInjected
		}
		return nil
	}
}

func indexOf(list []string, v string) int {
	for i, s := range list {
		if s == v {
			return i
		}
	}
	return -1
}
