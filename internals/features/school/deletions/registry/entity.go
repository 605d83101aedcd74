// internals/features/school/deletions/registry/entity.go
package registry

import "strings"

// EntityType mengidentifikasi jenis baris yang dikenal registry.
type EntityType string

// Root yang boleh dihapus lewat API.
const (
	Class           EntityType = "class"
	Course          EntityType = "course"
	Section         EntityType = "section"
	Subject         EntityType = "subject"
	LegacyUser      EntityType = "legacy_user"
	AcademicYear    EntityType = "academic_year"
	Room            EntityType = "room"
	Period          EntityType = "period"
	Currency        EntityType = "currency"
	ServiceCategory EntityType = "service_category"
	PaymentMethod   EntityType = "payment_method"
	Specialty       EntityType = "specialty"
)

// Tabel dependen (hanya muncul sebagai child).
const (
	Confirmation    EntityType = "confirmation"
	StudentService  EntityType = "student_service"
	TeacherSection  EntityType = "teacher_section"
	SectionService  EntityType = "section_service"
	SectionDirector EntityType = "section_director"
	Curriculum      EntityType = "curriculum"
	ClassTuition    EntityType = "class_tuition"
	TuitionLimit    EntityType = "tuition_limit"
	ClassMonth      EntityType = "class_month"
	Grade           EntityType = "grade"
	Student         EntityType = "student"
	Enrollment      EntityType = "enrollment"
	Payment         EntityType = "payment"
	UserRole        EntityType = "user_role"
	Teacher         EntityType = "teacher"
	ServiceType     EntityType = "service_type"
)

type Policy string

const (
	Cascade Policy = "cascade"
	Block   Policy = "block"
)

// Descriptor: cara menemukan baris sebuah EntityType di storage.
type Descriptor struct {
	Type        EntityType
	Table       string
	PrimaryKey  string
	LabelColumn string // kolom nama tampilan, kosong = pakai "#id"
	ReportKey   string // key di "detalhes"
	DisplayName string
}

// Edge: Child mereferensikan Parent lewat ForeignKey.
type Edge struct {
	Parent     EntityType
	Child      EntityType
	ForeignKey string
	Policy     Policy
}

// Route adalah rantai edge dari root sampai target (edge terakhir).
type Route struct {
	Path []Edge
}

func (r Route) Depth() int { return len(r.Path) }

func (r Route) Target() Edge { return r.Path[len(r.Path)-1] }

// Parent mengembalikan route menuju parent dari target.
func (r Route) Parent() Route { return Route{Path: r.Path[:len(r.Path)-1]} }

// Key unik per route, dipakai untuk memoization id hasil resolve.
func (r Route) Key() string {
	parts := make([]string, 0, len(r.Path))
	for _, e := range r.Path {
		parts = append(parts, string(e.Child)+"."+e.ForeignKey)
	}
	return strings.Join(parts, "/")
}
