package seeding

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/medical/backend/internal/domain/hospital"
	"github.com/medical/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// Sample doctor name pools. Derived rows are demo data, so plausibility
// matters more than realism.
var (
	doctorSurnames = []string{
		"Chen", "Wang", "Li", "Zhang", "Liu", "Yang", "Huang", "Zhao",
		"Wu", "Zhou", "Xu", "Sun", "Ma", "Zhu", "Hu", "Guo", "Lin", "He",
	}
	doctorGivenNames = []string{
		"Wei", "Fang", "Min", "Jing", "Lei", "Qiang", "Yan", "Jun",
		"Yong", "Ping", "Gang", "Na", "Xia", "Bo", "Hua", "Ying",
	}
)

// titleBand maps a cumulative probability threshold to a title. Bands:
// 0-20% resident, 20-50% attending, 50-75% associate chief, 75-90% chief,
// 90-100% professor or associate professor.
type titleBand struct {
	upTo  float64
	title hospital.DoctorTitle
}

var titleBands = []titleBand{
	{0.20, hospital.TitleResident},
	{0.50, hospital.TitleAttending},
	{0.75, hospital.TitleAssociateChief},
	{0.90, hospital.TitleChief},
	{0.95, hospital.TitleProfessor},
	{1.00, hospital.TitleAssociateProfessor},
}

func pickTitle(rng *rand.Rand) hospital.DoctorTitle {
	p := rng.Float64()
	for _, band := range titleBands {
		if p < band.upTo {
			return band.title
		}
	}
	return hospital.TitleAssociateProfessor
}

// DoctorSeeder derives sample doctors from already-seeded departments.
// It is write-once: any existing doctor row skips the whole seeder, and a
// missing department catalog soft-skips without error. The random source is
// injected so tests can pin the generated population.
type DoctorSeeder struct {
	rng    *rand.Rand
	minPer int
	maxPer int
}

// NewDoctorSeeder creates a doctor seeder generating between minPer and
// maxPer doctors for each department.
func NewDoctorSeeder(rng *rand.Rand, minPer, maxPer int) *DoctorSeeder {
	if minPer < 1 {
		minPer = 1
	}
	if maxPer < minPer {
		maxPer = minPer
	}
	return &DoctorSeeder{rng: rng, minPer: minPer, maxPer: maxPer}
}

// Name implements Seeder
func (s *DoctorSeeder) Name() string {
	return "doctors"
}

// Seed implements Seeder
func (s *DoctorSeeder) Seed(ctx context.Context, tx *gorm.DB) (Result, error) {
	tx = tx.WithContext(ctx)

	empty, err := tableIsEmpty(tx, &models.DoctorModel{})
	if err != nil {
		return Result{}, err
	}
	if !empty {
		return Result{}, nil
	}

	var departments []models.DepartmentModel
	if err := tx.Order("sort_order").Find(&departments).Error; err != nil {
		return Result{}, err
	}
	if len(departments) == 0 {
		return Result{}, nil
	}

	var rows []models.DoctorModel
	for _, dept := range departments {
		count := s.minPer + s.rng.Intn(s.maxPer-s.minPer+1)
		for i := 0; i < count; i++ {
			row, err := s.generate(dept)
			if err != nil {
				return Result{}, err
			}
			rows = append(rows, row)
		}
	}

	if err := tx.Create(&rows).Error; err != nil {
		return Result{}, err
	}
	return Result{Inserted: len(rows)}, nil
}

func (s *DoctorSeeder) generate(dept models.DepartmentModel) (models.DoctorModel, error) {
	surname := doctorSurnames[s.rng.Intn(len(doctorSurnames))]
	given := doctorGivenNames[s.rng.Intn(len(doctorGivenNames))]
	title := pickTitle(s.rng)
	years := 3 + s.rng.Intn(25)

	doctor, err := hospital.NewDoctor(dept.ID, fmt.Sprintf("%s %s", surname, given), title)
	if err != nil {
		return models.DoctorModel{}, err
	}
	doctor.Specialty = fmt.Sprintf("Diagnosis and treatment of common and complex conditions in %s", dept.Name)
	doctor.Introduction = fmt.Sprintf("%s %s has practiced in %s for %d years.", surname, given, dept.Name, years)

	var row models.DoctorModel
	row.FromDomain(doctor)
	return row, nil
}
