package seeder

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// DataGenerator produces the synthetic values the seeder inserts. It owns its
// random source, so two generators built with the same seed emit the same
// sequence — that is what makes test fixtures reproducible.
type DataGenerator struct {
	rand *rand.Rand
}

func NewDataGenerator(seed int64) *DataGenerator {
	return &DataGenerator{rand: rand.New(rand.NewSource(seed))}
}

// UUID returns a fresh random identifier. Identifiers deliberately do NOT
// come from the seeded source: two runs with the same seed must still
// produce distinct primary keys.
func (g *DataGenerator) UUID() string {
	return uuid.New().String()
}

func (g *DataGenerator) Intn(n int) int {
	return g.rand.Intn(n)
}

// IntRange returns a uniform int in [min, max].
func (g *DataGenerator) IntRange(min, max int) int {
	return min + g.rand.Intn(max-min+1)
}

// Float64Range returns a uniform float64 in [min, max).
func (g *DataGenerator) Float64Range(min, max float64) float64 {
	return min + g.rand.Float64()*(max-min)
}

// Chance reports true with probability p.
func (g *DataGenerator) Chance(p float64) bool {
	return g.rand.Float64() < p
}

func pick[T any](g *DataGenerator, items []T) T {
	return items[g.rand.Intn(len(items))]
}

var firstNames = []string{
	"Γιώργος", "Μαρία", "Ανδρέας", "Ελένη", "Κώστας", "Άννα", "Νίκος",
	"Χριστίνα", "Μιχάλης", "Σοφία", "Παναγιώτης", "Δέσποινα", "Στέλιος",
	"Κατερίνα", "Χάρης", "Ειρήνη",
}

var lastNames = []string{
	"Παπαδόπουλος", "Γεωργίου", "Χριστοδούλου", "Ιωάννου", "Κωνσταντίνου",
	"Αντωνίου", "Νικολάου", "Χατζηλοΐζου", "Σάββα", "Στυλιανού", "Λοΐζου",
	"Μιχαήλ",
}

var streets = []string{
	"Λεωφόρος Μακαρίου", "Οδός Λήδρας", "Λεωφόρος Αρχιεπισκόπου",
	"Οδός Ανεξαρτησίας", "Λεωφόρος Γρίβα Διγενή", "Οδός Αγίου Ανδρέου",
}

var cities = []string{"Λευκωσία", "Λεμεσός", "Λάρνακα", "Πάφος"}

func (g *DataGenerator) Name() string {
	return pick(g, firstNames) + " " + pick(g, lastNames)
}

func (g *DataGenerator) Phone() string {
	return fmt.Sprintf("+357 9%d %06d", g.IntRange(5, 9), g.rand.Intn(1000000))
}

func (g *DataGenerator) Address() string {
	return fmt.Sprintf("%s %d, %s %04d", pick(g, streets), g.IntRange(1, 200), pick(g, cities), g.IntRange(1000, 8999))
}

// DateOfBirth returns a birth date for someone between minAge and maxAge
// years old as of now.
func (g *DataGenerator) DateOfBirth(now time.Time, minAge, maxAge int) time.Time {
	years := g.IntRange(minAge, maxAge)
	days := g.rand.Intn(365)
	return now.AddDate(-years, 0, -days)
}

func (g *DataGenerator) Gender() string {
	return pick(g, []string{"M", "F", "m", "f"})
}
