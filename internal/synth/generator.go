// Package synth fabricates user/event records.
// Randomness comes from a seedable gofakeit engine so runs can be replayed.
package synth

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/zarlcorp/zspawn/internal/event"
)

// Generator produces random records. It is not safe for concurrent use.
type Generator struct {
	f   *gofakeit.Faker
	now func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed makes the generator deterministic. A zero seed draws a random one.
func WithSeed(seed uint64) Option {
	return func(g *Generator) {
		g.f = gofakeit.New(seed)
	}
}

// WithClock sets the source of event timestamps.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// New creates a generator.
func New(opts ...Option) *Generator {
	g := &Generator{now: time.Now}
	for _, o := range opts {
		o(g)
	}
	if g.f == nil {
		g.f = gofakeit.New(0)
	}
	return g
}

// Generate produces one complete record.
func (g *Generator) Generate() event.Record {
	return event.Record{
		User:  g.User(),
		Event: g.Event(),
	}
}

// User generates a random user profile.
func (g *Generator) User() event.UserProfile {
	sex := g.f.RandomString(event.Sexes)
	return event.UserProfile{
		ID:        g.f.IntRange(event.MinUserID, event.MaxUserID),
		Name:      g.Name(sex),
		Sex:       sex,
		Address:   g.Address(),
		IP:        g.f.IPv4Address(),
		State:     g.f.RandomString(stateNames),
		Latitude:  g.f.Latitude(),
		Longitude: g.f.Longitude(),
	}
}

// Event generates a random interaction event stamped with the current time.
func (g *Generator) Event() event.InteractionEvent {
	return event.InteractionEvent{
		Timestamp:   g.now().Unix(),
		Page:        g.f.RandomString(event.Pages),
		Action:      g.f.RandomString(event.Actions),
		ProductID:   g.f.IntRange(event.MinProductID, event.MaxProductID),
		Quantity:    g.f.IntRange(event.MinQuantity, event.MaxQuantity),
		StockID:     g.f.IntRange(event.MinStockID, event.MaxStockID),
		StockNumber: g.f.IntRange(event.MinStockNumber, event.MaxStockNumber),
		Price:       g.Price(),
	}
}

// Name generates a full name matching sex ("Male" or "Female").
func (g *Generator) Name(sex string) string {
	first := firstNamesFemale
	if sex == "Male" {
		first = firstNamesMale
	}
	return g.f.RandomString(first) + " " + g.f.RandomString(lastNames)
}

// Address generates a multi-line Brazilian street address like
// "Rua das Flores, 120\nCentro\n30110-000 Belo Horizonte / MG".
func (g *Generator) Address() string {
	st := states[g.f.IntRange(0, len(states)-1)]
	return fmt.Sprintf("%s %s, %d\n%s\n%05d-%03d %s / %s",
		g.f.RandomString(streetTypes),
		g.f.RandomString(streetNames),
		g.f.IntRange(1, 9999),
		g.f.RandomString(neighborhoods),
		g.f.IntRange(1000, 99999),
		g.f.IntRange(0, 999),
		g.f.RandomString(cities),
		st.abbr,
	)
}

// Price generates a positive price with two fractional digits.
func (g *Generator) Price() event.Price {
	cents := g.f.IntRange(event.MinPriceCents, event.MaxPriceCents)
	return event.PriceFromCents(int64(cents))
}

var stateNames = func() []string {
	names := make([]string, len(states))
	for i, s := range states {
		names[i] = s.name
	}
	return names
}()
