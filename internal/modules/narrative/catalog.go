// Package narrative implements the narrative event engine: a static catalog
// of rule-gated events that perturb team, city, and franchise metrics between
// seasons. Events are immutable value records keyed by a stable catalog key;
// there is no behavior per event beyond its data.
package narrative

// EventType groups catalog events thematically.
type EventType string

const (
	EventEconomic EventType = "economic"
	EventTeam     EventType = "team"
	EventCity     EventType = "city"
	EventStory    EventType = "story"
)

// EffectKey names one metric an event touches. Modifier keys are
// multiplicative with neutral 1.0; delta keys are additive with neutral 0.
type EffectKey string

const (
	// Modifier keys.
	EffectAttendance  EffectKey = "attendance"
	EffectRevenue     EffectKey = "revenue"
	EffectMerchandise EffectKey = "merchandise"

	// Delta keys.
	EffectPride           EffectKey = "pride"
	EffectPopulation      EffectKey = "population"
	EffectStadiumQuality  EffectKey = "stadium_quality"
	EffectMorale          EffectKey = "morale"
	EffectMaintenanceCost EffectKey = "maintenance_cost"
)

// Event is one immutable catalog entry. Effect bundles are sparse: a missing
// key means the event does not touch that metric.
type Event struct {
	Key           string                `json:"key"`
	Type          EventType             `json:"type"`
	Title         string                `json:"title"`
	Description   string                `json:"description"`
	Modifiers     map[EffectKey]float64 `json:"modifiers,omitempty"`
	Deltas        map[EffectKey]float64 `json:"deltas,omitempty"`
	DurationYears int                   `json:"duration_years,omitempty"`
}

// catalog holds every event in evaluation order: economic, team, city, story.
// Order matters because the per-year cap keeps the first three qualifiers.
var catalog = []Event{
	{
		Key:         "boomtown_expansion",
		Type:        EventEconomic,
		Title:       "Boomtown Expansion",
		Description: "Low unemployment draws new residents and disposable income to the city.",
		Modifiers:   map[EffectKey]float64{EffectAttendance: 1.10, EffectRevenue: 1.05},
		Deltas:      map[EffectKey]float64{EffectPopulation: 2500},
		DurationYears: 3,
	},
	{
		Key:         "plant_closure",
		Type:        EventEconomic,
		Title:       "Plant Closure",
		Description: "The city's largest employer shutters a plant; families move away.",
		Modifiers:   map[EffectKey]float64{EffectAttendance: 0.90, EffectRevenue: 0.95},
		Deltas:      map[EffectKey]float64{EffectPopulation: -3000},
		DurationYears: 3,
	},
	{
		Key:         "regional_recession",
		Type:        EventEconomic,
		Title:       "Regional Recession",
		Description: "A downturn squeezes ticket and merchandise spending across the region.",
		Modifiers:   map[EffectKey]float64{EffectRevenue: 0.85, EffectMerchandise: 0.90},
		Deltas:      map[EffectKey]float64{EffectPride: -5},
		DurationYears: 2,
	},
	{
		Key:         "breakout_star",
		Type:        EventTeam,
		Title:       "Breakout Star",
		Description: "A winning club mints a fan favorite; jersey sales spike.",
		Modifiers:   map[EffectKey]float64{EffectMerchandise: 1.15},
		Deltas:      map[EffectKey]float64{EffectPride: 10},
		DurationYears: 1,
	},
	{
		Key:         "clubhouse_feud",
		Type:        EventTeam,
		Title:       "Clubhouse Feud",
		Description: "A losing season boils over into the clubhouse.",
		Deltas:      map[EffectKey]float64{EffectMorale: -10, EffectPride: -5},
	},
	{
		Key:         "winning_tradition",
		Type:        EventTeam,
		Title:       "Winning Tradition",
		Description: "Back-to-back winning seasons cement the club as a point of civic pride.",
		Modifiers:   map[EffectKey]float64{EffectAttendance: 1.10},
		Deltas:      map[EffectKey]float64{EffectPride: 15},
		DurationYears: 2,
	},
	{
		Key:         "downtown_festival",
		Type:        EventCity,
		Title:       "Downtown Festival",
		Description: "The city throws a summer festival anchored around the ballclub.",
		Modifiers:   map[EffectKey]float64{EffectAttendance: 1.05},
		Deltas:      map[EffectKey]float64{EffectPopulation: 500},
	},
	{
		Key:         "stadium_bond_passes",
		Type:        EventCity,
		Title:       "Stadium Bond Passes",
		Description: "Voters approve a renovation bond for the aging ballpark.",
		Deltas:      map[EffectKey]float64{EffectStadiumQuality: 20, EffectMaintenanceCost: 50000},
	},
	{
		Key:         "infrastructure_decay",
		Type:        EventCity,
		Title:       "Infrastructure Decay",
		Description: "Deferred maintenance catches up with the ballpark.",
		Deltas:      map[EffectKey]float64{EffectStadiumQuality: -10, EffectMaintenanceCost: 25000},
	},
	{
		Key:         "documentary_crew",
		Type:        EventStory,
		Title:       "Documentary Crew",
		Description: "A streaming documentary turns the franchise into a national story.",
		Modifiers:   map[EffectKey]float64{EffectMerchandise: 1.25},
		Deltas:      map[EffectKey]float64{EffectPride: 5},
	},
	{
		Key:         "hometown_hero",
		Type:        EventStory,
		Title:       "Hometown Hero",
		Description: "A local kid leads the club through a winning year.",
		Deltas:      map[EffectKey]float64{EffectPride: 8, EffectMorale: 5},
	},
	{
		Key:         "tabloid_expose",
		Type:        EventStory,
		Title:       "Tabloid Expose",
		Description: "A bruising expose runs while the franchise is already down.",
		Deltas:      map[EffectKey]float64{EffectPride: -5, EffectMorale: -5},
	},
}

// Catalog returns the full event catalog in evaluation order. The returned
// slice is a copy; the events themselves are shared immutable values.
func Catalog() []Event {
	out := make([]Event, len(catalog))
	copy(out, catalog)
	return out
}

// eventByKey is used by the trigger table; catalog keys are unique.
func eventByKey(key string) (Event, bool) {
	for _, ev := range catalog {
		if ev.Key == key {
			return ev, true
		}
	}
	return Event{}, false
}
