package catalog

// Entry is a sample activity with its nominal price.
type Entry struct {
	Place string  `json:"place"`
	Cost  float64 `json:"cost"`
	Note  string  `json:"note"`
}

// Catalog hands out the candidate activities for an interest. Implementations
// are read-only after construction and safe for concurrent use.
type Catalog interface {
	Entries(i Interest) []Entry
}

var staticEntries = map[Interest][]Entry{
	Heritage: {
		{Place: "Historic Fort", Cost: 200, Note: "Best visited early morning to avoid crowds"},
		{Place: "Ancient Temple", Cost: 50, Note: "Dress modestly and remove shoes"},
		{Place: "Palace Museum", Cost: 300, Note: "Audio guide recommended for rich history"},
		{Place: "Archaeological Site", Cost: 150, Note: "Carry water and wear comfortable shoes"},
		{Place: "Heritage Walk", Cost: 500, Note: "Guided tour includes traditional stories"},
	},
	Food: {
		{Place: "Local Street Food Market", Cost: 400, Note: "Try the famous local delicacies"},
		{Place: "Traditional Restaurant", Cost: 800, Note: "Reservations recommended for dinner"},
		{Place: "Cooking Class", Cost: 1200, Note: "Learn to make authentic regional dishes"},
		{Place: "Food Tour", Cost: 1000, Note: "Includes 5-6 different local eateries"},
		{Place: "Rooftop Cafe", Cost: 600, Note: "Great city views with your meal"},
	},
	Adventure: {
		{Place: "Mountain Hiking Trail", Cost: 300, Note: "Start early to catch the sunrise"},
		{Place: "River Rafting", Cost: 1500, Note: "Life jackets provided, bring extra clothes"},
		{Place: "Rock Climbing", Cost: 1200, Note: "All equipment included, suitable for beginners"},
		{Place: "Paragliding", Cost: 2000, Note: "Weather dependent, book in advance"},
		{Place: "Zip Lining", Cost: 800, Note: "Thrilling experience with scenic views"},
	},
	Culture: {
		{Place: "Art Gallery", Cost: 200, Note: "Features contemporary local artists"},
		{Place: "Cultural Performance", Cost: 600, Note: "Traditional dance and music show"},
		{Place: "Handicraft Workshop", Cost: 800, Note: "Create your own souvenir"},
		{Place: "Local Festival", Cost: 100, Note: "Immerse in authentic cultural celebration"},
		{Place: "Music Concert", Cost: 1000, Note: "Local musicians performing traditional songs"},
	},
	Nature: {
		{Place: "Botanical Garden", Cost: 100, Note: "Best time to visit is early morning"},
		{Place: "National Park", Cost: 400, Note: "Guided safari includes wildlife spotting"},
		{Place: "Waterfall Trek", Cost: 300, Note: "Moderate difficulty, carry snacks and water"},
		{Place: "Lake Boat Ride", Cost: 250, Note: "Peaceful experience, especially at sunset"},
		{Place: "Bird Watching", Cost: 200, Note: "Binoculars provided, ideal during dawn"},
	},
	Shopping: {
		{Place: "Local Bazaar", Cost: 800, Note: "Perfect for souvenirs and local crafts"},
		{Place: "Artisan Market", Cost: 600, Note: "Handmade items directly from creators"},
		{Place: "Shopping Mall", Cost: 1200, Note: "Modern amenities with global brands"},
		{Place: "Antique Store", Cost: 1500, Note: "Unique vintage finds and collectibles"},
		{Place: "Textile Shop", Cost: 1000, Note: "Traditional fabrics and clothing"},
	},
	Nightlife: {
		{Place: "Rooftop Bar", Cost: 1200, Note: "Great cocktails with panoramic city views"},
		{Place: "Night Market", Cost: 500, Note: "Street food and shopping after dark"},
		{Place: "Live Music Venue", Cost: 800, Note: "Local bands and intimate atmosphere"},
		{Place: "Dance Club", Cost: 1000, Note: "Popular spot, dress code applies"},
		{Place: "Night Tour", Cost: 700, Note: "See the city's illuminated landmarks"},
	},
	Photography: {
		{Place: "Scenic Viewpoint", Cost: 100, Note: "Golden hour lighting is spectacular"},
		{Place: "Photography Walk", Cost: 600, Note: "Professional guide shows best spots"},
		{Place: "Sunrise Spot", Cost: 200, Note: "Early start required but worth the effort"},
		{Place: "Architecture Tour", Cost: 500, Note: "Focus on historical and modern buildings"},
		{Place: "Portrait Session", Cost: 800, Note: "Local photographer captures your trip"},
	},
}

type staticCatalog struct{}

// Static returns the built-in sample catalog.
func Static() Catalog { return staticCatalog{} }

func (staticCatalog) Entries(i Interest) []Entry {
	if entries, ok := staticEntries[i]; ok {
		return entries
	}
	return staticEntries[DefaultInterest]
}

// Snapshot is an immutable catalog built from externally loaded rows.
type Snapshot struct {
	entries map[Interest][]Entry
}

// NewSnapshot copies rows into a read-only catalog. Interests with no rows
// keep their built-in list.
func NewSnapshot(rows map[Interest][]Entry) *Snapshot {
	s := &Snapshot{entries: make(map[Interest][]Entry, len(interestTable))}
	for _, i := range All() {
		src := rows[i]
		if len(src) == 0 {
			src = staticEntries[i]
		}
		s.entries[i] = append([]Entry(nil), src...)
	}
	return s
}

func (s *Snapshot) Entries(i Interest) []Entry {
	if entries, ok := s.entries[i]; ok {
		return entries
	}
	return s.entries[DefaultInterest]
}

// Seed lists the built-in catalog in display order, for storage seeding.
func Seed() map[Interest][]Entry {
	out := make(map[Interest][]Entry, len(staticEntries))
	for i, entries := range staticEntries {
		out[i] = append([]Entry(nil), entries...)
	}
	return out
}
