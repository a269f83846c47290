package place

import "github.com/twpayne/go-geom"

// Fragment tables for generated place names. Loaded once, never mutated.
var adjectives = []string{
	"Ancient", "Beautiful", "Charming", "Historic", "Grand", "Royal", "Sacred",
	"Old", "New", "Golden", "Silver", "Crystal", "Hidden", "Mystic", "Noble",
	"Imperial", "Modern", "Contemporary", "Traditional", "Peaceful", "Busy",
	"Central", "Northern", "Southern", "Eastern", "Western", "Coastal", "Mountain",
	"River", "Lake", "Forest", "Urban", "Rural", "Metropolitan",
}

var placeTypes = []string{
	"Museum", "Gallery", "Park", "Garden", "Plaza", "Square", "Tower", "Castle",
	"Cathedral", "Church", "Temple", "Monastery", "Palace", "Monument", "Memorial",
	"Library", "Theater", "Opera House", "Concert Hall", "Market", "Bazaar",
	"Restaurant", "Cafe", "Hotel", "Bridge", "Station", "Port", "Harbor",
	"University", "School", "Hospital", "Fountain", "Statue", "Building",
	"Center", "District", "Quarter", "Street", "Avenue", "Boulevard",
}

var properNames = []string{
	"St. James", "Victoria", "Alexander", "Elizabeth", "Charles", "William",
	"Margaret", "George", "Henry", "Louis", "Napoleon", "Augustus", "Caesar",
	"Cleopatra", "Athena", "Apollo", "Zeus", "Jupiter", "Neptune", "Venus",
	"Liberty", "Freedom", "Unity", "Peace", "Hope", "Faith", "Grace",
	"Washington", "Lincoln", "Jefferson", "Roosevelt", "Kennedy", "Churchill",
}

// linkTypes are the categorical targets emitted as [[Type]] links.
var linkTypes = []string{
	"Church", "Museum", "Restaurant", "Cafe", "Park", "Gallery", "Theater",
	"Library", "University", "Hospital", "Hotel", "Market", "Monument",
	"Castle", "Cathedral", "Temple", "Mosque", "Synagogue", "Shrine",
	"Beach", "Mountain", "Lake", "River", "Bridge", "Tower", "Palace",
	"Fort", "Memorial", "Station", "Airport", "Port", "Garden", "Zoo",
	"Aquarium", "Stadium", "Arena", "Mall", "Shop", "Bar", "Club",
	"Gym", "Spa", "Cinema", "School", "Cemetery", "Plaza", "Square",
}

// Region is a named rectangular latitude/longitude window. Coordinates
// sampled from a region cluster around real-world land masses rather than
// scattering uniformly over the globe.
type Region struct {
	Name   string
	Bounds *geom.Bounds
}

// window builds an XY bounds from latitude and longitude ranges
// (X = longitude, Y = latitude). A descending longitude range, as in the
// Pacific Islands band crossing the antimeridian, is normalized so the
// bounds stay well-formed; the sampling distribution is unchanged.
func window(latMin, latMax, lonMin, lonMax float64) *geom.Bounds {
	if lonMin > lonMax {
		lonMin, lonMax = lonMax, lonMin
	}
	return geom.NewBounds(geom.XY).Set(lonMin, latMin, lonMax, latMax)
}

// regions covers broad geographic bands across the continents.
var regions = []Region{
	// Europe
	{Name: "Western Europe", Bounds: window(42.0, 55.0, -5.0, 10.0)},
	{Name: "Central Europe", Bounds: window(45.0, 54.0, 10.0, 25.0)},
	{Name: "Southern Europe", Bounds: window(36.0, 45.0, -9.0, 20.0)},
	{Name: "Northern Europe", Bounds: window(54.0, 70.0, 5.0, 30.0)},
	{Name: "Eastern Europe", Bounds: window(45.0, 60.0, 20.0, 40.0)},

	// North America
	{Name: "Northeast US", Bounds: window(38.0, 47.0, -80.0, -66.0)},
	{Name: "Southeast US", Bounds: window(25.0, 38.0, -90.0, -75.0)},
	{Name: "Midwest US", Bounds: window(36.0, 49.0, -104.0, -80.0)},
	{Name: "Southwest US", Bounds: window(31.0, 42.0, -125.0, -103.0)},
	{Name: "West Coast US", Bounds: window(32.0, 49.0, -125.0, -116.0)},
	{Name: "Canada East", Bounds: window(42.0, 60.0, -95.0, -52.0)},
	{Name: "Canada West", Bounds: window(48.0, 60.0, -140.0, -95.0)},
	{Name: "Mexico", Bounds: window(14.5, 32.5, -117.0, -86.0)},
	{Name: "Central America", Bounds: window(7.0, 18.0, -92.0, -77.0)},
	{Name: "Caribbean", Bounds: window(10.0, 27.0, -85.0, -59.0)},

	// South America
	{Name: "Brazil North", Bounds: window(-10.0, 5.0, -75.0, -35.0)},
	{Name: "Brazil South", Bounds: window(-34.0, -10.0, -75.0, -35.0)},
	{Name: "Argentina", Bounds: window(-55.0, -22.0, -73.0, -53.0)},
	{Name: "Andean Region", Bounds: window(-20.0, 12.0, -81.0, -66.0)},

	// Asia
	{Name: "East Asia", Bounds: window(20.0, 50.0, 100.0, 145.0)},
	{Name: "Southeast Asia", Bounds: window(-10.0, 25.0, 95.0, 140.0)},
	{Name: "South Asia", Bounds: window(5.0, 35.0, 60.0, 95.0)},
	{Name: "Central Asia", Bounds: window(35.0, 55.0, 46.0, 87.0)},
	{Name: "Middle East", Bounds: window(12.0, 42.0, 34.0, 63.0)},
	{Name: "Japan", Bounds: window(30.0, 46.0, 129.0, 146.0)},

	// Africa
	{Name: "North Africa", Bounds: window(15.0, 37.0, -17.0, 51.0)},
	{Name: "West Africa", Bounds: window(4.0, 20.0, -17.0, 15.0)},
	{Name: "East Africa", Bounds: window(-12.0, 15.0, 22.0, 51.0)},
	{Name: "Southern Africa", Bounds: window(-35.0, -12.0, 11.0, 42.0)},

	// Oceania
	{Name: "Australia East", Bounds: window(-44.0, -10.0, 140.0, 154.0)},
	{Name: "Australia West", Bounds: window(-35.0, -13.0, 113.0, 130.0)},
	{Name: "New Zealand", Bounds: window(-47.0, -34.0, 166.0, 179.0)},
	{Name: "Pacific Islands", Bounds: window(-25.0, 15.0, 140.0, -140.0)},
}
