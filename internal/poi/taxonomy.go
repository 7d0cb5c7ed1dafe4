package poi

import "github.com/utm-transit/campuskit/internal/model"

// Tag value sets consulted by the rule table. These are configuration
// data describing the OSM tagging conventions each category maps to.
var (
	residentialBuildings = []string{"dormitory", "hostel", "residential"}
	academicBuildings    = []string{"university", "college", "school", "academic"}
	academicAmenities    = []string{"university", "college"}
	diningAmenities      = []string{"cafe", "restaurant", "fast_food", "food_court"}
	shoppingShops        = []string{"convenience", "supermarket", "general", "kiosk", "mall"}
	sportsLeisure        = []string{"sports_centre", "stadium", "swimming_pool", "pitch", "track", "fitness_centre"}
	healthcareAmenities  = []string{"clinic", "hospital", "pharmacy", "doctors"}
	bankingAmenities     = []string{"bank", "atm"}
)

// defaultFragments are the per-category name fragments matched
// case-insensitively against display names. The lists mix Malay and
// English because the campus dataset does: "kolej" hostels, "fakulti"
// buildings, "arked" food courts and so on. Deployments can append to
// these via configuration.
var defaultFragments = map[model.Category][]string{
	model.CategoryResidential: {
		"kolej", "hostel", "asrama", "ktf", "ktr", "ktho", "ktdi", "ktc", "kdse",
	},
	model.CategoryAcademic: {
		"fakulti", "faculty", "dewan", "lecture", "tutorial",
	},
	model.CategoryLibrary: {
		"perpustakaan", "psz",
	},
	model.CategoryDining: {
		"cafe", "kafe", "arked", "restoran", "kantin", "cafeteria",
		"mcd", "mcdonald", "burger king", "kfc",
	},
	model.CategoryShopping: {
		"mart", "kedai", "shop", "store", "7-eleven", "99 speedmart",
	},
	model.CategorySports: {
		"stadium", "gym", "kolam", "pool", "court", "padang", "fitness",
	},
	model.CategoryReligious: {
		"masjid", "surau", "mosque", "musolla", "chapel", "temple",
	},
	model.CategoryHealthcare: {
		"klinik", "clinic", "hospital", "farmasi", "pharmacy", "health",
	},
	model.CategoryBanking: {
		"bank", "atm", "cimb", "maybank", "rhb",
	},
	model.CategoryAdministrative: {
		"pejabat", "office", "admin", "canselori", "bursary",
	},
}
