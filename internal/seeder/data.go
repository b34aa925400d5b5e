package seeder

// The standard OSRH catalog. Descriptions are in Greek, matching the
// platform's market.

var rideTypes = []ReferenceItem{
	{Key: "vehicle_with_driver", Description: "Όχημα με οδηγό"},
	{Key: "vehicle_no_driver", Description: "Όχημα χωρίς οδηγό"},
	{Key: "teledriving", Description: "Όχημα τηλεοδήγησης στη θέση χρήστη"},
	{Key: "fully_autonomous", Description: "Όχημα πλήρως αυτόνομο στη θέση χρήστη"},
	{Key: "small_cargo_van", Description: "Μικρό βαν για φορτία"},
}

var serviceTypes = []ReferenceItem{
	{Key: "simple_route", Description: "Μεταφορά επιβάτη από Α σε Ω"},
	{Key: "luxury_route", Description: "Όπως απλή αλλά με ανώτερες προδιαγραφές"},
	{Key: "light_cargo", Description: "Μικρός οικιακός όγκος/βάρος"},
	{Key: "heavy_cargo", Description: "Μετακόμιση/μεγαλύτερος όγκος"},
	{Key: "bridged_route", Description: "Πολλαπλά μέσα λόγω geofencing/bridges"},
}

var vehicleTypes = []ReferenceItem{
	{Key: "Sedan"}, {Key: "Hatchback"}, {Key: "SUV"}, {Key: "Coupe"},
	{Key: "Convertible"}, {Key: "Pickup Truck"}, {Key: "Minivan"}, {Key: "Van"},
	{Key: "Wagon"}, {Key: "Crossover"}, {Key: "Luxury Car"}, {Key: "Sports Car"},
	{Key: "Electric Car"}, {Key: "Hybrid Car"}, {Key: "Truck"},
}

var comboSpecs = []ComboSpec{
	{"simple_route", "vehicle_with_driver", "Sedan", "Απλή διαδρομή επιβάτη με sedan"},
	{"simple_route", "vehicle_with_driver", "Hatchback", "Απλή διαδρομή επιβάτη με hatchback"},
	{"simple_route", "vehicle_with_driver", "SUV", "Απλή διαδρομή επιβάτη με SUV"},
	{"simple_route", "vehicle_with_driver", "Coupe", "Απλή διαδρομή επιβάτη με coupe"},
	{"simple_route", "vehicle_with_driver", "Convertible", "Απλή διαδρομή επιβάτη με convertible"},
	{"simple_route", "vehicle_with_driver", "Crossover", "Απλή διαδρομή επιβάτη με crossover"},
	{"simple_route", "vehicle_with_driver", "Electric Car", "Απλή διαδρομή επιβάτη με electric car"},
	{"simple_route", "vehicle_with_driver", "Hybrid Car", "Απλή διαδρομή επιβάτη με hybrid car"},
	{"simple_route", "vehicle_with_driver", "Wagon", "Απλή διαδρομή επιβάτη με wagon"},

	{"luxury_route", "vehicle_with_driver", "Luxury Car", "Πολυτελής διαδρομή επιβάτη με luxury car"},
	{"luxury_route", "vehicle_with_driver", "Sports Car", "Πολυτελής διαδρομή επιβάτη με sports car"},
	{"luxury_route", "vehicle_with_driver", "SUV", "Πολυτελής διαδρομή επιβάτη με SUV"},
	{"luxury_route", "vehicle_with_driver", "Electric Car", "Πολυτελής διαδρομή επιβάτη με electric car"},
	{"luxury_route", "vehicle_with_driver", "Minivan", "Πολυτελής διαδρομή επιβάτη με minivan"},

	{"light_cargo", "small_cargo_van", "Van", "Μεταφορά ελαφριού φορτίου με van"},
	{"light_cargo", "small_cargo_van", "Pickup Truck", "Μεταφορά ελαφριού φορτίου με pickup truck"},
	{"light_cargo", "small_cargo_van", "Truck", "Μεταφορά ελαφριού φορτίου με truck"},

	{"heavy_cargo", "small_cargo_van", "Minivan", "Μεταφορά μεγάλου φορτίου με minivan"},
	{"heavy_cargo", "small_cargo_van", "Van", "Μεταφορά μεγάλου φορτίου με van"},
	{"heavy_cargo", "small_cargo_van", "Truck", "Μεταφορά μεγάλου φορτίου με truck"},

	{"bridged_route", "vehicle_with_driver", "Sedan", "Γεφυρωμένη διαδρομή επιβάτη με sedan"},
	{"bridged_route", "vehicle_with_driver", "Hatchback", "Γεφυρωμένη διαδρομή επιβάτη με hatchback"},
	{"bridged_route", "vehicle_with_driver", "SUV", "Γεφυρωμένη διαδρομή επιβάτη με SUV"},
	{"bridged_route", "vehicle_with_driver", "Coupe", "Γεφυρωμένη διαδρομή επιβάτη με coupe"},
	{"bridged_route", "vehicle_with_driver", "Convertible", "Γεφυρωμένη διαδρομή επιβάτη με convertible"},
	{"bridged_route", "vehicle_with_driver", "Crossover", "Γεφυρωμένη διαδρομή επιβάτη με crossover"},
	{"bridged_route", "vehicle_with_driver", "Electric Car", "Γεφυρωμένη διαδρομή επιβάτη με electric car"},
	{"bridged_route", "vehicle_with_driver", "Hybrid Car", "Γεφυρωμένη διαδρομή επιβάτη με hybrid car"},
	{"bridged_route", "vehicle_with_driver", "Wagon", "Γεφυρωμένη διαδρομή επιβάτη με wagon"},
}
