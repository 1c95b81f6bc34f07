package profile

// Built-in profiles. Penalty is a multiplier applied to a way's geometric
// length in kilometres; higher means slower/less desirable. Access keys
// are listed least to most specific, per Profile.Accessible.

var Car = New("car",
	WithPenalties(
		PenaltyRule{"highway", "motorway", 1.0},
		PenaltyRule{"highway", "motorway_link", 1.1},
		PenaltyRule{"highway", "trunk", 1.05},
		PenaltyRule{"highway", "trunk_link", 1.15},
		PenaltyRule{"highway", "primary", 1.2},
		PenaltyRule{"highway", "primary_link", 1.25},
		PenaltyRule{"highway", "secondary", 1.35},
		PenaltyRule{"highway", "secondary_link", 1.4},
		PenaltyRule{"highway", "tertiary", 1.5},
		PenaltyRule{"highway", "tertiary_link", 1.55},
		PenaltyRule{"highway", "unclassified", 1.8},
		PenaltyRule{"highway", "residential", 1.8},
		PenaltyRule{"highway", "living_street", 2.2},
		PenaltyRule{"highway", "service", 2.5},
	),
	WithAccessKeys("access", "vehicle", "motor_vehicle", "motorcar"),
	WithDisallowMotorroad(),
)

var Bus = New("bus",
	WithPenalties(
		PenaltyRule{"highway", "motorway", 1.0},
		PenaltyRule{"highway", "trunk", 1.05},
		PenaltyRule{"highway", "primary", 1.15},
		PenaltyRule{"highway", "secondary", 1.3},
		PenaltyRule{"highway", "tertiary", 1.45},
		PenaltyRule{"highway", "unclassified", 1.7},
		PenaltyRule{"highway", "residential", 1.7},
		PenaltyRule{"highway", "living_street", 2.0},
		PenaltyRule{"highway", "service", 2.3},
	),
	WithAccessKeys("access", "vehicle", "motor_vehicle", "bus", "psv"),
)

var Bicycle = New("bicycle",
	WithPenalties(
		PenaltyRule{"highway", "cycleway", 1.0},
		PenaltyRule{"highway", "primary", 1.8},
		PenaltyRule{"highway", "secondary", 1.5},
		PenaltyRule{"highway", "tertiary", 1.3},
		PenaltyRule{"highway", "unclassified", 1.2},
		PenaltyRule{"highway", "residential", 1.15},
		PenaltyRule{"highway", "living_street", 1.1},
		PenaltyRule{"highway", "service", 1.2},
		PenaltyRule{"highway", "track", 1.6},
		PenaltyRule{"highway", "path", 1.7},
	),
	WithAccessKeys("access", "vehicle", "bicycle"),
)

var Foot = New("foot",
	WithPenalties(
		PenaltyRule{"highway", "footway", 1.0},
		PenaltyRule{"highway", "pedestrian", 1.0},
		PenaltyRule{"highway", "living_street", 1.1},
		PenaltyRule{"highway", "residential", 1.2},
		PenaltyRule{"highway", "unclassified", 1.25},
		PenaltyRule{"highway", "tertiary", 1.3},
		PenaltyRule{"highway", "secondary", 1.4},
		PenaltyRule{"highway", "primary", 1.5},
		PenaltyRule{"highway", "service", 1.15},
		PenaltyRule{"highway", "track", 1.3},
		PenaltyRule{"highway", "path", 1.2},
		PenaltyRule{"highway", "steps", 1.8},
	),
	WithAccessKeys("access", "foot"),
	WithFootRules(),
)

var Railway = New("railway",
	WithPenalties(
		PenaltyRule{"railway", "rail", 1.0},
		PenaltyRule{"railway", "light_rail", 1.1},
	),
	WithAccessKeys("access"),
)

var Tram = New("tram",
	WithPenalties(
		PenaltyRule{"railway", "tram", 1.0},
	),
	WithAccessKeys("access"),
)

var Subway = New("subway",
	WithPenalties(
		PenaltyRule{"railway", "subway", 1.0},
	),
	WithAccessKeys("access"),
)
